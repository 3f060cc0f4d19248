package imprint

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Configure a project template in place"
	MsgSetupShort      = "Run the setup flow"
	MsgVarsShort       = "List the template variables"
	MsgVarsLong        = "Vars prints every template variable with its default value and description, in the order setup asks for them. Nothing is modified."
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot    = "Project root to configure (default: current directory)"
	MsgFlagAnswers = "Preload answers from a TOML or YAML file"
	MsgFlagNoInput = "Accept every default without prompting"
	MsgFlagFormat  = "Output format (text, json, yaml)"

	// Error messages
	MsgErrSetup      = "setup failed: %w"
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrVarsFormat = "unsupported format %q (want text, json, or yaml)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/setup-long.txt
	msgSetupLongRaw string
	MsgSetupLong    = strings.TrimSpace(msgSetupLongRaw)

	//go:embed msgs/setup-example.txt
	msgSetupExampleRaw string
	MsgSetupExample    = strings.TrimSpace(msgSetupExampleRaw)

	//go:embed msgs/vars-example.txt
	msgVarsExampleRaw string
	MsgVarsExample    = strings.TrimSpace(msgVarsExampleRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
