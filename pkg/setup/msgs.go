package setup

import "strings"

// Console protocol text. Wording and layout mirror the template's
// original setup script, so its docs and muscle memory keep working.
var (
	HeaderRule  = strings.Repeat("=", 60)
	SectionRule = strings.Repeat("-", 60)
)

const (
	MsgTitle    = "Python Project Template Setup"
	MsgIntro    = "\nPlease provide values for the following settings.\nPress Enter to accept the default value shown in brackets.\n\n"
	MsgApplying = "Applying configuration..."

	MsgUpdatedFormat       = "  Updated: %s\n"
	MsgProcessWarnFormat   = "  Warning: Could not process %s: %v\n"
	MsgModifiedCountFormat = "\n  Modified %d files\n"

	MsgRenamedFormat        = "  Renamed: %s -> %s\n"
	MsgRenameConflictFormat = "  Warning: Cannot rename %s to %s: target exists\n"
	MsgWarnFormat           = "  Warning: %v\n"

	MsgRecordedFormat = "  Recorded answers in %s\n"

	MsgConfirmGit = "Initialize git repository?"
	MsgGitDone    = "  Initialized git repository"
	MsgGitFailed  = "  Warning: Could not initialize git repository"

	MsgConfirmHooks = "Install pre-commit hooks?"
	MsgHooksDone    = "  Installed pre-commit hooks"
	MsgHooksFailed  = "  Warning: Could not install pre-commit hooks"
	MsgHooksHint    = "  Run 'pip install pre-commit && pre-commit install' manually"

	MsgConfirmRemove = "Remove this setup binary?"
	MsgRemovedFormat = "  Removed %s\n"

	MsgComplete    = "Setup complete!"
	MsgReadyFormat = "\nYour project '%s' is ready.\n"
	MsgNextSteps   = "\nNext steps:\n" +
		"  1. Review the generated files\n" +
		"  2. Install dependencies: pip install -r requirements-dev.txt\n" +
		"  3. Run tests: pytest\n" +
		"  4. Start coding!\n\n"
)
