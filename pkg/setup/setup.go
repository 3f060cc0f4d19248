package setup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/templatekit/imprint/pkg/catalog"
	"github.com/templatekit/imprint/pkg/config"
	"github.com/templatekit/imprint/pkg/errors"
	"github.com/templatekit/imprint/pkg/exec"
	"github.com/templatekit/imprint/pkg/filesystem"
	"github.com/templatekit/imprint/pkg/logging"
	"github.com/templatekit/imprint/pkg/prompt"
	"github.com/templatekit/imprint/pkg/rename"
	"github.com/templatekit/imprint/pkg/style"
	"github.com/templatekit/imprint/pkg/substitute"
	"github.com/templatekit/imprint/pkg/types"
	"github.com/templatekit/imprint/pkg/vcs"
)

// Options defines the inputs of the Run command.
type Options struct {
	// RootDir is the project root the template lives in.
	RootDir string
	// Catalog is the variable catalog; the zero value means the
	// built-in one.
	Catalog catalog.Catalog
	// Config is the resolved run configuration (optional, defaults
	// to config.Default()).
	Config *config.Config
	// In is the answer stream (optional, defaults to stdin).
	In io.Reader
	// Out is the console stream (optional, defaults to stdout).
	Out io.Writer
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
	// Runner executes external tools (optional, defaults to RealRunner).
	Runner exec.CommandRunner
	// SelfPath is the binary deleted by the removal step; empty
	// disables that step.
	SelfPath string
}

// StepStatus records the outcome of an optional step.
type StepStatus string

const (
	StepSkipped StepStatus = "skipped"
	StepDone    StepStatus = "done"
	StepFailed  StepStatus = "failed"
)

// Result describes what a setup run did.
type Result struct {
	Values          catalog.Values
	FilesModified   int
	SourceDir       string
	TestDir         string
	SourceRenamed   bool
	TestsRenamed    bool
	ReferencesFixed int
	ReceiptPath     string
	GitInit         StepStatus
	InstallHooks    StepStatus
	RemoveSelf      StepStatus
}

// Run executes the setup flow against the project root. It returns an
// error only when the answer stream fails; every failure after value
// collection is reported as a console warning instead.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("setup")
	done := logging.LogOperationStart(logger, "setup")
	defer done()

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	runner := opts.Runner
	if runner == nil {
		runner = exec.NewRealRunner()
	}
	cat := opts.Catalog
	if cat.Len() == 0 {
		cat = catalog.Default()
	}
	cat = cat.WithDefaults(cfg.Defaults)
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	p := prompt.New(in, out)

	printHeader(out, MsgTitle)

	var values catalog.Values
	if cfg.NonInteractive {
		values = resolveDefaults(cat, cfg.Answers)
	} else {
		fmt.Fprint(out, MsgIntro)
		collected, err := p.Collect(cat, cfg.Answers)
		if err != nil {
			return nil, err
		}
		values = collected
	}
	logger.Info().Int("variables", len(values)).Msg("Collected variable values")

	result := &Result{
		Values:       values,
		SourceDir:    values[catalog.VarSourceDir],
		TestDir:      values[catalog.VarTestDir],
		GitInit:      StepSkipped,
		InstallHooks: StepSkipped,
		RemoveSelf:   StepSkipped,
	}

	printHeader(out, MsgApplying)

	engine := substitute.New(fs, opts.RootDir, cat, values)
	report := engine.Apply(catalog.TargetFiles())
	for _, entry := range report.Entries {
		switch entry.Status {
		case substitute.StatusUpdated:
			fmt.Fprintf(out, MsgUpdatedFormat, entry.Path)
		case substitute.StatusFailed:
			fmt.Fprintf(out, MsgProcessWarnFormat, entry.FullPath, entry.Err)
		}
	}
	result.FilesModified = report.Updated()
	fmt.Fprintf(out, MsgModifiedCountFormat, result.FilesModified)

	if cfg.Receipt.Write {
		path, err := writeReceipt(fs, opts.RootDir, cfg.Receipt.Path, values)
		if err != nil {
			fmt.Fprintf(out, MsgWarnFormat, err)
		} else {
			result.ReceiptPath = path
			fmt.Fprintf(out, MsgRecordedFormat, cfg.Receipt.Path)
		}
	}

	renamed, fixed := renameStep(fs, out, opts.RootDir, catalog.SourceDirDefault, result.SourceDir)
	result.SourceRenamed = renamed
	result.ReferencesFixed += fixed

	renamed, fixed = renameStep(fs, out, opts.RootDir, catalog.TestDirDefault, result.TestDir)
	result.TestsRenamed = renamed
	result.ReferencesFixed += fixed

	fmt.Fprintf(out, "\n%s\n", SectionRule)

	runGit, err := stepWanted(p, cfg.NonInteractive, MsgConfirmGit, cfg.Steps.GitInit)
	if err != nil {
		return nil, err
	}
	if runGit {
		if err := vcs.InitRepo(ctx, runner, opts.RootDir); err != nil {
			logger.Debug().Err(err).Msg("git init failed")
			fmt.Fprintln(out, MsgGitFailed)
			result.GitInit = StepFailed
		} else {
			fmt.Fprintln(out, MsgGitDone)
			result.GitInit = StepDone
		}
	}

	runHooks, err := stepWanted(p, cfg.NonInteractive, MsgConfirmHooks, cfg.Steps.InstallHooks)
	if err != nil {
		return nil, err
	}
	if runHooks {
		if err := vcs.InstallHooks(ctx, runner, opts.RootDir); err != nil {
			logger.Debug().Err(err).Msg("pre-commit install failed")
			fmt.Fprintln(out, MsgHooksFailed)
			fmt.Fprintln(out, MsgHooksHint)
			result.InstallHooks = StepFailed
		} else {
			fmt.Fprintln(out, MsgHooksDone)
			result.InstallHooks = StepDone
		}
	}

	if opts.SelfPath != "" {
		fmt.Fprintf(out, "\n%s\n", SectionRule)
		runRemove, err := stepWanted(p, cfg.NonInteractive, MsgConfirmRemove, cfg.Steps.RemoveSelf)
		if err != nil {
			return nil, err
		}
		if runRemove {
			if err := fs.Remove(opts.SelfPath); err != nil {
				logger.Debug().Err(err).Str("path", opts.SelfPath).Msg("self removal failed")
				fmt.Fprintf(out, MsgWarnFormat,
					errors.Wrapf(err, errors.ErrFileWrite, "could not remove %s", filepath.Base(opts.SelfPath)))
				result.RemoveSelf = StepFailed
			} else {
				fmt.Fprintf(out, MsgRemovedFormat, filepath.Base(opts.SelfPath))
				result.RemoveSelf = StepDone
			}
		}
	}

	printHeader(out, MsgComplete)
	fmt.Fprintf(out, MsgReadyFormat, values[catalog.VarProjectName])
	fmt.Fprint(out, MsgNextSteps)

	return result, nil
}

// printHeader writes a 60-column banner. The title is bolded only
// when out is a terminal; piped output stays byte-identical.
func printHeader(out io.Writer, title string) {
	fmt.Fprintf(out, "\n%s\n", HeaderRule)
	fmt.Fprintln(out, style.Header(out, title))
	fmt.Fprintln(out, HeaderRule)
}

// stepWanted resolves whether an optional step should run: the
// configured default in non-interactive mode, the user's answer
// otherwise.
func stepWanted(p *prompt.Prompter, nonInteractive bool, question string, def bool) (bool, error) {
	if nonInteractive {
		return def, nil
	}
	return p.Confirm(question, yesNo(def))
}

// renameStep moves one template directory to its configured name and
// fixes references. Conflicts and failures downgrade to warnings.
func renameStep(fsys types.FS, out io.Writer, root, oldName, newName string) (bool, int) {
	if newName == oldName {
		return false, 0
	}

	newPath, err := rename.Move(fsys, root, oldName, newName)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrRenameConflict) {
			fmt.Fprintf(out, MsgRenameConflictFormat, oldName, newName)
		} else {
			fmt.Fprintf(out, MsgWarnFormat, err)
		}
		return false, 0
	}
	if newPath == "" {
		return false, 0
	}

	fmt.Fprintf(out, MsgRenamedFormat, oldName, newName)
	fixed := rename.FixReferences(fsys, root, oldName, newName)
	return true, fixed
}

// resolveDefaults builds the value set a non-interactive run uses:
// catalog defaults overlaid with answer presets.
func resolveDefaults(cat catalog.Catalog, presets map[string]string) catalog.Values {
	values := cat.DefaultValues()
	for name, v := range presets {
		if _, ok := values[name]; ok {
			values[name] = v
		}
	}
	return values
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
