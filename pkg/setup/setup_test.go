// pkg/setup/setup_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None (in-memory filesystem, stubbed command runner)
// PURPOSE: Verify the setup flow end to end: console protocol, file
// substitution, directory renames, optional steps, and the receipt.

package setup_test

import (
	"bytes"
	"context"
	"fmt"
	osexec "os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templatekit/imprint/pkg/catalog"
	"github.com/templatekit/imprint/pkg/config"
	"github.com/templatekit/imprint/pkg/errors"
	"github.com/templatekit/imprint/pkg/exec"
	"github.com/templatekit/imprint/pkg/filesystem"
	"github.com/templatekit/imprint/pkg/setup"
	"github.com/templatekit/imprint/pkg/testutil"
	"github.com/templatekit/imprint/pkg/types"
)

type runnerCall struct {
	name string
	args []string
	dir  string
}

// stubRunner returns canned results per command name and records every
// invocation. Unknown commands succeed with exit code zero.
type stubRunner struct {
	results map[string]exec.CmdResult
	errs    map[string]error
	calls   []runnerCall
}

func (s *stubRunner) Run(_ context.Context, name string, args []string, opts exec.RunOpts) (exec.CmdResult, error) {
	s.calls = append(s.calls, runnerCall{name: name, args: args, dir: opts.Dir})
	if err, ok := s.errs[name]; ok {
		return exec.CmdResult{ExitCode: -1}, err
	}
	if result, ok := s.results[name]; ok {
		return result, nil
	}
	return exec.CmdResult{}, nil
}

type runEnv struct {
	fs     types.FS
	out    *bytes.Buffer
	runner *stubRunner
	root   string
}

// newEnv builds an in-memory project with the full template tree.
func newEnv(t *testing.T) *runEnv {
	t.Helper()

	env := &runEnv{
		fs:     filesystem.NewMemory(),
		out:    &bytes.Buffer{},
		runner: &stubRunner{},
		root:   "/project",
	}
	testutil.CreateTemplateTree(t, env.fs, env.root)
	return env
}

func (e *runEnv) options(input string) setup.Options {
	return setup.Options{
		RootDir:    e.root,
		In:         strings.NewReader(input),
		Out:        e.out,
		FileSystem: e.fs,
		Runner:     e.runner,
	}
}

// answersInput builds one input line per catalog variable, overriding
// the named ones and leaving the rest empty (accept the default).
func answersInput(overrides map[string]string) string {
	var b strings.Builder
	for _, def := range catalog.Default().Definitions() {
		if v, ok := overrides[def.Name]; ok {
			b.WriteString(v)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// defaultsTranscript is the byte-exact console output of an all-defaults
// run that declines every optional step. The literals are deliberately
// spelled out here instead of reusing the package's constants.
func defaultsTranscript() string {
	rule := strings.Repeat("=", 60)
	section := strings.Repeat("-", 60)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\nPython Project Template Setup\n%s\n", rule, rule)
	b.WriteString("\nPlease provide values for the following settings.\n")
	b.WriteString("Press Enter to accept the default value shown in brackets.\n\n")
	for _, def := range catalog.Default().Definitions() {
		fmt.Fprintf(&b, "\n%s\n  %s [%s]: ", def.Description, def.Name, def.Default)
	}
	fmt.Fprintf(&b, "\n%s\nApplying configuration...\n%s\n", rule, rule)
	for _, rel := range catalog.TargetFiles() {
		fmt.Fprintf(&b, "  Updated: %s\n", rel)
	}
	fmt.Fprintf(&b, "\n  Modified %d files\n", len(catalog.TargetFiles()))
	fmt.Fprintf(&b, "  Recorded answers in %s\n", config.ReceiptFileName)
	fmt.Fprintf(&b, "\n%s\n", section)
	b.WriteString("Initialize git repository? [yes]: ")
	b.WriteString("Install pre-commit hooks? [yes]: ")
	fmt.Fprintf(&b, "\n%s\nSetup complete!\n%s\n", rule, rule)
	b.WriteString("\nYour project 'my-python-project' is ready.\n")
	b.WriteString("\nNext steps:\n")
	b.WriteString("  1. Review the generated files\n")
	b.WriteString("  2. Install dependencies: pip install -r requirements-dev.txt\n")
	b.WriteString("  3. Run tests: pytest\n")
	b.WriteString("  4. Start coding!\n\n")
	return b.String()
}

func TestRun_DefaultsTranscript(t *testing.T) {
	env := newEnv(t)
	input := answersInput(nil) + "n\nn\n"

	result, err := setup.Run(context.Background(), env.options(input))
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, defaultsTranscript(), env.out.String())

	assert.Equal(t, len(catalog.TargetFiles()), result.FilesModified)
	assert.Equal(t, "src", result.SourceDir)
	assert.Equal(t, "tests", result.TestDir)
	assert.False(t, result.SourceRenamed)
	assert.False(t, result.TestsRenamed)
	assert.Zero(t, result.ReferencesFixed)
	assert.Equal(t, setup.StepSkipped, result.GitInit)
	assert.Equal(t, setup.StepSkipped, result.InstallHooks)
	assert.Equal(t, setup.StepSkipped, result.RemoveSelf)
	assert.Empty(t, env.runner.calls)

	testutil.AssertFileContent(t, env.fs, filepath.Join(env.root, "pyproject.toml"),
		"# pyproject.toml\n"+
			"project: my-python-project\n"+
			"description: A Python project\n"+
			"owner: your-username\n"+
			"coverage: 95\n")

	assert.Equal(t, filepath.Join(env.root, config.ReceiptFileName), result.ReceiptPath)
	assert.True(t, testutil.FileExists(t, env.fs, result.ReceiptPath))
}

func TestRun_AnswerPresets(t *testing.T) {
	env := newEnv(t)
	cfg := config.Default()
	cfg.Answers["PROJECT_NAME"] = "preset-app"

	opts := env.options(answersInput(nil) + "n\nn\n")
	opts.Config = cfg

	result, err := setup.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Contains(t, env.out.String(), "  PROJECT_NAME [preset-app]: ")
	assert.Contains(t, env.out.String(), "Your project 'preset-app' is ready.")
	assert.Equal(t, "preset-app", result.Values["PROJECT_NAME"])
}

func TestRun_RenamesDirectories(t *testing.T) {
	env := newEnv(t)
	input := answersInput(map[string]string{
		"PROJECT_NAME": "demo-app",
		"SOURCE_DIR":   "lib",
		"TEST_DIR":     "spec",
	}) + "y\ny\n"

	result, err := setup.Run(context.Background(), env.options(input))
	require.NoError(t, err)

	output := env.out.String()
	assert.Contains(t, output, "  Renamed: src -> lib\n")
	assert.Contains(t, output, "  Renamed: tests -> spec\n")
	assert.Contains(t, output, "  Initialized git repository\n")
	assert.Contains(t, output, "  Installed pre-commit hooks\n")
	assert.Contains(t, output, "Your project 'demo-app' is ready.")

	assert.True(t, result.SourceRenamed)
	assert.True(t, result.TestsRenamed)
	assert.Equal(t, setup.StepDone, result.GitInit)
	assert.Equal(t, setup.StepDone, result.InstallHooks)

	require.Len(t, env.runner.calls, 2)
	assert.Equal(t, runnerCall{name: "git", args: []string{"init"}, dir: env.root}, env.runner.calls[0])
	assert.Equal(t, runnerCall{name: "pre-commit", args: []string{"install"}, dir: env.root}, env.runner.calls[1])

	assert.True(t, testutil.DirExists(t, env.fs, filepath.Join(env.root, "lib")))
	assert.True(t, testutil.DirExists(t, env.fs, filepath.Join(env.root, "spec")))
	testutil.AssertNoFile(t, env.fs, filepath.Join(env.root, "src"))
	testutil.AssertNoFile(t, env.fs, filepath.Join(env.root, "tests"))

	// The path markers inside the moved files reference the new names.
	assert.Contains(t, testutil.ReadFile(t, env.fs, filepath.Join(env.root, "lib", "main.py")),
		"# lib/main.py")
	assert.Contains(t, testutil.ReadFile(t, env.fs, filepath.Join(env.root, "spec", "conftest.py")),
		"# spec/conftest.py")
	assert.Equal(t, 5, result.ReferencesFixed)
}

func TestRun_RenameConflict(t *testing.T) {
	env := newEnv(t)
	testutil.CreateFile(t, env.fs, env.root, "lib/keep.txt", "keep")

	input := answersInput(map[string]string{"SOURCE_DIR": "lib"}) + "n\nn\n"

	result, err := setup.Run(context.Background(), env.options(input))
	require.NoError(t, err)

	assert.Contains(t, env.out.String(), "  Warning: Cannot rename src to lib: target exists\n")
	assert.NotContains(t, env.out.String(), "  Renamed: src -> lib")
	assert.False(t, result.SourceRenamed)
	assert.Zero(t, result.ReferencesFixed)
	assert.True(t, testutil.DirExists(t, env.fs, filepath.Join(env.root, "src")))
	assert.Equal(t, "keep", testutil.ReadFile(t, env.fs, filepath.Join(env.root, "lib", "keep.txt")))
}

func TestRun_StepFailures(t *testing.T) {
	env := newEnv(t)
	env.runner.results = map[string]exec.CmdResult{
		"git": {ExitCode: 128, Stderr: "fatal: cannot create repository"},
	}
	env.runner.errs = map[string]error{
		"pre-commit": osexec.ErrNotFound,
	}

	// Empty confirm answers accept the configured "yes" defaults.
	input := answersInput(nil) + "\n\n"

	result, err := setup.Run(context.Background(), env.options(input))
	require.NoError(t, err)

	output := env.out.String()
	assert.Contains(t, output, "  Warning: Could not initialize git repository\n")
	assert.Contains(t, output, "  Warning: Could not install pre-commit hooks\n")
	assert.Contains(t, output, "  Run 'pip install pre-commit && pre-commit install' manually\n")
	assert.Contains(t, output, "Setup complete!")

	assert.Equal(t, setup.StepFailed, result.GitInit)
	assert.Equal(t, setup.StepFailed, result.InstallHooks)
}

func TestRun_SelfRemove(t *testing.T) {
	tests := []struct {
		name       string
		answer     string
		wantStatus setup.StepStatus
		wantGone   bool
	}{
		{
			name:       "accepted",
			answer:     "y\n",
			wantStatus: setup.StepDone,
			wantGone:   true,
		},
		{
			name:       "declined",
			answer:     "n\n",
			wantStatus: setup.StepSkipped,
			wantGone:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newEnv(t)
			selfPath := testutil.CreateFile(t, env.fs, env.root, "imprint", "binary")

			opts := env.options(answersInput(nil) + "n\nn\n" + tt.answer)
			opts.SelfPath = selfPath

			result, err := setup.Run(context.Background(), opts)
			require.NoError(t, err)

			assert.Contains(t, env.out.String(), "Remove this setup binary? [yes]: ")
			assert.Equal(t, tt.wantStatus, result.RemoveSelf)
			if tt.wantGone {
				assert.Contains(t, env.out.String(), "  Removed imprint\n")
				testutil.AssertNoFile(t, env.fs, selfPath)
			} else {
				assert.True(t, testutil.FileExists(t, env.fs, selfPath))
			}
		})
	}
}

func TestRun_SelfRemoveDisabledWithoutPath(t *testing.T) {
	env := newEnv(t)

	// No trailing answer for the remove step; the question must not
	// be asked at all when no binary path is known.
	input := answersInput(nil) + "n\nn\n"

	result, err := setup.Run(context.Background(), env.options(input))
	require.NoError(t, err)

	assert.NotContains(t, env.out.String(), "Remove this setup binary?")
	assert.Equal(t, setup.StepSkipped, result.RemoveSelf)
}

func TestRun_NonInteractive(t *testing.T) {
	env := newEnv(t)
	cfg := config.Default()
	cfg.NonInteractive = true
	cfg.Answers["PROJECT_NAME"] = "quiet-app"
	cfg.Steps.RemoveSelf = false

	opts := env.options("")
	opts.Config = cfg
	selfPath := testutil.CreateFile(t, env.fs, env.root, "imprint", "binary")
	opts.SelfPath = selfPath

	result, err := setup.Run(context.Background(), opts)
	require.NoError(t, err)

	output := env.out.String()
	assert.NotContains(t, output, "Please provide values")
	assert.NotContains(t, output, "]: ")
	assert.Contains(t, output, "Your project 'quiet-app' is ready.")

	assert.Equal(t, "quiet-app", result.Values["PROJECT_NAME"])
	assert.Equal(t, "A Python project", result.Values["PROJECT_DESCRIPTION"])

	require.Len(t, env.runner.calls, 2)
	assert.Equal(t, setup.StepDone, result.GitInit)
	assert.Equal(t, setup.StepDone, result.InstallHooks)
	assert.Equal(t, setup.StepSkipped, result.RemoveSelf)
	assert.True(t, testutil.FileExists(t, env.fs, selfPath))
}

func TestRun_FindsRenamedTargets(t *testing.T) {
	// A second run against a tree whose source directory was already
	// renamed: listed paths under src/ fall back to the new name.
	fs := filesystem.NewMemory()
	root := "/project"
	for _, rel := range catalog.TargetFiles() {
		path := rel
		if strings.HasPrefix(rel, "src/") {
			path = "lib/" + strings.TrimPrefix(rel, "src/")
		}
		testutil.CreateFile(t, fs, root, path, testutil.TemplateContent(rel))
	}

	env := &runEnv{fs: fs, out: &bytes.Buffer{}, runner: &stubRunner{}, root: root}
	input := answersInput(map[string]string{"SOURCE_DIR": "lib"}) + "n\nn\n"

	result, err := setup.Run(context.Background(), env.options(input))
	require.NoError(t, err)

	output := env.out.String()
	assert.Contains(t, output, "  Updated: lib/__init__.py\n")
	assert.Contains(t, output, "  Updated: lib/main.py\n")
	assert.NotContains(t, output, "  Renamed: src -> lib")
	assert.Equal(t, len(catalog.TargetFiles()), result.FilesModified)
	assert.False(t, result.SourceRenamed)
}

func TestRun_InputClosed(t *testing.T) {
	env := newEnv(t)

	// Three answers, then the stream ends mid-collection.
	result, err := setup.Run(context.Background(), env.options("\n\n\n"))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInputClosed))
}
