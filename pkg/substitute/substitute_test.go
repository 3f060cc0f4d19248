package substitute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templatekit/imprint/pkg/catalog"
	"github.com/templatekit/imprint/pkg/errors"
	"github.com/templatekit/imprint/pkg/filesystem"
	"github.com/templatekit/imprint/pkg/substitute"
	"github.com/templatekit/imprint/pkg/testutil"
)

const root = "/project"

func TestApply_ReplacesPlaceholders(t *testing.T) {
	fs := filesystem.NewMemory()
	cat := catalog.Default()
	values := cat.DefaultValues()
	values[catalog.VarProjectName] = "acme-tool"

	testutil.CreateFile(t, fs, root, "README.md",
		"# {{PROJECT_NAME}}\n\n{{PROJECT_DESCRIPTION}} by {{GITHUB_OWNER}}.\n")

	engine := substitute.New(fs, root, cat, values)
	report := engine.Apply([]string{"README.md"})

	require.Len(t, report.Entries, 1)
	assert.Equal(t, substitute.StatusUpdated, report.Entries[0].Status)
	assert.Equal(t, "README.md", report.Entries[0].Path)
	assert.Equal(t, 1, report.Updated())

	testutil.AssertFileContent(t, fs, root+"/README.md",
		"# acme-tool\n\nA Python project by your-username.\n")
}

func TestApply_UnmodifiedFile(t *testing.T) {
	fs := filesystem.NewMemory()
	cat := catalog.Default()

	testutil.CreateFile(t, fs, root, "README.md", "no placeholders here\n")

	engine := substitute.New(fs, root, cat, cat.DefaultValues())
	report := engine.Apply([]string{"README.md"})

	require.Len(t, report.Entries, 1)
	assert.Equal(t, substitute.StatusUnmodified, report.Entries[0].Status)
	assert.Equal(t, 0, report.Updated())
}

func TestApply_MissingFile(t *testing.T) {
	fs := filesystem.NewMemory()
	cat := catalog.Default()

	engine := substitute.New(fs, root, cat, cat.DefaultValues())
	report := engine.Apply([]string{"docs/INDEX.md"})

	require.Len(t, report.Entries, 1)
	assert.Equal(t, substitute.StatusMissing, report.Entries[0].Status)
	assert.NoError(t, report.Entries[0].Err)
}

func TestApply_RenamedDirectoryFallback(t *testing.T) {
	tests := []struct {
		name     string
		variable string
		value    string
		listed   string
		actual   string
	}{
		{
			name:     "source directory renamed",
			variable: catalog.VarSourceDir,
			value:    "lib",
			listed:   "src/main.py",
			actual:   "lib/main.py",
		},
		{
			name:     "test directory renamed",
			variable: catalog.VarTestDir,
			value:    "spec",
			listed:   "tests/test_main.py",
			actual:   "spec/test_main.py",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := filesystem.NewMemory()
			cat := catalog.Default()
			values := cat.DefaultValues()
			values[tt.variable] = tt.value

			testutil.CreateFile(t, fs, root, tt.actual, "name = \"{{PROJECT_NAME}}\"\n")

			engine := substitute.New(fs, root, cat, values)
			report := engine.Apply([]string{tt.listed})

			require.Len(t, report.Entries, 1)
			entry := report.Entries[0]
			assert.Equal(t, substitute.StatusUpdated, entry.Status)
			assert.Equal(t, tt.actual, entry.Path)

			testutil.AssertFileContent(t, fs, root+"/"+tt.actual,
				"name = \"my-python-project\"\n")
		})
	}
}

func TestApply_FallbackMissingToo(t *testing.T) {
	fs := filesystem.NewMemory()
	cat := catalog.Default()
	values := cat.DefaultValues()
	values[catalog.VarSourceDir] = "lib"

	engine := substitute.New(fs, root, cat, values)
	report := engine.Apply([]string{"src/main.py"})

	require.Len(t, report.Entries, 1)
	assert.Equal(t, substitute.StatusMissing, report.Entries[0].Status)
}

func TestApply_SequentialSinglePass(t *testing.T) {
	// PROJECT_NAME is replaced before GITHUB_OWNER. A later-variable
	// token introduced by an earlier value is picked up by the same
	// pass; an earlier-variable token introduced later stays literal.
	fs := filesystem.NewMemory()
	cat := catalog.Default()
	values := cat.DefaultValues()
	values[catalog.VarProjectName] = "{{GITHUB_OWNER}}-app"
	values["GITHUB_OWNER"] = "{{PROJECT_NAME}}"

	testutil.CreateFile(t, fs, root, "README.md",
		"name={{PROJECT_NAME}} owner={{GITHUB_OWNER}}\n")

	engine := substitute.New(fs, root, cat, values)
	engine.Apply([]string{"README.md"})

	testutil.AssertFileContent(t, fs, root+"/README.md",
		"name={{PROJECT_NAME}}-app owner={{PROJECT_NAME}}\n")
}

func TestApply_InvalidUTF8(t *testing.T) {
	fs := filesystem.NewMemory()
	cat := catalog.Default()

	require.NoError(t, fs.MkdirAll(root, 0755))
	require.NoError(t, fs.WriteFile(root+"/README.md", []byte{0xff, 0xfe, 0x01}, 0644))

	engine := substitute.New(fs, root, cat, cat.DefaultValues())
	report := engine.Apply([]string{"README.md"})

	require.Len(t, report.Entries, 1)
	entry := report.Entries[0]
	assert.Equal(t, substitute.StatusFailed, entry.Status)
	assert.True(t, errors.IsErrorCode(entry.Err, errors.ErrFileDecode))
}

func TestApply_UnreadableTarget(t *testing.T) {
	fs := filesystem.NewMemory()
	cat := catalog.Default()

	// A directory where a file is expected fails the read, not the run
	testutil.CreateDir(t, fs, root, "README.md")

	engine := substitute.New(fs, root, cat, cat.DefaultValues())
	report := engine.Apply([]string{"README.md"})

	require.Len(t, report.Entries, 1)
	entry := report.Entries[0]
	assert.Equal(t, substitute.StatusFailed, entry.Status)
	assert.True(t, errors.IsErrorCode(entry.Err, errors.ErrFileRead))
}

func TestApply_Idempotent(t *testing.T) {
	fs := filesystem.NewMemory()
	cat := catalog.Default()
	values := cat.DefaultValues()

	testutil.CreateFile(t, fs, root, "README.md", "# {{PROJECT_NAME}}\n")

	engine := substitute.New(fs, root, cat, values)
	first := engine.Apply([]string{"README.md"})
	second := engine.Apply([]string{"README.md"})

	assert.Equal(t, 1, first.Updated())
	assert.Equal(t, 0, second.Updated())
	assert.Equal(t, substitute.StatusUnmodified, second.Entries[0].Status)
}

func TestApply_FullTemplateTree(t *testing.T) {
	fs := filesystem.NewMemory()
	cat := catalog.Default()
	values := cat.DefaultValues()
	values[catalog.VarProjectName] = "full-tree"

	files := testutil.CreateTemplateTree(t, fs, root)

	engine := substitute.New(fs, root, cat, values)
	report := engine.Apply(files)

	assert.Equal(t, len(files), report.Updated())
	for _, entry := range report.Entries {
		assert.Equal(t, substitute.StatusUpdated, entry.Status, "entry %s", entry.Path)
	}

	content := testutil.ReadFile(t, fs, root+"/pyproject.toml")
	assert.Contains(t, content, "project: full-tree")
	assert.NotContains(t, content, "{{PROJECT_NAME}}")
}

func TestToken(t *testing.T) {
	assert.Equal(t, "{{PROJECT_NAME}}", substitute.Token("PROJECT_NAME"))
}
