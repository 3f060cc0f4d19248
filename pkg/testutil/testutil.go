package testutil

import (
	"path/filepath"
	"testing"

	"github.com/templatekit/imprint/pkg/catalog"
	"github.com/templatekit/imprint/pkg/types"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, fs types.FS, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := fs.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, fs types.FS, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)

	if err := fs.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}

// FileExists checks if a file exists and is not a directory.
func FileExists(t *testing.T, fs types.FS, path string) bool {
	t.Helper()

	info, err := fs.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// DirExists checks if a directory exists.
func DirExists(t *testing.T, fs types.FS, path string) bool {
	t.Helper()

	info, err := fs.Stat(path)
	if err != nil {
		return false
	}

	return info.IsDir()
}

// ReadFile reads the content of a file and returns it as a string.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, fs types.FS, path string) string {
	t.Helper()

	content, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	return string(content)
}

// AssertFileContent checks that a file exists and has the expected content.
func AssertFileContent(t *testing.T, fs types.FS, path, expected string) {
	t.Helper()

	if !FileExists(t, fs, path) {
		t.Fatalf("File %s does not exist", path)
	}

	actual := ReadFile(t, fs, path)
	if actual != expected {
		t.Errorf("File %s content mismatch\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// AssertNoFile checks that a path does not exist.
func AssertNoFile(t *testing.T, fs types.FS, path string) {
	t.Helper()

	if _, err := fs.Stat(path); err == nil {
		t.Errorf("File %s exists but should not", path)
	}
}

// CreateTemplateTree writes every catalog target file under root with
// placeholder content and returns the list of files written. Each file
// carries the project name token plus a marker with its own path, so
// substitution outcomes are observable per file.
func CreateTemplateTree(t *testing.T, fs types.FS, root string) []string {
	t.Helper()

	files := catalog.TargetFiles()
	for _, rel := range files {
		CreateFile(t, fs, root, rel, TemplateContent(rel))
	}
	return files
}

// TemplateContent returns the fixture content CreateTemplateTree writes
// for a given relative path.
func TemplateContent(rel string) string {
	return "# " + rel + "\n" +
		"project: {{PROJECT_NAME}}\n" +
		"description: {{PROJECT_DESCRIPTION}}\n" +
		"owner: {{GITHUB_OWNER}}\n" +
		"coverage: {{COVERAGE_THRESHOLD}}\n"
}
