// Package catalog defines the fixed set of template variables and the
// files they are substituted into. The set is part of the template
// contract and is not user-extensible.
package catalog

// Names of variables other packages need to single out.
const (
	VarProjectName = "PROJECT_NAME"
	VarSourceDir   = "SOURCE_DIR"
	VarTestDir     = "TEST_DIR"
)

// Template directory names that may be renamed to match the SOURCE_DIR
// and TEST_DIR answers.
const (
	SourceDirDefault = "src"
	TestDirDefault   = "tests"
)

// Definition describes a single template variable.
type Definition struct {
	Name        string `json:"name" yaml:"name"`
	Default     string `json:"default" yaml:"default"`
	Description string `json:"description" yaml:"description"`
}

// Values maps variable names to their resolved values. A complete set
// has one entry per catalog definition.
type Values map[string]string

// Catalog is an ordered set of variable definitions.
type Catalog struct {
	defs []Definition
}

// Default returns the built-in catalog.
// Order matters: substitution applies the definitions sequentially.
func Default() Catalog {
	return Catalog{defs: []Definition{
		{
			Name:        "PROJECT_NAME",
			Default:     "my-python-project",
			Description: "Project name (used for repository and package)",
		},
		{
			Name:        "PROJECT_DESCRIPTION",
			Default:     "A Python project",
			Description: "Short project description (one line)",
		},
		{
			Name:        "GITHUB_OWNER",
			Default:     "your-username",
			Description: "GitHub username or organization",
		},
		{
			Name:        "MIN_PYTHON_VERSION",
			Default:     "3.10",
			Description: "Minimum Python version supported",
		},
		{
			Name:        "PYTHON_VERSIONS",
			Default:     "3.10, 3.11, 3.12",
			Description: "Python versions for CI matrix (comma-separated)",
		},
		{
			Name:        "MAX_LINE_LENGTH",
			Default:     "127",
			Description: "Maximum line length for code",
		},
		{
			Name:        "MAX_COMPLEXITY",
			Default:     "10",
			Description: "Maximum cyclomatic complexity",
		},
		{
			Name:        "COVERAGE_THRESHOLD",
			Default:     "95",
			Description: "Minimum test coverage percentage",
		},
		{
			Name:        "SOURCE_DIR",
			Default:     "src",
			Description: "Source code directory name",
		},
		{
			Name:        "TEST_DIR",
			Default:     "tests",
			Description: "Test directory name",
		},
		{
			Name:        "MAIN_BRANCH",
			Default:     "main",
			Description: "Main branch name",
		},
		{
			Name:        "DEV_BRANCH",
			Default:     "develop",
			Description: "Development branch name",
		},
	}}
}

// TargetFiles returns the relative paths substitution runs over.
// Paths under src/ and tests/ are retried under the renamed directory
// when the original location no longer exists.
func TargetFiles() []string {
	return []string{
		// GitHub workflows and repo config
		".github/workflows/ci.yml",
		".github/workflows/claude.yml",
		".github/workflows/claude-code-review.yml",
		".github/dependabot.yml",

		// Tooling configuration
		".pre-commit-config.yaml",
		"pyproject.toml",
		".flake8",
		".pylintrc",

		// Documentation
		"CLAUDE.md",
		"README.md",
		"docs/INDEX.md",
		"docs/CI.md",
		"docs/SETUP.md",
		"docs/ARCHITECTURE.md",
		"docs/planning/TASK_MANAGEMENT.md",

		// Runtime configuration example
		"config/config.example.yaml",

		// Source and test skeletons
		"src/__init__.py",
		"src/main.py",
		"tests/__init__.py",
		"tests/conftest.py",
		"tests/test_main.py",
	}
}

// Definitions returns the definitions in catalog order.
func (c Catalog) Definitions() []Definition {
	defs := make([]Definition, len(c.defs))
	copy(defs, c.defs)
	return defs
}

// Names returns the variable names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.defs))
	for i, def := range c.defs {
		names[i] = def.Name
	}
	return names
}

// Len returns the number of definitions.
func (c Catalog) Len() int {
	return len(c.defs)
}

// Lookup returns the definition for name, if present.
func (c Catalog) Lookup(name string) (Definition, bool) {
	for _, def := range c.defs {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

// DefaultValues returns a complete value set built from the defaults.
func (c Catalog) DefaultValues() Values {
	values := make(Values, len(c.defs))
	for _, def := range c.defs {
		values[def.Name] = def.Default
	}
	return values
}

// WithDefaults returns a copy of the catalog with default values
// replaced by the given overrides. Names not in the catalog are
// ignored; the variable set itself never changes.
func (c Catalog) WithDefaults(overrides map[string]string) Catalog {
	defs := make([]Definition, len(c.defs))
	copy(defs, c.defs)
	for i := range defs {
		if v, ok := overrides[defs[i].Name]; ok {
			defs[i].Default = v
		}
	}
	return Catalog{defs: defs}
}
