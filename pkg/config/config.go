package config

// Well-known file names in the project root.
const (
	// ManifestFileName is the preferred project manifest name.
	ManifestFileName = ".imprint.toml"

	// AltManifestFileName is accepted when the hidden form is absent.
	AltManifestFileName = "imprint.toml"

	// ReceiptFileName is where resolved answers are recorded.
	ReceiptFileName = ".imprint-answers.toml"
)

// Config is the resolved run configuration.
type Config struct {
	// Answers presets variable values. A preset is shown as the
	// prompt default and taken verbatim in non-interactive runs.
	Answers map[string]string `koanf:"answers"`

	// Defaults overrides catalog default values. Unlike Answers these
	// are part of the template's identity, not of one run.
	Defaults map[string]string `koanf:"defaults"`

	// Steps holds the yes/no defaults for the optional steps.
	Steps StepsConfig `koanf:"steps"`

	// Receipt controls the answers receipt written after substitution.
	Receipt ReceiptConfig `koanf:"receipt"`

	// NonInteractive suppresses all prompting; every variable takes
	// its effective default and steps follow their configured values.
	NonInteractive bool `koanf:"noninteractive"`
}

// StepsConfig holds the defaults for the three optional steps.
type StepsConfig struct {
	GitInit      bool `koanf:"git"`
	InstallHooks bool `koanf:"hooks"`
	RemoveSelf   bool `koanf:"remove"`
}

// ReceiptConfig controls the answers receipt.
type ReceiptConfig struct {
	Write bool   `koanf:"write"`
	Path  string `koanf:"path"`
}

// Default returns the built-in configuration without consulting the
// filesystem or environment. It mirrors embedded/defaults.toml.
func Default() *Config {
	return &Config{
		Answers:  make(map[string]string),
		Defaults: make(map[string]string),
		Steps: StepsConfig{
			GitInit:      true,
			InstallHooks: true,
			RemoveSelf:   true,
		},
		Receipt: ReceiptConfig{
			Write: true,
			Path:  ReceiptFileName,
		},
	}
}
