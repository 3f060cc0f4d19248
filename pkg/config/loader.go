package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/templatekit/imprint/pkg/errors"
	"github.com/templatekit/imprint/pkg/logging"
)

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// Root is the project root holding the optional manifest.
	Root string

	// AnswersFile is an optional flat TOML/YAML file of variable
	// values, loaded into the answers layer.
	AnswersFile string

	// Overrides are flag-derived values with the highest precedence.
	Overrides map[string]interface{}
}

// Load builds the run configuration from all layers, lowest
// precedence first: embedded defaults, project manifest, answers
// file, environment, flag overrides.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}

	if path, ok := findManifest(opts.Root); ok {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load manifest %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded project manifest")
	}

	if opts.AnswersFile != "" {
		if err := loadAnswersFile(k, opts.AnswersFile); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", opts.AnswersFile).Msg("Loaded answers file")
	}

	if err := k.Load(env.Provider("IMPRINT_", ".", envKeyTransform), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply flag overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.Answers == nil {
		cfg.Answers = make(map[string]string)
	}
	if cfg.Defaults == nil {
		cfg.Defaults = make(map[string]string)
	}

	return &cfg, nil
}

// findManifest locates the project manifest, preferring the hidden
// form.
func findManifest(root string) (string, bool) {
	for _, name := range []string{ManifestFileName, AltManifestFileName} {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// loadAnswersFile merges a flat NAME = "value" document into the
// answers layer. The parser is chosen by file extension.
func loadAnswersFile(k *koanf.Koanf, path string) error {
	parser, err := parserFor(path)
	if err != nil {
		return err
	}

	tempK := koanf.New(".")
	if err := tempK.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to load answers file %s", path)
	}

	answers := make(map[string]interface{})
	for key, val := range tempK.All() {
		answers[key] = val
	}

	return k.Load(confmap.Provider(map[string]interface{}{"answers": answers}, "."), nil)
}

// parserFor maps an answers file extension to a koanf parser.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput,
			"unsupported answers file format: %s", path)
	}
}

// envKeyTransform maps IMPRINT_* environment variables to config
// keys. Variable names under ANSWERS_ and DEFAULTS_ keep their
// canonical upper-case form.
func envKeyTransform(s string) string {
	s = strings.TrimPrefix(s, "IMPRINT_")
	if name, ok := strings.CutPrefix(s, "ANSWERS_"); ok {
		return "answers." + name
	}
	if name, ok := strings.CutPrefix(s, "DEFAULTS_"); ok {
		return "defaults." + name
	}
	return strings.ReplaceAll(strings.ToLower(s), "_", ".")
}
