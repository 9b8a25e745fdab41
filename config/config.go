package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"
)

const (
	// Environment variables consulted by ApplyEnvironment and Path.
	EnvConfigPath = "PRINT_ELF_CONFIG"
	EnvFormat     = "PRINT_ELF_FORMAT"
	EnvNoColor    = "NO_COLOR"

	DefaultDisassembleCount = 5
)

type Format string

const (
	FormatText = Format("text")
	FormatYAML = Format("yaml")
)

func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatText, FormatYAML:
		return Format(value), nil
	default:
		return "", fmt.Errorf("invalid output format (%s)", value)
	}
}

type Sections struct {
	Header   bool `yaml:"header"`
	Segments bool `yaml:"segments"`
	Sections bool `yaml:"sections"`
}

type Config struct {
	// When false, output contains no terminal escape sequences.
	Colors bool `yaml:"colors"`

	Format Format `yaml:"format"`

	// Which parts of the file to print.
	Show Sections `yaml:"show"`

	// Number of instructions to disassemble at the entry point.  Zero
	// disables disassembly.
	DisassembleCount int `yaml:"disassemble_count"`

	IgnoreMagic bool `yaml:"ignore_magic"`

	Verbosity int `yaml:"verbosity"`
}

func Default() Config {
	return Config{
		Colors: true,
		Format: FormatText,
		Show: Sections{
			Header:   true,
			Segments: true,
			Sections: true,
		},
	}
}

// Environment looks up a variable, returning "" when it is unset.
type Environment func(name string) string

func SystemEnvironment(name string) string {
	return env.Str(name)
}

// Path returns the config file path.  An explicit path takes precedence
// over $PRINT_ELF_CONFIG.  An empty result means no config file.
func Path(explicit string, environ Environment) string {
	if explicit != "" {
		return explicit
	}
	return environ(EnvConfigPath)
}

func Load(path string) (Config, error) {
	return LoadWithEnvironment(path, SystemEnvironment)
}

// LoadWithEnvironment returns the default config overlaid with the yaml file
// at path (if path is non-empty), followed by environment overrides.
func LoadWithEnvironment(path string, environ Environment) (Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}

		cfg, err = Parse(content)
		if err != nil {
			return Config{}, fmt.Errorf(
				"failed to parse config file (%s): %w",
				path,
				err)
		}
	}

	err := cfg.ApplyEnvironment(environ)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Parse decodes yaml content on top of the default config.  Unknown fields are
// rejected.
func Parse(content []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(content)) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)

	err := decoder.Decode(&cfg)
	if err != nil {
		return Config{}, err
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg *Config) ApplyEnvironment(environ Environment) error {
	if environ(EnvNoColor) != "" {
		cfg.Colors = false
	}

	format := environ(EnvFormat)
	if format != "" {
		parsed, err := ParseFormat(format)
		if err != nil {
			return fmt.Errorf("invalid $%s: %w", EnvFormat, err)
		}
		cfg.Format = parsed
	}

	return nil
}

func (cfg Config) Validate() error {
	_, err := ParseFormat(string(cfg.Format))
	if err != nil {
		return err
	}

	if cfg.DisassembleCount < 0 {
		return fmt.Errorf(
			"invalid disassemble count (%d)",
			cfg.DisassembleCount)
	}

	if cfg.Verbosity < 0 {
		return fmt.Errorf("invalid verbosity (%d)", cfg.Verbosity)
	}

	return nil
}

func (cfg Config) Marshal() ([]byte, error) {
	return yaml.Marshal(cfg)
}
