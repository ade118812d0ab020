package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/eriklarko/logic-circuit-simulator/src/truthtable"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the config file is looked for when no --config flag is
// given. A missing file there is fine, the defaults are used.
const DefaultPath = ".logic-circuit.yaml"

type Config struct {
	// text, csv or yaml
	OutputFormat string `yaml:"output-format"`

	// how many rows of the truth table to evaluate at once; 0 evaluates them
	// one after the other
	Workers int `yaml:"workers"`

	// print the circuit diagram after the truth table when not running
	// interactively
	ShowDiagram bool `yaml:"show-diagram"`

	// print whether the expression is a tautology, a contradiction or
	// neither, along with its canonical DNF
	ShowSummary bool `yaml:"show-summary"`

	Path string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		OutputFormat: string(truthtable.FormatText),
		Path:         DefaultPath,
	}
}

// LoadConfig reads the config file at the given path. Keys missing from the
// file keep their default values. If the file doesn't exist the returned error
// satisfies errors.Is(err, fs.ErrNotExist).
func LoadConfig(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// this isn't an error enough to stop execution. It's just to make it
		// easier for the user to find the file. Best effort.
		absPath = path
	}

	contents, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", absPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(contents, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", absPath, err)
	}
	config.Path = path

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", absPath, err)
	}

	slog.Debug("Loaded config", "path", absPath, "output_format", config.OutputFormat, "workers", config.Workers)
	return config, nil
}

func (c *Config) Validate() error {
	if _, err := truthtable.ParseFormat(c.OutputFormat); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// Format returns the parsed output format. Call Validate first; an invalid
// format falls back to text.
func (c *Config) Format() truthtable.Format {
	format, err := truthtable.ParseFormat(c.OutputFormat)
	if err != nil {
		return truthtable.FormatText
	}
	return format
}

// Write stores the config as yaml at c.Path
func (c *Config) Write() error {
	contents, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.Path, contents, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.Path, err)
	}

	return nil
}
