// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/mat-calc/internal/matcalc"
	"github.com/iwvelando/mat-calc/pkg/constants"
	"github.com/iwvelando/mat-calc/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mat-calc.
type Configuration struct {
	Logging     LoggingConfig     `yaml:"logging,omitempty"`
	Output      OutputConfig      `yaml:"output,omitempty"`
	Calculation CalculationConfig `yaml:"calculation,omitempty"`
	Presets     map[string]Preset `yaml:"presets,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// CalculationConfig holds defaults applied to every calculation.
type CalculationConfig struct {
	Style string `yaml:"style,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Values may be overridden by MATCALC_* environment
// variables, e.g. MATCALC_OUTPUT_FORMAT=csv.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}

	return decode(v)
}

// Default returns the configuration used when no config file exists, with
// environment overrides applied.
func Default() (*Configuration, error) {
	return decode(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys must be known to viper for environment overrides to reach Unmarshal.
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("calculation.style", constants.DefaultStyle)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if style := c.Calculation.Style; style != "" && !matcalc.Style(style).Known() {
		warnings = append(warnings, "calculation: "+validation.StyleWarning(style, matcalc.StyleNames()))
	}

	for _, name := range PresetNames(c.Presets) {
		preset := c.Presets[name]
		result := matcalc.CalculateRect(preset.Frame, preset.Photo, constants.DefaultStyle)
		switch {
		case result.Error == matcalc.PhotoTooLarge:
			warnings = append(warnings, fmt.Sprintf("preset %q: photo %gx%g does not fit inside frame %gx%g",
				name, preset.Photo.Width, preset.Photo.Height, preset.Frame.Width, preset.Frame.Height))
		case result.IsEmpty():
			warnings = append(warnings, fmt.Sprintf("preset %q: all dimensions must be positive", name))
		}
	}

	return warnings
}
