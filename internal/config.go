package internal

import (
	"log/slog"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/compsman/internal/comps"
)

var indentRe = regexp.MustCompile(`^[ \t]+$`)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Output OutputConfig      `yaml:"output"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return nil
}

// OutputConfig controls how the merged metadata document is rendered.
type OutputConfig struct {
	DefaultExplicit     bool   `yaml:"default_explicit"`
	UserVisibleExplicit bool   `yaml:"uservisible_explicit"`
	EmptyGroups         bool   `yaml:"empty_groups"`
	Indent              string `yaml:"indent"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Indent, validation.Required, validation.Match(indentRe)),
	)
}

// EncodeOptions converts the output configuration into codec options.
func (c *OutputConfig) EncodeOptions() comps.EncodeOptions {
	return comps.EncodeOptions{
		DefaultExplicit:     c.DefaultExplicit,
		UserVisibleExplicit: c.UserVisibleExplicit,
		EmptyGroups:         c.EmptyGroups,
		Indent:              c.Indent,
	}
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Output: OutputConfig{
			DefaultExplicit:     true,
			UserVisibleExplicit: true,
			EmptyGroups:         true,
			Indent:              "  ",
		},
	}
}
