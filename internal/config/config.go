// Package config loads the YAML configuration file of the autolink command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"pkt.systems/autolink"
)

// Output formats understood by the command.
const (
	FormatList     = "list"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatANSI     = "ansi"
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Formats lists the valid output formats.
var Formats = []string{FormatList, FormatJSON, FormatYAML, FormatANSI, FormatHTML, FormatMarkdown}

// Config represents the configuration file.
type Config struct {
	Kinds  []string     `yaml:"kinds,omitempty"`
	Email  EmailConfig  `yaml:"email"`
	Output OutputConfig `yaml:"output"`
}

// EmailConfig holds the email scanner settings.
type EmailConfig struct {
	DomainMustHaveDot *bool  `yaml:"domain_must_have_dot,omitempty"`
	LocalPart         string `yaml:"local_part,omitempty"`
}

// OutputConfig holds output defaults.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"`
	Theme  string `yaml:"theme,omitempty"`
	Width  *int   `yaml:"width,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	dot := true
	width := 0
	return &Config{
		Kinds: []string{"url", "www", "email"},
		Email: EmailConfig{DomainMustHaveDot: &dot, LocalPart: autolink.LocalPartLax.String()},
		Output: OutputConfig{
			Format: FormatList,
			Theme:  "default",
			Width:  &width,
		},
	}
}

// Load reads and validates the configuration file at path. Environment variables in
// the file are expanded. Fields missing from the file take their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(bytes.NewReader([]byte(os.ExpandEnv(string(data)))))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a configuration document from r. Unknown fields are rejected.
func Parse(r io.Reader) (*Config, error) {
	var file Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg := Default()
	cfg.merge(&file)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.Kinds != nil {
		c.Kinds = o.Kinds
	}
	if o.Email.DomainMustHaveDot != nil {
		c.Email.DomainMustHaveDot = o.Email.DomainMustHaveDot
	}
	if o.Email.LocalPart != "" {
		c.Email.LocalPart = o.Email.LocalPart
	}
	if o.Output.Format != "" {
		c.Output.Format = o.Output.Format
	}
	if o.Output.Theme != "" {
		c.Output.Theme = o.Output.Theme
	}
	if o.Output.Width != nil {
		c.Output.Width = o.Output.Width
	}
}

// Validate checks kind names, the local-part mode, the output format and the theme.
func (c *Config) Validate() error {
	if len(c.Kinds) == 0 {
		return fmt.Errorf("kinds: at least one link kind is required")
	}
	if _, err := c.LinkKinds(); err != nil {
		return err
	}
	if _, ok := autolink.ParseLocalPartMode(c.Email.LocalPart); !ok {
		return fmt.Errorf("email.local_part: unknown mode %q (expected lax|strict)", c.Email.LocalPart)
	}
	if !ValidFormat(c.Output.Format) {
		return fmt.Errorf("output.format: unknown format %q (expected %s)", c.Output.Format, strings.Join(Formats, "|"))
	}
	if _, ok := autolink.ThemeByName(c.Output.Theme); !ok {
		return fmt.Errorf("output.theme: unknown theme %q", c.Output.Theme)
	}
	return nil
}

// LinkKinds parses the configured kind names.
func (c *Config) LinkKinds() ([]autolink.LinkKind, error) {
	kinds := make([]autolink.LinkKind, 0, len(c.Kinds))
	for _, name := range c.Kinds {
		kind, err := autolink.ParseLinkKind(name)
		if err != nil {
			return nil, fmt.Errorf("kinds: %w", err)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// Options converts the configuration into extractor options.
func (c *Config) Options() ([]autolink.Option, error) {
	kinds, err := c.LinkKinds()
	if err != nil {
		return nil, err
	}
	mode, ok := autolink.ParseLocalPartMode(c.Email.LocalPart)
	if !ok {
		return nil, fmt.Errorf("email.local_part: unknown mode %q", c.Email.LocalPart)
	}
	dot := true
	if c.Email.DomainMustHaveDot != nil {
		dot = *c.Email.DomainMustHaveDot
	}
	return []autolink.Option{
		autolink.WithKinds(kinds...),
		autolink.WithEmailDomainMustHaveDot(dot),
		autolink.WithEmailLocalPart(mode),
	}, nil
}

// Width returns the configured output width.
func (c *Config) Width() int {
	if c.Output.Width == nil {
		return 0
	}
	return *c.Output.Width
}

// ValidFormat reports whether name is a known output format.
func ValidFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}
