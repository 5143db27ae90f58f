// Package config loads the optional sqlfmt.yaml project configuration and
// bridges it to formatting options.
//
// Every field is optional; a missing file or an empty document yields the
// same defaults the formatter ships with. Validation happens here so the
// format package never sees an invalid option.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/ttejas123/sql-formatter-cli/pkg/format"
	"gopkg.in/yaml.v3"
)

// Config represents the project configuration for SQL formatting.
type Config struct {
	// Indent is the number of spaces per indent level; must be non-negative
	Indent *int `yaml:"indent,omitempty"`

	// KeywordCase is one of "upper", "lower", or "keep"
	KeywordCase string `yaml:"keyword_case,omitempty"`

	// Keywords optionally replaces the built-in keyword set; order matters
	Keywords []string `yaml:"keywords,omitempty"`
}

// LoadConfig parses a formatter configuration from the provided io.Reader.
//
// The function expects YAML-formatted data. Values are validated here:
// a negative indent or an unrecognized keyword_case is a load error, so
// downstream consumers can trust the config without re-checking.
//
// Example:
//
//	yamlData := `
//	indent: 4
//	keyword_case: lower
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal formatter config")
	}

	if cfg.Indent != nil && *cfg.Indent < 0 {
		return nil, errors.Errorf("indent must be non-negative, got %d", *cfg.Indent)
	}

	switch format.KeywordCase(cfg.KeywordCase) {
	case "", format.KeywordCaseUpper, format.KeywordCaseLower, format.KeywordCaseKeep:
	default:
		return nil, errors.Errorf("invalid keyword_case: %q (want upper, lower, or keep)", cfg.KeywordCase)
	}

	return &cfg, nil
}

// LoadConfigFile loads a formatter configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// FormatOptions converts the configuration into formatting options, applying
// defaults for anything unset. A nil receiver yields DefaultOptions, so
// callers can pass the config through without nil checks.
func (c *Config) FormatOptions() *format.Options {
	opts := format.DefaultOptions()
	if c == nil {
		return opts
	}

	if c.Indent != nil {
		opts.IndentSize = *c.Indent
	}

	if c.KeywordCase != "" {
		opts.KeywordCase = format.KeywordCase(c.KeywordCase)
	}

	if len(c.Keywords) > 0 {
		keywords := make([]format.Keyword, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			keywords = append(keywords, format.Keyword(kw))
		}
		opts.Keywords = keywords
	}

	return opts
}
