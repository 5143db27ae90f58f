package config

import (
	"os"

	"github.com/ttejas123/sql-formatter-cli/pkg/consts"
	"github.com/ttejas123/sql-formatter-cli/pkg/format"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Function attempts to load the configuration from sqlfmt.yaml if it
	// exists. Returns nil if the file doesn't exist, so commands work without
	// a config file present.
	func() (*Config, error) {
		if _, err := os.Stat(consts.ConfigFile); os.IsNotExist(err) {
			return nil, nil
		}

		return LoadConfigFile(consts.ConfigFile)
	},
	func(c *Config) *format.Options {
		return c.FormatOptions()
	},
	func(opts *format.Options) *format.Formatter {
		return format.New(opts)
	},
))
