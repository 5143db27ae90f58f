package main

import (
	"context"
	"os"

	"github.com/ttejas123/sql-formatter-cli/pkg/cmd"
	"github.com/ttejas123/sql-formatter-cli/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Supply(
			fx.Annotate(context.Background(), fx.As(new(context.Context))),
			&cmd.Version{Version: version, Commit: commit, Timestamp: date},
		),
		fx.Provide(func() []string { return os.Args }),
		config.Module,
		cmd.Module,
	).Run()
}
