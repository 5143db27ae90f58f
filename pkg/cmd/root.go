package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the main sqlfmt CLI application with the given
// version and command-line arguments. This function serves as the main entry
// point for all CLI operations.
//
// The application is assembled from fx-provided commands and runs inside the
// fx lifecycle: the process exit code is 1 when a command fails and 0
// otherwise, reported through the fx Shutdowner.
//
// Global Flags:
//   - --dir, -d: working directory for the invocation (defaults to the
//     current directory); relative path arguments resolve against it
//
// Example usage:
//
//	# Format a file
//	sqlfmt fmt query.sql
//
//	# Format every SQL file in a project from elsewhere
//	sqlfmt --dir /path/to/project fmt db/
//
//	# Format a literal query with lowercase keywords
//	sqlfmt fmt --keyword-case lower "select 1"
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "sqlfmt",
		Usage: "A rule-based SQL text formatter",
		Description: `sqlfmt is a CLI tool that re-cases recognized SQL keywords and re-lays-out
query text with newlines and indentation. It is a single-pass lexical
transformer: no parsing, no dialect awareness, and no failure modes for any
string input.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "the working directory",
				Value:       ".",
				DefaultText: "Current directory",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			dir := cmd.String("dir")
			if err := os.Chdir(dir); err != nil {
				return ctx, errors.Wrapf(err, "failed to change to directory: %s", dir)
			}

			return ctx, nil
		},
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}
