// Package cmd provides CLI commands for the sqlfmt tool.
//
// This package implements the command-line interface for sqlfmt, wiring the
// formatting core to files, directories, literal arguments, and stdin. Each
// command is implemented as a separate function returning a *cli.Command,
// following the urfave/cli/v3 pattern, and registered through an fx module
// so the config-derived formatting options are injected rather than read
// from globals.
//
// # Available Commands
//
//   - fmt: format SQL from a literal string, a file, a directory tree, or
//     standard input, with optional in-place rewriting (-w) and a CI check
//     mode (--check)
//   - keywords: print the active keyword set in evaluation order
//
// # Global Options
//
// All commands support:
//   - --help, -h: Display command help
//   - --version: Display version information
//
// # Example Usage
//
//	sqlfmt fmt "select id from users;"        # Format a literal query
//	sqlfmt fmt query.sql                      # Format a file to stdout
//	sqlfmt fmt -w db/                         # Rewrite a directory tree
//	sqlfmt fmt --check db/                    # Fail if anything is unformatted
//	sqlfmt fmt --indent 4 --keyword-case keep # Override configured options
//	sqlfmt keywords                           # Show the active keyword set
//
// Formatting itself never fails; every error surfaced by these commands is
// an input, flag, or file I/O problem, reported with a non-zero exit.
package cmd
