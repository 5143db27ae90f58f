package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/ttejas123/sql-formatter-cli/pkg/consts"
	"github.com/ttejas123/sql-formatter-cli/pkg/format"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// fmtMode selects what happens with a file's formatted content.
type fmtMode int

const (
	// modePrint writes formatted output to the command writer
	modePrint fmtMode = iota

	// modeWrite rewrites source files in place
	modeWrite

	// modeCheck reports files whose content would change, without writing
	modeCheck
)

// fmtCmd creates the CLI command for formatting SQL text. This provides
// goimports-like behavior over files and directories, plus direct formatting
// of a literal query or piped stdin.
//
// Input resolution, exactly one source per invocation:
//   - no argument or "-": read standard input to end-of-stream (refused when
//     stdin is an interactive terminal)
//   - an argument naming an existing file: format that file
//   - an argument naming an existing directory: format every .sql file under
//     it, recursively, in lexicographical order
//   - any other argument: treat the argument itself as the SQL text
//
// Flags:
//   - --indent: spaces per indent level (non-negative integer)
//   - --keyword-case: upper, lower, or keep
//   - -w: write formatted results back to source files instead of stdout
//   - --check: list files that would be reformatted and exit non-zero
//
// Defaults for --indent and --keyword-case come from sqlfmt.yaml when
// present. The formatter itself never fails; every error this command can
// return is an input, flag, or file I/O problem.
//
// Examples:
//
//	# Format a literal query
//	sqlfmt fmt "select id from users;"
//
//	# Format a file to stdout
//	sqlfmt fmt query.sql
//
//	# Rewrite all SQL files under db/ in place
//	sqlfmt fmt -w db/
//
//	# CI gate: fail when anything is unformatted
//	sqlfmt fmt --check db/
//
//	# Read from stdin
//	cat query.sql | sqlfmt fmt
func fmtCmd(opts *format.Options, configured *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL from a string, file, directory, or stdin",
		ArgsUsage: "[sql | path | -]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "indent",
				Aliases: []string{"i"},
				Usage:   "number of spaces per indent level",
				Value:   strconv.Itoa(opts.IndentSize),
			},
			&cli.StringFlag{
				Name:    "keyword-case",
				Aliases: []string{"k"},
				Usage:   "keyword casing: upper, lower, or keep",
				Value:   string(opts.KeywordCase),
			},
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Don't write; report files whose formatting would change",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			formatter, err := buildFormatter(opts, configured, cmd)
			if err != nil {
				return err
			}

			mode := modePrint
			switch {
			case cmd.Bool("write") && cmd.Bool("check"):
				return errors.New("--write and --check are mutually exclusive")
			case cmd.Bool("write"):
				mode = modeWrite
			case cmd.Bool("check"):
				mode = modeCheck
			}

			if cmd.Args().Len() > 1 {
				return errors.New("at most one argument is accepted")
			}

			arg := cmd.Args().First()
			if arg == "" || arg == "-" {
				if mode != modePrint {
					return errors.New("--write and --check require a file or directory argument")
				}

				return formatStdin(formatter, cmd.Writer)
			}

			if _, err := os.Stat(arg); err != nil {
				if !os.IsNotExist(err) {
					return errors.Wrapf(err, "failed to access path: %s", arg)
				}

				// Not a path on disk, so the argument is the SQL text itself.
				if mode != modePrint {
					return errors.New("--write and --check require a file or directory argument")
				}

				_, err := fmt.Fprintln(cmd.Writer, formatter.Format(arg))
				return err
			}

			return formatPath(formatter, arg, mode, cmd.Writer)
		},
	}
}

// formatStdin reads standard input to end-of-stream and writes the formatted
// result. An interactive terminal on stdin is refused rather than blocking
// forever waiting for input that is not coming.
func formatStdin(f *format.Formatter, writer io.Writer) error {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("no SQL provided: pass a query, a path, or pipe input to stdin")
	}

	sql, err := io.ReadAll(os.Stdin)
	if err != nil {
		return errors.Wrap(err, "failed to read stdin")
	}

	_, err = fmt.Fprintln(writer, f.Format(string(sql)))
	return err
}

// formatPath handles formatting of either a single file or directory
// recursively. In check mode it returns an error when anything would change,
// so the process exits non-zero.
func formatPath(f *format.Formatter, path string, mode fmtMode, writer io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	var changed int
	if info.IsDir() {
		changed, err = formatDirectory(f, path, mode, writer)
	} else {
		var ch bool
		ch, err = formatFile(f, path, mode, writer)
		if ch {
			changed = 1
		}
	}

	if err != nil {
		return err
	}

	if mode == modeCheck && changed > 0 {
		return errors.Errorf("%d file(s) would be reformatted", changed)
	}

	return nil
}

// formatDirectory recursively walks through a directory and formats all .sql
// files. Files are processed in lexicographical order for consistent behavior
// across platforms.
func formatDirectory(f *format.Formatter, dir string, mode fmtMode, writer io.Writer) (int, error) {
	var sqlFiles []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			sqlFiles = append(sqlFiles, path)
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(sqlFiles) == 0 {
		return 0, errors.Errorf("no SQL files found in directory: %s", dir)
	}

	var changed int
	for _, sqlFile := range sqlFiles {
		ch, err := formatFile(f, sqlFile, mode, writer)
		if err != nil {
			return changed, errors.Wrapf(err, "failed to format file: %s", sqlFile)
		}

		if ch {
			changed++
		}
	}

	return changed, nil
}

// formatFile formats a single SQL file and prints, rewrites, or reports it
// depending on mode. The returned bool says whether the formatted content
// differs from what is on disk.
func formatFile(f *format.Formatter, path string, mode fmtMode, writer io.Writer) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read file: %s", path)
	}

	formatted := f.Format(string(content)) + "\n"
	changed := formatted != string(content)

	switch mode {
	case modeWrite:
		if !changed {
			return false, nil
		}

		if err := os.WriteFile(path, []byte(formatted), consts.ModeFile); err != nil {
			return true, errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
	case modeCheck:
		if changed {
			if _, err := color.New(color.FgYellow).Fprintf(writer, "would reformat %s\n", path); err != nil {
				return true, err
			}
		}
	default:
		if _, err := fmt.Fprint(writer, formatted); err != nil {
			return changed, errors.Wrap(err, "failed to write formatted content to output")
		}
	}

	return changed, nil
}

// buildFormatter validates the formatting flags and picks the formatter for
// this invocation: the configured one when the flags carry its values, or a
// fresh one when a flag overrides indent or casing. The configured keyword
// set always carries over.
func buildFormatter(opts *format.Options, configured *format.Formatter, cmd *cli.Command) (*format.Formatter, error) {
	indent, err := strconv.Atoi(cmd.String("indent"))
	if err != nil {
		return nil, errors.Errorf("invalid --indent value: %q (must be an integer)", cmd.String("indent"))
	}

	if indent < 0 {
		return nil, errors.Errorf("--indent must be non-negative, got %d", indent)
	}

	kwCase := format.KeywordCase(cmd.String("keyword-case"))
	switch kwCase {
	case format.KeywordCaseUpper, format.KeywordCaseLower, format.KeywordCaseKeep:
	default:
		return nil, errors.Errorf("invalid --keyword-case: %q (want upper, lower, or keep)", kwCase)
	}

	if indent == opts.IndentSize && kwCase == opts.KeywordCase {
		return configured, nil
	}

	return format.New(&format.Options{
		IndentSize:  indent,
		KeywordCase: kwCase,
		Keywords:    opts.Keywords,
	}), nil
}
