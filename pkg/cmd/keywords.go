package cmd

import (
	"context"
	"fmt"

	"github.com/ttejas123/sql-formatter-cli/pkg/format"
	"github.com/urfave/cli/v3"
)

// keywordsCmd creates a CLI command that prints the active keyword set, one
// entry per line, in evaluation order and in the casing the formatter would
// emit. This makes the effective configuration observable: a keyword set or
// casing override in sqlfmt.yaml shows up here exactly as formatting applies
// it.
//
// Example:
//
//	$ sqlfmt keywords | head -3
//	INSERT INTO
//	DELETE FROM
//	GROUP BY
func keywordsCmd(opts *format.Options) *cli.Command {
	return &cli.Command{
		Name:  "keywords",
		Usage: "Print the active keyword set in evaluation order",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			keywords := opts.Keywords
			if keywords == nil {
				keywords = format.DefaultKeywords
			}

			for _, kw := range keywords {
				if _, err := fmt.Fprintln(cmd.Writer, kw.Canonical(opts.KeywordCase)); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
