package testutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand executes a command's action with test context, returning
// whatever it wrote to its output along with its error. The command under
// test is flattened into the test app so the buffer is always the writer the
// action sees.
func RunCommand(t *testing.T, command *cli.Command, args []string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Writer: &buf,
	}

	err := app.Run(context.Background(), append([]string{"test"}, args...))
	return buf.String(), err
}
