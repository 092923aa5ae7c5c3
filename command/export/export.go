package export

import (
	"fmt"

	"github.com/smallstep/authtui/command"
	"github.com/smallstep/authtui/config"
	"github.com/smallstep/authtui/errs"
	"github.com/smallstep/authtui/flags"
	"github.com/smallstep/authtui/internal/store"
	"github.com/urfave/cli"
)

func init() {
	cmd := cli.Command{
		Name:      "export",
		Action:    cli.ActionFunc(exportAction),
		Usage:     "export otpauth:// URIs to a text file",
		UsageText: "auth-tui [--file=<path>] export <path>",
		Description: `auth-tui export writes the otpauth:// URIs of the secrets file to <path>,
one per line. If <path> exists it is overwritten.

POSITIONAL ARGUMENTS:
  <path>  The file to write the URIs to.

EXAMPLES:
Export the URIs to move them to another device:
  $ auth-tui export codes.txt
  Exported 3 entries to codes.txt`,
	}

	command.Register(cmd)
}

func exportAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errs.MissingArguments(ctx, "path")
	}
	if err := errs.NumberOfArguments(ctx, 1); err != nil {
		return err
	}

	path := ctx.Args().First()
	s := store.Load(flags.SecretsPath(ctx))
	n, err := s.Export(config.Abs(path))
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "Exported %d entries to %s\n", n, path)
	return nil
}
