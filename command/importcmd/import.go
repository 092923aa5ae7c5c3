package importcmd

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
		Name:      "import",
		Action:    cli.ActionFunc(importAction),
		Usage:     "import otpauth:// URIs from a text file",
		UsageText: "auth-tui [--file=<path>] import <path>",
		Description: `auth-tui import reads the otpauth:// URIs in <path>, one per line, and
appends the ones not already present to the secrets file. Lines not starting
with 'otpauth://' are ignored.

The reported count is the number of URIs read from <path>, including the ones
already in the secrets file.

POSITIONAL ARGUMENTS:
  <path>  The text file with the URIs to import.

EXAMPLES:
Import the URIs exported from another device:
  $ auth-tui import codes.txt
  Imported 3 entries`,
	}

	command.Register(cmd)
}

func importAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errs.MissingArguments(ctx, "path")
	}
	if err := errs.NumberOfArguments(ctx, 1); err != nil {
		return err
	}

	s := store.Load(flags.SecretsPath(ctx))
	incoming := store.Load(config.Abs(ctx.Args().First()))
	n := s.Import(incoming.Lines())
	if err := s.Save(); err != nil {
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "Imported %d entries\n", n)
	return nil
}
