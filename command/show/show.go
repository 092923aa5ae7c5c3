package show

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/smallstep/authtui/errs"
	"github.com/smallstep/authtui/flags"
	"github.com/smallstep/authtui/internal/display"
	"github.com/smallstep/authtui/internal/store"
	"github.com/urfave/cli"
)

// NothingToShowMessage is printed when the secrets file has no entries.
const NothingToShowMessage = "No secrets found. Import some with: auth-tui import <file>"

// Action shows the table of codes of the secrets file and refreshes it every
// second until the process is terminated. It returns if there is nothing to
// show.
func Action(ctx *cli.Context) error {
	if err := errs.NumberOfArguments(ctx, 0); err != nil {
		return err
	}

	s := store.Load(flags.SecretsPath(ctx))
	loop := display.New(s.Lines(), display.NewTerminal(writer(ctx.App.Writer, os.Stdout)))
	err := loop.Run(context.Background())
	if errors.Is(err, display.ErrNothingToShow) {
		fmt.Fprintln(writer(ctx.App.ErrWriter, os.Stderr), NothingToShowMessage)
		return nil
	}
	return err
}

func writer(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
