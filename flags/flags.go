package flags

import (
	"github.com/smallstep/authtui/config"
	"github.com/urfave/cli"
)

// File is the global flag used to select the secrets file.
var File = cli.StringFlag{
	Name: "file, f",
	Usage: `The <path> to the secrets file, a text file with one otpauth:// URI per
line. Defaults to '$HOME/.auth-tui'.`,
}

// SecretsPath returns the secrets file selected with the global --file flag
// or the default one.
func SecretsPath(ctx *cli.Context) string {
	return config.SecretsPath(ctx.GlobalString("file"))
}
