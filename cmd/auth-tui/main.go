package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/smallstep/authtui/command"
	"github.com/smallstep/authtui/command/show"
	"github.com/smallstep/authtui/config"
	"github.com/smallstep/authtui/flags"
	"github.com/urfave/cli"

	// Enabled commands
	_ "github.com/smallstep/authtui/command/export"
	_ "github.com/smallstep/authtui/command/importcmd"
	_ "github.com/smallstep/authtui/command/version"
)

// Version is set by an LDFLAG at build time representing the git tag or commit
// for the current release
var Version = "N/A"

// BuildTime is set by an LDFLAG at build time representing the timestamp at
// the time of build
var BuildTime = "N/A"

// debugEnv enables the printing of the stack traces of errors and panics.
const debugEnv = "AUTHTUIDEBUG"

func init() {
	config.Set("auth-tui", Version, BuildTime)
}

func main() {
	defer panicHandler()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		if os.Getenv(debugEnv) == "1" {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	// Configure cli app
	app := cli.NewApp()
	app.Name = "auth-tui"
	app.HelpName = "auth-tui"
	app.Usage = "simple TOTP authenticator"
	app.UsageText = "auth-tui [--file=<path>] [command] [arguments]"
	app.Description = `Without a command auth-tui shows the one-time codes of every otpauth:// URI
in the secrets file and refreshes them every second until it is interrupted.`
	app.Version = config.Version()
	app.Commands = command.Retrieve()
	app.Flags = command.GlobalFlags(flags.File)
	app.Action = cli.ActionFunc(show.Action)

	// All non-successful output should be written to stderr
	app.Writer = stdout
	app.ErrWriter = stderr

	return app
}

func panicHandler() {
	if r := recover(); r != nil {
		if os.Getenv(debugEnv) == "1" {
			fmt.Fprintf(os.Stderr, "%s\n", config.Version())
			fmt.Fprintf(os.Stderr, "Release Date: %s\n\n", config.ReleaseDate())
			panic(r)
		} else {
			fmt.Fprintln(os.Stderr, "Something unexpected happened.")
			fmt.Fprintln(os.Stderr, "If you want to help us debug the problem, please run:")
			fmt.Fprintf(os.Stderr, "%s=1 %s\n", debugEnv, strings.Join(os.Args, " "))
			os.Exit(2)
		}
	}
}
