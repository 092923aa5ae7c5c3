package version

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/smallstep/authtui/command"
	"github.com/smallstep/authtui/config"
)

func init() {
	cmd := cli.Command{
		Name:   "version",
		Usage:  "display the current version of the cli",
		Action: Command,
	}

	command.Register(cmd)
}

// Command prints out the current version of the tool
func Command(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", config.Version())
	fmt.Fprintf(c.App.Writer, "Release Date: %s\n", config.ReleaseDate())
	return nil
}
