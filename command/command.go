package command

import (
	"strings"

	"github.com/urfave/cli"
)

// EnvPrefix is the prefix of the environment variables that can be used
// instead of flags.
const EnvPrefix = "AUTHTUI_"

var cmds []cli.Command

// Register adds the given command to the global list of commands.
// It sets the command Flags environment variables.
func Register(c cli.Command) {
	setEnvVar(&c)
	cmds = append(cmds, c)
}

// Retrieve returns all commands
func Retrieve() []cli.Command {
	return cmds
}

// GlobalFlags returns the given application flags with their environment
// variables set.
func GlobalFlags(flags ...cli.Flag) []cli.Flag {
	c := cli.Command{Flags: flags}
	setEnvVar(&c)
	return c.Flags
}

// getEnvVar generates the environment variable for the given flag name.
func getEnvVar(name string) string {
	parts := strings.Split(name, ",")
	name = strings.TrimSpace(parts[0])
	name = strings.ReplaceAll(name, "-", "_")
	return EnvPrefix + strings.ToUpper(name)
}

// setEnvVar sets the EnvVar element of each string flag.
func setEnvVar(c *cli.Command) {
	for i := range c.Flags {
		if f, ok := c.Flags[i].(cli.StringFlag); ok && f.EnvVar == "" {
			f.EnvVar = getEnvVar(f.GetName())
			c.Flags[i] = f
		}
	}
}
