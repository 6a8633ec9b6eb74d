package app

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const helpFlagName = "help"

func addHelpFlag(name string, fs *pflag.FlagSet) {
	fs.BoolP(helpFlagName, "h", false, fmt.Sprintf("Help for %s.", name))
}

func addHelpCommandFlag(usage string, fs *pflag.FlagSet) {
	fs.BoolP(helpFlagName, "h", false,
		fmt.Sprintf("Help for the %s command.", color.GreenString(strings.Split(usage, " ")[0])))
}

func helpCommand(name string) *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Help about any command.",
		Run: func(c *cobra.Command, args []string) {
			cmd, _, e := c.Root().Find(args)
			if cmd == nil || e != nil {
				c.Printf("Unknown help topic %#q\n", args)
				_ = c.Root().Usage()
			} else {
				cmd.InitDefaultHelpFlag()
				_ = cmd.Help()
			}
		},
	}
}
