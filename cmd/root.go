package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "thumbpouch",
	Short: "Play Thumb and Pouch solitaire in the terminal",
	Long: `Thumb and Pouch is a Klondike solitaire where a card may be laid on any
card one rank higher that is not of its own suit.

Running thumbpouch without a subcommand starts a new game.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.String("config", "", "Path to the config file (default $XDG_CONFIG_HOME/thumbpouch/config.toml)")
	flags.Uint64("seed", 0, "Seed for the shuffle; 0 picks a random deal")
	flags.String("color", "", "Colour output: auto, always or never")
	flags.Bool("ascii", false, "Draw suits as c d h s instead of symbols")
	flags.String("log-level", "", "Log level: debug, info, warn or error")

	RootCmd.AddCommand(playCmd)
	RootCmd.AddCommand(rulesCmd)
	RootCmd.AddCommand(configCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
