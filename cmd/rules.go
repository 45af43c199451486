package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/thumbpouch/internal/render"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the rules and the game commands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := applyFlags(cmd, cfg); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		renderer := render.New(renderOptions(cfg, out))
		renderer.Rules(out)
		renderer.Menu(out)
		return nil
	},
}
