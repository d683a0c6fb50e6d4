package main

import (
	"github.com/spf13/cobra"

	"github.com/currentlycrafting/survival/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default configuration",
	Long: `Prints the embedded default config as YAML. Save it to
~/.survival/configs/survival.yaml or ./configs/survival.yaml and edit it
to change the game.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
