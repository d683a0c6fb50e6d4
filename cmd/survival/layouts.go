package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/currentlycrafting/survival/internal/config"
	"github.com/currentlycrafting/survival/internal/registry"
	"github.com/currentlycrafting/survival/internal/survival"
)

var flagPreview bool

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List all map layouts",
	Long:  `Shows a list of all map layouts registered in the game.`,
	Args:  cobra.NoArgs,
	RunE:  runLayouts,
}

func init() {
	layoutsCmd.Flags().BoolVar(&flagPreview, "preview", false, "Draw each layout at the default map size")
}

func runLayouts(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	layouts := registry.List()

	if len(layouts) == 0 {
		fmt.Fprintln(out, "No layouts available.")
		return nil
	}

	fmt.Fprintln(out, "Available layouts:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range layouts {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	m := config.DefaultConfig().Map
	for _, l := range layouts {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, l.ID, l.Title)
		if !flagPreview {
			continue
		}
		m.Preset = l.ID
		grid, err := survival.BuildMap(m)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n    %d open tiles\n", grid.OpenTiles())
		for _, row := range strings.Split(grid.String(), "\n") {
			fmt.Fprintf(out, "    %s\n", row)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'survival play --layout <id>' to play on a layout.")
	return nil
}
