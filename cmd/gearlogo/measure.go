package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gearlogo/internal/layout"
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Show derived gear and rack quantities",
	Long: `Print the addendum circle radius, outside diameter and tooth pitch of the
logo gear, the pitch of the rack and how far the two pitches disagree.
With the epicyclic gear enabled, also its centre distance and orbit offset.

Examples:
  gearlogo measure
  gearlogo measure --rack-teeth 36
  gearlogo measure --preset epicyclic --correction 0`,
	Args: cobra.NoArgs,
	RunE: runMeasure,
}

func runMeasure(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	scene, err := layout.Compose(cfg)
	if err != nil {
		return err
	}
	writeMeasurements(cmd.OutOrStdout(), scene.Geometry)
	return nil
}

func writeMeasurements(w io.Writer, g layout.Geometry) {
	ms := g.Measurements()

	maxNameLen := len("Quantity")
	for _, m := range ms {
		maxNameLen = max(maxNameLen, len(m.Name))
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-*s  %s", maxNameLen, "Quantity", "Value")))
	for _, m := range ms {
		fmt.Fprintf(w, "%-*s  %s\n", maxNameLen, m.Name, m.FormatValue())
	}
}
