package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gearlogo/internal/core"
	"github.com/vovakirdan/gearlogo/internal/platform/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Explore the layout interactively",
	Long: `Open a terminal inspector showing the measurements, placements and a
sketch of the layout. Every key press recomposes the logo; an edit that
breaks a gear invariant is reported and the last valid layout stays.

Controls:
  [ / ]         - Fewer / more logo gear teeth
  - / =         - Fewer / more rack teeth
  Left / Right  - Turn the epicyclic orbit
  Down / Up     - Less / more centre distance correction
  E             - Toggle the epicyclic gear
  P             - Play / pause the timeline
  R             - Reset
  Q/Ctrl+C      - Quit

Examples:
  gearlogo inspect
  gearlogo inspect --preset epicyclic`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	return tui.Run(cfg, rt)
}
