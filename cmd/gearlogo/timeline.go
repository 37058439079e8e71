package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gearlogo/internal/layout"
	"github.com/vovakirdan/gearlogo/internal/timeline"
)

var flagTimelineAt time.Duration

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the animation cues",
	Long: `Build the logo animation and print its cues in start order: which
element changes which property, when, for how long and along which curve.

With --at, only the cues running at that instant are printed.

Examples:
  gearlogo timeline
  gearlogo timeline --at 1.5s
  gearlogo timeline --preset epicyclic`,
	Args: cobra.NoArgs,
	RunE: runTimeline,
}

func init() {
	timelineCmd.Flags().DurationVar(&flagTimelineAt, "at", 0, "Only show cues active at this instant (e.g. 1.5s)")
}

func runTimeline(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	scene, err := layout.Compose(cfg)
	if err != nil {
		return err
	}
	tl, err := timeline.Build(cfg, scene)
	if err != nil {
		return err
	}

	cues := tl.Cues()
	if cmd.Flags().Changed("at") {
		cues = tl.ActiveAt(flagTimelineAt)
	}
	writeCues(cmd.OutOrStdout(), cues, tl.End())
	return nil
}

func writeCues(w io.Writer, cues []timeline.Cue, end time.Duration) {
	if len(cues) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No cues."))
		return
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-8s %-8s %-12s %-12s %-14s %s", "Start", "End", "Element", "Property", "Curve", "Target")))
	for _, c := range cues {
		target := fmt.Sprintf("%g", c.Value)
		if c.Property == timeline.Translation {
			target = fmt.Sprintf("by (%g, %g)", c.Offset.X, c.Offset.Y)
		}
		fmt.Fprintf(w, "%-8v %-8v %-12s %-12s %-14s %s\n", c.Start, c.End(), c.Element, c.Property, c.Curve, target)
	}
	fmt.Fprintf(w, "\nTotal %v\n", end)
}
