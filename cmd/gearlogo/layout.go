package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gearlogo/internal/core"
	"github.com/vovakirdan/gearlogo/internal/layout"
)

var flagLayoutFormat string

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show element placements and warnings",
	Long: `Compose the logo and print where every element starts, how big it is and
how far it travels during the animation. Advisory warnings flag elements
that never appear on the canvas, racks whose pitch does not match the gear
and an epicyclic gear drawn over the rack.

Formats:
  text - aligned table (default)
  yaml - machine-readable document

Examples:
  gearlogo layout
  gearlogo layout --format yaml
  gearlogo layout --preset meshed`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().StringVar(&flagLayoutFormat, "format", "text", "Output format: text, yaml")
}

func runLayout(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	scene, err := layout.Compose(cfg)
	if err != nil {
		return err
	}
	logger.Debug("composed layout", "elements", len(scene.Elements), "warnings", len(scene.Warnings()))
	return writeLayout(cmd.OutOrStdout(), scene, flagLayoutFormat)
}

// layoutDocument is the YAML shape of a composed scene.
type layoutDocument struct {
	Canvas   canvasDocument       `yaml:"canvas"`
	Elements []layout.Placement   `yaml:"elements"`
	Measures []layout.Measurement `yaml:"measurements"`
	Warnings []string             `yaml:"warnings,omitempty"`
}

type canvasDocument struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func writeLayout(w io.Writer, scene layout.Scene, format string) error {
	switch format {
	case "yaml":
		doc := layoutDocument{
			Canvas:   canvasDocument{Width: scene.Canvas.Width(), Height: scene.Canvas.Height()},
			Elements: scene.Elements,
			Measures: scene.Geometry.Measurements(),
		}
		for _, warn := range scene.Warnings() {
			doc.Warnings = append(doc.Warnings, warn.String())
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode layout: %w", err)
		}
		return enc.Close()

	case "text":
		fmt.Fprintf(w, "Canvas %.0fx%.0f\n\n", scene.Canvas.Width(), scene.Canvas.Height())
		fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-12s %-22s %-18s %-8s %s", "Element", "Position", "Size", "Opacity", "Travel")))
		for _, p := range scene.Elements {
			travel := "-"
			if p.Travel != (core.Vec{}) {
				travel = fmt.Sprintf("(%.2f, %.2f)", p.Travel.X, p.Travel.Y)
			}
			fmt.Fprintf(w, "%-12s %-22s %-18s %-8.1f %s\n",
				p.ID,
				fmt.Sprintf("(%.4f, %.4f)", p.Position.X, p.Position.Y),
				fmt.Sprintf("%.2f x %.2f", p.Size.X, p.Size.Y),
				p.Opacity,
				travel,
			)
		}
		if ws := scene.Warnings(); len(ws) > 0 {
			fmt.Fprintln(w)
			for _, warn := range ws {
				fmt.Fprintln(w, warningStyle.Render("warning: "+warn.String()))
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", format)
	}
}
