// gearlogo composes the animated gear-and-rack logo: it measures the gears,
// lays the sprites out on the canvas and lists the animation cues.
//
// Usage:
//
//	gearlogo measure            - Derived gear and rack quantities
//	gearlogo layout             - Element placements and warnings
//	gearlogo timeline           - Animation cues
//	gearlogo config             - Effective configuration as YAML
//	gearlogo presets <action>   - List, save, show or delete presets
//	gearlogo inspect            - Interactive inspector
//	gearlogo serve              - SSH server for the inspector
//
// Global flags:
//
//	--config <path>     - Logo config YAML (default: search ~/.gearlogo and ./configs)
//	--preset <name>     - Start from a built-in or stored preset
//	--db <path>         - Preset database (default: ~/.gearlogo/presets.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import presets to register them
	_ "github.com/vovakirdan/gearlogo/internal/presets"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagDBPath   string
	flagLogLevel string

	// Geometry overrides
	flagGearTeeth  int
	flagRackTeeth  int
	flagAngle      float64
	flagCorrection float64
	flagEpicyclic  bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "gearlogo",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gearlogo",
	Short: "Gear logo geometry, layout and animation cues",
	Long: `gearlogo computes the geometry behind the gear-and-rack logo animation.

A logo gear rolls along a rack onto its final spot, optionally joined by a
small gear orbiting it. Every position comes from the gear measurements in
the configuration, so changing a tooth count re-lays the whole logo.

Available commands:
  measure   - Derived gear and rack quantities
  layout    - Element placements and advisory warnings
  timeline  - Animation cues
  config    - Print the effective configuration
  presets   - Manage built-in and stored presets
  inspect   - Interactive inspector
  serve     - SSH server for the inspector

Examples:
  gearlogo measure
  gearlogo layout --preset epicyclic --format yaml
  gearlogo timeline --at 1.5s
  gearlogo inspect --gear-teeth 24
  gearlogo presets save mine --rack-teeth 36`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to logo config YAML")
	pf.StringVar(&flagPreset, "preset", "", "Built-in or stored preset to start from")
	pf.StringVar(&flagDBPath, "db", "~/.gearlogo/presets.db", "Path to presets database")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	pf.IntVar(&flagGearTeeth, "gear-teeth", 0, "Override the logo gear tooth count")
	pf.IntVar(&flagRackTeeth, "rack-teeth", 0, "Override the rack tooth count")
	pf.Float64Var(&flagAngle, "angle", 0, "Override the epicyclic orbit angle (radians)")
	pf.Float64Var(&flagCorrection, "correction", 0, "Override the epicyclic centre distance correction")
	pf.BoolVar(&flagEpicyclic, "epicyclic", false, "Enable or disable the epicyclic gear")

	rootCmd.AddCommand(measureCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(serveCmd)
}
