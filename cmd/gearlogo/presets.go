package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gearlogo/internal/config"
	"github.com/vovakirdan/gearlogo/internal/registry"
	"github.com/vovakirdan/gearlogo/internal/storage"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage logo presets",
	Long: `Built-in presets ship with gearlogo; stored presets live in the SQLite
database selected by --db. Use a preset anywhere with --preset <name>.

Examples:
  gearlogo presets list
  gearlogo presets save wide --rack-teeth 40
  gearlogo presets show wide
  gearlogo presets delete wide`,
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and stored presets",
	Args:  cobra.NoArgs,
	RunE:  runPresetsList,
}

var presetsSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Store the effective configuration as a preset",
	Long: `Store the configuration the other commands would use, after the config
search, preset selection and override flags, under the given name.
Saving over an existing stored preset replaces it.`,
	Args: cobra.ExactArgs(1),
	RunE: runPresetsSave,
}

var presetsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a preset as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetsShow,
}

var presetsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetsDelete,
}

func init() {
	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsSaveCmd)
	presetsCmd.AddCommand(presetsShowCmd)
	presetsCmd.AddCommand(presetsDeleteCmd)
}

func runPresetsList(cmd *cobra.Command, _ []string) error {
	var stored []storage.PresetEntry
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open presets database", "error", err)
	} else {
		defer store.Close()
		stored, err = store.ListPresets()
		if err != nil {
			return err
		}
	}

	writePresetList(cmd.OutOrStdout(), registry.List(), stored)
	return nil
}

func writePresetList(w io.Writer, builtin []registry.PresetInfo, stored []storage.PresetEntry) {
	maxIDLen := len("Name")
	for _, p := range builtin {
		maxIDLen = max(maxIDLen, len(p.ID))
	}
	for _, p := range stored {
		maxIDLen = max(maxIDLen, len(p.Name))
	}

	fmt.Fprintln(w, "Built-in presets:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "Name", "Description")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "----", "-----------")
	for _, p := range builtin {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Fprintln(w)
	if len(stored) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No stored presets. Run 'gearlogo presets save <name>' to add one."))
		return
	}

	fmt.Fprintln(w, "Stored presets:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "Name", "Updated")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "----", "-------")
	for _, p := range stored {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, p.Name, p.UpdatedAt.Format("Jan 02 15:04"))
	}
}

func runPresetsSave(cmd *cobra.Command, args []string) error {
	name := args[0]
	if registry.Exists(name) {
		return fmt.Errorf("%q is a built-in preset; pick another name", name)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SavePreset(name, cfg)
	if err != nil {
		return err
	}
	logger.Info("saved preset", "name", name, "id", id)
	fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %q. Use it with --preset %s\n", name, name)
	return nil
}

func runPresetsShow(cmd *cobra.Command, args []string) error {
	cfg, err := baseConfig(args[0], "", flagDBPath)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode preset: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runPresetsDelete(cmd *cobra.Command, args []string) error {
	name := args[0]
	if registry.Exists(name) {
		return fmt.Errorf("%q is a built-in preset and cannot be deleted", name)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeletePreset(name); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %q.\n", name)
	return nil
}
