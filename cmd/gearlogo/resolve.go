package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gearlogo/internal/config"
	"github.com/vovakirdan/gearlogo/internal/registry"
	"github.com/vovakirdan/gearlogo/internal/storage"
)

// resolveConfig returns the configuration the command works on: the named
// preset if --preset is set, the loaded config file otherwise, with any
// override flags applied on top.
func resolveConfig(cmd *cobra.Command) (config.LogoConfig, error) {
	cfg, err := baseConfig(flagPreset, flagConfig, flagDBPath)
	if err != nil {
		return config.LogoConfig{}, err
	}
	config.ApplyOverrides(&cfg, overridesFromFlags(cmd))
	return cfg, nil
}

// baseConfig picks the starting configuration. Built-in presets shadow
// stored ones with the same name.
func baseConfig(preset, configPath, dbPath string) (config.LogoConfig, error) {
	if preset == "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return config.LogoConfig{}, err
		}
		logger.Debug("loaded config", "path", configPath)
		return cfg, nil
	}

	if configPath != "" {
		return config.LogoConfig{}, errors.New("--config and --preset are mutually exclusive")
	}

	if registry.Exists(preset) {
		logger.Debug("using built-in preset", "preset", preset)
		return registry.Create(preset)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return config.LogoConfig{}, err
	}
	defer store.Close()

	cfg, err := store.LoadPreset(preset)
	if errors.Is(err, storage.ErrPresetNotFound) {
		return config.LogoConfig{}, fmt.Errorf("unknown preset %q (run 'gearlogo presets list')", preset)
	}
	if err != nil {
		return config.LogoConfig{}, err
	}
	logger.Debug("using stored preset", "preset", preset, "db", dbPath)
	return cfg, nil
}

// overridesFromFlags collects the override flags the user actually set.
func overridesFromFlags(cmd *cobra.Command) config.Overrides {
	flags := cmd.Flags()
	var o config.Overrides
	if flags.Changed("gear-teeth") {
		o.GearTeeth = &flagGearTeeth
	}
	if flags.Changed("rack-teeth") {
		o.RackTeeth = &flagRackTeeth
	}
	if flags.Changed("angle") {
		o.Angle = &flagAngle
	}
	if flags.Changed("correction") {
		o.Correction = &flagCorrection
	}
	if flags.Changed("epicyclic") {
		o.Epicyclic = &flagEpicyclic
	}
	return o
}
