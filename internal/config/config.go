// Package config handles loading dayplan.toml configuration files.
//
// Settings here are the engine's tunable constants: severity thresholds for
// the conflict detector and scoring weights for the suggestion generator.
// A project-local dayplan.toml overrides the global config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"dayplan/schedule"
)

// Config represents the dayplan.toml configuration file.
type Config struct {
	Detector Detector `toml:"detector"`
	Suggest  Suggest  `toml:"suggest"`
}

// Detector contains conflict-detection thresholds.
type Detector struct {
	// HighOverlapRatio escalates an overlap to high severity when the
	// shared span exceeds this fraction of the shorter item.
	HighOverlapRatio float64 `toml:"high-overlap-ratio"`

	// OverbookedThreshold is the concurrent-item count that collapses
	// overlaps into one overbooked conflict.
	OverbookedThreshold int `toml:"overbooked-threshold"`
}

// Suggest contains suggestion scoring weights.
type Suggest struct {
	// MaxSuggestions caps the returned slot list.
	MaxSuggestions int `toml:"max-suggestions"`

	// FitWeight scores duration fit.
	FitWeight float64 `toml:"fit-weight"`

	// UrgencyWeight scores priority and due-date pressure.
	UrgencyWeight float64 `toml:"urgency-weight"`

	// ProximityWeight scores earlier days over later ones.
	ProximityWeight float64 `toml:"proximity-weight"`
}

// DetectorOptions maps the config onto engine options. Unset fields keep
// the engine defaults.
func (c *Config) DetectorOptions() schedule.DetectorOptions {
	return schedule.DetectorOptions{
		HighOverlapRatio:    c.Detector.HighOverlapRatio,
		OverbookedThreshold: c.Detector.OverbookedThreshold,
	}
}

// SuggestOptions maps the config onto engine options. Unset fields keep
// the engine defaults.
func (c *Config) SuggestOptions() schedule.SuggestOptions {
	return schedule.SuggestOptions{
		MaxSuggestions:  c.Suggest.MaxSuggestions,
		FitWeight:       c.Suggest.FitWeight,
		UrgencyWeight:   c.Suggest.UrgencyWeight,
		ProximityWeight: c.Suggest.ProximityWeight,
	}
}

// Load loads configuration from the working directory and the global
// config file. Returns an empty config if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, "dayplan.toml"))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta), nil
}

func globalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "dayplan", "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	merged := Config{}
	merged.Detector.HighOverlapRatio = mergeFloat(projectMeta.IsDefined("detector", "high-overlap-ratio"), projectCfg.Detector.HighOverlapRatio, globalCfg.Detector.HighOverlapRatio)
	merged.Detector.OverbookedThreshold = mergeInt(projectMeta.IsDefined("detector", "overbooked-threshold"), projectCfg.Detector.OverbookedThreshold, globalCfg.Detector.OverbookedThreshold)
	merged.Suggest.MaxSuggestions = mergeInt(projectMeta.IsDefined("suggest", "max-suggestions"), projectCfg.Suggest.MaxSuggestions, globalCfg.Suggest.MaxSuggestions)
	merged.Suggest.FitWeight = mergeFloat(projectMeta.IsDefined("suggest", "fit-weight"), projectCfg.Suggest.FitWeight, globalCfg.Suggest.FitWeight)
	merged.Suggest.UrgencyWeight = mergeFloat(projectMeta.IsDefined("suggest", "urgency-weight"), projectCfg.Suggest.UrgencyWeight, globalCfg.Suggest.UrgencyWeight)
	merged.Suggest.ProximityWeight = mergeFloat(projectMeta.IsDefined("suggest", "proximity-weight"), projectCfg.Suggest.ProximityWeight, globalCfg.Suggest.ProximityWeight)
	return &merged
}

func mergeFloat(projectDefined bool, projectValue, globalValue float64) float64 {
	if projectDefined {
		return projectValue
	}
	return globalValue
}

func mergeInt(projectDefined bool, projectValue, globalValue int) int {
	if projectDefined {
		return projectValue
	}
	return globalValue
}
