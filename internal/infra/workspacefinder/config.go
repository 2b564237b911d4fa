package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/petspeak/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads petspeak.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspace.config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspace.config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Petspeak.Roster.Path != "" {
		cfg.Roster.Path = y.Petspeak.Roster.Path
	}
	if y.Petspeak.Roster.IncludeDefaults != nil {
		cfg.Roster.IncludeDefaults = *y.Petspeak.Roster.IncludeDefaults
	}
	if y.Petspeak.Assets.Default != "" {
		cfg.Assets.Default = y.Petspeak.Assets.Default
	}
	for k, v := range y.Petspeak.Assets.Species {
		cfg.Assets.Species[k] = v
	}
	if y.Petspeak.Logs.Dir != "" {
		cfg.Logs.Dir = y.Petspeak.Logs.Dir
	}

	return cfg, nil
}

// RosterPath resolves the configured roster file against root. Empty means none.
func RosterPath(root string, cfg domain.Config) string {
	if cfg.Roster.Path == "" {
		return ""
	}
	if filepath.IsAbs(cfg.Roster.Path) {
		return cfg.Roster.Path
	}
	return filepath.Join(root, cfg.Roster.Path)
}

type yamlConfig struct {
	Petspeak struct {
		Roster struct {
			Path            string `yaml:"path"`
			IncludeDefaults *bool  `yaml:"include_defaults"`
		} `yaml:"roster"`

		Assets struct {
			Default string            `yaml:"default"`
			Species map[string]string `yaml:"species"`
		} `yaml:"assets"`

		Logs struct {
			Dir string `yaml:"dir"`
		} `yaml:"logs"`
	} `yaml:"petspeak"`
}
