package config

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/hoist/pkg/glyph"
)

// Config carries the read-only inputs to the UI surfaces. Nothing here
// persists store state; items live in process memory only.
type Config struct {
	// DefaultIcon is preselected in the new-item entry bar.
	DefaultIcon glyph.Icon

	// Seed populates the store with a few example items on startup.
	Seed bool
}

// Load reads .hoist (yaml implicit) from HOIST_CONFIG_PATH, the working
// directory, or the home directory, with HOIST_* environment overrides.
func Load() (*Config, error) {
	viper.SetDefault("icon", glyph.Default.Key())
	viper.SetDefault("seed", false)
	viper.SetConfigName(".hoist")
	viper.SetEnvPrefix("HOIST")
	viper.AutomaticEnv()

	if override := os.Getenv("HOIST_CONFIG_PATH"); override != "" {
		if expanded, err := homedir.Expand(override); err == nil {
			viper.AddConfigPath(expanded)
		} else {
			viper.AddConfigPath(override)
		}
	}

	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	icon, err := glyph.IconForAlias(viper.GetString("icon"))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &Config{
		DefaultIcon: icon,
		Seed:        viper.GetBool("seed"),
	}, nil
}
