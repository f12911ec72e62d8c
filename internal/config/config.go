package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	KeyDirectory  = "dir"
	KeyInterval   = "interval"
	KeyBackground = "background"
	KeyDebug      = "debug"

	EnvPrefix = "SLIDESHOW"

	DefaultInterval = 5
)

// Config is everything a slideshow run needs to know, resolved from flags and environment.
type Config struct {
	// Directory overrides auto-detection when set and existing.
	Directory string `json:"dir"`
	// AutoAdvance is the number of seconds between automatic advances, 0 disables it.
	AutoAdvance int  `json:"interval"`
	Background  bool `json:"background"`
	Debug       bool `json:"debug"`
}

func (c Config) Interval() time.Duration {
	return time.Duration(c.AutoAdvance) * time.Second
}

func (c Config) Validate() error {
	if c.AutoAdvance < 0 {
		return fmt.Errorf("interval must be 0 or a positive number of seconds, got %d", c.AutoAdvance)
	}
	return nil
}

// SetDefaults registers defaults and environment lookup (SLIDESHOW_DIR, SLIDESHOW_INTERVAL, ...).
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDirectory, "")
	v.SetDefault(KeyInterval, DefaultInterval)
	v.SetDefault(KeyBackground, false)
	v.SetDefault(KeyDebug, false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv() // read environment variables that match
}

// Load builds a Config from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Directory:   v.GetString(KeyDirectory),
		AutoAdvance: v.GetInt(KeyInterval),
		Background:  v.GetBool(KeyBackground),
		Debug:       v.GetBool(KeyDebug),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
