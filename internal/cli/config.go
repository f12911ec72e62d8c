package cli

import (
	"github.com/matjam/slideshow/internal/config"
	"github.com/spf13/viper"
)

// InitConfig wires defaults and environment variables into viper. There is no config file;
// flags and SLIDESHOW_* variables are the only inputs.
func InitConfig() {
	config.SetDefaults(viper.GetViper())
}
