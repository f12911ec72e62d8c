package cli

import (
	"github.com/matjam/slideshow/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func RegisterFlags(rootCmd *cobra.Command) {
	rootCmd.Flags().StringP(config.KeyDirectory, "D", "", "image directory (default is your Pictures folder)")
	rootCmd.Flags().IntP(config.KeyInterval, "n", config.DefaultInterval, "seconds between automatic advances, 0 disables")
	rootCmd.Flags().BoolP(config.KeyBackground, "b", false, "Run as a daemon")
	rootCmd.Flags().Bool("show-config", false, "Dump resolved config")
	rootCmd.Flags().BoolP("version", "v", false, "Print version")

	rootCmd.PersistentFlags().BoolP(config.KeyDebug, "d", false, "Enable debug logging")

	viper.BindPFlag(config.KeyDirectory, rootCmd.Flags().Lookup(config.KeyDirectory))
	viper.BindPFlag(config.KeyInterval, rootCmd.Flags().Lookup(config.KeyInterval))
	viper.BindPFlag(config.KeyBackground, rootCmd.Flags().Lookup(config.KeyBackground))
	viper.BindPFlag(config.KeyDebug, rootCmd.PersistentFlags().Lookup(config.KeyDebug))
}
