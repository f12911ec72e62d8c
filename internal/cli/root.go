/*
Copyright © 2025 Nathan Ollerenshaw <chrome@stupendous.net>
*/
package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/matjam/slideshow"
	"github.com/matjam/slideshow/internal/cli/cmd"
	"github.com/matjam/slideshow/internal/cli/cmd/utils"
	"github.com/matjam/slideshow/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slideshow [directory]",
	Short: "A fullscreen image slideshow",
	Long: `Slideshow shows the images in a directory fullscreen, in random order,
scaled to fit the screen. Right and Left arrows move between images, Escape quits.

Without a directory it uses your Pictures folder.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if viper.GetBool(config.KeyDebug) {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(c *cobra.Command, args []string) {
		if v, err := c.Flags().GetBool("show-config"); err == nil && v {
			log.Infof("All settings:")
			utils.PrintJSONColored(viper.AllSettings())
			return
		}

		if v, err := c.Flags().GetBool("version"); err == nil && v {
			log.Infof("%v version %v",
				utils.BabyBlue.Render("slideshow"),
				utils.Green.Render(strings.Trim(slideshow.Version, "\n\r ")))
			return
		}

		if len(args) == 1 {
			viper.Set(config.KeyDirectory, args[0])
		}

		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}

		cmd.StartSlideshow(cfg)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	RegisterFlags(rootCmd)

	rootCmd.AddCommand(
		cmd.NewNextCmd(),
		cmd.NewPrevCmd(),
		cmd.NewStopCmd(),
		cmd.NewStatusCmd(),
		cmd.NewGenManCmd(rootCmd),
	)
}
