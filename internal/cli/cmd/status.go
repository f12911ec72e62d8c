package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/slideshow/internal/cli/cmd/utils"
	"github.com/matjam/slideshow/internal/ipc"
	"github.com/spf13/cobra"
)

func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get slideshow status",
		Long:  `Returns the current status of the running slideshow process.`,
		Run: func(cmd *cobra.Command, args []string) {
			response, err := ipc.SendStatus(ipc.SocketPath())
			if err != nil {
				log.Errorf("Error sending command: %v", err)
				return
			}

			utils.PrintJSONColored(response)
		},
	}
}
