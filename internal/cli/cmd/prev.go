package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/slideshow/internal/ipc"
	"github.com/spf13/cobra"
)

func NewPrevCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prev",
		Short: "Show the previous image in the running slideshow",
		Run: func(cmd *cobra.Command, args []string) {
			if err := ipc.SendPrev(ipc.SocketPath()); err != nil {
				log.Fatalf("Failed to send 'prev' command: %v", err)
			}
			log.Info("Previous image command sent")
		},
	}
}
