package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/slideshow/internal/ipc"
	"github.com/spf13/cobra"
)

func NewNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the next image in the running slideshow",
		Run: func(cmd *cobra.Command, args []string) {
			if err := ipc.SendNext(ipc.SocketPath()); err != nil {
				log.Fatalf("Failed to send 'next' command: %v", err)
			}
			log.Info("Next image command sent")
		},
	}
}
