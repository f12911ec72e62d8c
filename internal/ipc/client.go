package ipc

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"resty.dev/v3"
)

func newClient(path string) *resty.Client {
	client := resty.NewWithClient(&http.Client{
		Transport: &http.Transport{
			DialContext: func(_ context.Context, _, _ string) (net.Conn, error) {
				return net.Dial("unix", path)
			},
		},
	})

	client.SetBaseURL("http://slideshow")
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", "slideshow")
	return client
}

// SendCommand posts cmd to the slideshow listening on path.
func SendCommand(path string, cmd Command) (*Response, error) {
	client := newClient(path)
	defer client.Close()

	result := Response{}

	response, err := client.R().SetBody(cmd).SetResult(&result).Post("/command")
	if err != nil {
		return nil, err
	}

	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("error sending command: %s", response.Status())
	}

	return &result, nil
}

// SendStatus asks the slideshow listening on path for its status.
func SendStatus(path string) (*StatusResponse, error) {
	client := newClient(path)
	defer client.Close()

	result := StatusResponse{}

	response, err := client.R().SetResult(&result).Get("/status")
	if err != nil {
		return nil, fmt.Errorf("error pinging socket: %w", err)
	}
	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("error pinging socket: %s", response.Status())
	}

	return &result, nil
}

func SendNext(path string) error {
	_, err := SendCommand(path, Command{Type: CommandNext})
	return err
}

func SendPrev(path string) error {
	_, err := SendCommand(path, Command{Type: CommandPrev})
	return err
}

func SendStop(path string) error {
	_, err := SendCommand(path, Command{Type: CommandStop})
	return err
}
