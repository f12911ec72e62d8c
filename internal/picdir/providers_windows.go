//go:build windows

package picdir

import (
	"golang.org/x/sys/windows/registry"
)

const shellFoldersKey = `Software\Microsoft\Windows\CurrentVersion\Explorer\Shell Folders`

// RegistryProvider reads the "My Pictures" shell folder of the current user.
type RegistryProvider struct{}

func (RegistryProvider) Name() string {
	return "registry"
}

func (RegistryProvider) PicturesDir() (string, bool) {
	key, err := registry.OpenKey(registry.CURRENT_USER, shellFoldersKey, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer key.Close()

	dir, _, err := key.GetStringValue("My Pictures")
	if err != nil || dir == "" {
		return "", false
	}
	return dir, true
}

func platformProviders(home string) []HintProvider {
	return []HintProvider{RegistryProvider{}}
}
