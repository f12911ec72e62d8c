//go:build darwin

package picdir

func platformProviders(home string) []HintProvider {
	return []HintProvider{SubdirProvider{Home: home, Subdir: "Pictures"}}
}
