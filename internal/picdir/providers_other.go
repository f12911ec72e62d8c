//go:build !windows && !darwin

package picdir

func platformProviders(home string) []HintProvider {
	return []HintProvider{XDGProvider{}}
}
