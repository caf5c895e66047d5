package hostprobe

// goarchToMachine maps GOARCH values to conventional machine identifiers.
var goarchToMachine = map[string]string{
	"amd64": "x86_64",
	"386":   "i686",
	"arm64": "aarch64",
	"arm":   "armv7l",
}

// goarchMachine returns the conventional machine identifier for a GOARCH
// value, or the GOARCH value itself when unmapped.
func goarchMachine(goarch string) string {
	if m, ok := goarchToMachine[goarch]; ok {
		return m
	}
	return goarch
}
