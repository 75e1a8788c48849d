//go:build !amd64 && !arm64

package bitmanip

func init() {
	hasHardware = true
	initCapabilities()
}
