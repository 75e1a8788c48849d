//go:build arm64

package bitmanip

import "golang.org/x/sys/cpu"

func init() {
	// CLZ and RBIT are base ISA; vector CNT needs ASIMD.
	hasHardware = cpu.ARM64.HasASIMD
	initCapabilities()
}
