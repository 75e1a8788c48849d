//go:build amd64

package bitmanip

import "golang.org/x/sys/cpu"

func init() {
	hasHardware = cpu.X86.HasPOPCNT && cpu.X86.HasBMI1
	initCapabilities()
}
