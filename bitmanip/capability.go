package bitmanip

import (
	"os"
	"strings"
)

// Implementation identifies the code path behind the primitives.
type Implementation uint8

const (
	// Intrinsic uses math/bits.
	Intrinsic Implementation = iota
	// Portable uses lookup tables and shifts only.
	Portable
)

// String returns the string representation of an Implementation.
func (i Implementation) String() string {
	switch i {
	case Intrinsic:
		return "intrinsic"
	case Portable:
		return "portable"
	default:
		return "unknown"
	}
}

// ParseImplementation parses a string into an Implementation value.
func ParseImplementation(s string) (Implementation, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intrinsic":
		return Intrinsic, true
	case "portable":
		return Portable, true
	default:
		return Intrinsic, false
	}
}

// EnvOverride is the environment variable consulted at init.
const EnvOverride = "BITVEC_BITMANIP"

var (
	active      Implementation
	hasOverride bool

	// hasHardware is set by platform-specific init when the CPU executes
	// math/bits as single instructions.
	hasHardware bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if impl, ok := ParseImplementation(override); ok {
			hasOverride = true
			use(impl)
			return
		}
	}

	if hasHardware {
		use(Intrinsic)
		return
	}
	use(Portable)
}

func use(impl Implementation) {
	active = impl
	if impl == Portable {
		funcs32 = Portable32
		funcs64 = Portable64
		return
	}
	funcs32 = Intrinsic32
	funcs64 = Intrinsic64
}

// Active returns the implementation currently in use.
func Active() Implementation {
	return active
}

// IsOverridden returns true if BITVEC_BITMANIP selected the implementation.
func IsOverridden() bool {
	return hasOverride
}

// HasHardware reports whether the CPU provides native bit-count instructions.
func HasHardware() bool {
	return hasHardware
}
