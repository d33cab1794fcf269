package hll

import "errors"

// Supported configuration bounds for New.
const (
	// MinPrecision is the smallest supported register-index width.
	MinPrecision = 4

	// MaxPrecision is the largest supported register-index width.
	MaxPrecision = 16
)

// Sentinel errors for sketch construction and merging.
var (
	// ErrUnsupportedConfig is returned by New for a (precision, bits)
	// combination outside the supported registry.
	ErrUnsupportedConfig = errors.New("hll: unsupported precision/bits combination")

	// ErrMismatchedSketches is returned when two sketches with different
	// configurations are combined.
	ErrMismatchedSketches = errors.New("hll: sketches have different configurations")
)

// supportedBits is the register-width registry: each register stores the
// rank of a hash in 5 or 6 bits, packed into uint32 words.
func supportedBits(bits uint8) bool { return bits == 5 || bits == 6 }
