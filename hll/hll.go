package hll

import (
	"encoding/binary"
	"math"
	mathbits "math/bits"

	"github.com/cespare/xxhash/v2"
)

// Sketch is a fixed-memory HyperLogLog cardinality estimator. Registers
// are packed into uint32 words, 32/bits registers per word; a Sketch is
// not safe for concurrent mutation.
type Sketch struct {
	precision uint8
	bits      uint8
	words     []uint32
}

// New returns an empty sketch with 2^precision registers of the given
// bit width. Precision must lie in [MinPrecision, MaxPrecision] and the
// register width must be 5 or 6 bits, otherwise ErrUnsupportedConfig is
// returned.
func New(precision, bits uint8) (*Sketch, error) {
	if precision < MinPrecision || precision > MaxPrecision || !supportedBits(bits) {
		return nil, ErrUnsupportedConfig
	}
	var (
		m           = uint32(1) << precision
		regsPerWord = 32 / uint32(bits)
	)
	return &Sketch{
		precision: precision,
		bits:      bits,
		words:     make([]uint32, (m+regsPerWord-1)/regsPerWord),
	}, nil
}

// Precision returns the register-index width.
func (s *Sketch) Precision() uint8 { return s.precision }

// Bits returns the register width.
func (s *Sketch) Bits() uint8 { return s.bits }

// NumRegisters returns the register count, 2^precision.
func (s *Sketch) NumRegisters() uint32 { return uint32(1) << s.precision }

// Insert adds one item to the sketch. Duplicate items leave the sketch
// unchanged.
func (s *Sketch) Insert(item uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], item)
	h := xxhash.Sum64(buf[:])

	index := uint32(h) & (s.NumRegisters() - 1)
	rest := h >> s.precision

	// Rank of the hash: one-based position of the lowest set bit of the
	// remaining hash material, saturated to the register capacity.
	rank := uint32(64 - s.precision + 1)
	if rest != 0 {
		rank = uint32(mathbits.TrailingZeros64(rest)) + 1
	}
	if limit := uint32(1)<<s.bits - 1; rank > limit {
		rank = limit
	}

	if rank > s.register(index) {
		s.setRegister(index, rank)
	}
}

// Union merges other into s by taking the per-register maximum. The two
// sketches must share a configuration.
func (s *Sketch) Union(other *Sketch) error {
	if other == nil || s.precision != other.precision || s.bits != other.bits {
		return ErrMismatchedSketches
	}
	var (
		bits        = uint32(s.bits)
		regsPerWord = 32 / bits
		mask        = uint32(1)<<bits - 1
	)
	for w := range s.words {
		a, b := s.words[w], other.words[w]
		if b == 0 || a == b {
			continue
		}
		var merged uint32
		for r := uint32(0); r < regsPerWord; r++ {
			shift := r * bits
			ra, rb := a>>shift&mask, b>>shift&mask
			if rb > ra {
				ra = rb
			}
			merged |= ra << shift
		}
		s.words[w] = merged
	}
	return nil
}

// Clone returns an independent copy of the sketch.
func (s *Sketch) Clone() *Sketch {
	words := make([]uint32, len(s.words))
	copy(words, s.words)
	return &Sketch{precision: s.precision, bits: s.bits, words: words}
}

// Equal reports structural equality: same configuration and identical
// register contents. Two sketches that compare equal produce the same
// estimate, which makes Equal a fixed-point detector for iterated
// unions.
func (s *Sketch) Equal(other *Sketch) bool {
	if other == nil || s.precision != other.precision || s.bits != other.bits {
		return false
	}
	for w := range s.words {
		if s.words[w] != other.words[w] {
			return false
		}
	}
	return true
}

// CopyFrom overwrites s with the register contents of other. The two
// sketches must share a configuration.
func (s *Sketch) CopyFrom(other *Sketch) error {
	if other == nil || s.precision != other.precision || s.bits != other.bits {
		return ErrMismatchedSketches
	}
	copy(s.words, other.words)
	return nil
}

// Estimate returns the approximate cardinality of the inserted set,
// with linear-counting correction in the small range.
func (s *Sketch) Estimate() float64 {
	var (
		m     = s.NumRegisters()
		sum   float64
		zeros uint32
	)
	for i := uint32(0); i < m; i++ {
		r := s.register(i)
		if r == 0 {
			zeros++
		}
		sum += math.Ldexp(1, -int(r))
	}
	raw := alpha(m) * float64(m) * float64(m) / sum
	if raw <= 2.5*float64(m) && zeros > 0 {
		return float64(m) * math.Log(float64(m)/float64(zeros))
	}
	return raw
}

func (s *Sketch) register(i uint32) uint32 {
	var (
		bits        = uint32(s.bits)
		regsPerWord = 32 / bits
		shift       = i % regsPerWord * bits
	)
	return s.words[i/regsPerWord] >> shift & (uint32(1)<<bits - 1)
}

func (s *Sketch) setRegister(i, v uint32) {
	var (
		bits        = uint32(s.bits)
		regsPerWord = 32 / bits
		shift       = i % regsPerWord * bits
		mask        = (uint32(1)<<bits - 1) << shift
	)
	s.words[i/regsPerWord] = s.words[i/regsPerWord]&^mask | v<<shift
}

// alpha is the bias-correction constant of the raw HyperLogLog
// estimator for m registers.
func alpha(m uint32) float64 {
	switch m {
	case 16:
		return 0.673
	case 32:
		return 0.697
	case 64:
		return 0.709
	default:
		return 0.7213 / (1 + 1.079/float64(m))
	}
}
