package otp

import (
	"crypto/rand"
	"io"
	"math"
	"math/bits"
)

// maxRejections bounds the draw loop of Sampler.Intn. A healthy source is
// rejected with probability below 1/2 per draw, so reaching this limit means
// the reader is broken.
const maxRejections = 128

// Sampler draws uniformly distributed integers from a secure random reader.
type Sampler struct {
	rand io.Reader
}

// NewSampler returns a Sampler reading from r. A nil r uses crypto/rand.Reader.
func NewSampler(r io.Reader) *Sampler {
	if r == nil {
		r = rand.Reader
	}

	return &Sampler{rand: r}
}

// Intn returns a value uniformly distributed in [min, max).
//
// For range = max - min it reads ceil(log2(range) / 8) bytes, interprets them
// big-endian as v and accepts v only when
//
//	v <= floor(256^bytes / range) * range - 1
//
// so that v % range carries no modulo bias. Rejected draws are redrawn.
// A range of one returns min without reading.
func (s *Sampler) Intn(min, max int) (int, error) {
	if max <= min {
		return 0, ErrInvalidRange
	}

	rng := uint64(max) - uint64(min)
	if rng == 1 {
		return min, nil
	}

	n := byteLen(rng)
	limit := acceptLimit(n, rng)

	var buf [8]byte
	for range maxRejections {
		if _, err := io.ReadFull(s.rand, buf[:n]); err != nil {
			return 0, err
		}

		var v uint64
		for _, b := range buf[:n] {
			v = v<<8 | uint64(b)
		}

		if v > limit {
			continue
		}

		return min + int(v%rng), nil
	}

	return 0, ErrEntropyExhausted
}

// byteLen returns the number of bytes whose value space covers rng values,
// i.e. ceil(log2(rng) / 8). bits.Len64(rng-1) is ceil(log2(rng)) for rng >= 1.
func byteLen(rng uint64) int {
	return (bits.Len64(rng-1) + 7) / 8
}

// acceptLimit returns floor(256^n / rng) * rng - 1, the largest value whose
// residue modulo rng is still unbiased.
func acceptLimit(n int, rng uint64) uint64 {
	if n < 8 {
		space := uint64(1) << (8 * n)
		return space - space%rng - 1
	}

	// 256^8 does not fit in uint64; 2^64 mod rng is derived from MaxUint64.
	return math.MaxUint64 - (math.MaxUint64%rng+1)%rng
}
