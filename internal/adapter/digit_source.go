package adapter

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
)

// DigitSource yields uniformly distributed decimal digits. A DigitSource is
// not safe for concurrent use; give each goroutine its own.
type DigitSource interface {
	// NextDigit returns a value in [0, 9].
	NextDigit() int
}

// DigitSourceFactory builds the DigitSource used by the given worker.
type DigitSourceFactory func(worker int) DigitSource

// SeededDigitSource is a deterministic DigitSource backed by PCG.
type SeededDigitSource struct {
	rng *rand.Rand
}

// NewSeededDigitSource returns a source that replays the same digits for the same seed.
func NewSeededDigitSource(seed uint64) *SeededDigitSource {
	return &SeededDigitSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NextDigit implements DigitSource.
func (s *SeededDigitSource) NextDigit() int {
	return s.rng.IntN(10)
}

// CryptoDigitSource draws digits from crypto/rand.
type CryptoDigitSource struct {
	buf [1]byte
}

// NewCryptoDigitSource constructs a CryptoDigitSource.
func NewCryptoDigitSource() *CryptoDigitSource {
	return &CryptoDigitSource{}
}

// NextDigit implements DigitSource. Bytes >= 250 are rejected so every digit
// is equally likely.
func (s *CryptoDigitSource) NextDigit() int {
	for {
		if _, err := crand.Read(s.buf[:]); err != nil {
			panic(fmt.Sprintf("crypto/rand failed: %v", err))
		}

		if s.buf[0] < 250 {
			return int(s.buf[0] % 10)
		}
	}
}

// NewDigitSourceFactory returns a factory producing crypto sources, or seeded
// sources when seed is non-nil. Worker i is seeded with *seed + i.
func NewDigitSourceFactory(seed *uint64) DigitSourceFactory {
	if seed == nil {
		return func(_ int) DigitSource {
			return NewCryptoDigitSource()
		}
	}

	base := *seed

	return func(worker int) DigitSource {
		return NewSeededDigitSource(base + uint64(worker))
	}
}
