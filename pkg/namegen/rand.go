package namegen

import (
	crand "crypto/rand"
	"math/big"
	"math/rand/v2"
)

// Rand is the source of randomness a Zoo draws words with.
type Rand interface {
	// Choose returns a uniform index in [0, n). n must be positive.
	Choose(n int) int

	// ChooseMultiple returns min(k, n) distinct indices from [0, n) in
	// random order.
	ChooseMultiple(n, k int) []int
}

// NewRand wraps a math/rand/v2 source. The result is not safe for
// concurrent use.
func NewRand(src rand.Source) Rand {
	return mathRand{r: rand.New(src)}
}

// NewSeededRand returns a deterministic Rand. Two instances created with the
// same seed produce the same sequence of draws.
func NewSeededRand(seed uint64) Rand {
	return NewRand(rand.NewPCG(seed, seed))
}

// DefaultRand returns a Rand backed by the process-wide math/rand/v2 source.
// It is safe for concurrent use.
func DefaultRand() Rand {
	return globalRand{}
}

// CryptoRand returns a Rand that reads from crypto/rand.
// It is safe for concurrent use.
func CryptoRand() Rand {
	return cryptoRand{}
}

type mathRand struct {
	r *rand.Rand
}

func (m mathRand) Choose(n int) int { return m.r.IntN(n) }

func (m mathRand) ChooseMultiple(n, k int) []int { return sample(n, k, m.r.IntN) }

type globalRand struct{}

func (globalRand) Choose(n int) int { return rand.IntN(n) }

func (globalRand) ChooseMultiple(n, k int) []int { return sample(n, k, rand.IntN) }

type cryptoRand struct{}

func (cryptoRand) Choose(n int) int { return randInt(n) }

func (cryptoRand) ChooseMultiple(n, k int) []int { return sample(n, k, randInt) }

// randInt returns a cryptographically random int in [0, max)
func randInt(max int) int {
	n, err := crand.Int(crand.Reader, big.NewInt(int64(max)))
	if err != nil {
		// Fallback shouldn't happen, but use 0 if it does
		return 0
	}
	return int(n.Int64())
}

// sample runs a partial Fisher-Yates shuffle over [0, n) and returns the
// first min(k, n) positions.
func sample(n, k int, intN func(int) int) []int {
	if n <= 0 || k <= 0 {
		return nil
	}
	k = min(k, n)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + intN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}
