package dice

import (
	"crypto/cipher"
	"math/big"
	"math/rand"

	"go.dedis.ch/kyber/v4/util/random"
)

// Source is the randomness behind every die draw.
//
// Implementations are used from the single goroutine that owns the game and
// need not be safe for concurrent use.
type Source interface {
	// Intn returns a uniformly distributed int in [0, n). n must be positive.
	Intn(n int) int
}

// StreamSource draws from a kyber random stream seeded by the system's
// cryptographic entropy.
type StreamSource struct {
	stream cipher.Stream
}

// NewStreamSource returns a Source backed by random.New().
func NewStreamSource() *StreamSource {
	return &StreamSource{stream: random.New()}
}

// Intn implements Source. random.Int never returns zero, so the draw is
// taken over [1, n] and shifted down.
func (s *StreamSource) Intn(n int) int {
	return int(random.Int(big.NewInt(int64(n)+1), s.stream).Int64()) - 1
}

// SeededSource is a deterministic Source. The same seed always yields the
// same sequence of draws.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a SeededSource for seed.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

// Intn implements Source.
func (s *SeededSource) Intn(n int) int {
	return s.rng.Intn(n)
}
