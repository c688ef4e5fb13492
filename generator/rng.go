// Package generator - randomness sources for generation.
//
// This file centralizes every way a Generator obtains random draws.
//
// Goals:
//   - Determinism on demand: SeededSource gives reproducible streams for
//     tests and fixtures (same seed ⇒ identical passwords for identical
//     configurations, rule-free or with deterministic rules).
//   - Strong default: CryptoSource draws from crypto/rand, so a Generator
//     built without options is safe for real credentials.
//   - Encapsulation: a single one-method interface; no time-based seeding
//     hidden anywhere.
//
// Concurrency:
//   - CryptoSource is stateless and safe for concurrent use.
//   - SeededSource wraps math/rand and is NOT safe for concurrent use;
//     wrap it in Locked when one seeded Generator is shared by goroutines.

package generator

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
	"sync"
)

// Source supplies the uniform random draws generation consumes.
// *math/rand.Rand satisfies Source directly.
type Source interface {
	// Intn returns a uniform random int in [0, n).
	// It panics when n <= 0, matching math/rand semantics.
	Intn(n int) int
}

// cryptoSource draws from crypto/rand. Stateless, concurrency-safe.
type cryptoSource struct{}

// Intn returns a uniform random int in [0, n) read from the operating
// system's entropy pool. Panics when n <= 0, or if the entropy pool is
// unreadable (no meaningful recovery exists at this layer).
// Complexity: O(1) amortized.
func (cryptoSource) Intn(n int) int {
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("generator: crypto source unavailable: " + err.Error())
	}

	return int(v.Int64())
}

// CryptoSource returns the cryptographically strong Source every Generator
// uses unless configured otherwise. Safe for concurrent use.
// Complexity: O(1).
func CryptoSource() Source { return cryptoSource{} }

// SeededSource returns a deterministic Source: the same seed always yields
// the same draw sequence. Intended for tests, fixtures and reproducible
// demos, not for real credentials. NOT safe for concurrent use; see Locked.
// Complexity: O(1).
func SeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// lockedSource serializes draws on an inner Source.
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// Intn forwards to the wrapped Source under a mutex.
func (l *lockedSource) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.src.Intn(n)
}

// Locked wraps src so that concurrent Generate calls sharing one Generator
// serialize their draws. CryptoSource does not need it; seeded sources do.
// Panics on nil to surface programmer error early.
// Complexity: O(1) per draw plus lock overhead.
func Locked(src Source) Source {
	if src == nil {
		panic("generator: Locked(nil)")
	}

	return &lockedSource{src: src}
}
