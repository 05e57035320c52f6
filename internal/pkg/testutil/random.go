package testutil

import (
	"io"
	"math/rand"
)

// NewSeededRandom returns a deterministic random source for tests. It is
// not cryptographically secure and must never leave test code.
func NewSeededRandom(seed int64) io.Reader {
	// #nosec G404 -- deterministic source is the point here
	return rand.New(rand.NewSource(seed))
}
