// Package reference generates the human-readable tracking strings handed
// back to customers, e.g. QT-1735689600000-4f8a1bc2d. Uniqueness is
// probabilistic; these are lead references, not database keys.
package reference

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Prefixes for the two submission kinds.
const (
	QuotePrefix   = "QT"
	ContactPrefix = "CT"
)

const (
	base36       = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLength = 9
)

// New returns "<prefix>-<epoch millis>-<9 base36 chars>".
func New(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), randomSuffix())
}

func randomSuffix() string {
	b := make([]byte, suffixLength)
	for i := range b {
		b[i] = base36[rand.IntN(len(base36))]
	}
	return string(b)
}
