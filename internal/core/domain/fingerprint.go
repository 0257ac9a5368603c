package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint creates a deterministic hash from an ordered sequence of
// configuration parts. Parts are separated by a NUL byte so that
// ("ab", "c") and ("a", "bc") hash differently.
func Fingerprint(parts ...string) string {
	h := xxhash.New()
	for _, part := range parts {
		_, _ = h.WriteString(part)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
