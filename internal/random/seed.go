// Package random provides seed generation for the quiz random sources.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// Seed returns a seed drawn from crypto/rand, falling back to the wall
// clock when the system source is unavailable.
func Seed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}

	return int64(binary.LittleEndian.Uint64(b[:]))
}
