// Package entropy supplies the time-derived seed integers that differentiate
// draws within a run, plus a crypto/rand fallback for non-reproducible seeds.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// TimeSeed encodes a timestamp as the integer ddHHMMSSffffff: day of month,
// hour, minute, second and microsecond concatenated positionally. Successive
// calls within one run therefore yield monotonically increasing values, and
// adding the trial index keeps per-draw seeds distinct.
func TimeSeed(t time.Time) int64 {
	s := int64(t.Day())
	s = s*100 + int64(t.Hour())
	s = s*100 + int64(t.Minute())
	s = s*100 + int64(t.Second())
	return s*1_000_000 + int64(t.Nanosecond()/1_000)
}

// RandomSeed returns a seed from crypto/rand for callers that do not need
// reproducibility. Falls back to the wall clock if the system source fails.
func RandomSeed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
