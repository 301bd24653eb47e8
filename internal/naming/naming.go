// Package naming generates compact identifiers for widget instances,
// dashboards, and layout snapshots.
package naming

import (
	"crypto/rand"
	"strconv"
	"time"
)

const (
	timeChars   = 7 // base36 seconds, enough until year ~4454
	randomChars = 5
	randomSpace = 36 * 36 * 36 * 36 * 36
)

// NewCompactID returns a time-ordered compact ID: 7 base36 chars of Unix
// seconds followed by 5 random base36 chars. Lowercase only, 12 chars total.
func NewCompactID() string {
	ts := time.Now().UTC().Unix()
	if ts < 0 {
		ts = 0
	}
	id := pad(strconv.FormatInt(ts, 36), timeChars)

	buf := make([]byte, 3)
	var n uint64
	if _, err := rand.Read(buf); err == nil {
		for _, b := range buf {
			n = n*256 + uint64(b)
		}
	} else {
		// Entropy failure degrades to nanosecond bits; ordering still holds.
		n = uint64(time.Now().UnixNano())
	}
	return id + pad(strconv.FormatUint(n%randomSpace, 36), randomChars)
}

// InstanceID returns a fresh widget instance identity.
func InstanceID() string { return "w-" + NewCompactID() }

// DashboardID returns a fresh dashboard identity.
func DashboardID() string { return "d-" + NewCompactID() }

func pad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
