package secure

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b in place.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// ZeroAll zeroes every buffer in bufs.
func ZeroAll(bufs ...[]byte) {
	for _, b := range bufs {
		Zero(b)
	}
}

func ConstantTimeCompare(x, y []byte) bool {
	if len(x) != len(y) {
		return false
	}
	return subtle.ConstantTimeCompare(x, y) == 1
}

// EqualStrings compares two secrets without an early exit on the first
// differing byte.
func EqualStrings(x, y string) bool {
	xb, yb := []byte(x), []byte(y)
	defer ZeroAll(xb, yb)
	return ConstantTimeCompare(xb, yb)
}
