package seedxor

// XorBytes XORs a and b over their common length. The result has the length of
// the longer operand, whose surplus bytes are copied through unchanged, so
// XorBytes(a, b) and XorBytes(b, a) are always equal.
func XorBytes(a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}

	result := make([]byte, len(a))
	copy(result, a)
	for i := range b {
		result[i] ^= b[i]
	}
	return result
}
