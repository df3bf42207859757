package seedxor

import (
	"fmt"

	"github.com/Davincible/seedxor/pkg/crypto/mnemonic"
)

// Splitter turns one mnemonic into XOR shares.
type Splitter struct {
	// Source provides the randomness for new shares.
	Source mnemonic.EntropySource
	// Validate recombines the shares before returning them and fails with
	// ErrSelfCheckFailed on a mismatch. Turn it off for mnemonics parsed
	// without a checksum: their shares recombine to the same entropy but to
	// a different, checksummed last word.
	Validate bool
}

// NewSplitter returns a validating Splitter backed by crypto/rand.
func NewSplitter() *Splitter {
	return &Splitter{
		Source:   mnemonic.DefaultEntropySource,
		Validate: true,
	}
}

// Split returns two shares whose XOR is m.
func Split(m *Mnemonic) (*Mnemonic, *Mnemonic, error) {
	return NewSplitter().Split(m)
}

// SplitN returns n shares whose XOR is m.
func SplitN(m *Mnemonic, n int, validate bool) ([]*Mnemonic, error) {
	s := NewSplitter()
	s.Validate = validate
	return s.SplitN(m, n)
}

// Split draws a random mnemonic b of the same language and length as m and
// returns (m XOR b, b).
func (s *Splitter) Split(m *Mnemonic) (*Mnemonic, *Mnemonic, error) {
	source := s.Source
	if source == nil {
		source = mnemonic.DefaultEntropySource
	}

	b, err := generate(m.Language(), m.WordCount(), source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate share: %w", err)
	}
	return m.Xor(b), b, nil
}

// SplitN splits m into n shares by repeatedly splitting the most recently
// added share in two. SplitN(m, 1) is []*Mnemonic{m}.
func (s *Splitter) SplitN(m *Mnemonic, n int) ([]*Mnemonic, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidShareCount, n)
	}

	shares := make([]*Mnemonic, 1, n)
	shares[0] = m
	for len(shares) < n {
		last := len(shares) - 1
		a, b, err := s.Split(shares[last])
		if err != nil {
			return nil, err
		}
		shares[last] = a
		shares = append(shares, b)
	}

	if s.Validate {
		if combined := Combine(shares); !combined.Equal(m) {
			return nil, ErrSelfCheckFailed
		}
	}
	return shares, nil
}

// Combine XORs all shares together in the language of the first one. It
// returns nil when shares is empty.
func Combine(shares []*Mnemonic) *Mnemonic {
	if len(shares) == 0 {
		return nil
	}

	result := wrap(shares[0].inner)
	for _, share := range shares[1:] {
		result = result.Xor(share)
	}
	return result
}
