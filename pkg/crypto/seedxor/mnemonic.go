// Package seedxor combines and splits BIP-39 mnemonics by XORing their
// entropy, expands abbreviated words, and recovers mnemonics whose word order
// was lost.
//
// XOR of n mnemonics is an n-of-n secret sharing scheme: every share looks
// like an ordinary wallet seed, and all of them are needed to get the
// original back. It is compatible with Coldcard's Seed XOR for equal-length
// mnemonics.
package seedxor

import (
	"fmt"
	"strings"

	"github.com/Davincible/seedxor/pkg/crypto/mnemonic"
	"github.com/Davincible/seedxor/pkg/crypto/wordlist"
	"github.com/Davincible/seedxor/pkg/secure"
	"golang.org/x/text/unicode/norm"
)

// ShortWordLength is how many characters of each word ShortString keeps.
const ShortWordLength = 4

// Mnemonic is an immutable BIP-39 mnemonic that supports XOR.
type Mnemonic struct {
	inner *mnemonic.Mnemonic
}

func wrap(inner *mnemonic.Mnemonic) *Mnemonic {
	return &Mnemonic{inner: inner}
}

// FromEntropy encodes entropy in lang, English when lang is wordlist.Auto.
func FromEntropy(entropy []byte, lang wordlist.Language) (*Mnemonic, error) {
	inner, err := mnemonic.FromEntropy(entropy, lang)
	if err != nil {
		return nil, err
	}
	return wrap(inner), nil
}

// Parse expands abbreviated words and decodes the result, verifying the
// checksum.
func Parse(text string, lang wordlist.Language) (*Mnemonic, error) {
	expanded, lang, err := expandText(text, lang, true)
	if err != nil {
		return nil, err
	}
	inner, err := mnemonic.Parse(expanded, lang)
	if err != nil {
		return nil, err
	}
	return wrap(inner), nil
}

// ParseWithoutChecksum is Parse for seeds that do not carry a valid BIP-39
// checksum.
func ParseWithoutChecksum(text string, lang wordlist.Language) (*Mnemonic, error) {
	expanded, lang, err := expandText(text, lang, true)
	if err != nil {
		return nil, err
	}
	inner, err := mnemonic.ParseWithoutChecksum(expanded, lang)
	if err != nil {
		return nil, err
	}
	return wrap(inner), nil
}

// Generate returns a fresh random mnemonic.
func Generate(lang wordlist.Language, wordCount int) (*Mnemonic, error) {
	return generate(lang, wordCount, mnemonic.DefaultEntropySource)
}

func generate(lang wordlist.Language, wordCount int, source mnemonic.EntropySource) (*Mnemonic, error) {
	if lang == wordlist.Auto {
		lang = wordlist.English
	}
	inner, err := mnemonic.NewWithSource(lang, wordCount, source)
	if err != nil {
		return nil, err
	}
	return wrap(inner), nil
}

// Inner exposes the underlying codec value.
func (m *Mnemonic) Inner() *mnemonic.Mnemonic {
	return m.inner
}

func (m *Mnemonic) Words() string {
	return m.inner.Words()
}

func (m *Mnemonic) WordList() []string {
	return m.inner.WordList()
}

func (m *Mnemonic) WordCount() int {
	return m.inner.WordCount()
}

func (m *Mnemonic) Language() wordlist.Language {
	return m.inner.Language()
}

func (m *Mnemonic) Entropy() []byte {
	return m.inner.Entropy()
}

func (m *Mnemonic) ChecksumValid() bool {
	return m.inner.ChecksumValid()
}

func (m *Mnemonic) Fingerprint() string {
	return m.inner.Fingerprint()
}

func (m *Mnemonic) String() string {
	return m.Words()
}

// ShortString keeps the first four characters of every word, counted in
// composed form so accents and Hangul syllables stay whole. The result can be
// turned back into the full mnemonic with Expand.
func (m *Mnemonic) ShortString() string {
	words := m.WordList()
	for i, w := range words {
		r := []rune(norm.NFC.String(w))
		words[i] = string(r)
		if len(r) > ShortWordLength {
			words[i] = string(r[:ShortWordLength])
		}
	}
	return strings.Join(words, " ")
}

func (m *Mnemonic) DisplayString(short bool) string {
	if short {
		return m.ShortString()
	}
	return m.Words()
}

// Equal reports whether both mnemonics have the same language and words.
func (m *Mnemonic) Equal(other *Mnemonic) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.Language() == other.Language() && secure.EqualStrings(m.Words(), other.Words())
}

// Xor returns the mnemonic whose entropy is the XOR of both operands, in the
// language of m. Operands of different lengths give a result as long as the
// longer one.
func (m *Mnemonic) Xor(other *Mnemonic) *Mnemonic {
	a, b := m.inner.Entropy(), other.inner.Entropy()
	defer secure.ZeroAll(a, b)

	entropy := XorBytes(a, b)
	defer secure.Zero(entropy)

	inner, err := mnemonic.FromEntropy(entropy, m.Language())
	if err != nil {
		// Both operands hold a supported entropy length, and so does the result.
		panic(fmt.Sprintf("seedxor: xor produced unsupported entropy: %v", err))
	}
	return wrap(inner)
}

// XorInto replaces m with m XOR other.
func (m *Mnemonic) XorInto(other *Mnemonic) {
	m.inner = m.Xor(other).inner
}
