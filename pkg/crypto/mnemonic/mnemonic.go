// Package mnemonic encodes entropy as BIP-39 word sequences and decodes them
// back, in any of the supported dictionaries.
package mnemonic

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/Davincible/seedxor/pkg/crypto/wordlist"
	"github.com/tyler-smith/go-bip39"
)

const (
	MinEntropyBits = 128
	MaxEntropyBits = 256

	bitsPerWord = 11
)

var (
	ErrBadWordCount       = errors.New("mnemonic must have 12, 15, 18, 21 or 24 words")
	ErrBadEntropyBitCount = errors.New("entropy must be 128 to 256 bits in steps of 32")
	ErrInvalidChecksum    = errors.New("mnemonic has an invalid checksum")
	ErrRandomness         = errors.New("failed to gather randomness")

	ErrUnknownWord       = wordlist.ErrUnknownWord
	ErrAmbiguousLanguage = wordlist.ErrAmbiguousLanguage
)

// UnknownWordError carries the position of the offending word.
type UnknownWordError = wordlist.UnknownWordError

// EntropySource returns bits/8 bytes of cryptographically strong randomness.
type EntropySource func(bits int) ([]byte, error)

// DefaultEntropySource draws from crypto/rand through go-bip39.
var DefaultEntropySource EntropySource = bip39.NewEntropy

// Mnemonic is a decoded word sequence in a single language. The entropy is
// always consistent with the words; the checksum carried by the last word may
// be wrong only for values built with ParseWithoutChecksum.
type Mnemonic struct {
	words         []string
	language      wordlist.Language
	entropy       []byte
	checksumValid bool
}

// New generates a random mnemonic of wordCount words.
func New(lang wordlist.Language, wordCount int) (*Mnemonic, error) {
	return NewWithSource(lang, wordCount, DefaultEntropySource)
}

// NewWithSource is New with an explicit randomness source.
func NewWithSource(lang wordlist.Language, wordCount int, source EntropySource) (*Mnemonic, error) {
	entropyBits, err := EntropyBitsFromWordCount(wordCount)
	if err != nil {
		return nil, err
	}

	entropy, err := source(entropyBits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomness, err)
	}
	if len(entropy)*8 != entropyBits {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrRandomness, len(entropy), entropyBits/8)
	}

	return FromEntropy(entropy, lang)
}

// FromEntropy encodes entropy as words of lang. Auto selects English.
func FromEntropy(entropy []byte, lang wordlist.Language) (*Mnemonic, error) {
	if !ValidateEntropySize(len(entropy)) {
		return nil, fmt.Errorf("%w: got %d bits", ErrBadEntropyBitCount, len(entropy)*8)
	}
	if lang == wordlist.Auto {
		lang = wordlist.English
	}

	dict, err := wordlist.Words(lang)
	if err != nil {
		return nil, err
	}

	entropyBits := len(entropy) * 8
	checksumBits := entropyBits / 32
	wordCount := (entropyBits + checksumBits) / bitsPerWord

	hash := sha256.Sum256(entropy)
	data := make([]byte, len(entropy)+1)
	copy(data, entropy)
	data[len(entropy)] = hash[0]

	words := make([]string, wordCount)
	for i := range words {
		words[i] = dict[readBits(data, i*bitsPerWord, bitsPerWord)]
	}

	return &Mnemonic{
		words:         words,
		language:      lang,
		entropy:       append([]byte(nil), entropy...),
		checksumValid: true,
	}, nil
}

// Parse decodes text and verifies its checksum. With Auto the language is
// detected from the words.
func Parse(text string, lang wordlist.Language) (*Mnemonic, error) {
	m, err := parse(text, lang)
	if err != nil {
		return nil, err
	}
	if !m.checksumValid {
		return nil, ErrInvalidChecksum
	}
	return m, nil
}

// ParseWithoutChecksum decodes text without checking the checksum, for seeds
// generated outside of BIP-39. Every word must still resolve in one language.
func ParseWithoutChecksum(text string, lang wordlist.Language) (*Mnemonic, error) {
	return parse(text, lang)
}

func parse(text string, lang wordlist.Language) (*Mnemonic, error) {
	words := strings.Fields(wordlist.Normalize(text))
	if !ValidateWordCount(len(words)) {
		return nil, fmt.Errorf("%w (got %d)", ErrBadWordCount, len(words))
	}

	if lang == wordlist.Auto {
		detected, err := wordlist.DetectLanguage(words)
		if err != nil {
			return nil, err
		}
		lang = detected
	}

	entropyBits, _ := EntropyBitsFromWordCount(len(words))
	checksumBits := entropyBits / 32
	data := make([]byte, entropyBits/8+1)

	for i, w := range words {
		index, ok := wordlist.Index(lang, w)
		if !ok {
			return nil, &UnknownWordError{Index: i, Word: w}
		}
		writeBits(data, i*bitsPerWord, bitsPerWord, index)
	}

	entropy := data[:entropyBits/8]
	hash := sha256.Sum256(entropy)
	shift := 8 - checksumBits
	valid := data[len(entropy)]>>shift == hash[0]>>shift

	return &Mnemonic{
		words:         words,
		language:      lang,
		entropy:       append([]byte(nil), entropy...),
		checksumValid: valid,
	}, nil
}

func readBits(data []byte, offset, n int) int {
	v := 0
	for i := offset; i < offset+n; i++ {
		bit := (data[i/8] >> (7 - uint(i%8))) & 1
		v = v<<1 | int(bit)
	}
	return v
}

func writeBits(data []byte, offset, n, v int) {
	for i := 0; i < n; i++ {
		if v&(1<<(n-1-i)) == 0 {
			continue
		}
		pos := offset + i
		data[pos/8] |= 1 << (7 - uint(pos%8))
	}
}

func (m *Mnemonic) Words() string {
	return strings.Join(m.words, " ")
}

func (m *Mnemonic) WordList() []string {
	result := make([]string, len(m.words))
	copy(result, m.words)
	return result
}

func (m *Mnemonic) WordCount() int {
	return len(m.words)
}

func (m *Mnemonic) Language() wordlist.Language {
	return m.language
}

// Entropy returns a copy of the encoded entropy.
func (m *Mnemonic) Entropy() []byte {
	return append([]byte(nil), m.entropy...)
}

func (m *Mnemonic) EntropyBits() int {
	return len(m.entropy) * 8
}

// ChecksumValid reports whether the last word carries the BIP-39 checksum of
// the entropy.
func (m *Mnemonic) ChecksumValid() bool {
	return m.checksumValid
}

func (m *Mnemonic) Validate() error {
	if !m.checksumValid {
		return ErrInvalidChecksum
	}
	return nil
}

// Fingerprint is a short hex digest of the entropy, for telling mnemonics
// apart without displaying them.
func (m *Mnemonic) Fingerprint() string {
	h := sha256.Sum256(m.entropy)
	return hex.EncodeToString(h[:4])
}

func ValidateWordCount(count int) bool {
	validCounts := []int{12, 15, 18, 21, 24}
	for _, valid := range validCounts {
		if count == valid {
			return true
		}
	}
	return false
}

func ValidateEntropySize(size int) bool {
	return size*8 >= MinEntropyBits && size*8 <= MaxEntropyBits && size%4 == 0
}

func EntropyBitsFromWordCount(wordCount int) (int, error) {
	switch wordCount {
	case 12:
		return 128, nil
	case 15:
		return 160, nil
	case 18:
		return 192, nil
	case 21:
		return 224, nil
	case 24:
		return 256, nil
	default:
		return 0, fmt.Errorf("%w (got %d)", ErrBadWordCount, wordCount)
	}
}
