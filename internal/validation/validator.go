package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Davincible/seedxor/pkg/crypto/mnemonic"
	"github.com/Davincible/seedxor/pkg/crypto/wordlist"
)

// MaxShares bounds the number of shares a single split may produce.
const MaxShares = 255

func ValidateShareCount(n int) error {
	if n < 1 || n > MaxShares {
		return fmt.Errorf("number of shares must be between 1 and %d (got %d)", MaxShares, n)
	}
	return nil
}

func ValidateWordCount(count int) error {
	if !mnemonic.ValidateWordCount(count) {
		return fmt.Errorf("word count must be 12, 15, 18, 21, or 24 (got %d)", count)
	}
	return nil
}

func ValidateLanguage(name string) (wordlist.Language, error) {
	lang, err := wordlist.ParseLanguage(name)
	if err != nil {
		names := make([]string, 0, len(wordlist.Languages()))
		for _, l := range wordlist.Languages() {
			names = append(names, l.String())
		}
		return wordlist.Auto, fmt.Errorf("%w (supported: auto, %s)", err, strings.Join(names, ", "))
	}
	return lang, nil
}

// ValidateMnemonicInput performs cheap shape checks on user input before it
// reaches the codec.
func ValidateMnemonicInput(words string) error {
	words = strings.TrimSpace(words)
	if words == "" {
		return fmt.Errorf("mnemonic cannot be empty")
	}

	for i, word := range strings.Fields(words) {
		for _, ch := range word {
			if !unicode.IsLetter(ch) && !unicode.Is(unicode.Mn, ch) {
				return fmt.Errorf("word %d contains invalid characters: %s", i+1, word)
			}
		}
	}

	return nil
}

func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)

	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return strings.Join(lines, "\n")
}
