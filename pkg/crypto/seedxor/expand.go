package seedxor

import (
	"fmt"
	"strings"

	"github.com/Davincible/seedxor/pkg/crypto/mnemonic"
	"github.com/Davincible/seedxor/pkg/crypto/wordlist"
)

// Expand replaces every abbreviated word of text with the dictionary word it
// is the unique prefix of. Words that are ambiguous prefixes are kept only
// when they are complete words themselves; anything else is an
// *wordlist.UnknownWordError. With wordlist.Auto the language is detected.
func Expand(text string, lang wordlist.Language) (string, error) {
	expanded, _, err := expandText(text, lang, false)
	return expanded, err
}

// ExpandWords is Expand over pre-split tokens. It also returns the language
// the tokens were resolved in.
func ExpandWords(tokens []string, lang wordlist.Language) ([]string, wordlist.Language, error) {
	if len(tokens) == 0 {
		return []string{}, lang, nil
	}
	if lang == wordlist.Auto {
		detected, err := wordlist.DetectLanguageByPrefix(tokens)
		if err != nil {
			return nil, wordlist.Auto, err
		}
		lang = detected
	}

	words := make([]string, len(tokens))
	for i, token := range tokens {
		word, ok := wordlist.Resolve(lang, token)
		if !ok {
			return nil, lang, &wordlist.UnknownWordError{Index: i, Word: token}
		}
		words[i] = word
	}
	return words, lang, nil
}

func expandText(text string, lang wordlist.Language, checkCount bool) (string, wordlist.Language, error) {
	tokens := strings.Fields(text)
	if checkCount && !mnemonic.ValidateWordCount(len(tokens)) {
		return "", lang, fmt.Errorf("%w (got %d)", mnemonic.ErrBadWordCount, len(tokens))
	}

	words, lang, err := ExpandWords(tokens, lang)
	if err != nil {
		return "", lang, err
	}
	return strings.Join(words, " "), lang, nil
}
