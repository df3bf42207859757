// Package wordlist provides the BIP-39 dictionaries used to encode and decode
// mnemonic phrases, together with prefix lookup and language detection.
//
// The word data comes from github.com/tyler-smith/go-bip39/wordlists. Unlike
// the go-bip39 package itself, which keeps a single global word list, every
// function here takes the language explicitly so callers can work with
// several languages at once without coordinating global state.
package wordlist

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/text/unicode/norm"
)

// Size is the number of words in every BIP-39 dictionary.
const Size = 2048

// Language identifies a BIP-39 dictionary.
type Language string

const (
	// Auto asks the caller to detect the language from the input words.
	Auto               Language = ""
	English            Language = "english"
	ChineseSimplified  Language = "chinese-simplified"
	ChineseTraditional Language = "chinese-traditional"
	Czech              Language = "czech"
	French             Language = "french"
	Italian            Language = "italian"
	Japanese           Language = "japanese"
	Korean             Language = "korean"
	Spanish            Language = "spanish"
)

var (
	// ErrUnknownLanguage is returned for a language name with no dictionary.
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrAmbiguousLanguage is returned when the input words fit more than one
	// dictionary equally well.
	ErrAmbiguousLanguage = errors.New("ambiguous language")
	// ErrUnknownWord is matched by every *UnknownWordError.
	ErrUnknownWord = errors.New("unknown word")
)

// UnknownWordError reports the position of a word that could not be resolved.
type UnknownWordError struct {
	Index int
	Word  string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word %q at position %d", e.Word, e.Index+1)
}

func (e *UnknownWordError) Is(target error) bool {
	return target == ErrUnknownWord
}

// order fixes the detection and listing order of the supported languages.
var order = []Language{
	English,
	ChineseSimplified,
	ChineseTraditional,
	Czech,
	French,
	Italian,
	Japanese,
	Korean,
	Spanish,
}

var sources = map[Language][]string{
	English:            wordlists.English,
	ChineseSimplified:  wordlists.ChineseSimplified,
	ChineseTraditional: wordlists.ChineseTraditional,
	Czech:              wordlists.Czech,
	French:             wordlists.French,
	Italian:            wordlists.Italian,
	Japanese:           wordlists.Japanese,
	Korean:             wordlists.Korean,
	Spanish:            wordlists.Spanish,
}

type dictionary struct {
	words  []string
	index  map[string]int
	sorted []string
}

var (
	mu    sync.Mutex
	cache = make(map[Language]*dictionary)
)

func load(lang Language) (*dictionary, error) {
	mu.Lock()
	defer mu.Unlock()

	if d, ok := cache[lang]; ok {
		return d, nil
	}

	src, ok := sources[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, string(lang))
	}

	d := &dictionary{
		words:  src,
		index:  make(map[string]int, len(src)),
		sorted: make([]string, len(src)),
	}
	for i, w := range src {
		d.index[w] = i
	}
	copy(d.sorted, src)
	sort.Strings(d.sorted)

	cache[lang] = d
	return d, nil
}

// Normalize lowercases token and puts it in NFKD form, the form every
// dictionary is stored in. Input typed with precomposed characters matches
// only after this.
func Normalize(token string) string {
	return norm.NFKD.String(strings.ToLower(token))
}

// byPrefix returns the dictionary words starting with prefix in byte order.
func (d *dictionary) byPrefix(prefix string) []string {
	start := sort.SearchStrings(d.sorted, prefix)
	var matches []string
	for i := start; i < len(d.sorted) && strings.HasPrefix(d.sorted[i], prefix); i++ {
		matches = append(matches, d.sorted[i])
	}
	return matches
}

// resolve maps a possibly abbreviated token to a dictionary word: a unique
// prefix match wins, otherwise the token must be a full word itself.
func (d *dictionary) resolve(token string) (string, bool) {
	matches := d.byPrefix(token)
	if len(matches) == 1 {
		return matches[0], true
	}
	if _, ok := d.index[token]; ok {
		return token, true
	}
	return "", false
}

// Languages returns every supported language.
func Languages() []Language {
	result := make([]Language, len(order))
	copy(result, order)
	return result
}

// ParseLanguage maps a user supplied name to a Language. The empty string and
// "auto" select detection.
func ParseLanguage(name string) (Language, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "auto":
		return Auto, nil
	case "en":
		return English, nil
	case "zh", "zh-hans", "chinese_simplified":
		return ChineseSimplified, nil
	case "zh-hant", "chinese_traditional":
		return ChineseTraditional, nil
	case "cs":
		return Czech, nil
	case "fr":
		return French, nil
	case "it":
		return Italian, nil
	case "ja", "jp":
		return Japanese, nil
	case "ko":
		return Korean, nil
	case "es":
		return Spanish, nil
	}

	lang := Language(name)
	if _, ok := sources[lang]; !ok {
		return Auto, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
	return lang, nil
}

func (l Language) String() string {
	if l == Auto {
		return "auto"
	}
	return string(l)
}

// Words returns a copy of the dictionary for lang in BIP-39 index order.
func Words(lang Language) ([]string, error) {
	d, err := load(lang)
	if err != nil {
		return nil, err
	}
	result := make([]string, len(d.words))
	copy(result, d.words)
	return result, nil
}

// Word returns the word at index in the dictionary for lang.
func Word(lang Language, index int) (string, error) {
	d, err := load(lang)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(d.words) {
		return "", fmt.Errorf("word index %d out of range", index)
	}
	return d.words[index], nil
}

// Index returns the BIP-39 index of word in the dictionary for lang.
func Index(lang Language, word string) (int, bool) {
	d, err := load(lang)
	if err != nil {
		return 0, false
	}
	i, ok := d.index[Normalize(word)]
	return i, ok
}

// WordsByPrefix returns every word of lang starting with prefix, sorted.
func WordsByPrefix(lang Language, prefix string) ([]string, error) {
	d, err := load(lang)
	if err != nil {
		return nil, err
	}
	return d.byPrefix(Normalize(prefix)), nil
}

// Resolve expands an abbreviated token into its full dictionary word.
func Resolve(lang Language, token string) (string, bool) {
	d, err := load(lang)
	if err != nil {
		return "", false
	}
	return d.resolve(Normalize(token))
}

// DetectLanguage returns the only language containing every word exactly.
func DetectLanguage(words []string) (Language, error) {
	return detect(words, func(d *dictionary, w string) bool {
		_, ok := d.index[w]
		return ok
	})
}

// DetectLanguageByPrefix is DetectLanguage for abbreviated input: a token
// counts for a language when Resolve would succeed in it. When several
// languages fit, a single language holding every token as a full word wins.
func DetectLanguageByPrefix(tokens []string) (Language, error) {
	lang, err := detect(tokens, func(d *dictionary, t string) bool {
		_, ok := d.resolve(t)
		return ok
	})
	if errors.Is(err, ErrAmbiguousLanguage) {
		if exact, exactErr := DetectLanguage(tokens); exactErr == nil {
			return exact, nil
		}
	}
	return lang, err
}

func detect(tokens []string, match func(*dictionary, string) bool) (Language, error) {
	candidates := make([]Language, 0, len(order))
	dicts := make(map[Language]*dictionary, len(order))
	for _, lang := range order {
		d, err := load(lang)
		if err != nil {
			return Auto, err
		}
		dicts[lang] = d
		candidates = append(candidates, lang)
	}

	for i, token := range tokens {
		token = Normalize(token)
		remaining := candidates[:0]
		for _, lang := range candidates {
			if match(dicts[lang], token) {
				remaining = append(remaining, lang)
			}
		}
		if len(remaining) == 0 {
			return Auto, &UnknownWordError{Index: i, Word: token}
		}
		candidates = remaining
	}

	if len(candidates) != 1 {
		return Auto, fmt.Errorf("%w: input matches %d languages", ErrAmbiguousLanguage, len(candidates))
	}
	return candidates[0], nil
}
