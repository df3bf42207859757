package seedxor

import (
	"context"
	"log/slog"
	"math"
	"math/big"
	"strings"

	"github.com/Davincible/seedxor/pkg/crypto/mnemonic"
	"github.com/Davincible/seedxor/pkg/crypto/wordlist"
)

// RecoverOptions configures a Recoverer.
type RecoverOptions struct {
	// Language of the words; wordlist.Auto detects it.
	Language wordlist.Language
	// KeepPhrases permutes each multi-word token as one block instead of
	// permuting every word on its own.
	KeepPhrases bool
	// Logger receives debug records; slog.Default() when nil.
	Logger *slog.Logger
}

// Recoverer enumerates every ordering of a bag of words and yields those that
// form a mnemonic with a valid checksum. Orderings are produced by Heap's
// algorithm, so the output order is fixed for a given input. A Recoverer is
// single use and not safe for concurrent use.
//
//	r, err := seedxor.NewRecoverer(tokens, seedxor.RecoverOptions{})
//	for r.Next(ctx) {
//		fmt.Println(r.Mnemonic())
//	}
//	if err := r.Err(); err != nil { ... }
type Recoverer struct {
	units    []string
	language wordlist.Language
	total    *big.Int
	logger   *slog.Logger

	heap    heapPermutation
	current *Mnemonic
	good    uint64
	bad     uint64
	done    bool
	err     error
}

// NewRecoverer expands tokens and prepares the search. It fails before any
// permutation is tried when a token cannot be resolved, the word count is not
// a valid mnemonic length, or the number of orderings does not fit in 64 bits.
func NewRecoverer(tokens []string, opts RecoverOptions) (*Recoverer, error) {
	var all []string
	for _, token := range tokens {
		all = append(all, strings.Fields(token)...)
	}
	if len(all) == 0 {
		return nil, ErrNoWords
	}
	if !mnemonic.ValidateWordCount(len(all)) {
		_, err := mnemonic.EntropyBitsFromWordCount(len(all))
		return nil, err
	}

	words, lang, err := ExpandWords(all, opts.Language)
	if err != nil {
		return nil, err
	}

	var units []string
	if opts.KeepPhrases {
		offset := 0
		for _, token := range tokens {
			n := len(strings.Fields(token))
			if n == 0 {
				continue
			}
			units = append(units, strings.Join(words[offset:offset+n], " "))
			offset += n
		}
	} else {
		units = words
	}

	total := Factorial(len(units))
	if !total.IsUint64() {
		return nil, &InfeasibleSearchError{Units: len(units), Total: total}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Recoverer{
		units:    units,
		language: lang,
		total:    total,
		logger:   logger,
		heap:     newHeapPermutation(units),
	}, nil
}

// Next advances to the next valid mnemonic. It returns false when the search
// is exhausted or ctx is done; Err tells the two apart.
func (r *Recoverer) Next(ctx context.Context) bool {
	if r.done || r.err != nil {
		return false
	}
	if r.good == 0 && r.bad == 0 {
		r.logger.Debug("starting permutation search",
			"units", len(r.units), "language", r.language.String(), "total", r.total.String())
	}

	for {
		if err := ctx.Err(); err != nil {
			r.err = err
			r.current = nil
			return false
		}

		order, ok := r.heap.next()
		if !ok {
			r.done = true
			r.current = nil
			r.logger.Debug("permutation search finished", "good", r.good, "bad", r.bad)
			return false
		}

		inner, err := mnemonic.Parse(strings.Join(order, " "), r.language)
		if err != nil {
			r.bad++
			continue
		}
		r.good++
		r.current = wrap(inner)
		return true
	}
}

// Mnemonic returns the mnemonic found by the last successful Next.
func (r *Recoverer) Mnemonic() *Mnemonic {
	return r.current
}

func (r *Recoverer) Err() error {
	return r.err
}

// Good is the number of orderings accepted so far.
func (r *Recoverer) Good() uint64 {
	return r.good
}

// Bad is the number of orderings rejected so far.
func (r *Recoverer) Bad() uint64 {
	return r.bad
}

// Total is the number of orderings the search will try.
func (r *Recoverer) Total() *big.Int {
	return new(big.Int).Set(r.total)
}

// Units returns the expanded words or phrases being permuted.
func (r *Recoverer) Units() []string {
	return append([]string(nil), r.units...)
}

func (r *Recoverer) Language() wordlist.Language {
	return r.language
}

// Factorial returns n! for n >= 0.
func Factorial(n int) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(1, int64(n))
}

// MaxUnits is the largest number of units whose permutations fit in 64 bits.
var MaxUnits = func() int {
	n := 0
	for Factorial(n+1).Cmp(new(big.Int).SetUint64(math.MaxUint64)) <= 0 {
		n++
	}
	return n
}()

// heapPermutation is an iterative Heap's algorithm over a private copy of the
// input. The first call to next returns the input order itself.
type heapPermutation struct {
	a       []string
	c       []int
	i       int
	started bool
}

func newHeapPermutation(items []string) heapPermutation {
	return heapPermutation{
		a: append([]string(nil), items...),
		c: make([]int, len(items)),
		i: 1,
	}
}

func (h *heapPermutation) next() ([]string, bool) {
	if !h.started {
		h.started = true
		return h.a, true
	}

	for h.i < len(h.a) {
		if h.c[h.i] < h.i {
			if h.i%2 == 0 {
				h.a[0], h.a[h.i] = h.a[h.i], h.a[0]
			} else {
				h.a[h.c[h.i]], h.a[h.i] = h.a[h.i], h.a[h.c[h.i]]
			}
			h.c[h.i]++
			h.i = 1
			return h.a, true
		}
		h.c[h.i] = 0
		h.i++
	}
	return nil, false
}
