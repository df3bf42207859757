package seedxor

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/Davincible/seedxor/pkg/crypto/mnemonic"
	"github.com/Davincible/seedxor/pkg/crypto/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunk splits a mnemonic into phrases of size words each.
func chunk(text string, size int) []string {
	words := strings.Fields(text)
	var phrases []string
	for i := 0; i < len(words); i += size {
		phrases = append(phrases, strings.Join(words[i:i+size], " "))
	}
	return phrases
}

func collect(t *testing.T, r *Recoverer) []string {
	t.Helper()
	var found []string
	for r.Next(context.Background()) {
		found = append(found, r.Mnemonic().Words())
	}
	require.NoError(t, r.Err())
	return found
}

func TestRecoverPhrases(t *testing.T) {
	phrases := chunk(coldcardA, 6)
	// Scramble the phrase order.
	phrases[0], phrases[3] = phrases[3], phrases[0]
	phrases[1], phrases[2] = phrases[2], phrases[1]

	r, err := NewRecoverer(phrases, RecoverOptions{Language: wordlist.English, KeepPhrases: true})
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(24), r.Total())

	found := collect(t, r)
	assert.Contains(t, found, coldcardA)
	assert.Equal(t, uint64(len(found)), r.Good())
	assert.Equal(t, uint64(24), r.Good()+r.Bad())

	for _, words := range found {
		_, err := mnemonic.Parse(words, wordlist.English)
		assert.NoError(t, err)
	}

	assert.False(t, r.Next(context.Background()))
	assert.Nil(t, r.Mnemonic())
}

func TestRecoverAbbreviatedPhrases(t *testing.T) {
	m := mustParse(t, coldcardB)
	phrases := chunk(m.ShortString(), 4)
	phrases[0], phrases[5] = phrases[5], phrases[0]

	r, err := NewRecoverer(phrases, RecoverOptions{KeepPhrases: true})
	require.NoError(t, err)
	assert.Equal(t, wordlist.English, r.Language())
	assert.Len(t, r.Units(), 6)

	found := collect(t, r)
	assert.Contains(t, found, coldcardB)
	assert.Equal(t, uint64(720), r.Good()+r.Bad())
}

func TestRecoverDeterministicOrder(t *testing.T) {
	phrases := chunk(coldcardC, 4)

	first, err := NewRecoverer(phrases, RecoverOptions{Language: wordlist.English, KeepPhrases: true})
	require.NoError(t, err)
	second, err := NewRecoverer(phrases, RecoverOptions{Language: wordlist.English, KeepPhrases: true})
	require.NoError(t, err)

	found := collect(t, first)
	assert.Equal(t, found, collect(t, second))
	// The input order is tried first.
	require.NotEmpty(t, found)
	assert.Equal(t, coldcardC, found[0])
}

func TestRecoverWordsFirstCandidate(t *testing.T) {
	r, err := NewRecoverer(strings.Fields(legalYellow), RecoverOptions{})
	require.NoError(t, err)
	assert.Equal(t, Factorial(12), r.Total())

	require.True(t, r.Next(context.Background()))
	assert.Equal(t, legalYellow, r.Mnemonic().Words())
	assert.Equal(t, uint64(1), r.Good())
	assert.Equal(t, uint64(0), r.Bad())
}

func TestRecoverCancellation(t *testing.T) {
	r, err := NewRecoverer(strings.Fields(legalYellow), RecoverOptions{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, r.Next(ctx))
	assert.ErrorIs(t, r.Err(), context.Canceled)
	assert.False(t, r.Next(context.Background()))
}

func TestRecoverInfeasible(t *testing.T) {
	_, err := NewRecoverer(strings.Fields(coldcardA), RecoverOptions{})
	assert.ErrorIs(t, err, ErrInfeasibleSearch)

	var infeasible *InfeasibleSearchError
	require.True(t, errors.As(err, &infeasible))
	assert.Equal(t, 24, infeasible.Units)
	assert.Equal(t, Factorial(24), infeasible.Total)

	// The same words as phrases are fine.
	_, err = NewRecoverer(chunk(coldcardA, 3), RecoverOptions{KeepPhrases: true})
	assert.NoError(t, err)
}

func TestRecoverInputErrors(t *testing.T) {
	_, err := NewRecoverer(nil, RecoverOptions{})
	assert.ErrorIs(t, err, ErrNoWords)

	_, err = NewRecoverer([]string{"  "}, RecoverOptions{})
	assert.ErrorIs(t, err, ErrNoWords)

	_, err = NewRecoverer(strings.Fields("abandon about zoo"), RecoverOptions{})
	assert.ErrorIs(t, err, mnemonic.ErrBadWordCount)

	tokens := strings.Fields(legalYellow)
	tokens[4] = "ab"
	_, err = NewRecoverer(tokens, RecoverOptions{Language: wordlist.English})
	var unknown *wordlist.UnknownWordError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, 4, unknown.Index)
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, big.NewInt(1), Factorial(0))
	assert.Equal(t, big.NewInt(1), Factorial(1))
	assert.Equal(t, big.NewInt(720), Factorial(6))
	assert.Equal(t, "2432902008176640000", Factorial(20).String())
	assert.True(t, Factorial(20).IsUint64())
	assert.False(t, Factorial(21).IsUint64())
	assert.Equal(t, 20, MaxUnits)
}

func TestHeapPermutation(t *testing.T) {
	h := newHeapPermutation([]string{"a", "b", "c", "d"})
	seen := make(map[string]bool)
	for {
		order, ok := h.next()
		if !ok {
			break
		}
		seen[strings.Join(order, "")] = true
	}
	assert.Len(t, seen, 24)
}

func BenchmarkRecoverPhrases(b *testing.B) {
	phrases := chunk(coldcardA, 4)
	for i := 0; i < b.N; i++ {
		r, err := NewRecoverer(phrases, RecoverOptions{Language: wordlist.English, KeepPhrases: true})
		if err != nil {
			b.Fatal(err)
		}
		for r.Next(context.Background()) {
		}
	}
}
