package cli

import (
	"strings"
	"testing"

	"github.com/Davincible/seedxor/pkg/config"
	"github.com/Davincible/seedxor/pkg/crypto/mnemonic"
	"github.com/Davincible/seedxor/pkg/crypto/seedxor"
	"github.com/Davincible/seedxor/pkg/crypto/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCommandJSON(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		shares int
	}{
		{"two shares", coldcardResult, 2},
		{"three shares", coldcardResult, 3},
		{"twelve words", legalYellow, 4},
		{"single share", legalYellow, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCommand(t, nil, "", "split", "--json", "-n", itoa(tt.shares), tt.input)
			require.NoError(t, res.err)

			var out SplitResult
			decodeJSON(t, res.stdout, &out)
			assert.Equal(t, tt.shares, out.Total)
			assert.True(t, out.Validated)
			require.Len(t, out.Shares, tt.shares)

			parts := make([]*seedxor.Mnemonic, len(out.Shares))
			for i, share := range out.Shares {
				assert.Equal(t, len(strings.Fields(tt.input)), share.WordCount)
				assert.Equal(t, "english", share.Language)

				m, err := seedxor.Parse(share.Mnemonic, wordlist.English)
				require.NoError(t, err)
				assert.Equal(t, m.Fingerprint(), share.Fingerprint)
				parts[i] = m
			}
			assert.Equal(t, tt.input, seedxor.Combine(parts).Words())
		})
	}
}

func TestSplitCommandShortInput(t *testing.T) {
	res := runCommand(t, nil, "", "split", "--json", "--short",
		"lega winn than year wave saus wort usef lega winn than yell")
	require.NoError(t, res.err)

	var out SplitResult
	decodeJSON(t, res.stdout, &out)
	require.Len(t, out.Shares, 2)
	for _, share := range out.Shares {
		for _, word := range strings.Fields(share.Short) {
			assert.LessOrEqual(t, len(word), seedxor.ShortWordLength)
		}
	}
}

func TestSplitCommandReadsStdin(t *testing.T) {
	res := runCommand(t, nil, coldcardA+"\n", "split", "--json", "-n", "3")
	require.NoError(t, res.err)

	var out SplitResult
	decodeJSON(t, res.stdout, &out)
	assert.Len(t, out.Shares, 3)
	assert.Contains(t, res.stderr, "Enter the mnemonic to split")
}

func TestSplitCommandNoValidate(t *testing.T) {
	input := badChecksum(t, legalYellow)

	res := runCommand(t, nil, "", "split", "--json", input)
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, mnemonic.ErrInvalidChecksum)

	res = runCommand(t, nil, "", "split", "--json", "--no-validate", input)
	require.NoError(t, res.err)

	var out SplitResult
	decodeJSON(t, res.stdout, &out)
	assert.False(t, out.Validated)
	require.Len(t, out.Shares, 2)

	want, err := mnemonic.ParseWithoutChecksum(input, wordlist.English)
	require.NoError(t, err)

	a, err := seedxor.Parse(out.Shares[0].Mnemonic, wordlist.English)
	require.NoError(t, err)
	b, err := seedxor.Parse(out.Shares[1].Mnemonic, wordlist.English)
	require.NoError(t, err)
	assert.Equal(t, want.Entropy(), a.Xor(b).Entropy())
}

func TestSplitCommandConfigDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Defaults.Shares = 5

	res := runCommand(t, cfg, "", "split", "--json", legalYellow)
	require.NoError(t, res.err)

	var out SplitResult
	decodeJSON(t, res.stdout, &out)
	assert.Equal(t, 5, out.Total)

	// An explicit flag beats the configuration.
	res = runCommand(t, cfg, "", "split", "--json", "-n", "2", legalYellow)
	require.NoError(t, res.err)
	decodeJSON(t, res.stdout, &out)
	assert.Equal(t, 2, out.Total)
}

func TestSplitCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  error
	}{
		{"zero shares", []string{"split", "-n", "0", legalYellow}, nil},
		{"too many shares", []string{"split", "-n", "256", legalYellow}, nil},
		{"bad word count", []string{"split", "legal winner thank"}, mnemonic.ErrBadWordCount},
		{"unknown word", []string{"split", strings.Replace(legalYellow, "wave", "qqqq", 1)}, mnemonic.ErrUnknownWord},
		{"bad language", []string{"split", "-l", "klingon", legalYellow}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCommand(t, nil, "", tt.args...)
			require.Error(t, res.err)
			if tt.err != nil {
				assert.ErrorIs(t, res.err, tt.err)
			}
			assert.Empty(t, res.stdout)
		})
	}
}

func TestSplitCommandText(t *testing.T) {
	res := runCommand(t, nil, "", "split", "-n", "3", coldcardResult)
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, "=== SEED XOR SHARES ===")
	assert.Contains(t, res.stdout, "Share 1 of 3")
	assert.Contains(t, res.stdout, "Share 3 of 3")
	assert.Contains(t, res.stdout, "SECURITY WARNING")
	assert.NotContains(t, res.stdout, coldcardResult)
}
