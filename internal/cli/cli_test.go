package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/Davincible/seedxor/pkg/config"
	"github.com/Davincible/seedxor/pkg/crypto/mnemonic"
	"github.com/Davincible/seedxor/pkg/crypto/wordlist"
	"github.com/stretchr/testify/require"
)

const (
	coldcardA      = "romance wink lottery autumn shop bring dawn tongue range crater truth ability miss spice fitness easy legal release recall obey exchange recycle dragon room"
	coldcardB      = "lion misery divide hurry latin fluid camp advance illegal lab pyramid unaware eager fringe sick camera series noodle toy crowd jeans select depth lounge"
	coldcardC      = "vault nominee cradle silk own frown throw leg cactus recall talent worry gadget surface shy planet purpose coffee drip few seven term squeeze educate"
	coldcardResult = "silent toe meat possible chair blossom wait occur this worth option bag nurse find fish scene bench asthma bike wage world quit primary indoor"

	legalYellow = "legal winner thank year wave sausage worth useful legal winner thank yellow"
)

type cmdResult struct {
	stdout string
	stderr string
	err    error
}

// runCommand executes the command tree with args and stdin, using cfg or the
// default configuration.
func runCommand(t *testing.T, cfg *config.Config, stdin string, args ...string) cmdResult {
	t.Helper()

	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	var stdout, stderr bytes.Buffer
	root := NewRootCommand(cfg, level, "test")
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--no-color"}, args...))

	err := root.Execute()
	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func decodeJSON(t *testing.T, data string, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(data), v), data)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// badChecksum replaces the last word of text so that the checksum fails.
func badChecksum(t *testing.T, text string) string {
	t.Helper()

	words := strings.Fields(text)
	dict, err := wordlist.Words(wordlist.English)
	require.NoError(t, err)
	for _, candidate := range dict {
		words[len(words)-1] = candidate
		joined := strings.Join(words, " ")
		if _, err := mnemonic.Parse(joined, wordlist.English); errors.Is(err, mnemonic.ErrInvalidChecksum) {
			return joined
		}
	}
	t.Fatal("no word breaks the checksum")
	return ""
}
