package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Davincible/seedxor/internal/validation"
	"github.com/Davincible/seedxor/pkg/crypto/seedxor"
	"github.com/Davincible/seedxor/pkg/crypto/wordlist"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// MnemonicOutput is the JSON form of a single mnemonic.
type MnemonicOutput struct {
	Mnemonic    string `json:"mnemonic"`
	Short       string `json:"short,omitempty"`
	WordCount   int    `json:"word_count"`
	Language    string `json:"language"`
	Fingerprint string `json:"fingerprint"`
}

func newMnemonicOutput(m *seedxor.Mnemonic, short bool) MnemonicOutput {
	out := MnemonicOutput{
		Mnemonic:    m.Words(),
		WordCount:   m.WordCount(),
		Language:    m.Language().String(),
		Fingerprint: m.Fingerprint(),
	}
	if short {
		out.Short = m.ShortString()
	}
	return out
}

func jsonOutput(cmd *cobra.Command) bool {
	outputJSON, _ := cmd.Flags().GetBool("json")
	return outputJSON
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// languageFlag resolves the --language flag, falling back to the configured
// default when the flag was not given.
func languageFlag(cmd *cobra.Command, name, fallback string) (wordlist.Language, error) {
	if !cmd.Flags().Changed("language") {
		name = fallback
	}
	return validation.ValidateLanguage(name)
}

// mnemonicFromArgs joins positional words into one phrase, or reads the
// phrase from the terminal when there are none.
func mnemonicFromArgs(cmd *cobra.Command, args []string, prompt string) (string, error) {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		var err error
		text, err = newInputReader(cmd).readLine(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read mnemonic: %w", err)
		}
	}

	text = validation.SanitizeInput(text)
	if err := validation.ValidateMnemonicInput(text); err != nil {
		return "", err
	}
	return text, nil
}

// inputReader reads secrets without echo when stdin is a terminal and
// falls back to plain line reading otherwise.
type inputReader struct {
	prompts  io.Writer
	terminal bool
	lines    *bufio.Reader
}

func newInputReader(cmd *cobra.Command) *inputReader {
	in := cmd.InOrStdin()
	return &inputReader{
		prompts:  cmd.ErrOrStderr(),
		terminal: in == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())),
		lines:    bufio.NewReader(in),
	}
}

func (r *inputReader) readLine(prompt string) (string, error) {
	fmt.Fprint(r.prompts, prompt)

	if r.terminal {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(r.prompts)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(secret)), nil
	}

	line, err := r.lines.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLines collects entries one per line until an empty line or EOF.
func (r *inputReader) readLines(label string) ([]string, error) {
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(r.prompts)
	yellow.Fprintf(r.prompts, "Enter %ss (one per line)\n", label)
	fmt.Fprintln(r.prompts, "Press Enter on an empty line when done")
	fmt.Fprintln(r.prompts)

	var lines []string
	for {
		line, err := r.readLine(fmt.Sprintf("%s %d: ", label, len(lines)+1))
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == "" {
			if len(lines) == 0 {
				continue
			}
			break
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("no %ss provided", label)
	}
	return lines, nil
}

// printMnemonic writes m in groups of four words, numbered.
func printMnemonic(w io.Writer, m *seedxor.Mnemonic, short bool) {
	words := strings.Fields(m.DisplayString(short))
	for k := 0; k < len(words); k += 4 {
		end := k + 4
		if end > len(words) {
			end = len(words)
		}
		fmt.Fprintf(w, "  %2d. %s\n", k+1, strings.Join(words[k:end], " "))
	}
}

func printSecurityWarning(w io.Writer) {
	red := color.New(color.FgRed, color.Bold)
	fmt.Fprintln(w)
	red.Fprintln(w, "⚠️  SECURITY WARNING:")
	fmt.Fprintln(w, "- Every share is needed to recover the seed; losing one loses the seed")
	fmt.Fprintln(w, "- Store each share in a different secure location")
	fmt.Fprintln(w, "- Each share is a valid wallet seed and can hold a decoy balance")
	fmt.Fprintln(w, "- Test recovery with 'seedxor combine' before relying on this backup")
}
