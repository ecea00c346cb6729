// Package prompt collects the interactive input the keychain setup
// needs: an existing mnemonic sentence when restoring, and the optional
// passphrase that is mixed into the seed stretching.
package prompt

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/czh0526/hd-keychain/mnemonic"
)

// Mnemonic prompts for an existing mnemonic sentence.  The input is
// normalized to single spaced lower case words and must pass the word
// list and checksum validation before it is accepted.
func Mnemonic(reader *bufio.Reader) (string, error) {
	for {
		fmt.Print("Enter your mnemonic sentence: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		sentence := strings.Join(strings.Fields(strings.ToLower(line)), " ")

		if !mnemonic.IsMnemonicValid(sentence) {
			fmt.Println("Invalid mnemonic specified.  The sentence " +
				"must be 12 to 24 words from the word list with " +
				"a valid checksum.")
			continue
		}

		return sentence, nil
	}
}

// Passphrase prompts for the optional passphrase.  Empty input is
// accepted.  When confirm is set a second entry must match before the
// passphrase is returned.
func Passphrase(reader *bufio.Reader, confirm bool) ([]byte, error) {
	for {
		pass, err := readPass(reader,
			"Enter an optional passphrase (may be empty): ")
		if err != nil {
			return nil, err
		}
		if !confirm {
			return pass, nil
		}

		again, err := readPass(reader, "Confirm passphrase: ")
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(pass, again) {
			fmt.Println("The entered passphrases do not match.")
			continue
		}

		return pass, nil
	}
}

// readPass reads a single passphrase, without echo when stdin is a
// terminal.
func readPass(reader *bufio.Reader, promptText string) ([]byte, error) {
	fmt.Print(promptText)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		pass, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return nil, err
		}
		return bytes.TrimSpace(pass), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil {
		return nil, err
	}
	return bytes.TrimSpace([]byte(line)), nil
}
