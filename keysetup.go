package main

import (
	"bufio"
	"fmt"

	"github.com/czh0526/hd-keychain/hdkeychain"
	"github.com/czh0526/hd-keychain/internal/prompt"
	"github.com/czh0526/hd-keychain/internal/zero"
	"github.com/czh0526/hd-keychain/keyring"
	"github.com/czh0526/hd-keychain/mnemonic"
)

// obtainMnemonic returns the sentence the keychain is built from.  A
// fresh sentence is generated from system entropy unless --restore asked
// for an existing one to be entered.
func obtainMnemonic(cfg *config, reader *bufio.Reader) (string, error) {
	if cfg.Restore {
		return prompt.Mnemonic(reader)
	}

	entropy, err := mnemonic.NewEntropy(cfg.EntropyBits)
	if err != nil {
		return "", err
	}
	defer zero.Bytes(entropy)

	return mnemonic.NewMnemonic(entropy)
}

// buildKeyRing stretches the sentence into the binary seed, generates
// the master key for the active network, and wraps it in a keyring.
// The seed is erased before returning.
func buildKeyRing(sentence string, passphrase []byte, cfg *config) (
	*keyring.KeyRing, error) {

	seed := mnemonic.NewSeedWithRounds(sentence, string(passphrase),
		cfg.Rounds)
	defer zero.Bytes(seed)

	masterKey, err := hdkeychain.NewMaster(seed, activeNet.Params)
	if err != nil {
		return nil, err
	}

	return keyring.New(masterKey, nil)
}

// printDerivedKey derives the configured path from the keyring and
// prints the textual forms of the result.  The caller's copy of the
// derived key is erased before returning.
func printDerivedKey(ring *keyring.KeyRing, cfg *config) error {
	extKey, err := ring.DeriveKey(cfg.path)
	if err != nil {
		return err
	}
	defer extKey.Zero()

	pubKey, err := extKey.Neuter()
	if err != nil {
		return err
	}

	wif, err := extKey.WIF(activeNet.Params)
	if err != nil {
		return err
	}

	fmt.Printf("xprv \t=> %v \n", extKey)
	fmt.Printf("xpub \t=> %v \n", pubKey)
	fmt.Printf("wif \t=> %v \n", wif)
	return nil
}
