/*
   Copyright (C) BABEC. All rights reserved.
   Copyright (C) THL A29 Limited, a Tencent company. All rights reserved.

   SPDX-License-Identifier: Apache-2.0
*/

package mnemonic

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
)

// StandardSeedRounds is the PBKDF2 iteration count used by NewSeed.
const StandardSeedRounds = 2048

// SeedBytes is the length of the stretched seed.
const SeedBytes = 64

// NewSeed stretches the mnemonic sentence into a 64 byte seed using
// PBKDF2-HMAC-SHA512 with the standard iteration count.  The passphrase
// may be empty.  The sentence is not validated; use
// NewSeedWithErrorChecking when the sentence comes from user input.
func NewSeed(mnemonic, passphrase string) []byte {
	return NewSeedWithRounds(mnemonic, passphrase, StandardSeedRounds)
}

// NewSeedWithRounds stretches the mnemonic sentence with an explicit
// PBKDF2 iteration count.  Seeds are only reproducible with the same
// count, so callers that raise it must supply the same value when
// restoring.
func NewSeedWithRounds(mnemonic, passphrase string, rounds int) []byte {
	return pbkdf2.Key([]byte(mnemonic), []byte("mnemonic"+passphrase),
		rounds, SeedBytes, sha512.New)
}

// NewSeedWithErrorChecking validates the mnemonic sentence before
// stretching it.
func NewSeedWithErrorChecking(mnemonic, passphrase string) ([]byte, error) {
	if _, err := EntropyFromMnemonic(mnemonic); err != nil {
		return nil, err
	}
	return NewSeed(mnemonic, passphrase), nil
}
