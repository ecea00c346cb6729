/*
   Copyright (C) BABEC. All rights reserved.
   Copyright (C) THL A29 Limited, a Tencent company. All rights reserved.

   SPDX-License-Identifier: Apache-2.0
*/

// Package mnemonic converts entropy to human readable mnemonic sentences
// and back, and stretches sentences into binary seeds suitable for
// hierarchical deterministic key derivation.
package mnemonic

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrEntropyLengthInvalid describes an error in which the entropy
	// passed in is not between 128 and 256 bits or is not a multiple
	// of 32 bits.
	ErrEntropyLengthInvalid = errors.New("entropy length must be " +
		"[128, 256] and a multiple of 32")

	// ErrInvalidMnemonic describes an error in which the given sentence
	// has an invalid word count or contains a word outside the word
	// list.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrChecksumIncorrect describes an error in which the checksum
	// bits embedded in the sentence do not match the decoded entropy.
	ErrChecksumIncorrect = errors.New("checksum incorrect")
)

var (
	last11BitsMask = big.NewInt(2047)
	bigOne         = big.NewInt(1)
)

// NewEntropy returns random entropy bytes suitable for NewMnemonic.  The
// bit size must be between 128 and 256 and a multiple of 32.  The bytes
// come from a single read of the system entropy source.
func NewEntropy(bitSize int) ([]byte, error) {
	if err := validateEntropyBitSize(bitSize); err != nil {
		return nil, err
	}

	entropy := make([]byte, bitSize/8)
	if _, err := rand.Read(entropy); err != nil {
		return nil, err
	}
	return entropy, nil
}

// NewMnemonic encodes the given entropy as a mnemonic sentence.  A
// checksum of bitlen/32 bits is appended to the entropy and the result
// is split into 11 bit groups, each selecting one word from the word
// list.
func NewMnemonic(entropy []byte) (string, error) {
	entropyBitLen := len(entropy) * 8
	if err := validateEntropyBitSize(entropyBitLen); err != nil {
		return "", err
	}

	checksumBitLen := entropyBitLen / 32
	sentenceLen := (entropyBitLen + checksumBitLen) / 11

	// Append the checksum bits below the entropy so the combined value
	// splits evenly into 11 bit groups.
	ent := new(big.Int).SetBytes(entropy)
	ent.Lsh(ent, uint(checksumBitLen))
	ent.Or(ent, big.NewInt(int64(checksumByte(entropy)>>uint(8-checksumBitLen))))

	// Extract 11 bits at a time from the low end, mapping each group
	// to its word.  The final word is produced first.
	words := make([]string, sentenceLen)
	idx := new(big.Int)
	for i := sentenceLen - 1; i >= 0; i-- {
		idx.And(ent, last11BitsMask)
		words[i] = wordList[idx.Uint64()]
		ent.Rsh(ent, 11)
	}

	return strings.Join(words, " "), nil
}

// EntropyFromMnemonic decodes the sentence back into its entropy bytes,
// verifying the word count, word membership, and embedded checksum.
func EntropyFromMnemonic(mnemonic string) ([]byte, error) {
	words := strings.Fields(mnemonic)
	numWords := len(words)
	if numWords%3 != 0 || numWords < 12 || numWords > 24 {
		return nil, ErrInvalidMnemonic
	}

	ent := new(big.Int)
	for _, w := range words {
		index, ok := wordMap[w]
		if !ok {
			return nil, fmt.Errorf("%w: word %q is not in the word list",
				ErrInvalidMnemonic, w)
		}
		ent.Lsh(ent, 11)
		ent.Or(ent, big.NewInt(int64(index)))
	}

	checksumBitLen := uint(numWords / 3)
	checksumMask := new(big.Int).Lsh(bigOne, checksumBitLen)
	checksumMask.Sub(checksumMask, bigOne)

	checksum := new(big.Int).And(ent, checksumMask)
	ent.Rsh(ent, checksumBitLen)

	entropy := padByteSlice(ent.Bytes(), numWords/3*4)
	expected := int64(checksumByte(entropy) >> (8 - checksumBitLen))
	if checksum.Int64() != expected {
		return nil, ErrChecksumIncorrect
	}

	return entropy, nil
}

// IsMnemonicValid reports whether the sentence is well formed and carries
// a correct checksum.
func IsMnemonicValid(mnemonic string) bool {
	_, err := EntropyFromMnemonic(mnemonic)
	return err == nil
}

// validateEntropyBitSize ensures the bit size is 128-256 and a multiple
// of 32.
func validateEntropyBitSize(bitSize int) error {
	if (bitSize%32) != 0 || bitSize < 128 || bitSize > 256 {
		return ErrEntropyLengthInvalid
	}
	return nil
}

// checksumByte returns the first byte of the SHA256 digest of data.  The
// checksum of an entropy buffer is its high order bitlen/32 bits.
func checksumByte(data []byte) byte {
	hash := sha256.Sum256(data)
	return hash[0]
}

// padByteSlice left pads slice with zero bytes up to length, preserving
// leading zeros that big integer conversion drops.
func padByteSlice(slice []byte, length int) []byte {
	offset := length - len(slice)
	if offset <= 0 {
		return slice
	}
	newSlice := make([]byte, length)
	copy(newSlice[offset:], slice)
	return newSlice
}
