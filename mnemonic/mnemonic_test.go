/*
   Copyright (C) BABEC. All rights reserved.
   Copyright (C) THL A29 Limited, a Tencent company. All rights reserved.

   SPDX-License-Identifier: Apache-2.0
*/

package mnemonic

import (
	"encoding/hex"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type vector struct {
	entropy  string
	mnemonic string
	seed     string
}

// testVectors returns the published test vectors, seeds stretched with
// the passphrase "TREZOR".
func testVectors() []vector {
	return []vector{
		{
			entropy:  "00000000000000000000000000000000",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
			seed:     "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		},
		{
			entropy:  "7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f",
			mnemonic: "legal winner thank year wave sausage worth useful legal winner thank yellow",
			seed:     "2e8905819b8723fe2c1d161860e5ee1830318dbf49a83bd451cfb8440c28bd6fa457fe1296106559a3c80937a1c1069be3a3a5bd381ee6260e8d9739fce1f607",
		},
		{
			entropy:  "80808080808080808080808080808080",
			mnemonic: "letter advice cage absurd amount doctor acoustic avoid letter advice cage above",
			seed:     "d71de856f81a8acc65e6fc851a38d4d7ec216fd0796d0a6827a3ad6ed5511a30fa280f12eb2e47ed2ac03b5c462a0358d18d69fe4f985ec81778c1b370b652a8",
		},
		{
			entropy:  "ffffffffffffffffffffffffffffffff",
			mnemonic: "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
			seed:     "ac27495480225222079d7be181583751e86f571027b0497b5b5d11218e0a8a13332572917f0f8e5a589620c6f15b11c61dee327651a14c34e18231052e48c069",
		},
		{
			entropy:  "9e885d952ad362caeb4efe34a8e91bd2",
			mnemonic: "ozone drill grab fiber curtain grace pudding thank cruise elder eight picnic",
			seed:     "274ddc525802f7c828d8ef7ddbcdc5304e87ac3535913611fbbfa986d0c9e5476c91689f9c8a54fd55bd38606aa6a8595ad213d4c9c9f9aca3fb217069a41028",
		},
		{
			entropy:  "23db8160a31d3e0dca3688ed941adbf3",
			mnemonic: "cat swing flag economy stadium alone churn speed unique patch report train",
			seed:     "deb5f45449e615feff5640f2e49f933ff51895de3b4381832b3139941c57b59205a42480c52175b6efcffaa58a2503887c1e8b363a707256bdd2b587b46541f5",
		},
		{
			entropy:  "6610b25967cdcca9d59875f5cb50b0ea75433311869e930b",
			mnemonic: "gravity machine north sort system female filter attitude volume fold club stay feature office ecology stable narrow fog",
			seed:     "628c3827a8823298ee685db84f55caa34b5cc195a778e52d45f59bcf75aba68e4d7590e101dc414bc1bbd5737666fbbef35d1f1903953b66624f910feef245ac",
		},
		{
			entropy:  "066dca1a2bb7e8a1db2832148ce9933eea0f3ac9548d793112d9a95c9407efad",
			mnemonic: "all hour make first leader extend hole alien behind guard gospel lava path output census museum junior mass reopen famous sing advance salt reform",
			seed:     "26e975ec644423f4a4c4f4215ef09b4bd7ef924e85d1d17c4cf3f136c2863cf6df0a475045652c57eb5fb41513ca2a2d67722b77e954b4b3fc11f7590449191d",
		},
		{
			entropy:  "0000000000000000000000000000000000000000000000000000000000000000",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art",
			seed:     "bda85446c68413707090a52022edd26a1c9462295029f2e60cd7c4f2bbd3097170af7a4d73245cafa9c3cca8d561a7c3de6f5d4a10be8ed2a5e608d68f92fcc8",
		},
	}
}

func TestNewMnemonic(t *testing.T) {
	for _, v := range testVectors() {
		entropy, err := hex.DecodeString(v.entropy)
		assert.NoError(t, err)

		mnemonic, err := NewMnemonic(entropy)
		assert.NoError(t, err)
		assert.Equal(t, v.mnemonic, mnemonic)

		seed := NewSeed(mnemonic, "TREZOR")
		assert.Equal(t, v.seed, hex.EncodeToString(seed))
	}
}

func TestEntropyFromMnemonic(t *testing.T) {
	for _, v := range testVectors() {
		want, err := hex.DecodeString(v.entropy)
		assert.NoError(t, err)

		entropy, err := EntropyFromMnemonic(v.mnemonic)
		assert.NoError(t, err)
		assert.Equal(t, want, entropy)
	}
}

func TestEntropyRoundTrip(t *testing.T) {
	for _, bits := range []int{128, 160, 192, 224, 256} {
		entropy, err := NewEntropy(bits)
		assert.NoError(t, err)
		assert.Equal(t, bits/8, len(entropy))

		mnemonic, err := NewMnemonic(entropy)
		assert.NoError(t, err)
		assert.Equal(t, (bits+bits/32)/11, len(strings.Fields(mnemonic)))

		decoded, err := EntropyFromMnemonic(mnemonic)
		assert.NoError(t, err)
		assert.Equal(t, entropy, decoded)
	}
}

func TestNewEntropyErrors(t *testing.T) {
	for _, bits := range []int{0, 32, 96, 127, 129, 130, 264, 288} {
		_, err := NewEntropy(bits)
		assert.ErrorIs(t, err, ErrEntropyLengthInvalid, "bits=%d", bits)
	}
}

func TestNewMnemonicErrors(t *testing.T) {
	for _, size := range []int{0, 4, 15, 17, 33} {
		_, err := NewMnemonic(make([]byte, size))
		assert.ErrorIs(t, err, ErrEntropyLengthInvalid, "size=%d", size)
	}
}

func TestEntropyFromMnemonicErrors(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
		err      error
	}{
		{
			name:     "empty sentence",
			mnemonic: "",
			err:      ErrInvalidMnemonic,
		},
		{
			name:     "eleven words",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon",
			err:      ErrInvalidMnemonic,
		},
		{
			name:     "thirteen words",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about about",
			err:      ErrInvalidMnemonic,
		},
		{
			name:     "word outside the list",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon zzzzz",
			err:      ErrInvalidMnemonic,
		},
		{
			name:     "checksum mismatch",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon",
			err:      ErrChecksumIncorrect,
		},
		{
			name:     "swapped words break checksum",
			mnemonic: "about abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon",
			err:      ErrChecksumIncorrect,
		},
	}

	for _, test := range tests {
		_, err := EntropyFromMnemonic(test.mnemonic)
		assert.ErrorIs(t, err, test.err, test.name)
	}
}

func TestIsMnemonicValid(t *testing.T) {
	assert.True(t, IsMnemonicValid("radar blur cabbage chef fix engine embark joy scheme fiction master release"))
	for _, v := range testVectors() {
		assert.True(t, IsMnemonicValid(v.mnemonic))
	}

	assert.False(t, IsMnemonicValid("radar blur cabbage"))
	assert.False(t, IsMnemonicValid("zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo"))
}

func TestNewSeedWithRounds(t *testing.T) {
	mnemonic := testVectors()[0].mnemonic

	standard := NewSeedWithRounds(mnemonic, "TREZOR", StandardSeedRounds)
	assert.Equal(t, NewSeed(mnemonic, "TREZOR"), standard)

	stronger := NewSeedWithRounds(mnemonic, "TREZOR", 4096)
	assert.Equal(t,
		"3d39670caaa237f5fb2999474413733b59d9dfe12b2cccfe878069a2f605ae467a669619a0a45c7b3378c4c812b80be677c1b8f8f60db9383f1ed265c45eb41c",
		hex.EncodeToString(stronger))
	assert.NotEqual(t, standard, stronger)
}

func TestNewSeedEmptyPassphrase(t *testing.T) {
	seed := NewSeed(testVectors()[0].mnemonic, "")
	assert.Equal(t,
		"5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4",
		hex.EncodeToString(seed))
}

func TestNewSeedWithErrorChecking(t *testing.T) {
	v := testVectors()[0]

	seed, err := NewSeedWithErrorChecking(v.mnemonic, "TREZOR")
	assert.NoError(t, err)
	assert.Equal(t, v.seed, hex.EncodeToString(seed))

	_, err = NewSeedWithErrorChecking("not a mnemonic", "TREZOR")
	assert.ErrorIs(t, err, ErrInvalidMnemonic)
}

func TestWordListProperties(t *testing.T) {
	assert.Equal(t, 2048, len(wordList))
	assert.True(t, sort.StringsAreSorted(wordList))
	assert.Equal(t, 2048, len(wordMap))

	prefixes := make(map[string]string, len(wordList))
	for _, w := range wordList {
		assert.GreaterOrEqual(t, len(w), 3)
		assert.LessOrEqual(t, len(w), 8)

		prefix := w
		if len(prefix) > 4 {
			prefix = prefix[:4]
		}
		prev, dup := prefixes[prefix]
		assert.False(t, dup, "words %q and %q share prefix %q", prev, w, prefix)
		prefixes[prefix] = w
	}
}
