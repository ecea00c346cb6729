// Package hdkeychain provides hierarchical deterministic extended keys:
// master key generation from a seed, hardened and normal child derivation
// for private and public branches, and the canonical serialized form.
package hdkeychain

import (
	"bytes"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/czh0526/hd-keychain/internal/zero"
)

const (
	// HardenedKeyStart is the first child number of a hardened key.  Child
	// numbers at or above this value carry the hardened flag in their top
	// bit; callers of Derive and DeriveHardened pass the logical index
	// below it and never the encoded form.
	HardenedKeyStart = 0x80000000 // 2^31

	// MinSeedBytes is the minimum number of bytes allowed for a seed.
	MinSeedBytes = 16 // 128 bits

	// MaxSeedBytes is the maximum number of bytes allowed for a seed.
	MaxSeedBytes = 64 // 512 bits

	// RecommendedSeedLen is the recommended length in bytes for a seed.
	RecommendedSeedLen = 32 // 256 bits

	// serializedKeyLen is the byte length of a serialized extended key:
	// version (4) || depth (1) || parent fingerprint (4) || child number
	// (4) || chain code (32) || key data (33).
	serializedKeyLen = 4 + 1 + 4 + 4 + 32 + 33 // 78 bytes

	// keyDataLen is the byte length of the private scalar, the chain
	// code, and the X coordinate of a compressed public key.
	keyDataLen = 32

	// maxUint8 is the maximum depth of a derivation chain.  A key at this
	// depth cannot derive children.
	maxUint8 = 1<<8 - 1
)

const (
	// MasterDomainKey is the HMAC-SHA512 domain string used by NewMaster.
	// It is the interchange-standard domain, so master keys built from
	// published seed vectors serialize to the published strings.
	MasterDomainKey = "Bitcoin seed"

	// DefaultDomainKey is the HMAC-SHA512 domain string selected by
	// NewMasterWithDomain when the caller passes an empty domain.  Keys
	// generated under it form a parallel tree that shares no material
	// with the interchange-standard one.
	DefaultDomainKey = "default_seed"
)

var (
	// ErrDeriveHardFromPublic describes an error in which the caller
	// attempted to derive a hardened extended key from a public key.
	// Hardened derivation consumes the parent private scalar, so no
	// amount of retrying can make it work.
	ErrDeriveHardFromPublic = errors.New("cannot derive a hardened key " +
		"from a public key")

	// ErrDeriveBeyondMaxDepth describes an error in which the caller
	// has attempted to derive more than 255 keys deep, which would
	// overflow the depth field of a child key.
	ErrDeriveBeyondMaxDepth = errors.New("cannot derive a key with more " +
		"than 255 indices in its path")

	// ErrNotPrivExtKey describes an error in which the caller attempted
	// to extract a private key from a public extended key.
	ErrNotPrivExtKey = errors.New("unable to create private keys from a " +
		"public extended key")

	// ErrIndexOutOfRange describes an error in which the caller supplied
	// a child index with the hardened bit already set.  Derive and
	// DeriveHardened take the 31-bit logical index; the hardened flag is
	// expressed by the choice of method, not by the index value.
	ErrIndexOutOfRange = errors.New("child index carries the hardened " +
		"bit; pass the logical index below 2^31")

	// ErrInvalidScalar describes an error in which a derived private key
	// is zero or falls outside the order of the curve.  The caller
	// should simply increment to the next index since the result is a
	// deterministic function of the inputs.
	ErrInvalidScalar = errors.New("the derived scalar is zero or " +
		"exceeds the order of the curve")

	// ErrInvalidPoint describes an error in which a derived public key
	// is the point at infinity.  As with ErrInvalidScalar the caller
	// should simply increment to the next index.
	ErrInvalidPoint = errors.New("the derived public key is the point " +
		"at infinity")

	// ErrUnusableSeed describes an error in which the provided seed
	// produces a master scalar outside the usable range.  The whole seed
	// is rejected; generating a new seed is the only recovery.
	ErrUnusableSeed = errors.New("unusable seed")

	// ErrInvalidSeedLen describes an error in which the provided seed or
	// seed length is not in the allowed range.
	ErrInvalidSeedLen = fmt.Errorf("seed length must be between %d and "+
		"%d bits", MinSeedBytes*8, MaxSeedBytes*8)

	// ErrBadChecksum describes an error in which the checksum encoded
	// with a serialized extended key does not match the computed value.
	ErrBadChecksum = errors.New("bad extended key checksum")

	// ErrInvalidKeyLen describes an error in which the provided
	// serialized key is not the expected length.
	ErrInvalidKeyLen = errors.New("the provided serialized extended key " +
		"length is invalid")

	// ErrUnknownVersion describes an error in which the version bytes of
	// a serialized extended key do not belong to a registered network or
	// disagree with the key data they accompany.
	ErrUnknownVersion = errors.New("unknown extended key version")

	// ErrInvalidMasterKey describes an error in which a serialized key
	// of depth zero carries a nonzero parent fingerprint or child
	// number.  Only the all-zero pairing is a valid master key.
	ErrInvalidMasterKey = errors.New("a master extended key must have a " +
		"zero parent fingerprint and child number")

	// ErrZeroedKey describes an error in which an operation was
	// requested on an extended key whose material has been erased with
	// Zero.
	ErrZeroedKey = errors.New("the extended key has been zeroed")
)

// masterFingerprint is the parent fingerprint of a master key.
var masterFingerprint = []byte{0x00, 0x00, 0x00, 0x00}

// ExtendedKey houses all the information needed to support a hierarchical
// deterministic extended key.  Instances are immutable once constructed:
// derivation returns new keys and never mutates the parent, so a single key
// may serve as the shared parent for concurrent derivation of independent
// subtrees.  See NewMaster, Derive, and DeriveHardened for the lifecycle.
type ExtendedKey struct {
	key       []byte // 32-byte scalar when private, 33-byte point otherwise
	pubKey    []byte // compressed public key, same backing as key when public
	chainCode []byte
	parentFP  []byte
	version   []byte
	depth     uint8
	childNum  uint32
	isPrivate bool
}

// newExtendedKey returns a new instance of an extended key with the given
// fields.  The byte slices are copied so the caller is free to zero its
// buffers afterwards.  For private keys the compressed public key is
// materialized up front; every derivation from the key needs it for the
// child fingerprint, and computing it here keeps the struct read-only for
// concurrent callers.
func newExtendedKey(version, key, chainCode, parentFP []byte, depth uint8,
	childNum uint32, isPrivate bool) *ExtendedKey {

	ek := &ExtendedKey{
		key:       append([]byte(nil), key...),
		chainCode: append([]byte(nil), chainCode...),
		parentFP:  append([]byte(nil), parentFP...),
		version:   append([]byte(nil), version...),
		depth:     depth,
		childNum:  childNum,
		isPrivate: isPrivate,
	}

	if isPrivate {
		_, pub := btcec.PrivKeyFromBytes(ek.key)
		ek.pubKey = pub.SerializeCompressed()
	} else {
		ek.pubKey = ek.key
	}

	return ek
}

// pubKeyBytes returns the serialized compressed public key for the extended
// key.
func (k *ExtendedKey) pubKeyBytes() []byte {
	return k.pubKey
}

// IsPrivate returns whether or not the extended key is a private extended
// key.  A private extended key can be used to derive both hardened and
// non-hardened child keys on the private and public branches; a public
// extended key can only be used to derive non-hardened public children.
func (k *ExtendedKey) IsPrivate() bool {
	return k.isPrivate
}

// Depth returns the current derivation level with respect to the root.  The
// root key has depth zero and the field saturates at 255, at which point no
// further derivation is possible.
func (k *ExtendedKey) Depth() uint8 {
	return k.depth
}

// ParentFingerprint returns a fingerprint of the parent extended key, which
// is the first four bytes of the HASH160 of the parent's compressed public
// key.  The fingerprint of a master key is zero.
func (k *ExtendedKey) ParentFingerprint() uint32 {
	return binary.BigEndian.Uint32(k.parentFP)
}

// ChildIndex returns the encoded child number of the extended key: the
// logical index with the top bit set when the key was derived hardened.
// The child number of a master key is zero.
func (k *ExtendedKey) ChildIndex() uint32 {
	return k.childNum
}

// Derive returns a derived normal (non-hardened) child extended key at the
// given index.  The index is the 31-bit logical index; passing a value with
// the hardened bit set fails with ErrIndexOutOfRange.
//
// When the extended key is private the child is private as well, and its
// public counterpart can be obtained with Neuter.  When the extended key is
// public the child is public.  Deriving the same index from a private key
// and neutering gives the same result as deriving from the neutered parent,
// which is what makes watch-only wallets possible.
//
// There is a tiny chance (< 1 in 2^127) the derived key is outside the
// usable range, in which case the derivation fails with ErrInvalidScalar or
// ErrInvalidPoint and the caller should move to the next index.
func (k *ExtendedKey) Derive(i uint32) (*ExtendedKey, error) {
	return k.child(i, false)
}

// DeriveHardened returns a derived hardened child extended key at the given
// 31-bit logical index.  Hardened derivation consumes the parent private
// scalar, so calling it on a public extended key fails with
// ErrDeriveHardFromPublic, and the public keys of hardened children cannot
// be computed from the parent's public branch at all.
func (k *ExtendedKey) DeriveHardened(i uint32) (*ExtendedKey, error) {
	return k.child(i, true)
}

// child implements the four derivation cases selected by the privacy of the
// receiver and the hardened flag:
//
//	private, normal:   HMAC-SHA512(chainCode, serP(parentPub) || ser32(i))
//	private, hardened: HMAC-SHA512(chainCode, 0x00 || ser256(parentKey) || ser32(i))
//	public,  normal:   HMAC-SHA512(chainCode, serP(parentPub) || ser32(i))
//	public,  hardened: structurally impossible
//
// The left half of the MAC output becomes the scalar contribution to the
// child key and the right half becomes the child chain code.  All
// intermediate material is erased before returning on every path.
func (k *ExtendedKey) child(i uint32, hardened bool) (*ExtendedKey, error) {
	if i >= HardenedKeyStart {
		return nil, ErrIndexOutOfRange
	}
	if k.depth == maxUint8 {
		return nil, ErrDeriveBeyondMaxDepth
	}
	if len(k.key) == 0 {
		return nil, ErrZeroedKey
	}
	if hardened && !k.isPrivate {
		return nil, ErrDeriveHardFromPublic
	}

	childNum := i
	if hardened {
		childNum = i + HardenedKeyStart
	}

	data := make([]byte, keyDataLen+1+4)
	if hardened {
		// The leading 0x00 pads the 32-byte scalar to the length of a
		// serialized public key, and feeding the scalar instead of the
		// point is what hides hardened children from the public branch.
		copy(data[1:], k.key)
	} else {
		copy(data, k.pubKeyBytes())
	}
	binary.BigEndian.PutUint32(data[keyDataLen+1:], childNum)
	defer zero.Bytes(data)

	hmac512 := hmac.New(sha512.New, k.chainCode)
	hmac512.Write(data)
	ilr := hmac512.Sum(nil)
	defer zero.Bytes(ilr)

	il := ilr[:len(ilr)/2]
	childChainCode := ilr[len(ilr)/2:]

	// The left half is interpreted as a 256-bit integer which must be a
	// usable scalar regardless of which branch is being derived.
	ilNum := new(big.Int).SetBytes(il)
	defer zero.BigInt(ilNum)
	if ilNum.Cmp(btcec.S256().N) >= 0 || ilNum.Sign() == 0 {
		return nil, ErrInvalidScalar
	}

	var isPrivate bool
	var childKey []byte
	if k.isPrivate {
		// childKey = parse256(Il) + parentKey (mod n).  The result can
		// wrap to zero, which is as unusable as an oversized Il.
		keyNum := new(big.Int).SetBytes(k.key)
		defer zero.BigInt(keyNum)

		childNumInt := new(big.Int).Add(ilNum, keyNum)
		childNumInt.Mod(childNumInt, btcec.S256().N)
		if childNumInt.Sign() == 0 {
			zero.BigInt(childNumInt)
			return nil, ErrInvalidScalar
		}

		// Left-pad to a fixed 32 bytes.  Roughly one scalar in 256 has
		// a leading zero byte, and an unpadded key would derive an
		// entirely different subtree below it.
		keyBytes := childNumInt.Bytes()
		childKey = make([]byte, keyDataLen)
		copy(childKey[keyDataLen-len(keyBytes):], keyBytes)
		zero.Bytes(keyBytes)
		zero.BigInt(childNumInt)
		isPrivate = true
	} else {
		// childKey = serP(point(parse256(Il)) + parentKey).
		ilx, ily := btcec.S256().ScalarBaseMult(il)
		if ilx.Sign() == 0 || ily.Sign() == 0 {
			return nil, ErrInvalidPoint
		}

		pubKey, err := btcec.ParsePubKey(k.key)
		if err != nil {
			return nil, err
		}

		childX, childY := btcec.S256().Add(ilx, ily, pubKey.X(), pubKey.Y())
		if childX.Sign() == 0 && childY.Sign() == 0 {
			return nil, ErrInvalidPoint
		}

		var x, y btcec.FieldVal
		x.SetByteSlice(childX.Bytes())
		y.SetByteSlice(childY.Bytes())
		childKey = btcec.NewPublicKey(&x, &y).SerializeCompressed()
	}

	parentFP := btcutil.Hash160(k.pubKeyBytes())[:4]
	childEk := newExtendedKey(k.version, childKey, childChainCode, parentFP,
		k.depth+1, childNum, isPrivate)
	if isPrivate {
		zero.Bytes(childKey)
	}
	return childEk, nil
}

// Neuter returns a new extended public key from this extended private key.
// The returned key keeps the chain code, depth, parent fingerprint, and
// child number of the receiver and can derive the same non-hardened public
// children; recovering the private scalar from it is the discrete-log
// problem.  Calling Neuter on an already public key returns the receiver.
func (k *ExtendedKey) Neuter() (*ExtendedKey, error) {
	if !k.isPrivate {
		return k, nil
	}

	version, err := chaincfg.HDPrivateKeyToPublicKeyID(k.version)
	if err != nil {
		return nil, ErrUnknownVersion
	}

	return newExtendedKey(version, k.pubKeyBytes(), k.chainCode, k.parentFP,
		k.depth, k.childNum, false), nil
}

// ECPubKey converts the extended key to a btcec public key.
func (k *ExtendedKey) ECPubKey() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(k.pubKeyBytes())
}

// ECPrivKey converts the extended key to a btcec private key.  As expected,
// this is only possible for private extended keys and fails with
// ErrNotPrivExtKey otherwise.
func (k *ExtendedKey) ECPrivKey() (*btcec.PrivateKey, error) {
	if !k.isPrivate {
		return nil, ErrNotPrivExtKey
	}

	privKey, _ := btcec.PrivKeyFromBytes(k.key)
	return privKey, nil
}

// WIF returns the private key of the extended key in wallet import format
// for the passed network, using the compressed encoding.  It fails with
// ErrNotPrivExtKey for public extended keys.
func (k *ExtendedKey) WIF(net *chaincfg.Params) (string, error) {
	privKey, err := k.ECPrivKey()
	if err != nil {
		return "", err
	}

	wif, err := btcutil.NewWIF(privKey, net, true)
	if err != nil {
		return "", err
	}
	return wif.String(), nil
}

// IsForNet returns whether or not the extended key is associated with the
// passed network.
func (k *ExtendedKey) IsForNet(net *chaincfg.Params) bool {
	return bytes.Equal(k.version, net.HDPrivateKeyID[:]) ||
		bytes.Equal(k.version, net.HDPublicKeyID[:])
}

// SetNet associates the extended key, and any child keys yet to be derived
// from it, with the passed network.
func (k *ExtendedKey) SetNet(net *chaincfg.Params) {
	if k.isPrivate {
		k.version = net.HDPrivateKeyID[:]
	} else {
		k.version = net.HDPublicKeyID[:]
	}
}

// Clone returns a deep copy of the extended key.  The copy owns its own
// buffers, so zeroing either key leaves the other intact.
func (k *ExtendedKey) Clone() *ExtendedKey {
	clone := *k
	clone.version = append([]byte(nil), k.version...)
	clone.key = append([]byte(nil), k.key...)
	clone.chainCode = append([]byte(nil), k.chainCode...)
	clone.parentFP = append([]byte(nil), k.parentFP...)
	if k.isPrivate {
		clone.pubKey = append([]byte(nil), k.pubKey...)
	} else {
		clone.pubKey = clone.key
	}
	return &clone
}

// Serialize returns the canonical 78-byte binary encoding of the extended
// key: version || depth || parent fingerprint || child number || chain code
// || key data, all big-endian, where the key data is the 0x00-prefixed
// scalar for private keys and the compressed point for public keys.
func (k *ExtendedKey) Serialize() ([]byte, error) {
	if len(k.key) == 0 {
		return nil, ErrZeroedKey
	}

	var childNumBytes [4]byte
	binary.BigEndian.PutUint32(childNumBytes[:], k.childNum)

	serializedBytes := make([]byte, 0, serializedKeyLen)
	serializedBytes = append(serializedBytes, k.version...)
	serializedBytes = append(serializedBytes, k.depth)
	serializedBytes = append(serializedBytes, k.parentFP...)
	serializedBytes = append(serializedBytes, childNumBytes[:]...)
	serializedBytes = append(serializedBytes, k.chainCode...)
	if k.isPrivate {
		serializedBytes = append(serializedBytes, 0x00)
		serializedBytes = paddedAppend(keyDataLen, serializedBytes, k.key)
	} else {
		serializedBytes = append(serializedBytes, k.pubKeyBytes()...)
	}

	return serializedBytes, nil
}

// String returns the extended key as a base58-encoded string with the
// 4-byte double-SHA256 checksum appended.  This is the human-copyable
// interchange form.  A zeroed extended key renders as the literal string
// "zeroed extended key".
func (k *ExtendedKey) String() string {
	serializedBytes, err := k.Serialize()
	if err != nil {
		return "zeroed extended key"
	}

	checkSum := chainhash.DoubleHashB(serializedBytes)[:4]
	serializedBytes = append(serializedBytes, checkSum...)
	return base58.Encode(serializedBytes)
}

// Deserialize decodes the canonical 78-byte binary encoding produced by
// Serialize into an extended key, validating everything validatable
// without the parent: the length, the version bytes against the key data
// they accompany, the scalar or point range, and the master-key pairing of
// a zero depth with a zero parent fingerprint and child number.
func Deserialize(serializedKey []byte) (*ExtendedKey, error) {
	if len(serializedKey) != serializedKeyLen {
		return nil, ErrInvalidKeyLen
	}

	// version (4) || depth (1) || parent fingerprint (4) ||
	// child number (4) || chain code (32) || key data (33)
	version := serializedKey[:4]
	depth := serializedKey[4]
	parentFP := serializedKey[5:9]
	childNum := binary.BigEndian.Uint32(serializedKey[9:13])
	chainCode := serializedKey[13:45]
	keyData := serializedKey[45:78]

	// The only valid representation of a master key pairs depth zero
	// with a zero fingerprint and child number.
	if depth == 0 {
		if childNum != 0 || !bytes.Equal(parentFP, masterFingerprint) {
			return nil, ErrInvalidMasterKey
		}
	}

	isPrivate := keyData[0] == 0x00
	if isPrivate {
		// The version must map to a registered public counterpart, or
		// the serialization was produced under an unknown network.
		if _, err := chaincfg.HDPrivateKeyToPublicKeyID(version); err != nil {
			return nil, ErrUnknownVersion
		}

		keyNum := new(big.Int).SetBytes(keyData[1:])
		defer zero.BigInt(keyNum)
		if keyNum.Cmp(btcec.S256().N) >= 0 || keyNum.Sign() == 0 {
			return nil, ErrInvalidScalar
		}
		keyData = keyData[1:]
	} else {
		// Public key data under a registered private version is a
		// mismatch, not a parseable public key.
		if _, err := chaincfg.HDPrivateKeyToPublicKeyID(version); err == nil {
			return nil, ErrUnknownVersion
		}

		if _, err := btcec.ParsePubKey(keyData); err != nil {
			return nil, err
		}
	}

	return newExtendedKey(version, keyData, chainCode, parentFP, depth,
		childNum, isPrivate), nil
}

// NewKeyFromString returns a new extended key instance from a base58-encoded
// extended key string, verifying and stripping the trailing checksum.  It
// fails with ErrInvalidKeyLen when the decoded material is not 82 bytes and
// ErrBadChecksum when the checksum does not match the payload.
func NewKeyFromString(key string) (*ExtendedKey, error) {
	// The base58-decoded extended key consists of the 78-byte serialized
	// payload followed by a 4-byte checksum.
	decoded := base58.Decode(key)
	if len(decoded) != serializedKeyLen+4 {
		return nil, ErrInvalidKeyLen
	}

	payload := decoded[:len(decoded)-4]
	checkSum := decoded[len(decoded)-4:]
	expectedCheckSum := chainhash.DoubleHashB(payload)[:4]
	if !bytes.Equal(checkSum, expectedCheckSum) {
		return nil, ErrBadChecksum
	}

	return Deserialize(payload)
}

// Zero manually clears all fields and bytes in the extended key.  This can
// be used to explicitly clear key material from memory for enhanced
// security against memory scraping.  It only clears this particular key and
// not any children already derived from it; every operation on the key
// afterwards fails or reports a zeroed key.
func (k *ExtendedKey) Zero() {
	zero.Bytes(k.key)
	zero.Bytes(k.pubKey)
	zero.Bytes(k.chainCode)
	zero.Bytes(k.parentFP)
	k.version = nil
	k.key = nil
	k.pubKey = nil
	k.depth = 0
	k.childNum = 0
	k.isPrivate = false
}

// NewMaster creates a new master extended key under the interchange-standard
// HMAC domain from a seed of between MinSeedBytes and MaxSeedBytes bytes.
// The master key sits at depth zero with a zero parent fingerprint and
// child number, and is always private; use Neuter for the public
// counterpart.
func NewMaster(seed []byte, net *chaincfg.Params) (*ExtendedKey, error) {
	return NewMasterWithDomain(seed, MasterDomainKey, net)
}

// NewMasterWithDomain creates a new master extended key like NewMaster but
// under a caller-chosen HMAC-SHA512 domain string, so unrelated deployments
// can derive disjoint trees from the same seed.  An empty domain selects
// DefaultDomainKey.  The derivation is deterministic: the same seed and
// domain always produce the same master key, and a seed whose MAC output
// falls outside the usable scalar range fails with ErrUnusableSeed every
// time, so the only recovery is a different seed.
func NewMasterWithDomain(seed []byte, domainKey string,
	net *chaincfg.Params) (*ExtendedKey, error) {

	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return nil, ErrInvalidSeedLen
	}
	if domainKey == "" {
		domainKey = DefaultDomainKey
	}

	// I = HMAC-SHA512(domain, seed); IL = master scalar, IR = chain code.
	hmac512 := hmac.New(sha512.New, []byte(domainKey))
	hmac512.Write(seed)
	lr := hmac512.Sum(nil)
	defer zero.Bytes(lr)

	secretKey := lr[:len(lr)/2]
	chainCode := lr[len(lr)/2:]

	secretNum := new(big.Int).SetBytes(secretKey)
	defer zero.BigInt(secretNum)
	if secretNum.Cmp(btcec.S256().N) >= 0 || secretNum.Sign() == 0 {
		return nil, ErrUnusableSeed
	}

	return newExtendedKey(net.HDPrivateKeyID[:], secretKey, chainCode,
		masterFingerprint, 0, 0, true), nil
}

// GenerateSeed returns a hierarchical deterministic seed that is
// cryptographically random and of the passed length in bytes.  The entropy
// source is read exactly once; a short read is surfaced to the caller
// rather than retried.
func GenerateSeed(length uint8) ([]byte, error) {
	if length < MinSeedBytes || length > MaxSeedBytes {
		return nil, ErrInvalidSeedLen
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}

	return buf, nil
}

// paddedAppend appends the src byte slice to dst, appending leading zero
// bytes first so that exactly size bytes are appended in total.
func paddedAppend(size uint, dst, src []byte) []byte {
	for i := 0; i < int(size)-len(src); i++ {
		dst = append(dst, 0)
	}
	return append(dst, src...)
}
