// Package keyring serves extended keys derived from a single root key,
// with an in-memory lock that seals the root under a passphrase while
// the keyring is not in use.
package keyring

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"sync"

	"github.com/czh0526/hd-keychain/hdkeychain"
	"github.com/czh0526/hd-keychain/internal/zero"
	"github.com/czh0526/hd-keychain/snacl"
	"github.com/lightninglabs/neutrino/cache/lru"
)

const (
	defaultPrivKeyCacheSize = 10_000

	saltSize = 32
)

type ScryptOptions struct {
	N, R, P int
}

var DefaultScryptOptions = ScryptOptions{
	N: snacl.DefaultN,
	R: snacl.DefaultR,
	P: snacl.DefaultP,
}

var FastScryptOptions = ScryptOptions{
	N: 16,
	R: 8,
	P: 1,
}

// Options tunes a keyring at construction time.
type Options struct {
	// Passphrase enables Lock and Unlock.  When empty the keyring never
	// locks and the root key is only held in the clear.
	Passphrase []byte

	// Scrypt parameterizes the passphrase stretching.  Nil means
	// DefaultScryptOptions.
	Scrypt *ScryptOptions

	// CacheSize bounds the number of derived keys kept per cache.  Zero
	// means defaultPrivKeyCacheSize.
	CacheSize uint64
}

type cachedKey struct {
	key *hdkeychain.ExtendedKey
}

func (c *cachedKey) Size() (uint64, error) {
	return 1, nil
}

// KeyRing 的封印结构:
/*
     masterKey      |   passphrase -> scrypt -> Key, Marshal -> params
  __________________|____________________________________________
     sealedRoot     |   rootPriv.String() -> masterKey.Encrypt
  __________________|____________________________________________
     rootPub        |   rootPriv.Neuter(), 不加封
*/
type KeyRing struct {
	mtx sync.RWMutex

	rootPriv *hdkeychain.ExtendedKey
	rootPub  *hdkeychain.ExtendedKey

	masterKey       *snacl.SecretKey
	masterKeyParams []byte
	sealedRoot      []byte

	privPassphraseSalt   [saltSize]byte
	hashedPrivPassphrase [sha512.Size]byte

	privKeyCache *lru.Cache[string, *cachedKey]
	pubKeyCache  *lru.Cache[string, *cachedKey]

	watchingOnly bool
	locked       bool
	closed       bool
}

// New captures the root key into a keyring.  A public root produces a
// watching-only keyring that refuses private key service.  When
// opts.Passphrase is set the root is additionally sealed under it so the
// keyring can be locked and unlocked.
func New(root *hdkeychain.ExtendedKey, opts *Options) (*KeyRing, error) {
	if root == nil {
		return nil, keyRingError(ErrKeyChain, "nil root key", nil)
	}
	if opts == nil {
		opts = &Options{}
	}

	cacheSize := opts.CacheSize
	if cacheSize == 0 {
		cacheSize = defaultPrivKeyCacheSize
	}

	r := &KeyRing{
		privKeyCache: lru.NewCache[string, *cachedKey](cacheSize),
		pubKeyCache:  lru.NewCache[string, *cachedKey](cacheSize),
	}

	if root.IsPrivate() {
		rootPub, err := root.Neuter()
		if err != nil {
			return nil, keyRingError(ErrKeyChain,
				"failed to neuter root key", err)
		}
		r.rootPriv = root
		r.rootPub = rootPub
	} else {
		r.rootPub = root
		r.watchingOnly = true
	}

	if len(opts.Passphrase) > 0 {
		if r.watchingOnly {
			return nil, keyRingError(ErrWatchingOnly,
				"cannot seal a watching-only keyring", nil)
		}

		scryptOpts := opts.Scrypt
		if scryptOpts == nil {
			scryptOpts = &DefaultScryptOptions
		}

		// 根据口令构建 masterKey, 封印 rootPriv
		masterKey, err := snacl.NewSecretKey(&opts.Passphrase,
			scryptOpts.N, scryptOpts.R, scryptOpts.P)
		if err != nil {
			return nil, keyRingError(ErrCrypto,
				"failed to derive master key from passphrase", err)
		}

		sealedRoot, err := masterKey.Encrypt([]byte(r.rootPriv.String()))
		if err != nil {
			masterKey.Zero()
			return nil, keyRingError(ErrCrypto,
				"failed to seal root key", err)
		}

		if _, err := rand.Read(r.privPassphraseSalt[:]); err != nil {
			masterKey.Zero()
			return nil, keyRingError(ErrCrypto,
				"failed to read salt", err)
		}

		r.masterKey = masterKey
		r.masterKeyParams = masterKey.Marshal()
		r.sealedRoot = sealedRoot

		saltedPassphrase := append(r.privPassphraseSalt[:],
			opts.Passphrase...)
		r.hashedPrivPassphrase = sha512.Sum512(saltedPassphrase)
		zero.Bytes(saltedPassphrase)
	}

	log.Debugf("Keyring initialized: watching-only=%v, sealing=%v",
		r.watchingOnly, r.sealedRoot != nil)

	return r, nil
}

// WatchingOnly returns whether the keyring was built from a public root.
func (r *KeyRing) WatchingOnly() bool {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return r.watchingOnly
}

// IsLocked returns whether the keyring is currently locked.
func (r *KeyRing) IsLocked() bool {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return r.locked
}

// DeriveKey derives the private extended key at the given path from the
// root.  Results are cached, and the returned key is the caller's copy:
// zeroing it does not disturb the cache.
func (r *KeyRing) DeriveKey(path hdkeychain.DerivationPath) (
	*hdkeychain.ExtendedKey, error) {

	r.mtx.RLock()
	defer r.mtx.RUnlock()

	switch {
	case r.closed:
		return nil, keyRingError(ErrKeyRingClosed, "keyring is closed", nil)
	case r.watchingOnly:
		return nil, keyRingError(ErrWatchingOnly,
			"watching-only keyring cannot serve private keys", nil)
	case r.locked:
		return nil, keyRingError(ErrLocked, "keyring is locked", nil)
	}

	cacheKey := path.String()
	if ck, err := r.privKeyCache.Get(cacheKey); err == nil {
		return ck.key.Clone(), nil
	}

	derived, err := r.rootPriv.DerivePath(path)
	if err != nil {
		str := fmt.Sprintf("failed to derive private key at %s", path)
		return nil, keyRingError(ErrKeyChain, str, err)
	}

	_, _ = r.privKeyCache.Put(cacheKey, &cachedKey{key: derived})
	return derived.Clone(), nil
}

// DerivePub derives the public extended key at the given path from the
// neutered root.  It keeps working while the keyring is locked.  Paths
// with hardened components fail since those require the private root.
func (r *KeyRing) DerivePub(path hdkeychain.DerivationPath) (
	*hdkeychain.ExtendedKey, error) {

	r.mtx.RLock()
	defer r.mtx.RUnlock()

	if r.closed {
		return nil, keyRingError(ErrKeyRingClosed, "keyring is closed", nil)
	}

	cacheKey := path.String()
	if ck, err := r.pubKeyCache.Get(cacheKey); err == nil {
		return ck.key.Clone(), nil
	}

	derived, err := r.rootPub.DerivePath(path)
	if err != nil {
		str := fmt.Sprintf("failed to derive public key at %s", path)
		return nil, keyRingError(ErrKeyChain, str, err)
	}

	_, _ = r.pubKeyCache.Put(cacheKey, &cachedKey{key: derived})
	return derived.Clone(), nil
}

// Unlock unseals the root key with the passphrase, restoring private key
// service.  Calling it on an unlocked keyring just verifies the
// passphrase; a mismatch locks the keyring again.
func (r *KeyRing) Unlock(passphrase []byte) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	switch {
	case r.closed:
		return keyRingError(ErrKeyRingClosed, "keyring is closed", nil)
	case r.watchingOnly:
		return keyRingError(ErrWatchingOnly,
			"watching-only keyring has nothing to unlock", nil)
	case r.sealedRoot == nil:
		return keyRingError(ErrEmptyPassphrase,
			"keyring was built without a passphrase", nil)
	}

	if !r.locked {
		saltedPassphrase := append(r.privPassphraseSalt[:],
			passphrase...)
		hashedPassphrase := sha512.Sum512(saltedPassphrase)
		zero.Bytes(saltedPassphrase)
		if hashedPassphrase != r.hashedPrivPassphrase {
			r.lock()
			return keyRingError(ErrWrongPassphrase,
				"invalid passphrase for keyring", nil)
		}
		return nil
	}

	// 根据保存的参数重建 masterKey
	var masterKey snacl.SecretKey
	if err := masterKey.Unmarshal(r.masterKeyParams); err != nil {
		return keyRingError(ErrCrypto,
			"failed to unmarshal master key parameters", err)
	}
	if err := masterKey.DeriveKey(&passphrase); err != nil {
		if err == snacl.ErrInvalidPassword {
			return keyRingError(ErrWrongPassphrase,
				"invalid passphrase for keyring", nil)
		}
		return keyRingError(ErrCrypto,
			"failed to derive master key", err)
	}

	// 解开封印, 恢复 rootPriv
	serializedRoot, err := masterKey.Decrypt(r.sealedRoot)
	if err != nil {
		masterKey.Zero()
		return keyRingError(ErrCrypto, "failed to unseal root key", err)
	}

	rootPriv, err := hdkeychain.NewKeyFromString(string(serializedRoot))
	zero.Bytes(serializedRoot)
	if err != nil {
		masterKey.Zero()
		return keyRingError(ErrKeyChain,
			"failed to regenerate root key", err)
	}

	r.rootPriv = rootPriv
	r.masterKey = &masterKey
	r.locked = false

	saltedPassphrase := append(r.privPassphraseSalt[:], passphrase...)
	r.hashedPrivPassphrase = sha512.Sum512(saltedPassphrase)
	zero.Bytes(saltedPassphrase)

	log.Debugf("Keyring unlocked")
	return nil
}

// Lock erases the clear private root and every cached private key,
// leaving only the sealed root behind.  DerivePub keeps working.
func (r *KeyRing) Lock() error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	switch {
	case r.closed:
		return keyRingError(ErrKeyRingClosed, "keyring is closed", nil)
	case r.watchingOnly:
		return keyRingError(ErrWatchingOnly,
			"watching-only keyring has nothing to lock", nil)
	case r.sealedRoot == nil:
		return keyRingError(ErrEmptyPassphrase,
			"keyring was built without a passphrase", nil)
	case r.locked:
		return keyRingError(ErrLocked, "keyring is already locked", nil)
	}

	r.lock()

	log.Debugf("Keyring locked")
	return nil
}

// lock zeroes the private key material.  It must be called with the
// write lock held.
func (r *KeyRing) lock() {
	flushKeyCache(r.privKeyCache)

	if r.rootPriv != nil {
		r.rootPriv.Zero()
		r.rootPriv = nil
	}
	if r.masterKey != nil {
		r.masterKey.Zero()
	}
	zero.Bytea64(&r.hashedPrivPassphrase)

	r.locked = true
}

// Close locks the keyring and additionally erases the public side, the
// sealed root, and the master key parameters.  Every later call fails
// with ErrKeyRingClosed.
func (r *KeyRing) Close() error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.closed {
		return keyRingError(ErrKeyRingClosed, "keyring is closed", nil)
	}

	r.lock()
	flushKeyCache(r.pubKeyCache)

	if r.rootPub != nil {
		r.rootPub.Zero()
		r.rootPub = nil
	}
	zero.Bytes(r.sealedRoot)
	r.sealedRoot = nil
	zero.Bytes(r.masterKeyParams)
	r.masterKeyParams = nil
	zero.Bytes(r.privPassphraseSalt[:])

	r.closed = true

	log.Debugf("Keyring closed")
	return nil
}

// flushKeyCache zeroes and drops every cached key.
func flushKeyCache(c *lru.Cache[string, *cachedKey]) {
	var keys []string
	c.Range(func(key string, ck *cachedKey) bool {
		ck.key.Zero()
		keys = append(keys, key)
		return true
	})
	for _, key := range keys {
		c.Delete(key)
	}
}
