package keyring

import "fmt"

// ErrorCode identifies a kind of error.
type ErrorCode int

const (
	// ErrKeyChain indicates an error with one of the key chains, such as
	// the root key being unusable or a child derivation failing.
	ErrKeyChain ErrorCode = iota

	// ErrCrypto indicates an error with the cryptography related to the
	// passphrase machinery, such as a failure to seal or unseal the root
	// key.
	ErrCrypto

	// ErrLocked indicates the keyring is locked so private keys cannot
	// be served.
	ErrLocked

	// ErrWatchingOnly indicates the operation needs private key material
	// but the keyring was built from a public root.
	ErrWatchingOnly

	// ErrWrongPassphrase indicates the supplied passphrase does not
	// match the one the keyring was sealed with.
	ErrWrongPassphrase

	// ErrEmptyPassphrase indicates a lock or unlock was requested on a
	// keyring that was built without a passphrase.
	ErrEmptyPassphrase

	// ErrKeyRingClosed indicates the keyring has been closed and its key
	// material erased.
	ErrKeyRingClosed
)

var errorCodeStrings = map[ErrorCode]string{
	ErrKeyChain:        "ErrKeyChain",
	ErrCrypto:          "ErrCrypto",
	ErrLocked:          "ErrLocked",
	ErrWatchingOnly:    "ErrWatchingOnly",
	ErrWrongPassphrase: "ErrWrongPassphrase",
	ErrEmptyPassphrase: "ErrEmptyPassphrase",
	ErrKeyRingClosed:   "ErrKeyRingClosed",
}

func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// KeyRingError provides a single type for errors that can happen during
// keyring operation.
type KeyRingError struct {
	ErrorCode   ErrorCode
	Description string
	Err         error
}

func (e KeyRingError) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

func (e KeyRingError) Unwrap() error {
	return e.Err
}

func keyRingError(c ErrorCode, desc string, err error) KeyRingError {
	return KeyRingError{ErrorCode: c, Description: desc, Err: err}
}

// IsError returns whether the error is a KeyRingError with a matching
// error code.
func IsError(err error, code ErrorCode) bool {
	e, ok := err.(KeyRingError)
	return ok && e.ErrorCode == code
}
