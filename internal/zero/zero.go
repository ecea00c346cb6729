// Package zero clears sensitive byte material from memory.  The derivation
// and sealing packages call these helpers on every exit path so private
// scalars, chain codes, and seeds do not outlive their use.
package zero

import "math/big"

// Bytes sets all bytes in the passed slice to zero.  Prefer the fixed-size
// variants below when the size is known, they compile to a simple clear.
func Bytes(b []byte) {
	z := [32]byte{}
	n := uint(copy(b, z[:]))
	for n < uint(len(b)) {
		n += uint(copy(b[n:], b[:n]))
	}
}

// Bytea32 clears the 32-byte array by filling it with the zero value.
func Bytea32(b *[32]byte) {
	*b = [32]byte{}
}

// Bytea64 clears the 64-byte array by filling it with the zero value.
func Bytea64(b *[64]byte) {
	*b = [64]byte{}
}

// BigInt clears the underlying words of the passed big int before resetting
// the value, so the magnitude bytes are overwritten rather than dropped.
func BigInt(x *big.Int) {
	b := x.Bits()
	for i := range b {
		b[i] = 0
	}
	x.SetInt64(0)
}
