package hdkeychain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
)

// DerivationPath is the computer friendly form of a derivation path: the
// ordered child numbers to apply from a root key, with the hardened flag
// folded into the top bit of each component the same way the wire format
// encodes it.
//
// The textual convention is of the form
//
//	m / purpose' / coin_type' / account' / change / address_index
//
// where an apostrophe (or trailing h) marks a hardened component.
type DerivationPath []uint32

// ParseDerivationPath converts the textual derivation path convention into
// its binary representation.  The path must be absolute, starting with the
// m component; whitespace around components is ignored; hardened components
// are marked with a trailing ' or h.  Each logical index must fit in 31
// bits.
func ParseDerivationPath(path string) (DerivationPath, error) {
	components := strings.Split(path, "/")
	if len(components) < 2 || strings.TrimSpace(components[0]) != "m" {
		return nil, errors.New("derivation path must start with m/")
	}
	components = components[1:]

	var result DerivationPath
	for _, component := range components {
		component = strings.TrimSpace(component)

		var value uint32
		if strings.HasSuffix(component, "'") ||
			strings.HasSuffix(component, "h") ||
			strings.HasSuffix(component, "H") {

			value = HardenedKeyStart
			component = strings.TrimSpace(component[:len(component)-1])
		}

		bigval, ok := new(big.Int).SetString(component, 0)
		if !ok {
			return nil, fmt.Errorf("invalid path component: %q", component)
		}
		max := math.MaxUint32 - value
		if bigval.Sign() < 0 || bigval.Cmp(big.NewInt(int64(max))) > 0 {
			return nil, fmt.Errorf("path component %v out of allowed "+
				"range [0, %d]", bigval, max)
		}
		value += uint32(bigval.Uint64())

		result = append(result, value)
	}
	if len(result) == 0 {
		return nil, errors.New("empty derivation path")
	}

	return result, nil
}

// MustParseDerivationPath parses the passed path and panics on failure.  It
// is intended for hard-coded well-known paths whose validity is a build
// time property.
func MustParseDerivationPath(path string) DerivationPath {
	parsed, err := ParseDerivationPath(path)
	if err != nil {
		panic(err)
	}
	return parsed
}

// String returns the canonical textual form of the derivation path.
func (path DerivationPath) String() string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, component := range path {
		sb.WriteString("/")
		sb.WriteString(componentString(component))
	}
	return sb.String()
}

// MarshalJSON turns a derivation path into its json-serialized string.
func (path DerivationPath) MarshalJSON() ([]byte, error) {
	return json.Marshal(path.String())
}

// UnmarshalJSON parses a json-serialized string back into a derivation
// path.
func (path *DerivationPath) UnmarshalJSON(b []byte) error {
	var dp string
	if err := json.Unmarshal(b, &dp); err != nil {
		return err
	}

	parsed, err := ParseDerivationPath(dp)
	if err != nil {
		return err
	}
	*path = parsed
	return nil
}

// componentString renders a single encoded child number in the textual
// convention.
func componentString(component uint32) string {
	if component >= HardenedKeyStart {
		return fmt.Sprintf("%d'", component-HardenedKeyStart)
	}
	return fmt.Sprintf("%d", component)
}

// DerivePath derives the descendant extended key reached by applying every
// component of the path in order.  The walk is atomic: if any step fails,
// the error reports the failing component and no partially derived key is
// returned.  Intermediate keys between the receiver and the result are
// zeroed whether the walk succeeds or not; the receiver itself is left
// untouched.  An empty path returns the receiver.
func (k *ExtendedKey) DerivePath(path DerivationPath) (*ExtendedKey, error) {
	current := k
	for i, component := range path {
		var (
			child *ExtendedKey
			err   error
		)
		if component >= HardenedKeyStart {
			child, err = current.DeriveHardened(component - HardenedKeyStart)
		} else {
			child, err = current.Derive(component)
		}
		if current != k {
			current.Zero()
		}
		if err != nil {
			return nil, fmt.Errorf("derive path component %d (%s): %w",
				i, componentString(component), err)
		}
		current = child
	}

	return current, nil
}
