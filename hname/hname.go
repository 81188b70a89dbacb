// Package hname derives the 4-byte selectors used on the wire for contract,
// function, parameter and result names.
//
// A selector is the first non-zero 4-byte window of blake2b-256(name), read
// little-endian. Client and node compute it independently, so the algorithm,
// the byte order and the fallback value below are fixed for all implementations.
package hname

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

// Length is the size of a selector on binary wires.
const Length = 4

// Hname is a 32-bit selector derived from a name.
type Hname uint32

const (
	// Nil means absent or root; Hn never returns it.
	Nil Hname = 0
	// Fallback is returned when every window of the digest is zero.
	Fallback Hname = 1
)

var (
	ErrInvalidLength = errors.New("hname: expected 4 bytes")
	ErrInvalidString = errors.New("hname: expected 1-8 hex digits")
)

// Hn computes the selector of name. The input is used byte-exact: no case or
// whitespace normalization is applied.
func Hn(name string) Hname {
	return fromDigest(blake2b.Sum256([]byte(name)))
}

func fromDigest(h [blake2b.Size256]byte) Hname {
	for i := 0; i+Length <= len(h); i += Length {
		if hn := Hname(binary.LittleEndian.Uint32(h[i : i+Length])); hn != Nil {
			return hn
		}
	}
	return Fallback
}

// FromBytes reads a selector in wire byte order.
func FromBytes(b []byte) (Hname, error) {
	if len(b) != Length {
		return Nil, fmt.Errorf("%w, got %d", ErrInvalidLength, len(b))
	}
	return Hname(binary.LittleEndian.Uint32(b)), nil
}

// FromString parses the hex form produced by String.
func FromString(s string) (Hname, error) {
	if s == "" || len(s) > 2*Length {
		return Nil, fmt.Errorf("%w: %q", ErrInvalidString, s)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Nil, fmt.Errorf("%w: %q", ErrInvalidString, s)
	}
	return Hname(n), nil
}

// Bytes returns the selector in wire byte order (little-endian).
func (hn Hname) Bytes() []byte {
	b := make([]byte, Length)
	binary.LittleEndian.PutUint32(b, uint32(hn))
	return b
}

func (hn Hname) String() string { return fmt.Sprintf("%08x", uint32(hn)) }

func (hn Hname) IsNil() bool { return hn == Nil }

func (hn Hname) MarshalText() ([]byte, error) { return []byte(hn.String()), nil }

func (hn *Hname) UnmarshalText(text []byte) error {
	v, err := FromString(string(text))
	if err != nil {
		return err
	}
	*hn = v
	return nil
}
