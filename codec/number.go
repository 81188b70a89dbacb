package codec

import (
	"errors"
	"math"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"

	scbind "github.com/reoring/scbind"
)

// integer is a sign-magnitude integer wide enough for every int64 and uint64.
type integer struct {
	neg bool // only set when mag > 0
	mag uint64
}

func fromInt64(v int64) integer {
	if v < 0 {
		return integer{neg: true, mag: uint64(-(v + 1)) + 1}
	}
	return integer{mag: uint64(v)}
}

// signed returns n as int64 if it fits in a signed integer of the given width.
func (n integer) signed(bits int) (int64, bool) {
	max := uint64(1)<<(bits-1) - 1
	if n.neg {
		if n.mag > max+1 {
			return 0, false
		}
		return -int64(n.mag-1) - 1, true
	}
	if n.mag > max {
		return 0, false
	}
	return int64(n.mag), true
}

// unsigned returns n as uint64 if it fits in an unsigned integer of the given
// width.
func (n integer) unsigned(bits int) (uint64, bool) {
	if n.neg {
		return 0, false
	}
	if bits < 64 && n.mag > uint64(1)<<bits-1 {
		return 0, false
	}
	return n.mag, true
}

// toInteger normalizes the numeric kinds a Record may hold. It reports
// CodeOverflow for values no 64-bit integer can hold and CodeInvalidType for
// anything that is not an integral number.
func toInteger(raw any) (integer, string) {
	switch v := raw.(type) {
	case int:
		return fromInt64(int64(v)), ""
	case int8:
		return fromInt64(int64(v)), ""
	case int16:
		return fromInt64(int64(v)), ""
	case int32:
		return fromInt64(int64(v)), ""
	case int64:
		return fromInt64(v), ""
	case uint:
		return integer{mag: uint64(v)}, ""
	case uint8:
		return integer{mag: uint64(v)}, ""
	case uint16:
		return integer{mag: uint64(v)}, ""
	case uint32:
		return integer{mag: uint64(v)}, ""
	case uint64:
		return integer{mag: v}, ""
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	case j.Number:
		return fromNumber(string(v))
	}
	return integer{}, scbind.CodeInvalidType
}

func fromFloat(f float64) (integer, string) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return integer{}, scbind.CodeInvalidType
	}
	a := math.Abs(f)
	if a >= math.Exp2(64) {
		return integer{}, scbind.CodeOverflow
	}
	if a == 0 {
		return integer{}, ""
	}
	return integer{neg: f < 0, mag: uint64(a)}, ""
}

func fromNumber(s string) (integer, string) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return fromInt64(i), ""
	}
	if errors.Is(err, strconv.ErrRange) && strings.HasPrefix(s, "-") {
		return integer{}, scbind.CodeOverflow
	}
	// above math.MaxInt64
	u, err := strconv.ParseUint(s, 10, 64)
	if err == nil {
		return integer{mag: u}, ""
	}
	if errors.Is(err, strconv.ErrRange) {
		return integer{}, scbind.CodeOverflow
	}
	// exponent or fraction notation, e.g. 1e3 or 2.0
	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return integer{}, scbind.CodeOverflow
	}
	if err != nil {
		return integer{}, scbind.CodeInvalidType
	}
	return fromFloat(f)
}
