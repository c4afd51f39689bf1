package goPerm

import (
	"math/big"
	"strconv"
)

// maskWidth is the physical width of the backing bitmask word.
const maskWidth = 64

// resolveIndex reduces a flag identifier onto [0, flagSpace) by modulus.
//
// Accepted identifier kinds: any Go integer type, a decimal numeric string,
// or a *big.Int. The modulus is Euclidean, so negative identifiers always
// resolve to a non-negative index. ok is false when the identifier is not
// numeric; callers treat that as "addresses no bit".
func resolveIndex(flag any, flagSpace uint64) (uint64, bool) {
	if flagSpace == 0 {
		return 0, false
	}

	switch f := flag.(type) {
	case uint64:
		return f % flagSpace, true
	case uint:
		return uint64(f) % flagSpace, true
	case uint8:
		return uint64(f) % flagSpace, true
	case uint16:
		return uint64(f) % flagSpace, true
	case uint32:
		return uint64(f) % flagSpace, true
	case uintptr:
		return uint64(f) % flagSpace, true
	case int:
		return signedIndex(int64(f), flagSpace)
	case int8:
		return signedIndex(int64(f), flagSpace)
	case int16:
		return signedIndex(int64(f), flagSpace)
	case int32:
		return signedIndex(int64(f), flagSpace)
	case int64:
		return signedIndex(f, flagSpace)
	case string:
		return stringIndex(f, flagSpace)
	case *big.Int:
		if f == nil {
			return 0, false
		}
		return bigIndex(f, flagSpace), true
	default:
		return 0, false
	}
}

func signedIndex(v int64, flagSpace uint64) (uint64, bool) {
	if v >= 0 {
		return uint64(v) % flagSpace, true
	}
	// Negative identifiers take the big-integer path: big.Int.Mod is
	// Euclidean, which keeps the result in [0, flagSpace) regardless of
	// whether flagSpace fits in an int64.
	return bigIndex(big.NewInt(v), flagSpace), true
}

func stringIndex(s string, flagSpace uint64) (uint64, bool) {
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return v % flagSpace, true
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return signedIndex(v, flagSpace)
	}
	// Wider than 64 bits, or not numeric at all.
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return 0, false
	}
	return bigIndex(v, flagSpace), true
}

func bigIndex(v *big.Int, flagSpace uint64) uint64 {
	m := new(big.Int).Mod(v, new(big.Int).SetUint64(flagSpace))
	return m.Uint64()
}

// flagLabel renders a flag identifier for audit events.
func flagLabel(flag any) string {
	switch f := flag.(type) {
	case string:
		return f
	case *big.Int:
		if f == nil {
			return "<nil>"
		}
		return f.String()
	case int:
		return strconv.FormatInt(int64(f), 10)
	case int8:
		return strconv.FormatInt(int64(f), 10)
	case int16:
		return strconv.FormatInt(int64(f), 10)
	case int32:
		return strconv.FormatInt(int64(f), 10)
	case int64:
		return strconv.FormatInt(f, 10)
	case uint:
		return strconv.FormatUint(uint64(f), 10)
	case uint8:
		return strconv.FormatUint(uint64(f), 10)
	case uint16:
		return strconv.FormatUint(uint64(f), 10)
	case uint32:
		return strconv.FormatUint(uint64(f), 10)
	case uint64:
		return strconv.FormatUint(f, 10)
	case uintptr:
		return strconv.FormatUint(uint64(f), 10)
	default:
		return "<non-numeric>"
	}
}
