package mediatype

import (
	"slices"
	"strings"
)

// EqualEssence reports whether a and b share the same type, subtype and
// suffix, compared case-insensitively. Parameters are ignored, which
// makes it the right check for content-type family decisions.
func EqualEssence(a, b MediaType) bool {
	return strings.EqualFold(a.ty, b.ty) &&
		strings.EqualFold(a.subty, b.subty) &&
		strings.EqualFold(a.suffix, b.suffix)
}

// Equal reports whether a and b are the same media type: equal essences
// and equal parameter multisets. Parameter names compare
// case-insensitively, values exactly, and source order never affects the
// result. Duplicate names compare as a multiset, so "a/b;x=1;x=1" equals
// itself but not "a/b;x=1;x=2" in either order.
//
// If either parameter section is malformed, Equal falls back to an exact
// byte comparison of the two raw parameter sections: a malformed media
// type equals only its byte-identical twin.
func Equal(a, b MediaType) bool {
	if !EqualEssence(a, b) {
		return false
	}
	ap, aerr := a.collectParams()
	bp, berr := b.collectParams()
	if aerr != nil || berr != nil {
		return a.rawParams == b.rawParams
	}
	if len(ap) != len(bp) {
		return false
	}
	sortParams(ap)
	sortParams(bp)
	for i := range ap {
		if !strings.EqualFold(ap[i].Name, bp[i].Name) || ap[i].Value != bp[i].Value {
			return false
		}
	}
	return true
}

// Compare orders a against b, returning -1, 0 or +1. The order is total
// and consistent with Equal: type, subtype and suffix compare
// case-insensitively (no suffix sorts before any suffix), then
// parameters compare as sorted (folded name, value) pairs. Malformed
// parameter sections compare by their raw text.
func Compare(a, b MediaType) int {
	if c := compareFold(a.ty, b.ty); c != 0 {
		return c
	}
	if c := compareFold(a.subty, b.subty); c != 0 {
		return c
	}
	if c := compareFold(a.suffix, b.suffix); c != 0 {
		return c
	}

	ap, aerr := a.collectParams()
	bp, berr := b.collectParams()
	if aerr != nil || berr != nil {
		return strings.Compare(a.rawParams, b.rawParams)
	}
	sortParams(ap)
	sortParams(bp)
	for i := 0; i < len(ap) && i < len(bp); i++ {
		if c := compareFold(ap[i].Name, bp[i].Name); c != 0 {
			return c
		}
		if c := strings.Compare(ap[i].Value, bp[i].Value); c != 0 {
			return c
		}
	}
	switch {
	case len(ap) < len(bp):
		return -1
	case len(ap) > len(bp):
		return 1
	}
	return 0
}

// sortParams orders parameters by case-folded name, then by value, to
// make multiset comparison order-insensitive and deterministic.
func sortParams(ps []Param) {
	slices.SortFunc(ps, func(a, b Param) int {
		if c := compareFold(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Value, b.Value)
	})
}

// compareFold compares two names byte-wise ignoring ASCII case, without
// allocating. Restricted names are ASCII by construction.
func compareFold(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		ca, cb := lowerByte(a[i]), lowerByte(b[i])
		switch {
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func lowerByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
