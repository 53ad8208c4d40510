package mediatype

import "strings"

// MediaType is a parsed media type borrowing its text from the string it
// was parsed from.
//
// It is a small value meant to be copied freely: a handful of substrings
// plus the raw parameter section, never a copy of the source. Go strings
// are immutable, so a MediaType is safe for concurrent readers, but it
// keeps the entire source string reachable. Use ToBuf to hold on to a
// media type beyond the lifetime of a large source buffer.
//
// The zero value is not a valid media type.
type MediaType struct {
	ty     string
	subty  string
	suffix string // empty when absent

	// Raw parameter section starting at the first ";", unvalidated
	// until iterated. paramsOffset locates it within the originally
	// parsed text so iteration errors report absolute offsets.
	rawParams    string
	paramsOffset int
}

// New constructs a MediaType from a pre-validated type and subtype, such
// as the constants in the names package. New performs no validation:
// passing strings outside the restricted-name grammar produces a value
// whose rendering cannot be parsed back.
func New(ty, subty string) MediaType {
	return MediaType{ty: ty, subty: subty}
}

// NewSuffixed is New with a structured syntax suffix:
// NewSuffixed("application", "ld", "json") is "application/ld+json".
// Like New, it trusts its arguments.
func NewSuffixed(ty, subty, suffix string) MediaType {
	return MediaType{ty: ty, subty: subty, suffix: suffix}
}

// Type returns the top-level type with its original casing.
func (m MediaType) Type() string { return m.ty }

// Subtype returns the subtype with its original casing.
func (m MediaType) Subtype() string { return m.subty }

// Suffix returns the structured syntax suffix and whether one is present.
func (m MediaType) Suffix() (string, bool) { return m.suffix, m.suffix != "" }

// Essence returns a copy of m with the parameter section stripped,
// for comparisons that should ignore parameters.
func (m MediaType) Essence() MediaType {
	return MediaType{ty: m.ty, subty: m.subty, suffix: m.suffix}
}

// HasParams reports whether the parameter section contains anything
// beyond whitespace. It does not imply the section is well-formed.
func (m MediaType) HasParams() bool {
	for i := 1; i < len(m.rawParams); i++ {
		if !isSpaceChar(m.rawParams[i]) {
			return true
		}
	}
	return false
}

// Params returns a fresh iterator over the parameter section.
// Each call starts from the first parameter.
func (m MediaType) Params() *Params {
	raw, base := m.rawParams, m.paramsOffset
	if raw != "" {
		// Skip the leading ";".
		raw, base = raw[1:], base+1
	}
	return &Params{raw: raw, base: base}
}

// Param returns the value of the first parameter named name, matched
// case-insensitively. Lookup stops at the first malformed parameter and
// reports not found; iterate Params to observe the error.
func (m MediaType) Param(name string) (string, bool) {
	params := m.Params()
	for params.Next() {
		if p := params.Param(); strings.EqualFold(p.Name, name) {
			return p.Value, true
		}
	}
	return "", false
}

// String renders m losslessly: for a parsed value it reproduces the
// input byte for byte, original casing and parameter spelling included.
func (m MediaType) String() string {
	var b strings.Builder
	b.Grow(len(m.ty) + 1 + len(m.subty) + 1 + len(m.suffix) + 1 + len(m.rawParams))
	b.WriteString(m.ty)
	b.WriteByte('/')
	b.WriteString(m.subty)
	if m.suffix != "" {
		b.WriteByte('+')
		b.WriteString(m.suffix)
	}
	b.WriteString(m.rawParams)
	return b.String()
}

// EqualEssence reports whether m and other agree on type, subtype and
// suffix, ignoring parameters. See the package-level EqualEssence.
func (m MediaType) EqualEssence(other MediaType) bool { return EqualEssence(m, other) }

// Equal reports whether m and other are the same media type. See the
// package-level Equal for the semantics.
func (m MediaType) Equal(other MediaType) bool { return Equal(m, other) }

// Compare orders m against other. See the package-level Compare.
func (m MediaType) Compare(other MediaType) int { return Compare(m, other) }

// ToBuf copies m into an owned MediaTypeBuf. The copy holds only the
// media type's own bytes, so a view over a large source buffer shrinks
// to a self-contained value.
func (m MediaType) ToBuf() MediaTypeBuf {
	data := m.String()
	view := MediaType{ty: data[:len(m.ty)]}
	pos := len(m.ty) + 1
	view.subty = data[pos : pos+len(m.subty)]
	pos += len(m.subty)
	if m.suffix != "" {
		pos++
		view.suffix = data[pos : pos+len(m.suffix)]
		pos += len(m.suffix)
	}
	if m.rawParams != "" {
		view.rawParams = data[pos:]
		view.paramsOffset = pos
	}
	return MediaTypeBuf{data: data, view: view}
}
