package mediatype

import "strings"

// Parse parses a media-type string such as "text/plain; charset=utf-8"
// into a view borrowing from s.
//
// Parse validates the essence (type, subtype and optional "+suffix") in
// a single left-to-right scan. The parameter section after the first ";"
// is recorded but not validated until iterated: a media type with a
// malformed parameter section still yields a usable essence as long as
// the caller never consumes its parameters. See Params.
//
// Horizontal whitespace (space, tab) is permitted only immediately after
// each ";". All failures are *ParseError values carrying the byte offset
// of the violation.
func Parse(s string) (MediaType, error) {
	if len(s) == 0 {
		return MediaType{}, &ParseError{Kind: KindEmptyInput}
	}

	// Type: maximal run of restricted-name characters, then "/".
	i := scanName(s, 0)
	if i == len(s) || s[i] != '/' {
		return MediaType{}, &ParseError{Kind: KindMissingSlash, Offset: i}
	}
	ty := s[:i]
	if err := ValidateName(ty); err != nil {
		return MediaType{}, &ParseError{Kind: KindInvalidType, Offset: 0, Cause: err}
	}

	// Subtype, split at the first "+" into subtype and suffix. "+" is
	// itself a restricted-name character, so the suffix may contain
	// further "+" and the scan below covers both components.
	subStart := i + 1
	j := scanName(s, subStart)
	subty := s[subStart:j]
	var suffix string
	if k := strings.IndexByte(subty, '+'); k >= 0 {
		suffix = subty[k+1:]
		subty = subty[:k]
		if err := ValidateName(suffix); err != nil {
			return MediaType{}, &ParseError{Kind: KindInvalidSuffix, Offset: subStart + k + 1, Cause: err}
		}
	}
	if err := ValidateName(subty); err != nil {
		return MediaType{}, &ParseError{Kind: KindInvalidSubtype, Offset: subStart, Cause: err}
	}

	mt := MediaType{ty: ty, subty: subty, suffix: suffix}
	switch {
	case j == len(s):
		return mt, nil
	case s[j] == ';':
		// Keep the ";" so rendering stays byte-lossless even for an
		// empty parameter section.
		mt.rawParams = s[j:]
		mt.paramsOffset = j
		return mt, nil
	default:
		return MediaType{}, &ParseError{Kind: KindUnexpectedCharacter, Offset: j}
	}
}

// MustParse is like Parse but panics on invalid input. It is intended
// for package-level media-type literals known to be valid.
func MustParse(s string) MediaType {
	mt, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return mt
}

// scanName returns the index of the first byte at or after start that is
// not a restricted-name character.
func scanName(s string, start int) int {
	i := start
	for i < len(s) && IsRestrictedNameChar(s[i]) {
		i++
	}
	return i
}
