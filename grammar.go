package mediatype

// MaxNameLength is the maximum length of a restricted name
// (type, subtype, suffix or parameter name) per RFC 6838 section 4.2.
const MaxNameLength = 127

// octetKind classifies a byte against the grammars this package cares about.
//
// From RFC 6838 section 4.2:
//
//	restricted-name       = restricted-name-first *126restricted-name-chars
//	restricted-name-first = ALPHA / DIGIT
//	restricted-name-chars = ALPHA / DIGIT / "!" / "#" / "$" / "&" /
//	                        "-" / "^" / "_" / "." / "+"
//
// From RFC 2045 section 5.1:
//
//	token     = 1*<any (US-ASCII) CHAR except SPACE, CTLs, or tspecials>
//	tspecials = "(" / ")" / "<" / ">" / "@" / "," / ";" / ":" / "\" /
//	            <"> / "/" / "[" / "]" / "?" / "="
type octetKind byte

const (
	octetNameFirst octetKind = 1 << iota
	octetNameRest
	octetToken
	octetSpace
)

var octetKinds [256]octetKind

func init() {
	for c := 0; c < 256; c++ {
		var k octetKind

		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			k |= octetNameFirst | octetNameRest
		case c == '!', c == '#', c == '$', c == '&', c == '-',
			c == '^', c == '_', c == '.', c == '+':
			k |= octetNameRest
		}

		if 32 < c && c < 127 {
			switch c {
			case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"',
				'/', '[', ']', '?', '=':
				// tspecials are only allowed inside quoted strings
			default:
				k |= octetToken
			}
		}

		if c == ' ' || c == '\t' {
			k |= octetSpace
		}

		octetKinds[c] = k
	}
}

// IsRestrictedNameFirst reports whether c may start a restricted name.
func IsRestrictedNameFirst(c byte) bool { return octetKinds[c]&octetNameFirst != 0 }

// IsRestrictedNameChar reports whether c may appear in a restricted name
// after the first character.
func IsRestrictedNameChar(c byte) bool { return octetKinds[c]&octetNameRest != 0 }

// IsTokenChar reports whether c may appear in an unquoted parameter value.
func IsTokenChar(c byte) bool { return octetKinds[c]&octetToken != 0 }

// isSpaceChar reports whether c is horizontal whitespace (SP or HT),
// the only whitespace the grammar permits after ";".
func isSpaceChar(c byte) bool { return octetKinds[c]&octetSpace != 0 }

// ValidateName checks s against the restricted-name grammar: 1 to 127
// characters, the first alphanumeric, the rest alphanumeric or one of
// "!#$&-^_.+".
//
// The returned error is ErrNameEmpty, ErrNameTooLong, or a
// *NameCharError locating the offending character.
func ValidateName(s string) error {
	if len(s) == 0 {
		return ErrNameEmpty
	}
	if len(s) > MaxNameLength {
		return ErrNameTooLong
	}
	if !IsRestrictedNameFirst(s[0]) {
		return &NameCharError{Char: s[0], Pos: 0}
	}
	for i := 1; i < len(s); i++ {
		if !IsRestrictedNameChar(s[i]) {
			return &NameCharError{Char: s[i], Pos: i}
		}
	}
	return nil
}
