package mediatype

import (
	"errors"
	"fmt"
)

// Name violations reported by ValidateName. They surface wrapped in a
// *ParseError when the parser or parameter iteration rejects a name, so
// errors.Is can classify the sub-reason.
var (
	ErrNameEmpty   = errors.New("empty name")
	ErrNameTooLong = errors.New("name longer than 127 characters")
)

// NameCharError reports a character outside the restricted-name grammar.
type NameCharError struct {
	Char byte // offending character
	Pos  int  // position within the name
}

func (e *NameCharError) Error() string {
	if e.Pos == 0 {
		return fmt.Sprintf("invalid first character %q in name", e.Char)
	}
	return fmt.Sprintf("invalid character %q at position %d in name", e.Char, e.Pos)
}

// ErrorKind identifies which grammar rule an input violated.
type ErrorKind string

const (
	// Errors reported by Parse.
	KindEmptyInput          ErrorKind = "empty input"
	KindMissingSlash        ErrorKind = "missing slash"
	KindInvalidType         ErrorKind = "invalid type"
	KindInvalidSubtype      ErrorKind = "invalid subtype"
	KindInvalidSuffix       ErrorKind = "invalid suffix"
	KindUnexpectedCharacter ErrorKind = "unexpected character"

	// Errors reported lazily while iterating parameters.
	KindInvalidParameterName  ErrorKind = "invalid parameter name"
	KindMissingEquals         ErrorKind = "missing equals"
	KindInvalidParameterValue ErrorKind = "invalid parameter value"
	KindUnterminatedQuote     ErrorKind = "unterminated quote"
)

// ParseError describes why an input was rejected.
//
// Offset is the byte offset of the failure within the parsed text.
// Errors produced while iterating parameters carry offsets into the same
// text the media type was parsed from, not into the parameter span.
type ParseError struct {
	Kind   ErrorKind
	Offset int
	Cause  error // name violation detail, if any
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("mediatype: %s at offset %d: %v", e.Kind, e.Offset, e.Cause)
	}
	return fmt.Sprintf("mediatype: %s at offset %d", e.Kind, e.Offset)
}

// Unwrap returns the name violation behind an invalid-name error, if any.
func (e *ParseError) Unwrap() error { return e.Cause }
