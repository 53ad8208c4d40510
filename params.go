package mediatype

import "strings"

// Param is a single media-type parameter.
//
// Value is the logical value: for quoted values containing escape
// sequences it is a freshly unescaped string, otherwise it references
// the source text directly. Callers must not rely on either
// representation, only on the content.
type Param struct {
	Name  string
	Value string
}

// Params iterates over the parameter section of a media type, in source
// order, in the style of bufio.Scanner:
//
//	params := mt.Params()
//	for params.Next() {
//	    p := params.Param()
//	    fmt.Println(p.Name, p.Value)
//	}
//	if err := params.Err(); err != nil {
//	    // malformed parameter section
//	}
//
// Iteration is lazy and purely borrowing: grammar violations in the
// parameter section surface here, not at Parse time, and the underlying
// span is never consumed. Reset rewinds to the first parameter, so a
// Params may be iterated any number of times.
//
// Duplicate parameter names are yielded as-is; the library does not
// deduplicate.
type Params struct {
	raw  string
	base int // offset of raw within the originally parsed text

	pos  int
	cur  Param
	err  error
	done bool
}

// Next advances to the next parameter. It returns false when the
// sequence is exhausted or a parameter is malformed; Err distinguishes
// the two.
func (p *Params) Next() bool {
	if p.done || p.err != nil {
		return false
	}

	// Whitespace is permitted between ";" and the parameter name.
	for p.pos < len(p.raw) && isSpaceChar(p.raw[p.pos]) {
		p.pos++
	}
	if p.pos == len(p.raw) {
		// Also ends iteration cleanly after a trailing ";".
		p.done = true
		return false
	}

	// Name.
	start := p.pos
	for p.pos < len(p.raw) && IsRestrictedNameChar(p.raw[p.pos]) {
		p.pos++
	}
	name := p.raw[start:p.pos]
	if err := ValidateName(name); err != nil {
		p.fail(KindInvalidParameterName, start, err)
		return false
	}

	// "="
	if p.pos == len(p.raw) || p.raw[p.pos] != '=' {
		p.fail(KindMissingEquals, p.pos, nil)
		return false
	}
	p.pos++

	// Value: quoted string or bare token.
	var value string
	if p.pos < len(p.raw) && p.raw[p.pos] == '"' {
		v, ok := p.scanQuoted()
		if !ok {
			return false
		}
		value = v
		// After the closing quote only ";" or end of input may follow.
		if p.pos < len(p.raw) && p.raw[p.pos] != ';' {
			p.fail(KindUnexpectedCharacter, p.pos, nil)
			return false
		}
	} else {
		vstart := p.pos
		for p.pos < len(p.raw) && IsTokenChar(p.raw[p.pos]) {
			p.pos++
		}
		if p.pos == vstart || (p.pos < len(p.raw) && p.raw[p.pos] != ';') {
			// Empty value, or a character outside the token class.
			p.fail(KindInvalidParameterValue, p.pos, nil)
			return false
		}
		value = p.raw[vstart:p.pos]
	}

	if p.pos < len(p.raw) {
		p.pos++ // consume ";"
	}

	p.cur = Param{Name: name, Value: value}
	return true
}

// scanQuoted consumes a quoted-string starting at the opening quote and
// returns the unquoted content. Backslash escapes "\"" and "\\" only; a
// backslash before any other byte is literal content. The content is a
// direct slice of the source unless an escape forced a copy.
func (p *Params) scanQuoted() (string, bool) {
	openQuote := p.pos
	p.pos++
	start := p.pos

	var unescaped strings.Builder
	escaped := false
	for p.pos < len(p.raw) {
		switch c := p.raw[p.pos]; {
		case c == '"':
			inner := p.raw[start:p.pos]
			p.pos++
			if !escaped {
				return inner, true
			}
			return unescaped.String(), true

		case c == '\\' && p.pos+1 < len(p.raw) &&
			(p.raw[p.pos+1] == '"' || p.raw[p.pos+1] == '\\'):
			if !escaped {
				escaped = true
				unescaped.WriteString(p.raw[start:p.pos])
			}
			unescaped.WriteByte(p.raw[p.pos+1])
			p.pos += 2

		default:
			if escaped {
				unescaped.WriteByte(c)
			}
			p.pos++
		}
	}

	p.fail(KindUnterminatedQuote, openQuote, nil)
	return "", false
}

// Param returns the parameter produced by the last successful Next.
func (p *Params) Param() Param { return p.cur }

// Err returns the grammar violation that stopped iteration, or nil after
// a clean end of input.
func (p *Params) Err() error { return p.err }

// Reset rewinds the sequence to the first parameter.
func (p *Params) Reset() {
	p.pos = 0
	p.cur = Param{}
	p.err = nil
	p.done = false
}

func (p *Params) fail(kind ErrorKind, offset int, cause error) {
	p.err = &ParseError{Kind: kind, Offset: p.base + offset, Cause: cause}
}

// collectParams materializes the full parameter list, returning the
// first grammar violation encountered, if any.
func (m MediaType) collectParams() ([]Param, error) {
	var out []Param
	params := m.Params()
	for params.Next() {
		out = append(out, params.Param())
	}
	return out, params.Err()
}
