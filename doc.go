// Package mediatype parses, validates and compares MIME media types as
// defined by RFC 6838 and RFC 2045, e.g. "text/plain; charset=utf-8".
//
// It is aimed at protocol code (HTTP, email, content negotiation) that
// needs to accept a media-type string, check it is well-formed, inspect
// its components and compare two media types, without copying when the
// source text outlives the parsed value.
//
// # Borrowed and owned forms
//
// Parse returns a MediaType, a borrowed view: a few substrings of the
// input plus the raw parameter section. It allocates nothing but keeps
// the whole input string reachable. MediaTypeBuf is the owned
// counterpart, holding a self-contained copy:
//
//	mt, err := mediatype.Parse(header)   // zero-copy view over header
//	buf := mt.ToBuf()                    // self-contained, header can go
//
// Both forms expose the same accessors and mix freely in comparisons.
//
// # Parameters
//
// The parameter section is validated lazily. Parse checks only the
// essence (type, subtype, optional suffix); iterating Params surfaces
// any parameter-section violation:
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
// Quoted values are unescaped; the unquoting allocates only when an
// escape sequence is present.
//
// # Equality
//
// Equal compares essences case-insensitively and parameters as an
// unordered multiset keyed by case-folded name with case-sensitive
// values. EqualEssence ignores parameters entirely. Compare defines a
// total order consistent with Equal, and Hash64 hashes consistently with
// both:
//
//	a, _ := mediatype.Parse("text/plain; charset=utf-8")
//	b, _ := mediatype.Parse("Text/Plain; Charset=utf-8")
//	mediatype.Equal(a, b) // true
//
// # Errors
//
// Every rejection is a *ParseError carrying an ErrorKind and the byte
// offset of the violation. Name-grammar details (empty, too long, bad
// character) are wrapped as the error's cause.
package mediatype
