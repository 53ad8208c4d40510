package mediatype

// MediaTypeBuf is an owned media type: the parsed text lives in a buffer
// the value controls, so it stays valid after the string it came from is
// gone. It is immutable after construction and safe for concurrent
// readers without synchronization; all updates are expressed by building
// a new value.
//
// MediaTypeBuf mirrors the MediaType accessors by keeping a view
// re-derived over its own buffer.
type MediaTypeBuf struct {
	data string
	view MediaType
}

// ParseBuf parses s and returns an owned media type. It is equivalent to
// Parse followed by ToBuf.
func ParseBuf(s string) (MediaTypeBuf, error) {
	mt, err := Parse(s)
	if err != nil {
		return MediaTypeBuf{}, err
	}
	return mt.ToBuf(), nil
}

// View returns the borrowed view over the buffer's own text. The view
// remains valid for as long as the Go runtime keeps the buffer alive,
// which the view itself guarantees.
func (b MediaTypeBuf) View() MediaType { return b.view }

// Type returns the top-level type with its original casing.
func (b MediaTypeBuf) Type() string { return b.view.ty }

// Subtype returns the subtype with its original casing.
func (b MediaTypeBuf) Subtype() string { return b.view.subty }

// Suffix returns the structured syntax suffix and whether one is present.
func (b MediaTypeBuf) Suffix() (string, bool) { return b.view.Suffix() }

// Essence returns a borrowed view with the parameter section stripped.
func (b MediaTypeBuf) Essence() MediaType { return b.view.Essence() }

// HasParams reports whether the parameter section contains anything
// beyond whitespace.
func (b MediaTypeBuf) HasParams() bool { return b.view.HasParams() }

// Params returns a fresh iterator over the parameter section.
func (b MediaTypeBuf) Params() *Params { return b.view.Params() }

// Param returns the value of the first parameter named name, matched
// case-insensitively.
func (b MediaTypeBuf) Param(name string) (string, bool) { return b.view.Param(name) }

// Equal reports whether b and other are the same media type. See Equal.
func (b MediaTypeBuf) Equal(other MediaTypeBuf) bool { return Equal(b.view, other.view) }

// EqualEssence reports whether b and other agree on type, subtype and
// suffix. See EqualEssence.
func (b MediaTypeBuf) EqualEssence(other MediaTypeBuf) bool {
	return EqualEssence(b.view, other.view)
}

// Compare orders b against other. See Compare.
func (b MediaTypeBuf) Compare(other MediaTypeBuf) int { return Compare(b.view, other.view) }

// String returns the owned text.
func (b MediaTypeBuf) String() string { return b.data }
