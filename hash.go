package mediatype

import (
	"strings"

	"github.com/zeebo/xxh3"
)

// Hash64 returns a 64-bit hash of m consistent with Equal: media types
// that compare equal hash to the same value regardless of name casing or
// parameter order. Useful for keying media types in maps, shard
// selectors or consistent-hash rings.
func (m MediaType) Hash64() uint64 {
	var b strings.Builder
	b.Grow(len(m.ty) + len(m.subty) + len(m.suffix) + len(m.rawParams) + 8)

	writeFolded(&b, m.ty)
	b.WriteByte('/')
	writeFolded(&b, m.subty)
	if m.suffix != "" {
		b.WriteByte('+')
		writeFolded(&b, m.suffix)
	}

	ps, err := m.collectParams()
	if err != nil {
		// Matches the Equal fallback: malformed sections compare (and
		// therefore hash) by their raw text.
		b.WriteString(m.rawParams)
		return xxh3.HashString(b.String())
	}
	sortParams(ps)
	for _, p := range ps {
		b.WriteByte(';')
		writeFolded(&b, p.Name)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return xxh3.HashString(b.String())
}

// Hash64 returns the hash of the owned media type. See MediaType.Hash64.
func (b MediaTypeBuf) Hash64() uint64 { return b.view.Hash64() }

func writeFolded(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		b.WriteByte(lowerByte(s[i]))
	}
}
