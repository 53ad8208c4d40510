package mediatype

import "testing"

// Benchmark Parse with a bare essence
func BenchmarkParse_Essence(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Parse("application/json"); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark Parse with suffix and parameters (parameters stay unparsed)
func BenchmarkParse_WithParams(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Parse("image/svg+xml; charset=UTF-8; x=1; y=2"); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark full parameter iteration over unquoted values
func BenchmarkParams_Tokens(b *testing.B) {
	mt := MustParse("a/b;charset=utf-8;format=flowed;delsp=yes")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		params := mt.Params()
		for params.Next() {
		}
		if err := params.Err(); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark parameter iteration forcing quoted-string unescaping
func BenchmarkParams_QuotedEscapes(b *testing.B) {
	mt := MustParse(`a/b;x="he said \"hi\" and left"`)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		params := mt.Params()
		for params.Next() {
		}
		if err := params.Err(); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark full equality including parameter multiset comparison
func BenchmarkEqual(b *testing.B) {
	x := MustParse("text/plain; charset=utf-8; format=flowed")
	y := MustParse("Text/Plain; format=flowed; charset=utf-8")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if !Equal(x, y) {
			b.Fatal("expected equal")
		}
	}
}

// Benchmark the owned-copy construction
func BenchmarkToBuf(b *testing.B) {
	mt := MustParse("text/plain; charset=utf-8")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = mt.ToBuf()
	}
}
