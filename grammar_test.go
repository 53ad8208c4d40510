package mediatype

import (
	"errors"
	"strings"
	"testing"
)

func TestIsRestrictedNameFirst(t *testing.T) {
	for c := byte('a'); c <= 'z'; c++ {
		if !IsRestrictedNameFirst(c) {
			t.Errorf("IsRestrictedNameFirst(%q) = false, want true", c)
		}
	}
	for c := byte('A'); c <= 'Z'; c++ {
		if !IsRestrictedNameFirst(c) {
			t.Errorf("IsRestrictedNameFirst(%q) = false, want true", c)
		}
	}
	for c := byte('0'); c <= '9'; c++ {
		if !IsRestrictedNameFirst(c) {
			t.Errorf("IsRestrictedNameFirst(%q) = false, want true", c)
		}
	}
	for _, c := range []byte{'!', '#', '$', '&', '-', '^', '_', '.', '+', ' ', '/', ';', '=', '"', 0, 127, 200} {
		if IsRestrictedNameFirst(c) {
			t.Errorf("IsRestrictedNameFirst(%q) = true, want false", c)
		}
	}
}

func TestIsRestrictedNameChar(t *testing.T) {
	for _, c := range []byte("azAZ09!#$&-^_.+") {
		if !IsRestrictedNameChar(c) {
			t.Errorf("IsRestrictedNameChar(%q) = false, want true", c)
		}
	}
	for _, c := range []byte{' ', '\t', '/', ';', '=', '"', '*', '%', '\'', '~', 0, 127, 200} {
		if IsRestrictedNameChar(c) {
			t.Errorf("IsRestrictedNameChar(%q) = true, want false", c)
		}
	}
}

func TestIsTokenChar(t *testing.T) {
	// Token allows everything visible except tspecials.
	for _, c := range []byte("azAZ09!#$&-^_.+*'%~|`{}") {
		if !IsTokenChar(c) {
			t.Errorf("IsTokenChar(%q) = false, want true", c)
		}
	}
	for _, c := range []byte{'(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/', '[', ']', '?', '=', ' ', '\t', 0, 31, 127, 200} {
		if IsTokenChar(c) {
			t.Errorf("IsTokenChar(%q) = true, want false", c)
		}
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple", "text", nil},
		{"single char", "a", nil},
		{"digits", "3gpp", nil},
		{"mixed case", "sVg", nil},
		{"all specials", "a!#$&-^_.+b", nil},
		{"vendor tree", "vnd.api.v2", nil},
		{"max length", strings.Repeat("a", 127), nil},
		{"empty", "", ErrNameEmpty},
		{"too long", strings.Repeat("a", 128), ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNameBadChar(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantChar byte
		wantPos  int
	}{
		{"bad first special", "+json", '+', 0},
		{"bad first dash", "-x", '-', 0},
		{"space inside", "te xt", ' ', 2},
		{"slash inside", "a/b", '/', 1},
		{"high byte", "caf\xc3\xa9", 0xc3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			var charErr *NameCharError
			if !errors.As(err, &charErr) {
				t.Fatalf("ValidateName(%q) = %v, want *NameCharError", tt.input, err)
			}
			if charErr.Char != tt.wantChar || charErr.Pos != tt.wantPos {
				t.Errorf("ValidateName(%q) = {Char: %q, Pos: %d}, want {Char: %q, Pos: %d}",
					tt.input, charErr.Char, charErr.Pos, tt.wantChar, tt.wantPos)
			}
		})
	}
}

func BenchmarkValidateName(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if err := ValidateName("application"); err != nil {
			b.Fatal(err)
		}
	}
}
