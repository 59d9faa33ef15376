package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/displaylist/backend"
)

func newTestShaper(t *testing.T) *Shaper {
	t.Helper()
	s, err := NewShaper(goregular.TTF)
	if err != nil {
		t.Fatalf("NewShaper() error = %v", err)
	}
	return s
}

func TestNewShaperErrors(t *testing.T) {
	if _, err := NewShaper(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewShaper(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewShaper([]byte("not a font")); err == nil {
		t.Error("NewShaper(garbage) error = nil")
	}
}

func TestShapeWords(t *testing.T) {
	s := newTestShaper(t)
	run, err := s.Shape("Hello, world", 16, backend.FontKey{Index: 3})
	if err != nil {
		t.Fatalf("Shape() error = %v", err)
	}
	if run.Font.Index != 3 {
		t.Errorf("Font = %v, want index 3", run.Font)
	}
	if run.RTL {
		t.Error("latin text shaped as RTL")
	}

	// "Hello" "," " " "world"
	stores := run.Stores()
	if len(stores) != 4 {
		t.Fatalf("len(Stores()) = %d, want 4", len(stores))
	}
	wantWS := []bool{false, false, true, false}
	for i, st := range stores {
		if st.IsWhitespace() != wantWS[i] {
			t.Errorf("store %d IsWhitespace() = %v, want %v", i, st.IsWhitespace(), wantWS[i])
		}
		if st.Len() == 0 {
			t.Errorf("store %d has no glyphs", i)
		}
	}
	if got := run.Chars(); got != NewRange(0, 12) {
		t.Errorf("Chars() = %+v, want [0,12)", got)
	}
	if run.Advance(run.Chars()) <= 0 {
		t.Error("Advance() <= 0")
	}
}

func TestShapeSpaceFlag(t *testing.T) {
	s := newTestShaper(t)
	run, err := s.Shape("a b", 12, backend.FontKey{})
	if err != nil {
		t.Fatal(err)
	}
	spaces := 0
	for slice := range run.NaturalWordSlicesInVisualOrder(run.Chars()) {
		for g := range slice.Glyphs.GlyphsInRange(slice.Range) {
			if g.CharIsSpace {
				spaces++
			}
		}
	}
	if spaces != 1 {
		t.Errorf("space glyphs = %d, want 1", spaces)
	}
}

func TestShapeRTL(t *testing.T) {
	s := newTestShaper(t)
	run, err := s.Shape("שלום עולם", 12, backend.FontKey{})
	if err != nil {
		t.Fatal(err)
	}
	if !run.RTL {
		t.Error("hebrew text not detected as RTL")
	}
}

func TestShapeEmptyAndInvalid(t *testing.T) {
	s := newTestShaper(t)
	run, err := s.Shape("", 12, backend.FontKey{})
	if err != nil {
		t.Fatalf("Shape(\"\") error = %v", err)
	}
	if len(run.Stores()) != 0 {
		t.Errorf("empty text produced %d stores", len(run.Stores()))
	}
	if _, err := s.Shape("x", 0, backend.FontKey{}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Shape(size 0) error = %v, want ErrInvalidSize", err)
	}
}

func TestSplitWords(t *testing.T) {
	got := splitWords([]rune("hi,  there"))
	want := []Range{NewRange(0, 2), NewRange(2, 1), NewRange(3, 2), NewRange(5, 5)}
	if len(got) != len(want) {
		t.Fatalf("splitWords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("piece %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
