package text

import (
	"slices"
	"testing"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/displaylist/backend"
)

// glyphsFor returns one glyph per rune of text[chars], each advancing by adv.
func glyphsFor(text []rune, chars Range, adv fixed.Int26_6) []shaping.Glyph {
	glyphs := make([]shaping.Glyph, 0, chars.Length)
	for i := chars.Start; i < chars.End(); i++ {
		glyphs = append(glyphs, shaping.Glyph{
			GlyphID:      font.GID(text[i]),
			XAdvance:     adv,
			Advance:      adv,
			YOffset:      fixed.I(1),
			ClusterIndex: i,
			RuneCount:    1,
			GlyphCount:   1,
		})
	}
	return glyphs
}

// buildRun shapes "ab cd" by hand: three stores, 10px per glyph.
func buildRun() *Run {
	text := []rune("ab cd")
	ten := fixed.I(10)
	stores := []*GlyphStore{
		NewGlyphStore(glyphsFor(text, NewRange(0, 2), ten), text, NewRange(0, 2), false),
		NewGlyphStore(glyphsFor(text, NewRange(2, 1), ten), text, NewRange(2, 1), true),
		NewGlyphStore(glyphsFor(text, NewRange(3, 2), ten), text, NewRange(3, 2), false),
	}
	return NewRun(backend.FontKey{Index: 1}, fixed.I(16), stores...)
}

func TestRangeIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Range
		want Range
	}{
		{"inside", NewRange(0, 10), NewRange(2, 3), NewRange(2, 3)},
		{"overlap", NewRange(0, 5), NewRange(3, 5), NewRange(3, 2)},
		{"disjoint", NewRange(0, 2), NewRange(4, 2), Range{Start: 0}},
		{"touching", NewRange(0, 2), NewRange(2, 2), Range{Start: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGlyphStoreSpaces(t *testing.T) {
	run := buildRun()
	space := run.Stores()[1]
	if !space.IsWhitespace() {
		t.Error("space store IsWhitespace() = false")
	}
	for g := range space.GlyphsInRange(space.Chars()) {
		if !g.CharIsSpace {
			t.Error("space glyph CharIsSpace = false")
		}
	}
	for g := range run.Stores()[0].GlyphsInRange(NewRange(0, 2)) {
		if g.CharIsSpace {
			t.Errorf("glyph %d CharIsSpace = true", g.ID)
		}
		if g.Offset.Y != -fixed.I(1) {
			t.Errorf("Offset.Y = %v, want -1 (y down)", g.Offset.Y)
		}
	}
}

func TestNaturalWordSlices(t *testing.T) {
	run := buildRun()

	var got []Range
	for s := range run.NaturalWordSlicesInVisualOrder(NewRange(1, 3)) {
		got = append(got, s.Range)
	}
	want := []Range{NewRange(1, 1), NewRange(2, 1), NewRange(3, 1)}
	if !slices.Equal(got, want) {
		t.Errorf("slices = %v, want %v", got, want)
	}

	run.RTL = true
	got = got[:0]
	for s := range run.NaturalWordSlicesInVisualOrder(run.Chars()) {
		got = append(got, s.Glyphs.Chars())
	}
	want = []Range{NewRange(3, 2), NewRange(2, 1), NewRange(0, 2)}
	if !slices.Equal(got, want) {
		t.Errorf("RTL slices = %v, want %v", got, want)
	}
}

func TestNaturalWordSlicesStop(t *testing.T) {
	run := buildRun()
	n := 0
	for range run.NaturalWordSlicesInVisualOrder(run.Chars()) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterations after break = %d, want 1", n)
	}
}

func TestRunAdvance(t *testing.T) {
	run := buildRun()
	if got := run.Advance(run.Chars()); got != fixed.I(50) {
		t.Errorf("Advance() = %v, want 50", got)
	}
	run.ExtraWordSpacing = fixed.I(4)
	if got := run.Advance(run.Chars()); got != fixed.I(54) {
		t.Errorf("Advance() with word spacing = %v, want 54", got)
	}
	if got := run.Advance(NewRange(0, 2)); got != fixed.I(20) {
		t.Errorf("Advance(first word) = %v, want 20", got)
	}
}

func TestRunCheck(t *testing.T) {
	run := buildRun()
	if err := run.Check(NewRange(0, 5)); err != nil {
		t.Errorf("Check(full) = %v, want nil", err)
	}
	err := run.Check(NewRange(3, 5))
	if _, ok := err.(*RangeError); !ok {
		t.Errorf("Check(overrun) = %v, want *RangeError", err)
	}
}
