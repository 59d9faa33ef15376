package text

import (
	"iter"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/displaylist/backend"
)

// Run is a shaped run of text in a single font.
type Run struct {
	// Font is the backend font instance the glyphs index into.
	Font backend.FontKey

	// Size is the font size the run was shaped at.
	Size fixed.Int26_6

	// ExtraWordSpacing is added to the advance of every space glyph.
	ExtraWordSpacing fixed.Int26_6

	// RTL is set for runs whose paragraph direction is right-to-left.
	RTL bool

	stores []*GlyphStore
}

// NewRun creates a run from glyph stores given in logical order. The stores
// must cover consecutive character ranges.
func NewRun(font backend.FontKey, size fixed.Int26_6, stores ...*GlyphStore) *Run {
	return &Run{Font: font, Size: size, stores: stores}
}

// Stores returns the glyph stores in logical order.
func (r *Run) Stores() []*GlyphStore { return r.stores }

// Chars returns the character range covered by the run.
func (r *Run) Chars() Range {
	if len(r.stores) == 0 {
		return Range{}
	}
	first := r.stores[0].chars
	last := r.stores[len(r.stores)-1].chars
	return Range{Start: first.Start, Length: last.End() - first.Start}
}

// Slice is the part of a glyph store that falls inside a requested range.
type Slice struct {
	Glyphs *GlyphStore
	Range  Range
}

// NaturalWordSlicesInVisualOrder yields a Slice for every store that
// overlaps rng. Stores are visited left to right on screen, so right-to-left
// runs are walked back to front.
func (r *Run) NaturalWordSlicesInVisualOrder(rng Range) iter.Seq[Slice] {
	return func(yield func(Slice) bool) {
		n := len(r.stores)
		for i := range n {
			s := r.stores[i]
			if r.RTL {
				s = r.stores[n-1-i]
			}
			part := s.chars.Intersect(rng)
			if part.IsEmpty() {
				continue
			}
			if !yield(Slice{Glyphs: s, Range: part}) {
				return
			}
		}
	}
}

// Advance returns the width of the characters in rng, word spacing included.
func (r *Run) Advance(rng Range) fixed.Int26_6 {
	var sum fixed.Int26_6
	for slice := range r.NaturalWordSlicesInVisualOrder(rng) {
		for g := range slice.Glyphs.GlyphsInRange(slice.Range) {
			sum += g.Advance
			if g.CharIsSpace {
				sum += r.ExtraWordSpacing
			}
		}
	}
	return sum
}

// Check returns a *RangeError if rng is not inside the run.
func (r *Run) Check(rng Range) error {
	chars := r.Chars()
	if rng.Start < chars.Start || rng.End() > chars.End() || rng.Length < 0 {
		return &RangeError{Range: rng, Len: chars.Length}
	}
	return nil
}
