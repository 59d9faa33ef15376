// Package text models shaped glyph runs as they are consumed by the display
// list converter.
//
// A [Run] is a sequence of [GlyphStore] values, one per natural word or
// inter-word gap, in logical order. Each store holds the shaped glyphs of
// its runes together with the per-glyph "is a space character" flag used to
// apply word spacing, and a store-level whitespace flag. Consumers walk a
// run with [Run.NaturalWordSlicesInVisualOrder], which yields the [Slice] of
// every store overlapping a character [Range].
//
// Runs are normally produced by a layout engine. [Shaper] builds them from
// plain strings with go-text/typesetting, which is what the demo and the
// tests use:
//
//	shaper, err := text.NewShaper(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	run, err := shaper.Shape("Hello, world", 16, fontKey)
package text
