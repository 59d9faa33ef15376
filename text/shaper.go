package text

import (
	"bytes"
	"fmt"
	"slices"
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/segmenter"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/displaylist/backend"
)

// Shaper turns strings into glyph runs using go-text/typesetting's HarfBuzz
// implementation. Text is split into natural words and the gaps between
// them, and each piece is shaped into its own GlyphStore.
//
// Shaper is safe for concurrent use. The parsed font.Font is shared and a
// lightweight font.Face is created per Shape call, since faces are not safe
// for concurrent use. HarfbuzzShaper instances are pooled.
//
// Shaped runs are cached by text, size and font key. Callers get their own
// Run value, but the glyph stores behind it are shared and must not be
// modified.
type Shaper struct {
	font  *font.Font
	lang  language.Language
	pool  sync.Pool
	cache *Cache[runKey, *Run]
}

// NewShaper parses TrueType or OpenType font data.
func NewShaper(data []byte, opts ...ShaperOption) (*Shaper, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	o := defaultShaperOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Shaper{
		font: face.Font,
		lang: language.NewLanguage("en"),
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
	if o.cacheSize > 0 {
		s.cache = NewCache[runKey, *Run](o.cacheSize)
	}
	return s, nil
}

// CachedRuns returns the number of runs held by the shaping cache.
func (s *Shaper) CachedRuns() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

// Shape shapes str at size pixels and returns a run referencing key.
// The paragraph direction is taken from the Unicode bidi algorithm.
func (s *Shaper) Shape(str string, size float64, key backend.FontKey) (*Run, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	k := runKey{text: str, size: floatToFixed(size), font: key}
	if s.cache != nil {
		if cached, ok := s.cache.Get(k); ok {
			run := *cached
			return &run, nil
		}
	}
	run := s.shape(str, k)
	if s.cache != nil {
		shared := *run
		s.cache.Set(k, &shared)
	}
	return run, nil
}

func (s *Shaper) shape(str string, k runKey) *Run {
	run := &Run{Font: k.font, Size: k.size}
	runes := []rune(str)
	if len(runes) == 0 {
		return run
	}

	dir := di.DirectionLTR
	var p bidi.Paragraph
	if _, err := p.SetString(str); err == nil {
		if ord, err := p.Order(); err == nil && ord.Direction() == bidi.RightToLeft {
			run.RTL = true
			dir = di.DirectionRTL
		}
	}

	face := font.NewFace(s.font)
	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	defer s.pool.Put(hb)

	for _, piece := range splitWords(runes) {
		chars := runes[piece.Start:piece.End()]
		out := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  piece.Start,
			RunEnd:    piece.End(),
			Direction: dir,
			Face:      face,
			Size:      run.Size,
			Script:    detectScript(chars),
			Language:  s.lang,
		})
		store := NewGlyphStore(slices.Clone(out.Glyphs), runes, piece, isWhitespace(chars))
		run.stores = append(run.stores, store)
	}
	return run
}

// splitWords partitions runes into consecutive ranges: the words reported
// by the word segmenter, and between them maximal runs of whitespace and of
// other characters.
func splitWords(runes []rune) []Range {
	var seg segmenter.Segmenter
	seg.Init(runes)

	var out []Range
	pos := 0
	it := seg.WordIterator()
	for it.Next() {
		w := it.Word()
		out = appendGap(out, runes, pos, w.Offset)
		out = append(out, NewRange(w.Offset, len(w.Text)))
		pos = w.Offset + len(w.Text)
	}
	return appendGap(out, runes, pos, len(runes))
}

func appendGap(out []Range, runes []rune, start, end int) []Range {
	for start < end {
		space := unicode.IsSpace(runes[start])
		i := start + 1
		for i < end && unicode.IsSpace(runes[i]) == space {
			i++
		}
		out = append(out, NewRange(start, i-start))
		start = i
	}
	return out
}

func isWhitespace(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return len(runes) > 0
}

// detectScript returns the script of the first non-space character.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsSpace(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}
