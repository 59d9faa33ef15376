package text

// Range is a half-open range of character (rune) indices.
type Range struct {
	Start  int
	Length int
}

// NewRange returns the range [start, start+length).
func NewRange(start, length int) Range {
	return Range{Start: start, Length: length}
}

// End returns the index one past the last character.
func (r Range) End() int { return r.Start + r.Length }

// IsEmpty reports whether the range covers no characters.
func (r Range) IsEmpty() bool { return r.Length <= 0 }

// Contains reports whether i lies inside the range.
func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End() }

// Intersect returns the overlap of r and o, or an empty range at r.Start.
func (r Range) Intersect(o Range) Range {
	start := max(r.Start, o.Start)
	end := min(r.End(), o.End())
	if end <= start {
		return Range{Start: r.Start}
	}
	return Range{Start: start, Length: end - start}
}
