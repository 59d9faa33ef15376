package displaylist

import (
	"github.com/gogpu/displaylist/backend"
	"github.com/gogpu/displaylist/geom"
)

// StackingContextID identifies a stacking context within a list.
type StackingContextID uint64

// StackingContextType distinguishes real stacking contexts from the pseudo
// ones layout uses for grouping. Only real contexts may be converted.
type StackingContextType uint8

const (
	StackingContextReal StackingContextType = iota
	StackingContextPseudoPositioned
	StackingContextPseudoFloat
)

// String returns the type name.
func (t StackingContextType) String() string {
	switch t {
	case StackingContextReal:
		return "Real"
	case StackingContextPseudoPositioned:
		return "PseudoPositioned"
	case StackingContextPseudoFloat:
		return "PseudoFloat"
	default:
		return "Unknown"
	}
}

// StackingContext describes a compositing scope.
type StackingContext struct {
	ID   StackingContextID
	Type StackingContextType

	// Bounds is the area of the context in its parent's coordinates.
	Bounds geom.AuRect
	// Overflow is the area painted by the context's descendants.
	Overflow geom.AuRect
	ZIndex   int32

	Filters      []backend.FilterOp
	MixBlendMode backend.MixBlendMode

	// Transform and Perspective are nil when not set.
	Transform      *geom.Transform
	TransformStyle backend.TransformStyle
	Perspective    *geom.Transform
	ScrollPolicy   backend.ScrollPolicy

	// ParentClippingAndScrolling is the context the stacking context is
	// established in.
	ParentClippingAndScrolling ClippingAndScrolling
}

// NewStackingContext returns a real, untransformed context covering bounds.
func NewStackingContext(id StackingContextID, bounds geom.AuRect) StackingContext {
	return StackingContext{
		ID:       id,
		Type:     StackingContextReal,
		Bounds:   bounds,
		Overflow: bounds,
	}
}
