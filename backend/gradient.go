package backend

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/displaylist/geom"
)

// ExtendMode defines how a gradient continues past its last stop.
type ExtendMode uint8

const (
	// ExtendClamp repeats the edge colors.
	ExtendClamp ExtendMode = iota
	// ExtendRepeat repeats the whole gradient.
	ExtendRepeat
)

// AddressMode returns the sampler address mode equivalent to m.
func (m ExtendMode) AddressMode() gputypes.AddressMode {
	if m == ExtendRepeat {
		return gputypes.AddressModeRepeat
	}
	return gputypes.AddressModeClampToEdge
}

// String returns the mode name.
func (m ExtendMode) String() string {
	if m == ExtendRepeat {
		return "Repeat"
	}
	return "Clamp"
}

// GradientStop is a color at a position in a gradient, 0 at the start and
// 1 at the end.
type GradientStop struct {
	Offset float32
	Color  gputypes.Color
}

// GradientStopsRef references a stop list registered with the Builder.
type GradientStopsRef uint32

// InvalidGradientStops is the sentinel for a missing stop list.
const InvalidGradientStops = GradientStopsRef(^uint32(0))

// IsValid reports whether r refers to a registered stop list.
func (r GradientStopsRef) IsValid() bool {
	return r != InvalidGradientStops
}

// Gradient is a registered linear gradient.
type Gradient struct {
	StartPoint geom.Point
	EndPoint   geom.Point
	Extend     ExtendMode
	Stops      GradientStopsRef
}

// RadialGradient is a registered radial gradient.
type RadialGradient struct {
	Center geom.Point
	Radius geom.Size
	Extend ExtendMode
	Stops  GradientStopsRef
}

// stopPool stores the stop lists referenced by gradients. Lists are copied
// on insertion so later changes by the caller do not leak into the stream.
type stopPool struct {
	lists [][]GradientStop
}

func (p *stopPool) add(stops []GradientStop) GradientStopsRef {
	cp := make([]GradientStop, len(stops))
	copy(cp, stops)
	p.lists = append(p.lists, cp)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return GradientStopsRef(uint32(len(p.lists) - 1))
}

func (p *stopPool) get(ref GradientStopsRef) []GradientStop {
	if !ref.IsValid() || int(ref) >= len(p.lists) {
		return nil
	}
	return p.lists[ref]
}
