package backend

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/displaylist/geom"
)

// BorderStyle is the CSS border-style of one side.
type BorderStyle uint8

const (
	BorderStyleNone BorderStyle = iota
	BorderStyleSolid
	BorderStyleDouble
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleHidden
	BorderStyleGroove
	BorderStyleRidge
	BorderStyleInset
	BorderStyleOutset
)

// BorderSide is the color and style of one border side.
type BorderSide struct {
	Color gputypes.Color
	Style BorderStyle
}

// RepeatMode is the CSS border-image-repeat value of one axis.
type RepeatMode uint8

const (
	RepeatStretch RepeatMode = iota
	RepeatRepeat
	RepeatRound
	RepeatSpace
)

// NinePatch describes how an image is sliced for a border image.
type NinePatch struct {
	Width, Height uint32
	Slice         geom.SideOffsets
}

// BorderDetails is the closed set of border kinds. Implementations are
// NormalBorder, ImageBorder, GradientBorder and RadialGradientBorder.
type BorderDetails interface {
	isBorderDetails()
}

// NormalBorder is a border made of styled, colored sides.
type NormalBorder struct {
	Left, Right, Top, Bottom BorderSide
	Radius                   geom.BorderRadius
}

// ImageBorder paints a nine-patch image as the border.
type ImageBorder struct {
	Image   ImageKey
	Patch   NinePatch
	Fill    bool
	Outset  geom.SideOffsets
	RepeatH RepeatMode
	RepeatV RepeatMode
}

// GradientBorder paints a registered linear gradient as the border.
type GradientBorder struct {
	Gradient Gradient
	Outset   geom.SideOffsets
}

// RadialGradientBorder paints a registered radial gradient as the border.
type RadialGradientBorder struct {
	Gradient RadialGradient
	Outset   geom.SideOffsets
}

func (NormalBorder) isBorderDetails()         {}
func (ImageBorder) isBorderDetails()          {}
func (GradientBorder) isBorderDetails()       {}
func (RadialGradientBorder) isBorderDetails() {}

// MixBlendMode is the CSS mix-blend-mode of a stacking context.
type MixBlendMode uint8

// Blend mode constants, separable modes first, then the HSL modes.
const (
	MixBlendNormal MixBlendMode = iota
	MixBlendMultiply
	MixBlendScreen
	MixBlendOverlay
	MixBlendDarken
	MixBlendLighten
	MixBlendColorDodge
	MixBlendColorBurn
	MixBlendHardLight
	MixBlendSoftLight
	MixBlendDifference
	MixBlendExclusion
	MixBlendHue
	MixBlendSaturation
	MixBlendColor
	MixBlendLuminosity
)

var mixBlendModeNames = [...]string{
	MixBlendNormal:     "Normal",
	MixBlendMultiply:   "Multiply",
	MixBlendScreen:     "Screen",
	MixBlendOverlay:    "Overlay",
	MixBlendDarken:     "Darken",
	MixBlendLighten:    "Lighten",
	MixBlendColorDodge: "ColorDodge",
	MixBlendColorBurn:  "ColorBurn",
	MixBlendHardLight:  "HardLight",
	MixBlendSoftLight:  "SoftLight",
	MixBlendDifference: "Difference",
	MixBlendExclusion:  "Exclusion",
	MixBlendHue:        "Hue",
	MixBlendSaturation: "Saturation",
	MixBlendColor:      "Color",
	MixBlendLuminosity: "Luminosity",
}

// String returns a human-readable name for the blend mode.
func (m MixBlendMode) String() string {
	if int(m) < len(mixBlendModeNames) {
		return mixBlendModeNames[m]
	}
	return "Unknown"
}

// IsHSL reports whether m is one of the non-separable HSL modes.
func (m MixBlendMode) IsHSL() bool {
	return m >= MixBlendHue && m <= MixBlendLuminosity
}

// FilterKind identifies a CSS filter function.
type FilterKind uint8

const (
	FilterBlur FilterKind = iota
	FilterBrightness
	FilterContrast
	FilterGrayscale
	FilterHueRotate
	FilterInvert
	FilterOpacity
	FilterSaturate
	FilterSepia
)

var filterKindNames = [...]string{
	FilterBlur:       "blur",
	FilterBrightness: "brightness",
	FilterContrast:   "contrast",
	FilterGrayscale:  "grayscale",
	FilterHueRotate:  "hue-rotate",
	FilterInvert:     "invert",
	FilterOpacity:    "opacity",
	FilterSaturate:   "saturate",
	FilterSepia:      "sepia",
}

// String returns the CSS function name.
func (k FilterKind) String() string {
	if int(k) < len(filterKindNames) {
		return filterKindNames[k]
	}
	return "unknown"
}

// FilterOp is one entry of a stacking context's filter list. Amount is the
// blur radius in pixels for FilterBlur, degrees for FilterHueRotate and a
// factor for the others.
type FilterOp struct {
	Kind   FilterKind
	Amount float32
}

// ScrollPolicy tells whether a stacking context moves with its scroll node.
type ScrollPolicy uint8

const (
	ScrollPolicyScrollable ScrollPolicy = iota
	ScrollPolicyFixed
)

// TransformStyle is the CSS transform-style of a stacking context.
type TransformStyle uint8

const (
	TransformStyleFlat TransformStyle = iota
	TransformStylePreserve3D
)
