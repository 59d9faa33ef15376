package backend

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/displaylist/geom"
)

// WriteTo writes a human-readable listing of the commands to w, one command
// per line, indented by stacking context depth.
func (d *DisplayList) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}
	fmt.Fprintf(cw, "pipeline %s size %gx%g commands %d\n",
		d.pipeline, d.contentSize.Width, d.contentSize.Height, len(d.commands))

	depth := 0
	for i, cmd := range d.commands {
		if cmd.Type() == CmdPopStackingContext && depth > 0 {
			depth--
		}
		fmt.Fprintf(cw, "%4d %s%s\n", i, strings.Repeat("  ", depth), describe(cmd))
		if cmd.Type() == CmdPushStackingContext {
			depth++
		}
	}
	if err := bw.Flush(); err != nil && cw.err == nil {
		cw.err = err
	}
	return cw.n, cw.err
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}

func fmtRect(r geom.Rect) string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
}

func fmtColor(c gputypes.Color) string {
	return fmt.Sprintf("rgba(%.3g,%.3g,%.3g,%.3g)", c.R, c.G, c.B, c.A)
}

func describe(cmd Command) string {
	var sb strings.Builder
	sb.WriteString(cmd.Type().String())

	if p, ok := cmd.(Primitive); ok {
		info := p.Info()
		sb.WriteString(" ")
		sb.WriteString(fmtRect(info.Rect))
		if info.Tag != nil {
			fmt.Fprintf(&sb, " tag=%d/%s", info.Tag.Node, info.Tag.Cursor)
		}
	}

	switch c := cmd.(type) {
	case PushClipAndScrollCommand:
		fmt.Fprintf(&sb, " %s", c.Info)
	case PushClipIDCommand:
		fmt.Fprintf(&sb, " %s", c.ID)
	case PushStackingContextCommand:
		fmt.Fprintf(&sb, " %s blend=%s filters=%d", fmtRect(c.PrimInfo.Rect), c.MixBlendMode, len(c.Filters))
		if c.Transform != nil {
			sb.WriteString(" transform")
		}
		if c.Perspective != nil {
			sb.WriteString(" perspective")
		}
	case DefineClipCommand:
		fmt.Fprintf(&sb, " %s parent=%s %s complex=%d", c.ID, c.Parent, fmtRect(c.Rect), len(c.Complex))
	case DefineScrollFrameCommand:
		fmt.Fprintf(&sb, " %s parent=%s content=%s clip=%s", c.ID, c.Parent, fmtRect(c.ContentRect), fmtRect(c.ClipRect))
	case DefineStickyFrameCommand:
		fmt.Fprintf(&sb, " %s parent=%s %s", c.ID, c.Parent, fmtRect(c.FrameRect))
	case SetGradientStopsCommand:
		fmt.Fprintf(&sb, " #%d stops=%d", c.Ref, len(c.Stops))
	case RectCommand:
		fmt.Fprintf(&sb, " %s", fmtColor(c.Color))
	case TextCommand:
		fmt.Fprintf(&sb, " font=%d:%d glyphs=%d %s", c.Font.Namespace, c.Font.Index, len(c.Glyphs), fmtColor(c.Color))
	case ImageCommand:
		fmt.Fprintf(&sb, " key=%d:%d stretch=%gx%g %s", c.Key.Namespace, c.Key.Index,
			c.StretchSize.Width, c.StretchSize.Height, c.Rendering)
	case BorderCommand:
		fmt.Fprintf(&sb, " %T", c.Details)
	case GradientCommand:
		fmt.Fprintf(&sb, " stops=#%d %s", c.Gradient.Stops, c.Gradient.Extend)
	case RadialGradientCommand:
		fmt.Fprintf(&sb, " stops=#%d %s", c.Gradient.Stops, c.Gradient.Extend)
	case LineCommand:
		fmt.Fprintf(&sb, " %s thickness=%g %s", c.Style, c.WavyLineThickness, fmtColor(c.Color))
	case BoxShadowCommand:
		fmt.Fprintf(&sb, " blur=%g spread=%g %s", c.BlurRadius, c.SpreadRadius, fmtColor(c.Color))
	case PushShadowCommand:
		fmt.Fprintf(&sb, " blur=%g %s", c.Shadow.BlurRadius, fmtColor(c.Shadow.Color))
	case IframeCommand:
		fmt.Fprintf(&sb, " pipeline=%s", c.Pipeline)
	}
	return sb.String()
}
