package main

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/displaylist"
	"github.com/gogpu/displaylist/backend"
	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/text"
)

// page lays out a fixed sample document: a background, a header with a
// gradient border, a scrolling body with a sticky heading, an image, and
// underlined text with a shadow.
type page struct {
	width, height float32
	shaper        *text.Shaper
	font          backend.FontKey
}

func newPage(width, height float32, fontData []byte) (*page, error) {
	shaper, err := text.NewShaper(fontData)
	if err != nil {
		return nil, err
	}
	return &page{
		width:  width,
		height: height,
		shaper: shaper,
		font:   backend.FontKey{Namespace: 1, Index: 1},
	}, nil
}

func px(x, y, w, h float32) geom.AuRect { return geom.AuRectFromPx(x, y, w, h) }

func (p *page) build(message string) (*displaylist.DisplayList, error) {
	list := displaylist.New()
	full := px(0, 0, p.width, p.height)

	root := displaylist.NewStackingContext(1, full)
	list.Push(&displaylist.PushStackingContextItem{
		BaseItem:        displaylist.NewBaseItem(full),
		StackingContext: root,
	})
	list.Push(&displaylist.SolidColorItem{
		BaseItem: displaylist.NewBaseItem(full),
		Color:    gputypes.Color{R: 0.96, G: 0.96, B: 0.98, A: 1},
	})

	header := px(0, 0, p.width, 64)
	list.Push(&displaylist.GradientItem{
		BaseItem: displaylist.NewBaseItem(header),
		Gradient: displaylist.Gradient{
			EndPoint: geom.Pt(p.width, 0),
			Stops: []backend.GradientStop{
				{Offset: 0, Color: gputypes.Color{R: 0.2, G: 0.3, B: 0.7, A: 1}},
				{Offset: 1, Color: gputypes.Color{R: 0.5, G: 0.2, B: 0.6, A: 1}},
			},
		},
		Tile: header.ToLayout().Size,
	})
	list.Push(&displaylist.BorderItem{
		BaseItem: displaylist.NewBaseItem(header),
		Widths:   geom.SideOffsets{Bottom: 3},
		Details: displaylist.GradientBorderDetails{
			Gradient: displaylist.Gradient{
				EndPoint: geom.Pt(p.width, 0),
				Stops: []backend.GradientStop{
					{Offset: 0, Color: gputypes.ColorWhite},
					{Offset: 1, Color: gputypes.ColorBlack},
				},
				Extend: backend.ExtendRepeat,
			},
		},
	})

	if err := p.body(list, px(0, 64, p.width, p.height-64), message); err != nil {
		return nil, err
	}

	list.Push(&displaylist.PopStackingContextItem{BaseItem: displaylist.NewBaseItem(full), ID: root.ID})
	return list, nil
}

func (p *page) body(list *displaylist.DisplayList, viewport geom.AuRect, message string) error {
	rounded := displaylist.ComplexClippingRegion{Rect: viewport, Radii: displaylist.UniformRadii(geom.AuFromPx(8))}
	clip := list.AddNode(displaylist.ClipScrollNode{
		ParentIndex: displaylist.RootScrollNodeIndex,
		Clip:        displaylist.ClippingRegion{Main: viewport, Complex: []displaylist.ComplexClippingRegion{rounded}},
		NodeType:    displaylist.ClipNodeType{},
	})
	content := viewport.ToLayout()
	content.Size.Height *= 3
	scroll := list.AddNode(displaylist.ClipScrollNode{
		ParentIndex: clip,
		Clip:        displaylist.RectRegion(viewport),
		ContentRect: content,
		NodeType:    displaylist.ScrollFrameNodeType{Sensitivity: backend.ScriptAndInputEvents},
	})
	heading := px(0, 64, p.width, 32)
	sticky := list.AddNode(displaylist.ClipScrollNode{
		ParentIndex: scroll,
		Clip:        displaylist.RectRegion(heading),
		NodeType: displaylist.StickyFrameNodeType{StickyFrameData: displaylist.StickyFrameData{
			Margins:              backend.StickyMargins{Top: backend.Margin(0)},
			VerticalOffsetBounds: backend.StickyOffsetBounds{Min: 0, Max: content.Size.Height},
		}},
	})
	for _, idx := range []displaylist.ClipScrollNodeIndex{clip, scroll, sticky} {
		list.Push(&displaylist.DefineClipScrollNodeItem{NodeIndex: idx})
	}

	inScroll := func(r geom.AuRect) displaylist.BaseItem {
		b := displaylist.NewBaseItem(r)
		b.ClippingAndScrolling = displaylist.Both(scroll, clip)
		return b
	}

	headingBase := displaylist.NewBaseItem(heading)
	headingBase.ClippingAndScrolling = displaylist.Both(sticky, clip)
	list.Push(&displaylist.SolidColorItem{BaseItem: headingBase, Color: gputypes.Color{R: 1, G: 0.9, B: 0.6, A: 1}})

	card := px(24, 120, 240, 160)
	list.Push(&displaylist.BoxShadowItem{
		BaseItem:     inScroll(px(12, 108, 264, 184)),
		BoxBounds:    card.ToLayout(),
		Offset:       geom.Vec(0, 4),
		Color:        gputypes.Color{A: 0.3},
		BlurRadius:   8,
		BorderRadius: geom.UniformRadius(6),
		ClipMode:     backend.BoxShadowClipModeOutset,
	})
	key := backend.ImageKey{Namespace: 1, Index: 1}
	list.Push(&displaylist.ImageItem{
		BaseItem:    inScroll(card),
		Key:         &key,
		StretchSize: card.ToLayout().Size,
		Rendering:   backend.ImageRenderingAuto,
	})

	run, err := p.shaper.Shape(message, 18, p.font)
	if err != nil {
		return err
	}
	origin := geom.AuPoint{X: geom.AuFromPx(24), Y: geom.AuFromPx(320)}
	width := float32(run.Advance(run.Chars())) / 64
	textBounds := px(24, 300, width, 28)

	shadow := inScroll(textBounds)
	list.Push(&displaylist.PushTextShadowItem{
		BaseItem:   shadow,
		Offset:     geom.Vec(1, 1),
		Color:      gputypes.Color{A: 0.5},
		BlurRadius: 2,
	})
	cursor := gpucontext.CursorText
	textBase := inScroll(textBounds)
	textBase.Metadata = displaylist.Metadata{Node: 1, Pointing: &cursor}
	list.Push(&displaylist.TextItem{
		BaseItem:       textBase,
		Run:            run,
		Range:          run.Chars(),
		BaselineOrigin: origin,
		Color:          gputypes.ColorBlack,
	})
	list.Push(&displaylist.PopAllTextShadowsItem{BaseItem: shadow})
	list.Push(&displaylist.LineItem{
		BaseItem: inScroll(px(24, 324, width, 3)),
		Color:    gputypes.ColorBlack,
		Style:    backend.LineStyleSolid,
	})

	list.Push(&displaylist.IframeItem{
		BaseItem: inScroll(px(300, 120, 240, 160)),
		Pipeline: backend.PipelineID{Namespace: 1, Index: 2},
	})
	return nil
}
