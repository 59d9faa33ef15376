package displaylist

import (
	"errors"
	"testing"

	"github.com/gogpu/displaylist/backend"
	"github.com/gogpu/displaylist/geom"
)

func defineItem(idx ClipScrollNodeIndex) *DefineClipScrollNodeItem {
	return &DefineClipScrollNodeItem{NodeIndex: idx}
}

func TestDefineClipNode(t *testing.T) {
	list := New()
	rounded := ComplexClippingRegion{
		Rect:  geom.AuRectFromPx(0, 0, 20, 20),
		Radii: UniformRadii(geom.AuFromPx(4)),
	}
	idx := list.AddNode(ClipScrollNode{
		ParentIndex: RootScrollNodeIndex,
		Clip: ClippingRegion{
			Main:    geom.AuRectFromPx(0, 0, 20, 20),
			Complex: []ComplexClippingRegion{rounded, rounded},
		},
		NodeType: ClipNodeType{},
	})
	list.Push(defineItem(idx))

	cmds := convert(t, list)
	assertTypes(t, cmds, backend.CmdPushClipAndScroll, backend.CmdDefineClip)
	def := cmds[1].(backend.DefineClipCommand)
	if def.Parent != backend.RootScrollNode(testPipeline) {
		t.Errorf("parent = %v, want root scroll node", def.Parent)
	}
	if def.Rect != geom.R(0, 0, 20, 20) {
		t.Errorf("rect = %v", def.Rect)
	}
	if len(def.Complex) != 2 {
		t.Fatalf("complex regions = %d, want 2", len(def.Complex))
	}
	for _, c := range def.Complex {
		if c.Mode != backend.ClipModeClip {
			t.Errorf("mode = %v, want Clip", c.Mode)
		}
		if c.Radii != geom.UniformRadius(4) {
			t.Errorf("radii = %v, want 4px corners", c.Radii)
		}
	}
}

func TestDefineScrollFrameUnderClip(t *testing.T) {
	list := New()
	def, clip := clipNode(list, geom.AuRectFromPx(0, 0, 100, 100))
	scroll := list.AddNode(ClipScrollNode{
		ParentIndex: clip,
		Clip:        RectRegion(geom.AuRectFromPx(0, 0, 100, 100)),
		ContentRect: geom.R(0, 0, 100, 1000),
		NodeType:    ScrollFrameNodeType{Sensitivity: backend.Script},
	})
	item := solidColor(0, 0, 10, 10, scroll)
	list.Push(def, defineItem(scroll), item)

	cmds := convert(t, list)
	assertTypes(t, cmds,
		backend.CmdPushClipAndScroll,
		backend.CmdDefineClip,
		backend.CmdDefineScrollFrame,
		backend.CmdPopClipID,
		backend.CmdPushClipAndScroll,
		backend.CmdRect,
	)
	clipID := cmds[1].(backend.DefineClipCommand).ID
	frame := cmds[2].(backend.DefineScrollFrameCommand)
	if frame.Parent != clipID {
		t.Errorf("scroll frame parent = %v, want %v", frame.Parent, clipID)
	}
	if frame.ContentRect != geom.R(0, 0, 100, 1000) || frame.ClipRect != geom.R(0, 0, 100, 100) {
		t.Errorf("content = %v clip = %v", frame.ContentRect, frame.ClipRect)
	}
	if frame.Sensitivity != backend.Script {
		t.Errorf("sensitivity = %v, want Script", frame.Sensitivity)
	}
	if got := cmds[4].(backend.PushClipAndScrollCommand).Info.ScrollNodeID; got != frame.ID {
		t.Errorf("active scroll node = %v, want %v", got, frame.ID)
	}
}

func stickyList() (*DisplayList, ClipScrollNodeIndex) {
	list := New()
	scroll := list.AddNode(ClipScrollNode{
		ParentIndex: RootScrollNodeIndex,
		Clip:        RectRegion(geom.AuRectFromPx(0, 0, 100, 100)),
		ContentRect: geom.R(0, 0, 100, 500),
		NodeType:    ScrollFrameNodeType{},
	})
	sticky := list.AddNode(ClipScrollNode{
		ParentIndex: scroll,
		Clip:        RectRegion(geom.AuRectFromPx(0, 10, 100, 20)),
		NodeType: StickyFrameNodeType{StickyFrameData{
			Margins:              backend.StickyMargins{Top: backend.Margin(0)},
			VerticalOffsetBounds: backend.StickyOffsetBounds{Min: -10, Max: 400},
		}},
	})
	list.Push(defineItem(scroll), defineItem(sticky))
	return list, sticky
}

func TestStickyFrameSequence(t *testing.T) {
	list, sticky := stickyList()
	list.Push(solidColor(0, 0, 1, 1, sticky))
	cmds := convert(t, list)

	assertTypes(t, cmds,
		backend.CmdPushClipAndScroll,
		backend.CmdDefineScrollFrame,
		backend.CmdPushClipID,
		backend.CmdDefineStickyFrame,
		backend.CmdPopClipID,
		backend.CmdPopClipID,
		backend.CmdPushClipAndScroll,
		backend.CmdRect,
	)
	scrollID := cmds[1].(backend.DefineScrollFrameCommand).ID
	if got := cmds[2].(backend.PushClipIDCommand).ID; got != scrollID {
		t.Errorf("pushed parent = %v, want %v", got, scrollID)
	}
	def := cmds[3].(backend.DefineStickyFrameCommand)
	if def.Parent != scrollID {
		t.Errorf("sticky parent = %v, want %v", def.Parent, scrollID)
	}
	if !def.PreviouslyAppliedOffset.IsZero() {
		t.Errorf("applied offset = %v, want zero", def.PreviouslyAppliedOffset)
	}
	if !def.Margins.Top.Set || def.Margins.Bottom.Set {
		t.Errorf("margins = %+v", def.Margins)
	}
	if def.VerticalOffsetBounds.Max != 400 {
		t.Errorf("vertical bounds = %+v", def.VerticalOffsetBounds)
	}
	if got := cmds[6].(backend.PushClipAndScrollCommand).Info.ScrollNodeID; got != def.ID {
		t.Errorf("item scroll node = %v, want sticky %v", got, def.ID)
	}
}

// parentSink is a builder that can define sticky frames with a parent.
type parentSink struct {
	*backend.Builder
	parents []backend.ClipID
}

func (s *parentSink) DefineStickyFrameWithParent(
	id, parent backend.ClipID,
	frameRect geom.Rect,
	margins backend.StickyMargins,
	verticalBounds, horizontalBounds backend.StickyOffsetBounds,
	previouslyAppliedOffset geom.Vector,
) backend.ClipID {
	s.parents = append(s.parents, parent)
	return s.DefineStickyFrame(id, frameRect, margins, verticalBounds, horizontalBounds, previouslyAppliedOffset)
}

func TestStickyFrameWithParentSink(t *testing.T) {
	list, _ := stickyList()
	sink := &parentSink{Builder: backend.NewBuilder(testPipeline, geom.Sz(100, 100), 0)}
	if err := ConvertInto(list, testPipeline, sink); err != nil {
		t.Fatalf("ConvertInto() error = %v", err)
	}
	assertTypes(t, sink.Commands(),
		backend.CmdPushClipAndScroll,
		backend.CmdDefineScrollFrame,
		backend.CmdDefineStickyFrame,
	)
	scrollID := sink.Commands()[1].(backend.DefineScrollFrameCommand).ID
	if len(sink.parents) != 1 || sink.parents[0] != scrollID {
		t.Errorf("parents = %v, want [%v]", sink.parents, scrollID)
	}
}

func TestPreassignedID(t *testing.T) {
	list := New()
	want := backend.ExternalClipID(77, testPipeline)
	idx := list.AddNode(ClipScrollNode{
		Clip:     RectRegion(geom.AuRectFromPx(0, 0, 5, 5)),
		NodeType: ClipNodeType{},
		ID:       &want,
	})
	item := solidColor(0, 0, 1, 1, RootScrollNodeIndex)
	item.ClippingAndScrolling = Both(RootScrollNodeIndex, idx)
	list.Push(defineItem(idx), item)

	cmds := convert(t, list)
	if got := cmds[1].(backend.DefineClipCommand).ID; got != want {
		t.Errorf("defined id = %v, want %v", got, want)
	}
	if got := cmds[3].(backend.PushClipAndScrollCommand).Info.ClipNodeID; got != want {
		t.Errorf("item clip node = %v, want %v", got, want)
	}
}

// renamingSink ignores requested clip ids.
type renamingSink struct {
	*backend.Builder
}

func (s renamingSink) DefineClip(_, parent backend.ClipID, rect geom.Rect, complex []backend.ComplexClipRegion) backend.ClipID {
	return s.Builder.DefineClip(backend.ClipID{}, parent, rect, complex)
}

func TestPreassignedIDMismatch(t *testing.T) {
	list := New()
	want := backend.ExternalClipID(1, testPipeline)
	idx := list.AddNode(ClipScrollNode{NodeType: ClipNodeType{}, ID: &want})
	list.Push(defineItem(idx))

	sink := renamingSink{backend.NewBuilder(testPipeline, geom.Size{}, 0)}
	err := ConvertInto(list, testPipeline, sink)
	if !errors.Is(err, ErrClipIDMismatch) {
		t.Errorf("error = %v, want ErrClipIDMismatch", err)
	}
}

func TestNodeErrors(t *testing.T) {
	t.Run("parent not defined", func(t *testing.T) {
		list := New()
		parent := list.AddNode(ClipScrollNode{NodeType: ClipNodeType{}})
		child := list.AddNode(ClipScrollNode{ParentIndex: parent, NodeType: ClipNodeType{}})
		list.Push(defineItem(child))
		if _, err := Convert(list, testPipeline); !errors.Is(err, ErrUnresolvedNode) {
			t.Errorf("error = %v, want ErrUnresolvedNode", err)
		}
	})

	t.Run("defined twice", func(t *testing.T) {
		list := New()
		idx := list.AddNode(ClipScrollNode{NodeType: ClipNodeType{}})
		list.Push(defineItem(idx), defineItem(idx))
		_, err := Convert(list, testPipeline)
		if !errors.Is(err, ErrNodeRedefined) {
			t.Errorf("error = %v, want ErrNodeRedefined", err)
		}
		var ie *ItemError
		if errors.As(err, &ie) && ie.Index != 1 {
			t.Errorf("failing item = %d, want 1", ie.Index)
		}
	})

	t.Run("root redefined", func(t *testing.T) {
		list := New()
		list.Push(defineItem(RootScrollNodeIndex))
		if _, err := Convert(list, testPipeline); !errors.Is(err, ErrNodeRedefined) {
			t.Errorf("error = %v, want ErrNodeRedefined", err)
		}
	})

	t.Run("nil node type", func(t *testing.T) {
		list := New()
		idx := list.AddNode(ClipScrollNode{})
		list.Push(defineItem(idx))
		if _, err := Convert(list, testPipeline); !errors.Is(err, ErrUnknownNodeType) {
			t.Errorf("error = %v, want ErrUnknownNodeType", err)
		}
	})
}

func TestResolutionTable(t *testing.T) {
	root := backend.RootScrollNode(testPipeline)
	tbl := newResolutionTable(0, root)
	if got, err := tbl.lookup(RootScrollNodeIndex); err != nil || got != root {
		t.Errorf("lookup(root) = %v, %v; want %v", got, err, root)
	}
	if _, err := tbl.lookup(-1); !errors.Is(err, ErrNodeIndexOutOfRange) {
		t.Errorf("lookup(-1) error = %v", err)
	}
	if err := tbl.set(1, root); !errors.Is(err, ErrNodeIndexOutOfRange) {
		t.Errorf("set(1) error = %v", err)
	}
}
