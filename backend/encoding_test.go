package backend

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/displaylist/geom"
)

func sampleDisplayList(t *testing.T) *DisplayList {
	t.Helper()
	b := newTestBuilder()
	root := RootScrollNode(testPipeline)
	b.PushClipAndScrollInfo(SimpleClipAndScroll(root))

	clip := b.DefineClip(ClipID{}, root, geom.R(0, 0, 50, 50), []ComplexClipRegion{
		{Rect: geom.R(0, 0, 50, 50), Radii: geom.UniformRadius(4)},
	})
	b.PushClipAndScrollInfo(NewClipAndScroll(root, clip))

	info := NewPrimitiveInfo(geom.R(0, 0, 10, 10))
	info.Tag = &ItemTag{Node: 1 << 40, Cursor: gpucontext.CursorPointer}
	b.PushStackingContext(info, ScrollPolicyFixed, nil, TransformStylePreserve3D, nil, MixBlendNormal, nil)
	b.PushRect(info, gputypes.ColorRed)
	g := b.CreateGradient(geom.Pt(0, 0), geom.Pt(1, 1), []GradientStop{{Offset: 0}, {Offset: 1}}, ExtendClamp)
	b.PushBorder(info, geom.UniformSides(2), GradientBorder{Gradient: g, Outset: geom.UniformSides(1)})
	b.PushText(info, []GlyphInstance{{Index: 5, Point: geom.Pt(1, 2)}}, FontKey{Index: 1}, gputypes.ColorBlack, nil)
	if err := b.PopStackingContext(); err != nil {
		t.Fatal(err)
	}
	dl, err := b.Finish()
	if err != nil {
		t.Fatal(err)
	}
	return dl
}

func TestEncodeHeader(t *testing.T) {
	dl := sampleDisplayList(t)
	dec, err := NewDecoder(dl.Encode())
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}
	if dec.Pipeline() != testPipeline {
		t.Errorf("Pipeline() = %v, want %v", dec.Pipeline(), testPipeline)
	}
	if dec.ContentSize() != geom.Sz(800, 600) {
		t.Errorf("ContentSize() = %v, want 800x600", dec.ContentSize())
	}
	if dec.Len() != dl.Len() {
		t.Errorf("Len() = %d, want %d", dec.Len(), dl.Len())
	}
}

func TestEncodeTagStream(t *testing.T) {
	dl := sampleDisplayList(t)
	got, err := DecodeTypes(dl.Encode())
	if err != nil {
		t.Fatalf("DecodeTypes() error = %v", err)
	}
	want := dl.Types()
	if len(got) != len(want) {
		t.Fatalf("decoded %d tags, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tag %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestEncodePayloads(t *testing.T) {
	dl := sampleDisplayList(t)
	dec, err := NewDecoder(dl.Encode())
	if err != nil {
		t.Fatal(err)
	}
	for dec.Next() {
		switch dec.Type() {
		case CmdPopStackingContext:
			if len(dec.Words()) != 0 {
				t.Errorf("PopStackingContext payload = %d words, want 0", len(dec.Words()))
			}
		case CmdRect:
			// rect(4) + clip rect(4) + rounded flag + backface + tag flag + tag(3) + color(4)
			if len(dec.Words()) != 18 {
				t.Errorf("Rect payload = %d words, want 18", len(dec.Words()))
			}
		case CmdPushClipAndScroll:
			if len(dec.Words()) != 10 {
				t.Errorf("PushClipAndScroll payload = %d words, want 10", len(dec.Words()))
			}
		}
	}
	if err := dec.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
}

func TestDecoderRejectsMalformed(t *testing.T) {
	buf := sampleDisplayList(t).Encode()

	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty", nil},
		{"short header", buf[:8]},
		{"bad magic", append([]byte{0, 0, 0, 0}, buf[4:]...)},
		{"truncated body", buf[:len(buf)-4]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTypes(tt.buf); !errors.Is(err, ErrMalformedEncoding) {
				t.Errorf("DecodeTypes() error = %v, want ErrMalformedEncoding", err)
			}
		})
	}
}

func TestWriteTo(t *testing.T) {
	dl := sampleDisplayList(t)
	var buf bytes.Buffer
	n, err := dl.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() = %d, wrote %d bytes", n, buf.Len())
	}
	out := buf.String()
	for _, want := range []string{"PushStackingContext", "  Rect", "tag=1099511627776/Pointer", "SetGradientStops"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != dl.Len()+1 {
		t.Errorf("output has %d lines, want %d", lines, dl.Len()+1)
	}
}

func TestStats(t *testing.T) {
	dl := sampleDisplayList(t)
	s := dl.Stats()
	if s.Count(CmdRect) != 1 {
		t.Errorf("Count(Rect) = %d, want 1", s.Count(CmdRect))
	}
	if s.Count(CmdPushClipAndScroll) != 2 {
		t.Errorf("Count(PushClipAndScroll) = %d, want 2", s.Count(CmdPushClipAndScroll))
	}
	if s.Total() != dl.Len() {
		t.Errorf("Total() = %d, want %d", s.Total(), dl.Len())
	}
}
