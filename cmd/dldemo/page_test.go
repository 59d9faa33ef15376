package main

import (
	"bytes"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/displaylist"
	"github.com/gogpu/displaylist/backend"
)

func TestSamplePageConverts(t *testing.T) {
	p, err := newPage(640, 480, goregular.TTF)
	if err != nil {
		t.Fatalf("newPage: %v", err)
	}
	list, err := p.build("sample")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b, err := displaylist.Convert(list, backend.PipelineID{Namespace: 1, Index: 1})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	dl, err := b.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	stats := dl.Stats()
	for _, ct := range []backend.CommandType{
		backend.CmdDefineClip,
		backend.CmdDefineScrollFrame,
		backend.CmdDefineStickyFrame,
		backend.CmdText,
		backend.CmdImage,
		backend.CmdIframe,
	} {
		if got := stats.Count(ct); got != 1 {
			t.Errorf("Count(%v) = %d, want 1", ct, got)
		}
	}

	for _, format := range backend.Formats() {
		var buf bytes.Buffer
		if err := backend.WriteFormat(&buf, format, dl); err != nil {
			t.Errorf("WriteFormat(%q): %v", format, err)
		}
		if buf.Len() == 0 {
			t.Errorf("WriteFormat(%q) wrote nothing", format)
		}
	}
}
