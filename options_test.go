package displaylist

import (
	"log/slog"
	"testing"

	"github.com/gogpu/displaylist/backend"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.capacity != backend.DefaultCapacity {
		t.Errorf("capacity = %d, want %d", o.capacity, backend.DefaultCapacity)
	}
	if o.log() != Logger() {
		t.Error("log() should fall back to the package logger")
	}
}

func TestWithCapacityHint(t *testing.T) {
	tests := []struct {
		hint int
		want int
	}{
		{4096, 4096},
		{0, backend.DefaultCapacity},
		{-1, backend.DefaultCapacity},
	}
	for _, tt := range tests {
		o := defaultOptions()
		WithCapacityHint(tt.hint)(&o)
		if o.capacity != tt.want {
			t.Errorf("WithCapacityHint(%d): capacity = %d, want %d", tt.hint, o.capacity, tt.want)
		}
	}
}

func TestConvertCapacityHint(t *testing.T) {
	b, err := Convert(New(), testPipeline, WithCapacityHint(4096))
	if err != nil {
		t.Fatal(err)
	}
	if b.Capacity() != 4096 {
		t.Errorf("Capacity() = %d, want 4096", b.Capacity())
	}

	b, err = Convert(New(), testPipeline)
	if err != nil {
		t.Fatal(err)
	}
	if b.Capacity() != 1024*1024 {
		t.Errorf("default Capacity() = %d, want 1 MiB", b.Capacity())
	}
}

func TestWithLogger(t *testing.T) {
	l := slog.Default()
	o := defaultOptions()
	WithLogger(l)(&o)
	if o.log() != l {
		t.Error("WithLogger did not override the package logger")
	}
}
