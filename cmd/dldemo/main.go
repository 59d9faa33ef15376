// Command dldemo builds a sample page display list, converts it to the
// backend command stream and writes it in one of the registered formats.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/displaylist"
	"github.com/gogpu/displaylist/backend"
)

func main() {
	var (
		width   = flag.Int("width", 800, "page width in pixels")
		height  = flag.Int("height", 600, "page height in pixels")
		format  = flag.String("format", "text", "output format ("+strings.Join(backend.Formats(), ", ")+")")
		output  = flag.String("o", "", "output file (default stdout)")
		message = flag.String("text", "Hello, display list", "text drawn on the page")
		verbose = flag.Bool("v", false, "log conversion details to stderr")
	)
	flag.Parse()

	if *verbose {
		displaylist.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	page, err := newPage(float32(*width), float32(*height), goregular.TTF)
	if err != nil {
		log.Fatalf("Failed to set up page: %v", err)
	}
	list, err := page.build(*message)
	if err != nil {
		log.Fatalf("Failed to build page: %v", err)
	}

	pipeline := backend.PipelineID{Namespace: 1, Index: 1}
	b, err := displaylist.Convert(list, pipeline)
	if err != nil {
		log.Fatalf("Failed to convert: %v", err)
	}
	dl, err := b.Finish()
	if err != nil {
		log.Fatalf("Failed to finish: %v", err)
	}

	if err := write(*output, *format, dl); err != nil {
		log.Fatalf("Failed to write: %v", err)
	}
	if *output != "" {
		log.Printf("Display list saved to %s (%d commands, %s)\n", *output, dl.Len(), *format)
	}
}

func write(path, format string, dl *backend.DisplayList) error {
	if path == "" {
		return backend.WriteFormat(os.Stdout, format, dl)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := backend.WriteFormat(f, format, dl); err != nil {
		_ = f.Close()
		return fmt.Errorf("format %q: %w", format, err)
	}
	return f.Close()
}
