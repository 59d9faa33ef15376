package backend

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// FormatFunc writes a display list to w in some output format.
type FormatFunc func(w io.Writer, dl *DisplayList) error

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	formats    = make(map[string]FormatFunc)
)

func init() {
	RegisterFormat("text", func(w io.Writer, dl *DisplayList) error {
		_, err := dl.WriteTo(w)
		return err
	})
	RegisterFormat("binary", func(w io.Writer, dl *DisplayList) error {
		_, err := w.Write(dl.Encode())
		return err
	})
	RegisterFormat("stats", writeStats)
}

// RegisterFormat registers an output format under name.
//
// RegisterFormat panics if:
//   - fn is nil
//   - a format with the same name is already registered
func RegisterFormat(name string, fn FormatFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if fn == nil {
		panic("backend: RegisterFormat func is nil")
	}
	if _, dup := formats[name]; dup {
		panic("backend: RegisterFormat called twice for " + name)
	}
	formats[name] = fn
}

// UnregisterFormat removes a format from the registry.
// This is primarily useful for testing.
func UnregisterFormat(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(formats, name)
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteFormat writes dl to w using the format registered under name.
func WriteFormat(w io.Writer, name string, dl *DisplayList) error {
	registryMu.RLock()
	fn, ok := formats[name]
	registryMu.RUnlock()

	if !ok {
		return fmt.Errorf("%w %q (have %v)", ErrUnknownFormat, name, Formats())
	}
	return fn(w, dl)
}

func writeStats(w io.Writer, dl *DisplayList) error {
	stats := dl.Stats()
	for t := CommandType(0); t < numCommandTypes; t++ {
		if n := stats.Count(t); n > 0 {
			if _, err := fmt.Fprintf(w, "%-20s %d\n", t, n); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "%-20s %d\n", "total", stats.Total())
	return err
}
