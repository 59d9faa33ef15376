package backend

import "github.com/gogpu/displaylist/geom"

// DisplayList is a finished, immutable command stream ready to be handed to
// the compositor.
type DisplayList struct {
	pipeline    PipelineID
	contentSize geom.Size
	commands    []Command
	stops       stopPool
}

// Pipeline returns the pipeline the list belongs to.
func (d *DisplayList) Pipeline() PipelineID { return d.pipeline }

// ContentSize returns the size of the list's content.
func (d *DisplayList) ContentSize() geom.Size { return d.contentSize }

// Commands returns the recorded commands. The slice must not be modified.
func (d *DisplayList) Commands() []Command { return d.commands }

// Len returns the number of commands.
func (d *DisplayList) Len() int { return len(d.commands) }

// GradientStops returns the stop list registered under ref, or nil.
func (d *DisplayList) GradientStops(ref GradientStopsRef) []GradientStop {
	return d.stops.get(ref)
}

// Types returns the command types in stream order.
func (d *DisplayList) Types() []CommandType {
	types := make([]CommandType, len(d.commands))
	for i, cmd := range d.commands {
		types[i] = cmd.Type()
	}
	return types
}

// Stats counts commands by type.
type Stats [numCommandTypes]int

// Count returns the number of commands of type t.
func (s *Stats) Count(t CommandType) int {
	if int(t) >= len(s) {
		return 0
	}
	return s[t]
}

// Total returns the number of commands.
func (s *Stats) Total() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}

// Stats returns the command histogram of the list.
func (d *DisplayList) Stats() Stats {
	var s Stats
	for _, cmd := range d.commands {
		if t := cmd.Type(); t < numCommandTypes {
			s[t]++
		}
	}
	return s
}
