// Package backend is the scene-building side of the rendering backend: it
// records the linear command stream a compositor consumes.
//
// A Builder is created per pipeline (surface) and receives commands in paint
// order. It assigns ids to clip, scroll and sticky nodes as they are defined,
// registers gradient stop lists, and tracks the clip-scroll, stacking context
// and text shadow stacks so that unbalanced pops are reported where they
// happen.
//
// # Basic Usage
//
//	pipeline := backend.PipelineID{Namespace: 1, Index: 0}
//	b := backend.NewBuilder(pipeline, geom.Sz(800, 600), backend.DefaultCapacity)
//	b.PushClipAndScrollInfo(backend.SimpleClipAndScroll(backend.RootScrollNode(pipeline)))
//	b.PushRect(backend.NewPrimitiveInfo(geom.R(0, 0, 10, 10)), gputypes.ColorRed)
//	dl, err := b.Finish()
//
// # Output
//
// A finished DisplayList exposes its typed commands for inspection and can
// be written out in any registered format (see RegisterFormat). The "text"
// format prints one command per line, "binary" writes the compact encoding
// produced by Encode, and "stats" prints a command histogram.
//
// # Thread Safety
//
// Builder and DisplayList are not safe for concurrent use.
package backend
