// Package displaylist converts a layout display list into the command
// stream of the rendering backend's scene builder.
//
// A [DisplayList] is an ordered paint program plus a dense array of clip and
// scroll nodes. Items reference nodes by index; index 0 is the root scroll
// node of the pipeline. Nodes are defined by [DefineClipScrollNodeItem]
// items and must be defined before any item references them.
//
// # Quick Start
//
//	list := displaylist.New()
//	list.Push(&displaylist.SolidColorItem{
//	    BaseItem: displaylist.NewBaseItem(geom.AuRectFromPx(0, 0, 10, 10)),
//	    Color:    gputypes.ColorRed,
//	})
//	b, err := displaylist.Convert(list, backend.PipelineID{Index: 1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dl, err := b.Finish()
//
// # Conversion
//
// Conversion is a single forward pass in item order. Before every item the
// active (scroll, clip) pair is compared with the item's own and switched
// only when it differs, so a run of items sharing a context costs one
// switch. Node definitions resolve parent indices to backend ids and record
// the id the backend assigns.
//
// Inconsistent input (a reference to a node that is not defined yet, an
// unbalanced stacking context, a pseudo stacking context) aborts the
// conversion with an error and no builder. Whitespace-only text and images
// without a usable key or size are skipped silently.
//
// # Logging
//
// The package is silent by default. [SetLogger] installs a *slog.Logger;
// a conversion logs one Debug record on success and a Warn record on
// failure.
package displaylist
