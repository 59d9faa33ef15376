package displaylist

import (
	"github.com/gogpu/displaylist/backend"
)

// Convert translates list into a new backend builder for pipeline.
//
// The builder's content size is the size of list.Bounds() and its capacity
// hint defaults to 1 MiB. On failure Convert returns nil and an *ItemError
// (or ErrUnbalancedStackingContext when contexts are left open), so a
// partially converted list is never handed out.
func Convert(list *DisplayList, pipeline backend.PipelineID, opts ...ConvertOption) (*backend.Builder, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	size := list.Bounds().Size.ToLayout()
	b := backend.NewBuilder(pipeline, size, o.capacity)
	if err := convertInto(list, pipeline, b, &o); err != nil {
		return nil, err
	}
	return b, nil
}

// ConvertInto translates list into sink, which must be freshly created for
// pipeline. Unlike Convert it leaves whatever was emitted in sink when it
// fails; the caller must discard it.
func ConvertInto(list *DisplayList, pipeline backend.PipelineID, sink Sink, opts ...ConvertOption) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return convertInto(list, pipeline, sink, &o)
}

func convertInto(list *DisplayList, pipeline backend.PipelineID, sink Sink, o *convertOptions) error {
	log := o.log()
	root := backend.SimpleClipAndScroll(backend.RootScrollNode(pipeline))

	c := &converter{
		list:   list,
		sink:   sink,
		ids:    newResolutionTable(len(list.ClipScrollNodes), root.ScrollNodeID),
		active: root,
	}
	sink.PushClipAndScrollInfo(root)

	for i, item := range list.Items {
		if err := c.visit(item); err != nil {
			kind := ItemKind(numItemKinds)
			if item != nil {
				kind = item.Kind()
			}
			log.Warn("displaylist: conversion aborted", "item", i, "kind", kind, "err", err)
			return &ItemError{Index: i, Kind: kind, Err: err}
		}
	}
	if c.stacking != 0 {
		log.Warn("displaylist: conversion aborted", "open_stacking_contexts", c.stacking)
		return ErrUnbalancedStackingContext
	}

	commands := -1
	if l, ok := sink.(interface{ Len() int }); ok {
		commands = l.Len()
	}
	log.Debug("displaylist: converted",
		"pipeline", pipeline,
		"items", len(list.Items),
		"nodes", len(list.ClipScrollNodes),
		"commands", commands,
		"context_switches", c.switches,
	)
	return nil
}

func (c *converter) visit(item Item) error {
	if item == nil {
		return ErrUnknownItem
	}
	if err := c.switchContext(item.Base().ClippingAndScrolling); err != nil {
		return err
	}
	return c.translate(item)
}
