package displaylist

import (
	"errors"
	"fmt"
)

// Sentinel errors for conversion failures. They are wrapped in *ItemError
// or *NodeError; test with errors.Is.
var (
	// ErrUnknownItem is returned for an Item implementation the converter
	// does not know how to translate.
	ErrUnknownItem = errors.New("displaylist: unknown display item")

	// ErrUnknownNodeType is returned for a node with a nil or unknown type.
	ErrUnknownNodeType = errors.New("displaylist: unknown clip scroll node type")

	// ErrUnresolvedNode is returned when an item or node references a node
	// that has not been defined yet.
	ErrUnresolvedNode = errors.New("displaylist: clip scroll node used before it was defined")

	// ErrNodeIndexOutOfRange is returned for a node index outside the node array.
	ErrNodeIndexOutOfRange = errors.New("displaylist: clip scroll node index out of range")

	// ErrNodeRedefined is returned when a node is defined twice.
	ErrNodeRedefined = errors.New("displaylist: clip scroll node defined twice")

	// ErrClipIDMismatch is returned when the backend assigns a different id
	// than the one the node carried.
	ErrClipIDMismatch = errors.New("displaylist: backend clip id differs from node id")

	// ErrUnbalancedStackingContext is returned for a pop without a matching
	// push, or for stacking contexts still open at the end of the list.
	ErrUnbalancedStackingContext = errors.New("displaylist: unbalanced stacking context")

	// ErrPseudoStackingContext is returned when a pseudo stacking context,
	// which the producer must flatten, reaches conversion.
	ErrPseudoStackingContext = errors.New("displaylist: pseudo stacking context reached conversion")
)

// ItemError records the item at which a conversion failed.
type ItemError struct {
	Index int
	Kind  ItemKind
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("displaylist: item %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

// NodeError records the clip scroll node involved in a failure.
type NodeError struct {
	Index ClipScrollNodeIndex
	Err   error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node %d: %v", e.Index, e.Err)
}

func (e *NodeError) Unwrap() error { return e.Err }
