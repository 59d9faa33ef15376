package displaylist

import "github.com/gogpu/displaylist/backend"

// resolutionTable maps node indices to the backend ids assigned to them.
// Entries are filled once, in the order their defining items appear.
type resolutionTable struct {
	ids      []backend.ClipID
	resolved []bool
}

// newResolutionTable returns a table for n nodes with the root resolved
// to root.
func newResolutionTable(n int, root backend.ClipID) *resolutionTable {
	n = max(n, 1)
	t := &resolutionTable{
		ids:      make([]backend.ClipID, n),
		resolved: make([]bool, n),
	}
	t.ids[RootScrollNodeIndex] = root
	t.resolved[RootScrollNodeIndex] = true
	return t
}

// lookup returns the id of node i.
func (t *resolutionTable) lookup(i ClipScrollNodeIndex) (backend.ClipID, error) {
	if i < 0 || int(i) >= len(t.ids) {
		return backend.ClipID{}, &NodeError{Index: i, Err: ErrNodeIndexOutOfRange}
	}
	if !t.resolved[i] {
		return backend.ClipID{}, &NodeError{Index: i, Err: ErrUnresolvedNode}
	}
	return t.ids[i], nil
}

// set records the id of node i.
func (t *resolutionTable) set(i ClipScrollNodeIndex, id backend.ClipID) error {
	if i < 0 || int(i) >= len(t.ids) {
		return &NodeError{Index: i, Err: ErrNodeIndexOutOfRange}
	}
	if t.resolved[i] {
		return &NodeError{Index: i, Err: ErrNodeRedefined}
	}
	t.ids[i] = id
	t.resolved[i] = true
	return nil
}

// clipAndScroll resolves an item's node references.
func (t *resolutionTable) clipAndScroll(cs ClippingAndScrolling) (backend.ClipAndScrollInfo, error) {
	scroll, err := t.lookup(cs.Scrolling)
	if err != nil {
		return backend.ClipAndScrollInfo{}, err
	}
	if cs.Clipping == nil {
		return backend.SimpleClipAndScroll(scroll), nil
	}
	clip, err := t.lookup(*cs.Clipping)
	if err != nil {
		return backend.ClipAndScrollInfo{}, err
	}
	return backend.NewClipAndScroll(scroll, clip), nil
}
