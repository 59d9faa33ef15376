package displaylist

import "github.com/gogpu/displaylist/backend"

// converter is the state threaded through one conversion.
type converter struct {
	list *DisplayList
	sink Sink
	ids  *resolutionTable

	// active is the clip-and-scroll info the sink currently applies.
	active backend.ClipAndScrollInfo
	// stacking counts stacking contexts opened and not yet closed.
	stacking int
	// switches counts emitted context switches.
	switches int
}

// switchContext makes the item's clip-and-scroll info active, emitting a
// switch only when it differs from the active one.
func (c *converter) switchContext(cs ClippingAndScrolling) error {
	info, err := c.ids.clipAndScroll(cs)
	if err != nil {
		return err
	}
	if info == c.active {
		return nil
	}
	if err := c.sink.PopClipID(); err != nil {
		return err
	}
	c.sink.PushClipAndScrollInfo(info)
	c.active = info
	c.switches++
	return nil
}
