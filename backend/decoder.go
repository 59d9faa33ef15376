package backend

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/displaylist/geom"
)

// Decoder walks the command stream of an encoded display list.
//
// Example usage:
//
//	dec, err := backend.NewDecoder(buf)
//	if err != nil {
//	    return err
//	}
//	for dec.Next() {
//	    fmt.Println(dec.Type(), len(dec.Words()))
//	}
//	if err := dec.Err(); err != nil {
//	    return err
//	}
type Decoder struct {
	pipeline    PipelineID
	contentSize geom.Size

	tags []byte
	data []byte

	tagIdx  int
	dataOff int

	current CommandType
	words   []uint32
	err     error
}

// NewDecoder validates the header of buf and returns a Decoder positioned
// before the first command.
func NewDecoder(buf []byte) (*Decoder, error) {
	if len(buf) < headerWords*4 {
		return nil, fmt.Errorf("%w: short header", ErrMalformedEncoding)
	}
	word := func(i int) uint32 { return binary.LittleEndian.Uint32(buf[i*4:]) }
	if word(0) != encodingMagic {
		return nil, fmt.Errorf("%w: bad magic %#x", ErrMalformedEncoding, word(0))
	}
	if v := word(1); v != encodingVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedEncoding, v)
	}

	count := int(word(6))
	words := int(word(7))
	tagBytes := (count + 3) &^ 3
	body := buf[headerWords*4:]
	if len(body) != tagBytes+words*4 {
		return nil, fmt.Errorf("%w: body is %d bytes, header says %d",
			ErrMalformedEncoding, len(body), tagBytes+words*4)
	}

	return &Decoder{
		pipeline:    PipelineID{Namespace: word(2), Index: word(3)},
		contentSize: geom.Sz(math.Float32frombits(word(4)), math.Float32frombits(word(5))),
		tags:        body[:count],
		data:        body[tagBytes:],
	}, nil
}

// Pipeline returns the pipeline recorded in the header.
func (d *Decoder) Pipeline() PipelineID { return d.pipeline }

// ContentSize returns the content size recorded in the header.
func (d *Decoder) ContentSize() geom.Size { return d.contentSize }

// Len returns the number of commands in the stream.
func (d *Decoder) Len() int { return len(d.tags) }

// Next advances to the next command. It returns false at the end of the
// stream or on a decoding error; check Err afterwards.
func (d *Decoder) Next() bool {
	if d.err != nil || d.tagIdx >= len(d.tags) {
		return false
	}
	if d.dataOff+4 > len(d.data) {
		d.err = fmt.Errorf("%w: missing length of command %d", ErrMalformedEncoding, d.tagIdx)
		return false
	}
	n := int(binary.LittleEndian.Uint32(d.data[d.dataOff:]))
	d.dataOff += 4
	if d.dataOff+n*4 > len(d.data) {
		d.err = fmt.Errorf("%w: command %d overruns data", ErrMalformedEncoding, d.tagIdx)
		return false
	}

	d.current = CommandType(d.tags[d.tagIdx])
	d.words = d.words[:0]
	for i := 0; i < n; i++ {
		d.words = append(d.words, binary.LittleEndian.Uint32(d.data[d.dataOff+i*4:]))
	}
	d.dataOff += n * 4
	d.tagIdx++
	return true
}

// Type returns the type of the current command.
func (d *Decoder) Type() CommandType { return d.current }

// Words returns the payload of the current command. The slice is reused by
// the next call to Next.
func (d *Decoder) Words() []uint32 { return d.words }

// Err returns the first decoding error, if any.
func (d *Decoder) Err() error { return d.err }

// DecodeTypes returns the command types of an encoded display list.
func DecodeTypes(buf []byte) ([]CommandType, error) {
	dec, err := NewDecoder(buf)
	if err != nil {
		return nil, err
	}
	types := make([]CommandType, 0, dec.Len())
	for dec.Next() {
		types = append(types, dec.Type())
	}
	if err := dec.Err(); err != nil {
		return nil, err
	}
	return types, nil
}
