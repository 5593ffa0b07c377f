package blend

import (
	"image"

	"github.com/pkg/errors"
)

// OutputImage is a committed combination result. It is immutable: accessors
// return copies.
type OutputImage struct {
	width    int
	height   int
	name     string
	channels int
	capacity int
	data     []byte
}

// Width returns the output width in pixels.
func (o *OutputImage) Width() int { return o.width }

// Height returns the output height in pixels.
func (o *OutputImage) Height() int { return o.height }

// Name returns the output file name the image will be written to.
func (o *OutputImage) Name() string { return o.name }

// Capacity returns the reserved byte capacity.
func (o *OutputImage) Capacity() int { return o.capacity }

// Len returns the number of committed bytes.
func (o *OutputImage) Len() int { return len(o.data) }

// Bytes returns a copy of the committed bytes.
func (o *OutputImage) Bytes() []byte {
	out := make([]byte, len(o.data))
	copy(out, o.data)
	return out
}

// Image converts the committed bytes into an NRGBA image for encoding.
// Pixels past the committed data are left zero; 3-channel data is given
// opaque alpha.
func (o *OutputImage) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, o.width, o.height))
	if o.channels == 4 {
		copy(img.Pix, o.data)
		return img
	}

	for p := 0; p < o.width*o.height; p++ {
		src := o.data[min(p*3, len(o.data)):min(p*3+3, len(o.data))]
		copy(img.Pix[p*4:p*4+3], src)
		img.Pix[p*4+3] = 0xff
	}
	return img
}

// OutputBuilder reserves an output buffer and accepts exactly one commit.
type OutputBuilder struct {
	width     int
	height    int
	name      string
	channels  int
	buf       []byte
	committed bool
}

// NewOutputBuilder reserves width*height*layout.Channels bytes for name.
func NewOutputBuilder(width, height int, name string, layout Layout) *OutputBuilder {
	capacity := layout.Capacity(Dimensions{Width: width, Height: height})
	return &OutputBuilder{
		width:    width,
		height:   height,
		name:     name,
		channels: layout.Channels,
		buf:      make([]byte, 0, capacity),
	}
}

// Capacity returns the reserved byte capacity.
func (b *OutputBuilder) Capacity() int {
	return cap(b.buf)
}

// Commit copies data into the reserved buffer and returns the finished image.
//
// Parameters:
//   - data: The combined pixel bytes. May be shorter than the capacity;
//     the remaining pixels render as zero.
//
// Returns:
//   - *OutputImage: The read-only result. Later changes to data do not
//     affect it.
//   - error: Non-nil if data cannot be committed.
//
// # Errors
//
//   - ErrBufferTooSmall if len(data) exceeds Capacity(). Nothing is written
//     and the builder can still be committed.
//   - ErrAlreadyCommitted if a previous Commit succeeded
func (b *OutputBuilder) Commit(data []byte) (*OutputImage, error) {
	if b.committed {
		return nil, errors.Wrap(ErrAlreadyCommitted, b.name)
	}
	if len(data) > cap(b.buf) {
		return nil, errors.Wrapf(ErrBufferTooSmall, "%d bytes exceed capacity %d", len(data), cap(b.buf))
	}

	b.buf = append(b.buf, data...)
	b.committed = true
	return &OutputImage{
		width:    b.width,
		height:   b.height,
		name:     b.name,
		channels: b.channels,
		capacity: cap(b.buf),
		data:     b.buf,
	}, nil
}

// Assemble reserves and commits in one call.
func Assemble(width, height int, name string, data []byte, layout Layout) (*OutputImage, error) {
	return NewOutputBuilder(width, height, name, layout).Commit(data)
}
