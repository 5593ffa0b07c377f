package imaging

import (
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// ErrUnsupportedFormat is returned for paths whose extension maps to no known
// container format.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Image is a decoded raster together with the container format of the file
// it was read from.
type Image struct {
	// Path is the file the image was decoded from.
	Path string

	// Format is the container format tag derived from Path's extension.
	Format imaging.Format

	// Pixels is the decoded raster.
	Pixels image.Image
}

// Width returns the image width in pixels.
func (i *Image) Width() int { return i.Pixels.Bounds().Dx() }

// Height returns the image height in pixels.
func (i *Image) Height() int { return i.Pixels.Bounds().Dy() }

// FormatOf returns the container format for path based on its extension.
func FormatOf(path string) (imaging.Format, error) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return 0, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
	return f, nil
}

// ImageCache provides thread-safe caching of decoded images to avoid
// redundant disk reads.
//
// Images are keyed by the exact path string passed to Load, so combining a
// file with itself decodes it only once. Different spellings of the same file
// (relative vs absolute) produce separate entries.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*Image),
	}
}

// Load retrieves an image from the cache or decodes it from disk.
//
// # Errors
//
//   - ErrUnsupportedFormat if the extension is not a known container format
//   - the open error if the file does not exist or cannot be read
//   - a decode error if the contents are not a valid image
func (c *ImageCache) Load(path string) (*Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image")
	}
	defer f.Close()

	pixels, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode image %s", path)
	}

	img := &Image{Path: path, Format: format, Pixels: pixels}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// ImageInfo contains metadata about a decoded image.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Format is the container format name, e.g. "PNG" or "JPEG".
	Format string

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string

	// HasAlpha indicates whether the decoded color model carries alpha.
	HasAlpha bool
}

// Info describes img without touching its pixels.
//
// # Color Depth Detection
//
// Color depth is determined by the Go image type:
//   - *image.RGBA64, *image.NRGBA64, *image.Gray16 -> "16-bit"
//   - All other types -> "8-bit"
func (i *Image) Info() ImageInfo {
	hasAlpha := false
	colorDepth := "8-bit"
	switch i.Pixels.(type) {
	case *image.RGBA, *image.NRGBA:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		colorDepth = "16-bit"
	case *image.Gray16:
		colorDepth = "16-bit"
	}

	return ImageInfo{
		Width:      i.Width(),
		Height:     i.Height(),
		Format:     i.Format.String(),
		ColorDepth: colorDepth,
		HasAlpha:   hasAlpha,
	}
}
