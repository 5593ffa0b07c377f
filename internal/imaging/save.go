package imaging

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// SaveOptions tunes the encoder for lossy and compressed formats.
type SaveOptions struct {
	// JPEGQuality is the JPEG quality, 1-100. Zero means 95.
	JPEGQuality int `yaml:"jpegQuality"`

	// PNGCompression is the png.CompressionLevel (0 default, -1 none, -2 best speed, -3 best compression).
	PNGCompression int `yaml:"pngCompression"`
}

func (o SaveOptions) encodeOptions() []imaging.EncodeOption {
	quality := o.JPEGQuality
	if quality == 0 {
		quality = 95
	}
	return []imaging.EncodeOption{
		imaging.JPEGQuality(quality),
		imaging.PNGCompressionLevel(png.CompressionLevel(o.PNGCompression)),
	}
}

// outputMode is the permission given to newly created output files.
const outputMode os.FileMode = 0o644

// Save encodes img in format and writes it to path.
//
// The image is encoded to a temporary file in the destination directory and
// renamed into place, so a failed encode never leaves a partial file at path.
// A new file gets mode 0644; an existing file keeps its mode.
func Save(img image.Image, path string, format imaging.Format, opts SaveOptions) error {
	mode := outputMode
	if st, err := os.Stat(path); err == nil {
		mode = st.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".interleave-*")
	if err != nil {
		return errors.Wrap(err, "create temporary output")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := imaging.Encode(tmp, img, format, opts.encodeOptions()...); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "encode %s", format)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return errors.Wrap(err, "set output permissions")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temporary output")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
