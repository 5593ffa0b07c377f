package combine

import (
	"context"
	"log"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/ironsheep/image-interleave/internal/blend"
	imgio "github.com/ironsheep/image-interleave/internal/imaging"
)

// ErrFormatMismatch is returned when the two inputs have different container
// formats. It is raised before any resampling happens.
var ErrFormatMismatch = errors.New("input images have different container formats")

// Loader decodes an image file together with its container format.
type Loader interface {
	Load(path string) (*imgio.Image, error)
}

// Request names the two inputs and the output file.
type Request struct {
	First  string
	Second string
	Output string
}

// Result describes the written output.
type Result struct {
	Path    string
	Format  imaging.Format
	Width   int
	Height  int
	Bytes   int
	Summary imgio.ColorSummary
}

// Options configures a Combiner.
type Options struct {
	Layout blend.Layout
	Save   imgio.SaveOptions
	Debug  bool
}

// Combiner wires the blend stages to file I/O.
type Combiner struct {
	loader       Loader
	standardizer *blend.Standardizer
	layout       blend.Layout
	save         imgio.SaveOptions
	debug        bool
	logger       *log.Logger
}

// New creates a Combiner. A nil logger uses log.Default().
func New(loader Loader, resampler blend.Resampler, opts Options, logger *log.Logger) (*Combiner, error) {
	if err := opts.Layout.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Combiner{
		loader:       loader,
		standardizer: blend.NewStandardizer(resampler, logger),
		layout:       opts.Layout,
		save:         opts.Save,
		debug:        opts.Debug,
		logger:       logger,
	}, nil
}

// Run combines req.First and req.Second and writes the result to req.Output
// in the first input's container format.
//
// Parameters:
//   - ctx: Checked between stages. Cancellation stops the run before the
//     output is written.
//   - req: The two input paths and the output path.
//
// Returns:
//   - *Result: Path, format, dimensions and committed byte count of the
//     output. Summary is filled only in debug mode.
//   - error: Non-nil if any stage fails. Nothing is written on error.
//
// # Errors
//
//   - load errors from the Loader, including imaging.ErrUnsupportedFormat
//   - ErrFormatMismatch if the inputs' container formats differ; this is
//     checked before any resampling
//   - resampler errors and blend.ErrResampleSize from standardization
//   - blend.ErrLengthMismatch or blend.ErrBufferTooSmall if the layout is
//     inconsistent
//   - encode and write errors from imaging.Save
//   - ctx.Err() if ctx is done
func (c *Combiner) Run(ctx context.Context, req Request) (*Result, error) {
	first, err := c.loader.Load(req.First)
	if err != nil {
		return nil, errors.Wrap(err, "load first image")
	}
	second, err := c.loader.Load(req.Second)
	if err != nil {
		return nil, errors.Wrap(err, "load second image")
	}
	c.debugf("inputs first=%+v second=%+v", first.Info(), second.Info())

	if first.Format != second.Format {
		return nil, errors.Wrapf(ErrFormatMismatch, "%s is %s, %s is %s",
			req.First, first.Format, req.Second, second.Format)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a, b, err := c.standardizer.Standardize(first.Pixels, second.Pixels)
	if err != nil {
		return nil, errors.Wrap(err, "standardize")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	combined, err := blend.Interleave(blend.PixelBytes(a, c.layout), blend.PixelBytes(b, c.layout), c.layout)
	if err != nil {
		return nil, errors.Wrap(err, "interleave")
	}

	dims := blend.DimensionsOf(a)
	out, err := blend.Assemble(dims.Width, dims.Height, req.Output, combined, c.layout)
	if err != nil {
		return nil, errors.Wrap(err, "assemble")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rendered := out.Image()
	if err := imgio.Save(rendered, out.Name(), first.Format, c.save); err != nil {
		return nil, errors.Wrap(err, "save output")
	}

	res := &Result{
		Path:   out.Name(),
		Format: first.Format,
		Width:  out.Width(),
		Height: out.Height(),
		Bytes:  out.Len(),
	}
	if c.debug {
		res.Summary = imgio.Summarize(rendered)
		c.logger.Printf("output mean color %s hsl=%+v", res.Summary.Hex, res.Summary.HSL)
	}
	return res, nil
}

func (c *Combiner) debugf(format string, args ...interface{}) {
	if c.debug {
		c.logger.Printf(format, args...)
	}
}
