package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/image-interleave/internal/combine"
	"github.com/ironsheep/image-interleave/internal/config"
	"github.com/ironsheep/image-interleave/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	fmt.Println("image-interleave - combine two images by alternating their pixels")
	fmt.Println()
	fmt.Println("Usage: image-interleave <first-image> <second-image> <output>")
	fmt.Println()
	fmt.Println("Both inputs must share a container format (png, jpeg, gif, tiff, bmp).")
	fmt.Println("The larger image is resampled to the smaller one's dimensions and the")
	fmt.Println("output is written in the inputs' format.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  IMAGE_INTERLEAVE_CONFIG=path        YAML configuration file")
	fmt.Println("  IMAGE_INTERLEAVE_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println("  IMAGE_INTERLEAVE_CHANNELS=3|4       Bytes per pixel (default 4)")
	fmt.Println("  IMAGE_INTERLEAVE_BLOCK_SIZE=n       Interleave group size in bytes (default 4)")
	fmt.Println("  IMAGE_INTERLEAVE_RESAMPLER=name     imaging, bild or nfnt (default imaging)")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and returns the process exit code.
func run(args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Printf("image-interleave %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return 0
		case "--help", "-h", "help":
			usage()
			return 0
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if len(args) != 3 {
		usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Configuration error: %v", err)
		return 1
	}
	if cfg.Debug() {
		log.Printf("image-interleave v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("layout channels=%d block=%d resampler=%s", cfg.Interleave.Channels, cfg.Interleave.BlockSize, cfg.Resample.Filter)
	}

	resampler, err := imaging.NewResampler(cfg.Resample.Filter)
	if err != nil {
		log.Printf("Configuration error: %v", err)
		return 1
	}

	combiner, err := combine.New(imaging.NewImageCache(), resampler, combine.Options{
		Layout: cfg.Interleave,
		Save:   cfg.Output,
		Debug:  cfg.Debug(),
	}, log.Default())
	if err != nil {
		log.Printf("Configuration error: %v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := combiner.Run(ctx, combine.Request{
		First:  args[0],
		Second: args[1],
		Output: args[2],
	})
	if err != nil {
		log.Printf("Combine failed: %v", err)
		return 1
	}

	log.Printf("wrote %s (%s, %dx%d)", res.Path, res.Format, res.Width, res.Height)
	return 0
}
