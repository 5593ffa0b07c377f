package imaging

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// createTestImage writes a solid PNG into t.TempDir() and returns its path.
func createTestImage(t *testing.T, name string, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	switch filepath.Ext(name) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	return path
}

func TestNewImageCache(t *testing.T) {
	cache := NewImageCache()
	if cache == nil {
		t.Fatal("NewImageCache returned nil")
	}
	if cache.images == nil {
		t.Fatal("NewImageCache did not initialize images map")
	}
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, "red.png", 100, 80, color.RGBA{255, 0, 0, 255})

	img1, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img1.Width() != 100 || img1.Height() != 80 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x80", img1.Width(), img1.Height())
	}
	if img1.Format != imaging.PNG {
		t.Errorf("Format: got %v, want PNG", img1.Format)
	}
	if img1.Path != imgPath {
		t.Errorf("Path: got %s, want %s", img1.Path, imgPath)
	}

	// Second load should return cached image
	img2, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load did not return cached image")
	}
	if cache.Len() != 1 {
		t.Errorf("Len: got %d, want 1", cache.Len())
	}
}

func TestImageCache_Load_JPEG(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, "photo.jpg", 16, 16, color.RGBA{0, 0, 255, 255})

	img, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Format != imaging.JPEG {
		t.Errorf("Format: got %v, want JPEG", img.Format)
	}
}

func TestImageCache_Load_NonExistent(t *testing.T) {
	cache := NewImageCache()
	_, err := cache.Load("/nonexistent/path/to/image.png")
	if err == nil {
		t.Error("Load should fail for non-existent file")
	}
}

func TestImageCache_Load_UnsupportedExtension(t *testing.T) {
	cache := NewImageCache()
	_, err := cache.Load(filepath.Join(t.TempDir(), "image.xyz"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestImageCache_Load_InvalidImage(t *testing.T) {
	cache := NewImageCache()

	path := filepath.Join(t.TempDir(), "invalid.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := cache.Load(path)
	if err == nil {
		t.Error("Load should fail for invalid image data")
	}
	if cache.Len() != 0 {
		t.Error("failed load should not be cached")
	}
}

func TestImageCache_ConcurrentAccess(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, "gray.png", 50, 50, color.RGBA{128, 128, 128, 255})

	var wg sync.WaitGroup
	errs := make(chan error, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(imgPath); err != nil {
				errs <- err
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Load error: %v", err)
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path   string
		format imaging.Format
	}{
		{"a.png", imaging.PNG},
		{"a.PNG", imaging.PNG},
		{"a.jpg", imaging.JPEG},
		{"a.jpeg", imaging.JPEG},
		{"a.gif", imaging.GIF},
		{"a.tif", imaging.TIFF},
		{"a.bmp", imaging.BMP},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatOf(tt.path)
			if err != nil {
				t.Fatalf("FormatOf failed: %v", err)
			}
			if got != tt.format {
				t.Errorf("FormatOf(%s): got %v, want %v", tt.path, got, tt.format)
			}
		})
	}

	if _, err := FormatOf("a.webp"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FormatOf(a.webp): expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestImage_Info(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, "info.png", 200, 150, color.RGBA{255, 128, 64, 255})

	img, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	info := img.Info()
	if info.Width != 200 || info.Height != 150 {
		t.Errorf("dimensions: got %dx%d, want 200x150", info.Width, info.Height)
	}
	if info.Format != "PNG" {
		t.Errorf("Format: got %s, want PNG", info.Format)
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("ColorDepth: got %s, want 8-bit", info.ColorDepth)
	}
}
