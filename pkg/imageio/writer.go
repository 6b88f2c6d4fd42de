package imageio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/gift"

	"cube2pano/internal/models"
)

// SaveOptions controls the panorama post-processing applied on save.
type SaveOptions struct {
	// JPEGQuality is the encoder quality for .jpg/.jpeg outputs (1-100).
	JPEGQuality int

	// BlurSigma is the Gaussian blur smoothing pre-pass; 0 disables it.
	BlurSigma float32
}

// DefaultSaveOptions matches the original converter: quality 85 with a
// light smoothing pass.
func DefaultSaveOptions() SaveOptions {
	return SaveOptions{
		JPEGQuality: 85,
		BlurSigma:   0.8,
	}
}

// SavePanorama writes the panorama to the given path, applying the optional
// blur pre-pass and picking the encoder from the file extension (.png, else
// JPEG). The destination directory must already exist.
func SavePanorama(pano *models.Panorama, path string, opts SaveOptions) error {
	if pano == nil || len(pano.Pix) == 0 {
		return fmt.Errorf("panorama is empty, nothing to save")
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("destination directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("destination %s is not a directory", dir)
	}

	var img image.Image = pano.Image()
	if opts.BlurSigma > 0 {
		g := gift.New(gift.GaussianBlur(opts.BlurSigma))
		blurred := image.NewRGBA(g.Bounds(img.Bounds()))
		g.Draw(blurred, img)
		img = blurred
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		if err := png.Encode(file, img); err != nil {
			return fmt.Errorf("encode PNG: %w", err)
		}
	default:
		quality := opts.JPEGQuality
		if quality <= 0 || quality > 100 {
			quality = DefaultSaveOptions().JPEGQuality
		}
		if err := jpeg.Encode(file, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("encode JPEG: %w", err)
		}
	}
	return nil
}
