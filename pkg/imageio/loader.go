// Package imageio loads cube map faces from disk and saves the rendered
// panorama. It is the I/O boundary around the render core: decode formats,
// file naming, and output post-processing live here.
package imageio

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"cube2pano/pkg/cubemap"
)

// faceExtensions are the file extensions tried, in order, when resolving a
// face name inside the input directory.
var faceExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// LoadFace decodes a single face image from the given path.
func LoadFace(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open face image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode face image %s: %w", path, err)
	}
	return toRGBA(img), nil
}

// LoadCubeMap resolves and decodes the six conventionally named face images
// (left, front, right, back, bottom, top) from a directory, trying each
// known extension per name. The result is keyed by face name, ready for
// cubemap.New.
func LoadCubeMap(dir string) (map[string]image.Image, error) {
	images := make(map[string]image.Image, len(cubemap.FaceNames))
	for _, name := range cubemap.FaceNames {
		path, err := resolveFacePath(dir, name)
		if err != nil {
			return nil, err
		}
		img, err := LoadFace(path)
		if err != nil {
			return nil, err
		}
		images[name] = img
	}
	return images, nil
}

// resolveFacePath finds the on-disk file for a face name.
func resolveFacePath(dir, name string) (string, error) {
	for _, ext := range faceExtensions {
		path := filepath.Join(dir, name+ext)
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", fmt.Errorf("face %q not found in %s (tried extensions %v)", name, dir, faceExtensions)
}

// NormalizeFaceSizes resizes all faces to the smallest side length found
// among them, so cube maps assembled from mixed-resolution sources still
// form a valid face set. Faces already at the target size are returned
// unchanged. Non-square faces are resized to squares of the target side.
func NormalizeFaceSizes(images map[string]image.Image) map[string]image.Image {
	target := 0
	for _, img := range images {
		b := img.Bounds()
		side := b.Dx()
		if b.Dy() < side {
			side = b.Dy()
		}
		if target == 0 || side < target {
			target = side
		}
	}
	if target == 0 {
		return images
	}

	out := make(map[string]image.Image, len(images))
	for name, img := range images {
		b := img.Bounds()
		if b.Dx() == target && b.Dy() == target {
			out[name] = img
			continue
		}
		out[name] = toRGBA(resize.Resize(uint(target), uint(target), img, resize.Lanczos3))
	}
	return out
}

// toRGBA converts any decoded image into *image.RGBA with a zero origin.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	return rgba
}
