// Package cubemap builds and validates the set of six cube map faces that
// feed the equirectangular renderer.
package cubemap

import (
	"fmt"
	"image"
	"sort"

	"cube2pano/internal/models"
)

// ConfigError reports an invalid cube map configuration: missing faces,
// non-square faces, mismatched sizes, or a broken layout table. It aborts
// the run before any rendering starts.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "cubemap: " + e.Msg
}

func configErrorf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// Layout maps source image names to the cube face each one fills. The six
// conventional names are listed in FaceNames; DefaultLayout gives the
// assignment the renderer is compatible with. A custom layout may reassign
// names as long as it covers all six faces exactly once.
type Layout map[string]models.FaceIndex

// FaceNames is the conventional order of the six source images on disk.
var FaceNames = [models.NumFaces]string{"left", "front", "right", "back", "bottom", "top"}

// DefaultLayout returns the fixed naming convention:
//
//	left   -> y-    front  -> x-    right -> x+
//	back   -> y+    bottom -> z-    top   -> z+
func DefaultLayout() Layout {
	return Layout{
		"left":   models.YNeg,
		"front":  models.XNeg,
		"right":  models.XPos,
		"back":   models.YPos,
		"bottom": models.ZNeg,
		"top":    models.ZPos,
	}
}

// validate checks that the layout assigns each of the six cube faces to
// exactly one source name.
func (l Layout) validate() error {
	if len(l) != models.NumFaces {
		return configErrorf("layout must assign exactly %d faces, got %d", models.NumFaces, len(l))
	}
	seen := make(map[models.FaceIndex]string, models.NumFaces)
	for name, idx := range l {
		if idx < models.XPos || idx > models.ZNeg {
			return configErrorf("layout entry %q has invalid face index %d", name, int(idx))
		}
		if prev, dup := seen[idx]; dup {
			return configErrorf("layout assigns face %s to both %q and %q", idx, prev, name)
		}
		seen[idx] = name
	}
	return nil
}

// names returns the layout's source names in deterministic order, for
// stable error messages.
func (l Layout) names() []string {
	out := make([]string, 0, len(l))
	for name := range l {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// FaceSet holds the six decoded cube faces keyed by FaceIndex. It is
// read-only after construction and safe to share across render workers.
type FaceSet struct {
	faces [models.NumFaces]models.Face
	side  int
}

// New builds a FaceSet from named source images using the given layout.
// Every name in the layout must be present in images, and all faces must be
// square with one common side length; otherwise New returns a *ConfigError.
func New(images map[string]image.Image, layout Layout) (*FaceSet, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}
	if len(images) < models.NumFaces {
		return nil, configErrorf("need %d face images, got %d", models.NumFaces, len(images))
	}

	fs := &FaceSet{side: -1}
	for _, name := range layout.names() {
		img, ok := images[name]
		if !ok || img == nil {
			return nil, configErrorf("missing face image %q", name)
		}
		bounds := img.Bounds()
		w, h := bounds.Dx(), bounds.Dy()
		if w != h {
			return nil, configErrorf("face %q is %dx%d, faces must be square", name, w, h)
		}
		if fs.side == -1 {
			fs.side = w
		} else if w != fs.side {
			return nil, configErrorf("face %q is %dx%d, expected %dx%d to match the other faces",
				name, w, h, fs.side, fs.side)
		}
		fs.faces[layout[name]] = packFace(img)
	}

	if fs.side <= 0 {
		return nil, configErrorf("faces are empty (side length %d)", fs.side)
	}
	return fs, nil
}

// Face returns the decoded face for the given index.
func (fs *FaceSet) Face(idx models.FaceIndex) models.Face {
	return fs.faces[idx]
}

// Side returns the common side length of the six faces in pixels.
func (fs *FaceSet) Side() int {
	return fs.side
}

// packFace copies an image into the tight 24-bit representation the render
// loop samples from. *image.RGBA sources take the fast path.
func packFace(img image.Image) models.Face {
	bounds := img.Bounds()
	side := bounds.Dx()
	face := models.NewFace(side)

	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < side; y++ {
			row := rgba.Pix[rgba.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for x := 0; x < side; x++ {
				face.SetRGB(x, y, row[x*4], row[x*4+1], row[x*4+2])
			}
		}
		return face
	}

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			face.SetRGB(x, y, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	return face
}
