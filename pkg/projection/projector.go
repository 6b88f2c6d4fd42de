// Package projection implements the gnomonic cube projection: the pure
// mapping from equirectangular angular coordinates to a cube face and a
// sampling position inside that face.
package projection

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"cube2pano/internal/models"
)

// Cart2D is the result of projecting an angular coordinate onto a cube
// face: the face hit by the direction vector plus the sampling position in
// that face's pixel space. X and Y are nominally in [0, side) but can land
// slightly outside at exact face boundaries; the caller clamps.
type Cart2D struct {
	Face models.FaceIndex
	X    float64
	Y    float64
}

// Direction converts an angular coordinate to a unit direction vector.
// theta in [0, 2*pi) is longitude with 0 at the panorama's left edge; phi in
// [0, pi] is colatitude with 0 straight up. The axes are laid out with z up,
// x toward theta=0 and y toward theta=pi/2.
func Direction(theta, phi float64) r3.Vec {
	sinPhi := math.Sin(phi)
	return r3.Vec{
		X: sinPhi * math.Cos(theta),
		Y: sinPhi * math.Sin(theta),
		Z: math.Cos(phi),
	}
}

// Project maps the angular coordinate (theta, phi) onto a cube with faces of
// the given side length. The face is chosen by the dominant axis of the
// direction vector; the in-face position is the tangent-plane (gnomonic)
// projection rescaled from [-1, 1] to [0, side-1].
//
// The per-face orientations are chosen so the mapping is continuous across
// every cube edge: directions near an edge project to matching positions on
// the two adjoining faces.
func Project(theta, phi float64, side int) Cart2D {
	dir := Direction(theta, phi)

	ax := math.Abs(dir.X)
	ay := math.Abs(dir.Y)
	az := math.Abs(dir.Z)

	var face models.FaceIndex
	var u, v float64

	switch {
	case ax >= ay && ax >= az:
		if dir.X > 0 {
			face = models.XPos
			u = dir.Y / ax
		} else {
			face = models.XNeg
			u = -dir.Y / ax
		}
		v = -dir.Z / ax
	case ay >= az:
		if dir.Y > 0 {
			face = models.YPos
			u = -dir.X / ay
		} else {
			face = models.YNeg
			u = dir.X / ay
		}
		v = -dir.Z / ay
	default:
		u = dir.Y / az
		if dir.Z > 0 {
			face = models.ZPos
			v = dir.X / az
		} else {
			face = models.ZNeg
			v = -dir.X / az
		}
	}

	scale := float64(side - 1)
	return Cart2D{
		Face: face,
		X:    (u + 1) / 2 * scale,
		Y:    (v + 1) / 2 * scale,
	}
}
