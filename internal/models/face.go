package models

import (
	"fmt"
	"strings"
)

// FaceIndex names a cube face by the axis its outward normal points along.
type FaceIndex int

const (
	XPos FaceIndex = iota
	XNeg
	YPos
	YNeg
	ZPos
	ZNeg

	// NumFaces is the number of faces in a cube map.
	NumFaces = 6
)

// String returns the compact axis notation for the face, e.g. "x+".
func (f FaceIndex) String() string {
	switch f {
	case XPos:
		return "x+"
	case XNeg:
		return "x-"
	case YPos:
		return "y+"
	case YNeg:
		return "y-"
	case ZPos:
		return "z+"
	case ZNeg:
		return "z-"
	}
	return fmt.Sprintf("FaceIndex(%d)", int(f))
}

// ParseFaceIndex parses the compact axis notation ("x+", "Z-", ...) used in
// configuration files back into a FaceIndex.
func ParseFaceIndex(s string) (FaceIndex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x+":
		return XPos, nil
	case "x-":
		return XNeg, nil
	case "y+":
		return YPos, nil
	case "y-":
		return YNeg, nil
	case "z+":
		return ZPos, nil
	case "z-":
		return ZNeg, nil
	}
	return 0, fmt.Errorf("unknown cube face %q (expected one of x+, x-, y+, y-, z+, z-)", s)
}

// Face is one decoded cube map face: a square grid of 24-bit RGB pixels.
// The pixel data is packed row-major, three bytes per pixel. A Face is
// treated as read-only once built so it can be shared across render workers
// without locking.
type Face struct {
	// Pix holds the packed R, G, B bytes in row-major order.
	Pix []uint8

	// Side is the side length of the square grid in pixels.
	Side int
}

// NewFace allocates a zeroed square face with the given side length.
func NewFace(side int) Face {
	return Face{
		Pix:  make([]uint8, side*side*3),
		Side: side,
	}
}

// RGB returns the pixel at column x, row y. Callers must pass coordinates
// inside [0, Side).
func (f Face) RGB(x, y int) (r, g, b uint8) {
	i := (y*f.Side + x) * 3
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// SetRGB stores the pixel at column x, row y. Only used while building the
// face; render code never writes to a Face.
func (f Face) SetRGB(x, y int, r, g, b uint8) {
	i := (y*f.Side + x) * 3
	f.Pix[i] = r
	f.Pix[i+1] = g
	f.Pix[i+2] = b
}
