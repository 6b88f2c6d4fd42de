package models

import (
	"image"
	"image/color"
)

// Panorama is the equirectangular output image: a Width x Height grid of
// 24-bit RGB pixels with Width = 2*Height. It is allocated empty, filled
// exactly once by the renderer, and then owned by the caller.
type Panorama struct {
	// Pix holds the packed R, G, B bytes in row-major order.
	Pix []uint8

	// Width and Height are the output dimensions in pixels.
	Width  int
	Height int
}

// NewPanorama allocates a zeroed panorama with the given dimensions.
func NewPanorama(width, height int) *Panorama {
	return &Panorama{
		Pix:    make([]uint8, width*height*3),
		Width:  width,
		Height: height,
	}
}

// RGB returns the pixel at column x, row y.
func (p *Panorama) RGB(x, y int) (r, g, b uint8) {
	i := (y*p.Width + x) * 3
	return p.Pix[i], p.Pix[i+1], p.Pix[i+2]
}

// SetRGB stores the pixel at column x, row y.
func (p *Panorama) SetRGB(x, y int, r, g, b uint8) {
	i := (y*p.Width + x) * 3
	p.Pix[i] = r
	p.Pix[i+1] = g
	p.Pix[i+2] = b
}

// Image converts the panorama into a standard RGBA image for encoding.
func (p *Panorama) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			r, g, b := p.RGB(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
