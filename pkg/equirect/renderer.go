// Package equirect renders an equirectangular panorama from a cube map by
// resampling every output pixel through the gnomonic cube projection.
package equirect

import (
	"image"
	"math"
	"runtime"
	"sync"
	"time"

	"gonum.org/v1/gonum/floats"

	"cube2pano/internal/models"
	"cube2pano/pkg/cubemap"
	"cube2pano/pkg/projection"
)

// Stats reports what a render did: wall-clock time spent in the fill loop
// and, per cube face, the fraction of output pixels sampled from it.
type Stats struct {
	// Elapsed is the wall-clock duration of the parallel fill.
	Elapsed time.Duration

	// Workers is the number of goroutines the fill was partitioned across.
	Workers int

	// FaceSamples counts output pixels sampled from each face.
	FaceSamples [models.NumFaces]int

	// FaceShare is FaceSamples normalized to fractions of the output.
	FaceShare [models.NumFaces]float64
}

// Renderer fills equirectangular panoramas from cube maps. The output is
// always 4S x 2S for faces of side S. Rendering is deterministic: the same
// face set produces byte-identical output for any worker count.
type Renderer struct {
	workers int
}

// NewRenderer creates a renderer that partitions the fill across the given
// number of workers. Values below 1 fall back to runtime.NumCPU().
func NewRenderer(workers int) *Renderer {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Renderer{workers: workers}
}

// Render fills a new panorama from the face set. Each worker owns an
// exclusive range of output rows, so no synchronization is needed beyond
// the final join; nothing inside the loop blocks or allocates.
func (r *Renderer) Render(faces *cubemap.FaceSet) (*models.Panorama, Stats) {
	side := faces.Side()
	width := side * 4
	height := side * 2
	pano := models.NewPanorama(width, height)

	workers := r.workers
	if workers > height {
		workers = height
	}
	rowsPerWorker := (height + workers - 1) / workers

	// Per-worker tallies, merged after the join.
	tallies := make([][models.NumFaces]int, workers)

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > height {
			endRow = height
		}
		if startRow >= endRow {
			continue
		}

		wg.Add(1)
		go func(workerID, startRow, endRow int) {
			defer wg.Done()
			fillRows(pano, faces, startRow, endRow, &tallies[workerID])
		}(w, startRow, endRow)
	}
	wg.Wait()
	elapsed := time.Since(start)

	stats := Stats{Elapsed: elapsed, Workers: workers}
	for _, tally := range tallies {
		for f := range tally {
			stats.FaceSamples[f] += tally[f]
		}
	}
	counts := make([]float64, models.NumFaces)
	for f, n := range stats.FaceSamples {
		counts[f] = float64(n)
	}
	if total := floats.Sum(counts); total > 0 {
		for f := range stats.FaceShare {
			stats.FaceShare[f] = counts[f] / total
		}
	}
	return pano, stats
}

// fillRows computes the output rows [startRow, endRow). It is the hot loop:
// pure arithmetic, reads only the face set, writes only its own rows.
func fillRows(pano *models.Panorama, faces *cubemap.FaceSet, startRow, endRow int, tally *[models.NumFaces]int) {
	side := faces.Side()
	width := pano.Width
	height := pano.Height
	maxCoord := float64(side - 1)

	var faceLUT [models.NumFaces]models.Face
	for f := range faceLUT {
		faceLUT[f] = faces.Face(models.FaceIndex(f))
	}

	for i := startRow; i < endRow; i++ {
		// The dimension-1 denominators put the first and last row/column
		// exactly on the poles and the wrap meridian.
		v := float64(i) / float64(height-1)
		phi := v * math.Pi

		for j := 0; j < width; j++ {
			u := float64(j) / float64(width-1)
			theta := u * 2 * math.Pi

			cart := projection.Project(theta, phi, side)

			// Clamp before truncating: boundary directions can project an
			// epsilon outside [0, side-1].
			x := cart.X
			if x < 0 {
				x = 0
			} else if x > maxCoord {
				x = maxCoord
			}
			y := cart.Y
			if y < 0 {
				y = 0
			} else if y > maxCoord {
				y = maxCoord
			}

			cr, cg, cb := faceLUT[cart.Face].RGB(int(x), int(y))
			pano.SetRGB(j, i, cr, cg, cb)
			tally[cart.Face]++
		}
	}
}

// Assemble builds a face set from the named source images and renders it.
// This is the one-call entry point: it fails only if the face set is
// invalid, and otherwise returns the completed panorama with render stats.
func Assemble(images map[string]image.Image, layout cubemap.Layout, workers int) (*models.Panorama, Stats, error) {
	faces, err := cubemap.New(images, layout)
	if err != nil {
		return nil, Stats{}, err
	}
	pano, stats := NewRenderer(workers).Render(faces)
	return pano, stats, nil
}
