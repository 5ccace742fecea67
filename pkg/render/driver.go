package render

import (
	"runtime"
	"sync"
	"time"
)

// RowChunk is a contiguous range of scanlines assigned to one worker.
type RowChunk struct {
	YMin, YMax int // [YMin, YMax)
}

// Image is a flat, row-major RGBA8 buffer: pixel (x, y) lives at
// Pixels[(y*Width+x)*4 : ...+4].
type Image struct {
	Width, Height int
	Pixels        []byte
}

// NewImage allocates a zeroed image buffer.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]byte, width*height*4)}
}

func (img *Image) set(x, y int, c [4]byte) {
	i := (y*img.Width + x) * 4
	copy(img.Pixels[i:i+4], c[:])
}

// RenderImage sweeps every pixel of width x height through w.RenderPixel,
// partitioned into row chunks across a worker pool. Each worker only ever
// writes the rows in its own chunk, so the shared image buffer needs no
// synchronization beyond the WaitGroup that joins the workers.
func RenderImage(w *World, width, height, numWorkers int) *Image {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	img := NewImage(width, height)
	chunks := splitRows(height, numWorkers)
	log := w.logger()

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(tile int, c RowChunk) {
			defer wg.Done()
			log.Printf("lumentrace: tile %d started (rows %d-%d)\n", tile, c.YMin, c.YMax)
			start := time.Now()
			renderRows(w, img, c)
			log.Printf("lumentrace: tile %d finished (rows %d-%d) in %v\n", tile, c.YMin, c.YMax, time.Since(start))
		}(i, chunk)
	}
	wg.Wait()

	return img
}

func renderRows(w *World, img *Image, chunk RowChunk) {
	for y := chunk.YMin; y < chunk.YMax; y++ {
		for x := 0; x < img.Width; x++ {
			img.set(x, y, w.RenderPixel(x, y))
		}
	}
}

// splitRows divides [0, height) into at most numWorkers contiguous, roughly
// equal row chunks.
func splitRows(height, numWorkers int) []RowChunk {
	if numWorkers > height {
		numWorkers = height
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}

	base := height / numWorkers
	remainder := height % numWorkers

	chunks := make([]RowChunk, 0, numWorkers)
	y := 0
	for i := 0; i < numWorkers; i++ {
		size := base
		if i < remainder {
			size++
		}
		if size == 0 {
			continue
		}
		chunks = append(chunks, RowChunk{YMin: y, YMax: y + size})
		y += size
	}
	return chunks
}
