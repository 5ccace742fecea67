package render

import (
	"testing"

	"github.com/evhansen/lumentrace/pkg/camera"
	"github.com/evhansen/lumentrace/pkg/core"
	"github.com/evhansen/lumentrace/pkg/scene"
)

func TestSplitRowsCoversEveryRowExactlyOnce(t *testing.T) {
	for _, cfg := range []struct{ height, workers int }{
		{40, 4}, {40, 7}, {1, 8}, {10, 1}, {10, 100},
	} {
		chunks := splitRows(cfg.height, cfg.workers)
		seen := make([]bool, cfg.height)
		for _, c := range chunks {
			for y := c.YMin; y < c.YMax; y++ {
				if seen[y] {
					t.Fatalf("height=%d workers=%d: row %d covered twice", cfg.height, cfg.workers, y)
				}
				seen[y] = true
			}
		}
		for y, ok := range seen {
			if !ok {
				t.Errorf("height=%d workers=%d: row %d never covered", cfg.height, cfg.workers, y)
			}
		}
	}
}

func TestRenderImageProducesCorrectDimensions(t *testing.T) {
	s := scene.NewScene(nil, nil)
	cam := camera.NewSimpleCamera(core.Point3{X: 0, Y: 0, Z: 5}, core.Point3{}, core.NewVec3(0, 1, 0), 40, 16, 10)
	w := NewWorld(s, cam, constIntegrator{color: core.NewColor(0.5, 0.5, 0.5)}, 2, 1)
	w.Preprocess()

	img := RenderImage(w, 16, 10, 4)
	if img.Width != 16 || img.Height != 10 {
		t.Fatalf("Image dims = %dx%d, want 16x10", img.Width, img.Height)
	}
	if len(img.Pixels) != 16*10*4 {
		t.Fatalf("Pixels length = %d, want %d", len(img.Pixels), 16*10*4)
	}
}

func TestRenderImageLogsEachTileStartAndFinish(t *testing.T) {
	s := scene.NewScene(nil, nil)
	cam := camera.NewSimpleCamera(core.Point3{X: 0, Y: 0, Z: 5}, core.Point3{}, core.NewVec3(0, 1, 0), 40, 16, 10)
	w := NewWorld(s, cam, constIntegrator{color: core.NewColor(0.5, 0.5, 0.5)}, 1, 1)
	log := &recordingLogger{}
	w.Logger = log
	w.Preprocess()

	const numWorkers = 4
	RenderImage(w, 16, 10, numWorkers)

	// Preprocess contributes one line; each of the numWorkers tiles
	// contributes a started line and a finished line.
	want := 1 + numWorkers*2
	if n := log.count(); n != want {
		t.Errorf("log line count = %d, want %d: %v", n, want, log.lines)
	}
}

func TestRenderImageMatchesSequentialRenderPixel(t *testing.T) {
	s := scene.NewScene(nil, nil)
	cam := camera.NewSimpleCamera(core.Point3{X: 0, Y: 0, Z: 5}, core.Point3{}, core.NewVec3(0, 1, 0), 40, 8, 6)
	w := NewWorld(s, cam, constIntegrator{color: core.NewColor(0.2, 0.4, 0.6)}, 3, 7)
	w.Preprocess()

	img := RenderImage(w, 8, 6, 3)
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			want := w.RenderPixel(x, y)
			i := (y*8 + x) * 4
			for c := 0; c < 4; c++ {
				if img.Pixels[i+c] != want[c] {
					t.Fatalf("pixel (%d,%d) channel %d = %d, want %d (parallel driver must match per-pixel rendering)", x, y, c, img.Pixels[i+c], want[c])
				}
			}
		}
	}
}
