// Command lumentrace renders a scene with the path tracer and writes the
// result to a PNG file, with an optional downsized thumbnail alongside it.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/term"

	"github.com/evhansen/lumentrace/pkg/core"
	"github.com/evhansen/lumentrace/pkg/integrator"
	"github.com/evhansen/lumentrace/pkg/loaders"
	"github.com/evhansen/lumentrace/pkg/render"
	"github.com/evhansen/lumentrace/pkg/scenes"
)

const defaultMaxDepth = 8

func main() {
	scenePath := flag.String("scene", "", "path to a YAML scene file (if empty, use -builtin)")
	builtin := flag.String("builtin", "sphere", "built-in scene: sky, sphere, or pointlit (ignored if -scene is set)")
	out := flag.String("out", "render.png", "output PNG path")
	thumbWidth := flag.Int("thumb-width", 0, "if > 0, also write a <out>.thumb.png resized to this width")
	workers := flag.Int("workers", 0, "parallel workers (0 = auto-detect CPU count)")
	flag.Parse()

	// Only a real terminal gets per-tile progress output; a pipe or a log
	// file gets just the final summary lines below.
	var logger core.Logger
	if term.IsTerminal(int(os.Stdout.Fd())) {
		logger = render.NewDefaultLogger()
	}

	w, err := buildWorld(*scenePath, *builtin, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lumentrace: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	img := render.RenderImage(w, w.Camera.Width, w.Camera.Height, *workers)
	elapsed := time.Since(start)

	fmt.Printf("lumentrace: rendered %dx%d in %v\n", w.Camera.Width, w.Camera.Height, elapsed)
	if pt, ok := w.Integrator.(*integrator.PathTracingIntegrator); ok {
		fmt.Printf("lumentrace: Russian roulette terminated %.1f%% of eligible paths\n", pt.RouletteTerminationRate()*100)
	}

	rgba := toStdImage(img)
	if err := writePNG(*out, rgba); err != nil {
		fmt.Fprintf(os.Stderr, "lumentrace: %v\n", err)
		os.Exit(1)
	}

	if *thumbWidth > 0 {
		thumb := imaging.Resize(rgba, *thumbWidth, 0, imaging.Lanczos)
		thumbPath := thumbPathFor(*out)
		if err := writePNG(thumbPath, thumb); err != nil {
			fmt.Fprintf(os.Stderr, "lumentrace: %v\n", err)
			os.Exit(1)
		}
	}
}

func buildWorld(scenePath, builtin string, logger core.Logger) (*render.World, error) {
	if scenePath != "" {
		cfg, err := loaders.LoadSceneConfig(scenePath)
		if err != nil {
			return nil, fmt.Errorf("load scene: %w", err)
		}
		maxDepth := cfg.MaxDepth
		if maxDepth <= 0 {
			maxDepth = defaultMaxDepth
		}
		w := render.NewWorld(cfg.Scene, cfg.Camera, integrator.NewPathTracingIntegrator(maxDepth), cfg.Samples, cfg.Seed)
		if logger != nil {
			w.Logger = logger
		}
		w.Preprocess()
		return w, nil
	}

	var w *render.World
	switch builtin {
	case "sky":
		w = scenes.NewEmptySkyScene(core.NewColor(0.7, 0.8, 1.0), 1)
	case "sphere":
		w = scenes.NewSingleMatteSphereScene(3, core.NewColor(1, 0.1, 0.1), core.NewColor(0.7, 0.8, 1.0), 1)
	case "pointlit":
		w = scenes.NewPointLitMatteScene(core.NewColor(1, 1, 1), core.Point3{X: 0, Y: 10, Z: 0}, core.NewColor(1, 1, 1), 1)
	default:
		return nil, fmt.Errorf("unknown built-in scene %q", builtin)
	}
	if logger != nil {
		w.Logger = logger
	}
	return w, nil
}

func toStdImage(img *render.Image) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	copy(rgba.Pix, img.Pixels)
	return rgba
}

func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %q: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()
	return png.Encode(f, img)
}

func thumbPathFor(outPath string) string {
	ext := filepath.Ext(outPath)
	base := outPath[:len(outPath)-len(ext)]
	return base + ".thumb" + ext
}
