// Package batch renders scripted orbit sequences to numbered image files.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"queenboard/internal/board"
	"queenboard/internal/export"
	"queenboard/internal/raster"
	"queenboard/internal/stage"
)

// ManifestName is the file written next to the frames.
const ManifestName = "manifest.json"

// Config holds the output settings for a batch run.
type Config struct {
	OutputDir string
	Format    export.Format
	Workers   int
	Placement board.Placement
	Logger    *zap.Logger
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

// FrameName returns the file name of frame i.
func FrameName(i int, f export.Format) string {
	return fmt.Sprintf("frame_%04d%s", i, f.Ext())
}

// Run plays script on st, one tick per frame, then renders the captured frames
// concurrently and writes them with a manifest to cfg.OutputDir.
// Frame failures are reported in the results; the returned error covers the run itself.
func Run(st *stage.Stage, script Script, cfg Config) ([]Result, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Format == "" {
		cfg.Format = export.WebP
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("batch: mkdir %s: %w", cfg.OutputDir, err)
	}

	// The stage is advanced only here; workers see frozen snapshots.
	snaps := make([]stage.Snapshot, len(script))
	for i, evs := range script {
		for _, ev := range evs {
			st.Handle(ev)
		}
		st.Tick()
		snaps[i] = st.Snapshot()
	}

	width, height := st.Renderer.Size()
	renderers := make(chan *raster.Renderer, cfg.Workers)
	for w := 0; w < cfg.Workers; w++ {
		r := raster.NewRenderer(width, height, st.Renderer.Supersample)
		r.Background = st.Renderer.Background
		r.Exposure = st.Renderer.Exposure
		renderers <- r
	}

	pool, err := ants.NewPool(cfg.Workers,
		ants.WithPreAlloc(true),
		ants.WithPanicHandler(func(p interface{}) {
			log.Error("frame worker panic", zap.Any("panic", p))
		}))
	if err != nil {
		return nil, fmt.Errorf("batch: create pool: %w", err)
	}
	defer pool.Release()

	total := len(snaps)
	results := make([]Result, total)
	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					log.Info("progress",
						zap.Int64("done", p),
						zap.Int("total", total),
						zap.Float64("frames_per_sec", float64(p)/elapsed))
				}
			}
		}
	}()

	var wg sync.WaitGroup
	for i := range snaps {
		results[i] = Result{Frame: i, Error: "not rendered"}
		wg.Add(1)
		task := func() {
			defer wg.Done()
			defer processed.Add(1)
			r := <-renderers
			defer func() { renderers <- r }()
			results[i] = renderFrame(st, r, snaps[i], i, cfg)
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			results[i].Error = fmt.Sprintf("submit: %v", err)
		}
	}
	wg.Wait()
	close(done)

	ok := 0
	for _, res := range results {
		if res.Success {
			ok++
		} else {
			log.Warn("frame failed", zap.Int("frame", res.Frame), zap.String("error", res.Error))
		}
	}
	log.Info("sequence rendered",
		zap.Int("frames", total),
		zap.Int("ok", ok),
		zap.Duration("elapsed", time.Since(start)))

	m := Manifest{
		RunID:     uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		BoardSize: st.Composer.BoardSize(),
		Placement: cfg.Placement.Clone(),
		Format:    string(cfg.Format),
		Width:     width,
		Height:    height,
		Frames:    make([]ManifestFrame, total),
	}
	for i, res := range results {
		mf := ManifestFrame{Frame: i, Camera: [3]float64(snaps[i].Camera.Position), Error: res.Error}
		if res.Success {
			mf.Image = filepath.Base(res.Path)
		}
		m.Frames[i] = mf
	}
	if err := WriteManifest(filepath.Join(cfg.OutputDir, ManifestName), m); err != nil {
		return results, err
	}
	return results, nil
}

func renderFrame(st *stage.Stage, r *raster.Renderer, snap stage.Snapshot, i int, cfg Config) Result {
	path := filepath.Join(cfg.OutputDir, FrameName(i, cfg.Format))
	img := st.RenderSnapshot(r, snap)
	if err := export.WriteFile(path, img, cfg.Format); err != nil {
		return Result{Frame: i, Path: path, Error: err.Error()}
	}
	return Result{Frame: i, Path: path, Success: true}
}
