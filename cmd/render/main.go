package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"queenboard/internal/batch"
	"queenboard/internal/board"
	"queenboard/internal/config"
	"queenboard/internal/export"
	"queenboard/internal/logger"
	"queenboard/internal/stage"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json, .yaml)")
	n := flag.Int("n", 0, "Board size (default: placement length, or 8)")
	placement := flag.String("placement", "", "Queen columns per row, e.g. 0,4,7,5,2,6,1,3")
	width := flag.Int("width", 0, "Frame width (default: 960)")
	height := flag.Int("height", 0, "Frame height (default: 720)")
	frames := flag.Int("frames", 0, "Number of frames (default: 120)")
	format := flag.String("format", "", "Output format: webp, png, tga (default: webp)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	flags := config.Flags{
		BoardSize: *n,
		Width:     *width,
		Height:    *height,
		OutputDir: *outputDir,
		Format:    *format,
		Frames:    *frames,
		Workers:   *workers,
		LogLevel:  *logLevel,
	}
	if *placement != "" {
		p, err := config.ParsePlacement(*placement)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		flags.Placement = p
	}

	// CLI flags override config file
	cfg.Resolve(flags)

	outFormat, err := export.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	st := stage.New(stage.OptionsFromConfig(cfg, log))
	st.Place(board.Placement(cfg.Placement))

	log.Info("rendering orbit sequence",
		zap.Int("frames", cfg.Frames),
		zap.Int("workers", cfg.Workers),
		zap.String("format", string(outFormat)),
		zap.String("output", cfg.OutputDir))

	start := time.Now()

	results, err := batch.Run(st, batch.Turntable(cfg.Frames, cfg.OrbitStep, cfg.ZoomEvery), batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    outFormat,
		Workers:   cfg.Workers,
		Placement: board.Placement(cfg.Placement),
		Logger:    log,
	})
	if err != nil {
		log.Error("batch run failed", zap.Error(err))
	}

	// Count results
	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}

	log.Info("done",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("rendered", len(results)-failed),
		zap.Int("failed", failed),
		zap.String("manifest", filepath.Join(cfg.OutputDir, batch.ManifestName)))

	if err != nil || failed > 0 {
		log.Sync()
		os.Exit(1)
	}
}
