package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"queenboard/internal/board"
	"queenboard/internal/config"
	"queenboard/internal/logger"
	"queenboard/internal/stage"
	"queenboard/internal/viewer"
)

func main() {
	configFile := flag.String("config", "", "Path to config file (.json, .yaml)")
	n := flag.Int("n", 0, "Board size (default: placement length, or 8)")
	placement := flag.String("placement", "", "Queen columns per row, e.g. 0,4,7,5,2,6,1,3")
	width := flag.Int("width", 0, "Window width (default: 960)")
	height := flag.Int("height", 0, "Window height (default: 720)")
	stdin := flag.Bool("stdin", false, "Read further placement vectors from stdin, one per line")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	flags := config.Flags{BoardSize: *n, Width: *width, Height: *height, LogLevel: *logLevel}
	if *placement != "" {
		p, err := config.ParsePlacement(*placement)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		flags.Placement = p
	}
	cfg.Resolve(flags)

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	st := stage.New(stage.OptionsFromConfig(cfg, log))
	st.Place(board.Placement(cfg.Placement))

	var feed chan board.Placement
	if *stdin {
		feed = make(chan board.Placement, 16)
		go readPlacements(os.Stdin, feed, log)
	}

	title := fmt.Sprintf("%d-Queens", cfg.BoardSize)
	if err := viewer.Run(st, feed, viewer.Options{Title: title, Width: cfg.Width, Height: cfg.Height, Logger: log}); err != nil {
		log.Error("viewer stopped", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

// readPlacements sends one vector per non-empty line and closes out at EOF.
func readPlacements(r io.Reader, out chan<- board.Placement, log *zap.Logger) {
	defer close(out)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		p, err := config.ParsePlacement(line)
		if err != nil {
			log.Warn("skipping placement", zap.Error(err))
			continue
		}
		out <- p
	}
	if err := sc.Err(); err != nil {
		log.Warn("stdin read failed", zap.Error(err))
	}
}
