// Package viewer shows a stage in a desktop window and feeds it pointer input.
package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"queenboard/internal/board"
	"queenboard/internal/orbit"
	"queenboard/internal/stage"
)

// Options configures the window.
type Options struct {
	Title         string
	Width, Height int
	Logger        *zap.Logger
}

// Run opens a resizable window and blocks until it closes. Vectors received on
// placements are applied between frames; a nil or closed channel is fine.
func Run(st *stage.Stage, placements <-chan board.Placement, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	g := &game{stage: st, placements: placements, log: log}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	log.Info("window open", zap.String("title", opts.Title), zap.Int("width", opts.Width), zap.Int("height", opts.Height))
	return ebiten.RunGame(g)
}

type game struct {
	stage      *stage.Stage
	placements <-chan board.Placement
	poller     orbit.Poller
	frame      *ebiten.Image
	width      int
	height     int
	log        *zap.Logger
}

func (g *game) Update() error {
	g.drainPlacements()

	x, y := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()
	for _, ev := range g.poller.Events(orbit.PointerState{
		X:       float64(x),
		Y:       float64(y),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		WheelY:  wheelY,
	}) {
		g.stage.Handle(ev)
	}

	g.stage.Tick()
	return nil
}

// drainPlacements applies every vector queued since the last frame; only the last one stays visible.
func (g *game) drainPlacements() {
	for g.placements != nil {
		select {
		case p, ok := <-g.placements:
			if !ok {
				g.log.Debug("placement feed closed")
				g.placements = nil
				return
			}
			g.stage.Place(p)
		default:
			return
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	img := g.stage.Draw()
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(w, h)
	}
	// frames are opaque, so straight and premultiplied alpha agree
	g.frame.WritePixels(img.Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.stage.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
