// Package stage owns everything one board view needs: the scene, its camera, orbit
// controls, lights, the composer and the renderer. The frame loop passes a *Stage to
// its tick and input handlers instead of reaching for globals.
package stage

import (
	"image"

	"go.uber.org/zap"

	"queenboard/internal/board"
	"queenboard/internal/camera"
	"queenboard/internal/config"
	"queenboard/internal/mathutil"
	"queenboard/internal/orbit"
	"queenboard/internal/raster"
	"queenboard/internal/scene"
)

// KeyLightOffset places the shadow-casting light relative to the camera.
var KeyLightOffset = mathutil.Vec3{8, 5, 8}

// Options configures a Stage.
type Options struct {
	BoardSize     int
	Width, Height int
	Supersample   int
	FOV           float64
	ShadowMapSize int
	DampingFactor float64
	EnableDamping bool
	Logger        *zap.Logger
}

// OptionsFromConfig maps resolved settings to stage options.
func OptionsFromConfig(cfg config.Config, log *zap.Logger) Options {
	return Options{
		BoardSize:     cfg.BoardSize,
		Width:         cfg.Width,
		Height:        cfg.Height,
		Supersample:   cfg.Supersample,
		FOV:           cfg.FOV,
		ShadowMapSize: cfg.ShadowMap,
		DampingFactor: cfg.DampingFactor,
		EnableDamping: !cfg.DisableDamping,
		Logger:        log,
	}
}

// Stage is the owned rendering context of one board view.
// It is not safe for concurrent use; see Snapshot for handing frames to other goroutines.
type Stage struct {
	Scene    *scene.Scene
	Camera   *camera.Perspective
	Controls *orbit.Controller
	Composer *board.Composer
	Renderer *raster.Renderer
	KeyLight *scene.DirectionalLight

	log    *zap.Logger
	frames uint64
}

// New builds the board, lights and camera, and settles the camera with one control update.
func New(opts Options) *Stage {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.FOV <= 0 {
		opts.FOV = camera.DefaultFOV
	}
	if opts.ShadowMapSize <= 0 {
		opts.ShadowMapSize = 1024
	}

	st := &Stage{
		Scene:    scene.New(),
		Renderer: raster.NewRenderer(opts.Width, opts.Height, opts.Supersample),
		log:      log,
	}

	aspect := 1.0
	if opts.Width > 0 && opts.Height > 0 {
		aspect = float64(opts.Width) / float64(opts.Height)
	}
	n := float64(opts.BoardSize)
	st.Camera = camera.NewPerspective(opts.FOV, aspect, camera.DefaultNear, camera.DefaultFar)
	st.Camera.Position = mathutil.Vec3{n / 2, n, n * 1.2}

	st.Controls = orbit.New(st.Camera)
	st.Controls.EnableDamping = opts.EnableDamping
	if opts.DampingFactor > 0 {
		st.Controls.DampingFactor = opts.DampingFactor
	}
	st.Controls.Update()

	st.KeyLight = &scene.DirectionalLight{
		Color:      scene.HexColor(0xFFFFFF),
		Intensity:  1.5,
		CastShadow: true,
		Shadow: scene.Shadow{
			MapSize: opts.ShadowMapSize,
			Camera: scene.ShadowCamera{
				Left: -15, Right: 15, Top: 15, Bottom: -15,
				Near: 0.5, Far: 50,
			},
			// sized for a software map of a few texels per square
			Bias: 0.08,
			Soft: true,
		},
	}
	st.Scene.Lighting = scene.Lighting{
		Ambient: scene.AmbientLight{Color: scene.HexColor(0x404040), Intensity: 0.25},
		Directional: []*scene.DirectionalLight{
			st.KeyLight,
			{
				Color:     scene.HexColor(0x9BB5FF),
				Intensity: 0.15,
				Position:  mathutil.Vec3{-8, 6, -8},
			},
		},
	}
	st.followCamera()

	st.Composer = board.NewComposer(st.Scene, log)
	st.Composer.BuildBoard(opts.BoardSize)

	log.Info("stage ready",
		zap.Int("board", opts.BoardSize),
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
		zap.Bool("damping", opts.EnableDamping))
	return st
}

// followCamera keeps the key light at a fixed offset from the camera, aimed at the board center.
func (s *Stage) followCamera() {
	s.KeyLight.Position = s.Camera.Position.Add(KeyLightOffset)
	s.KeyLight.Target = mathutil.Vec3{}
}

// Tick advances one frame: the light follows the camera, then the controls move it.
func (s *Stage) Tick() {
	s.followCamera()
	s.Controls.Update()
	s.frames++
}

// Frame returns the number of ticks so far.
func (s *Stage) Frame() uint64 {
	return s.frames
}

// Handle forwards an input event to the controls.
func (s *Stage) Handle(ev orbit.Event) {
	s.Controls.Handle(ev)
}

// Place replaces the figurines with p.
func (s *Stage) Place(p board.Placement) {
	s.Composer.PlaceQueens(p)
	s.log.Info("placement applied", zap.Stringer("placement", p), zap.Uint64("frame", s.frames))
}

// Resize updates the projection and the output surface.
func (s *Stage) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Camera.SetAspect(width, height)
	s.Renderer.SetSize(width, height)
	s.log.Debug("resized", zap.Int("width", width), zap.Int("height", height))
}

// Draw renders the current frame.
func (s *Stage) Draw() *image.NRGBA {
	return s.Renderer.Render(s.Scene, s.Camera)
}

// Snapshot freezes the per-frame state (camera and lights).
// Meshes are shared, so the scene must not be edited while a snapshot is being rendered.
type Snapshot struct {
	Frame    uint64
	Camera   *camera.Perspective
	Lighting scene.Lighting
}

// Snapshot captures the current frame state.
func (s *Stage) Snapshot() Snapshot {
	return Snapshot{
		Frame:    s.frames,
		Camera:   s.Camera.Clone(),
		Lighting: s.Scene.Lighting.Clone(),
	}
}

// RenderSnapshot draws snap with r, which must not be the renderer of another goroutine.
func (s *Stage) RenderSnapshot(r *raster.Renderer, snap Snapshot) *image.NRGBA {
	return r.RenderWith(s.Scene, snap.Camera, snap.Lighting)
}
