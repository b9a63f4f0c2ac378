package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"board_size": 6, "placement": [1,3,5,0,2,4], "format": "png", "frames": 10}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.BoardSize)
	assert.Equal(t, []int{1, 3, 5, 0, 2, 4}, cfg.Placement)
	assert.Equal(t, "png", cfg.Format)
	assert.Equal(t, 10, cfg.Frames)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "board_size: 4\nplacement: [1, 3, 0, 2]\nwidth: 320\ndamping_factor: 0.2\ndisable_damping: true\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.BoardSize)
	assert.Equal(t, []int{1, 3, 0, 2}, cfg.Placement)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 0.2, cfg.DampingFactor)
	assert.True(t, cfg.DisableDamping)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "config: read")

	_, err = Load(writeFile(t, "bad.json", "{"))
	assert.ErrorContains(t, err, "config: parse")

	_, err = Load(writeFile(t, "bad.yml", "width: [1"))
	assert.ErrorContains(t, err, "config: parse")
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	assert.Equal(t, 8, cfg.BoardSize)
	assert.Equal(t, []int{0, 4, 7, 5, 2, 6, 1, 3}, cfg.Placement)
	assert.Equal(t, 960, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, 1, cfg.Supersample)
	assert.Equal(t, 75.0, cfg.FOV)
	assert.Equal(t, 1024, cfg.ShadowMap)
	assert.Equal(t, 0.05, cfg.DampingFactor)
	assert.Equal(t, "renders", cfg.OutputDir)
	assert.Equal(t, "webp", cfg.Format)
	assert.Equal(t, 120, cfg.Frames)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Config{BoardSize: 6, Width: 100, Format: "png"}
	cfg.Resolve(Flags{BoardSize: 4, Placement: []int{1, 3, 0, 2}, Width: 640, Format: "tga", Workers: 3})

	assert.Equal(t, 4, cfg.BoardSize)
	assert.Equal(t, []int{1, 3, 0, 2}, cfg.Placement)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, "tga", cfg.Format)
	assert.Equal(t, 3, cfg.Workers)
}

func TestResolveBoardFromPlacement(t *testing.T) {
	cfg := Config{Placement: []int{1, 3, 0, 2}}
	cfg.Resolve(Flags{})
	assert.Equal(t, 4, cfg.BoardSize)

	// non-default board sizes get no sample placement
	cfg = Config{BoardSize: 5}
	cfg.Resolve(Flags{})
	assert.Nil(t, cfg.Placement)

	cfg = Config{DampingFactor: 3}
	cfg.Resolve(Flags{})
	assert.Equal(t, 0.05, cfg.DampingFactor)
}

func TestParsePlacement(t *testing.T) {
	p, err := ParsePlacement("0,4,7,5,2,6,1,3")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 7, 5, 2, 6, 1, 3}, p)

	p, err = ParsePlacement("[1, 3, 0, 2]")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 0, 2}, p)

	p, err = ParsePlacement("-1 9 9")
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 9, 9}, p, "values are not range-checked")

	p, err = ParsePlacement("")
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.Empty(t, p)

	_, err = ParsePlacement("1,x,3")
	assert.ErrorContains(t, err, "config: placement")
}
