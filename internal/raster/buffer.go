package raster

import "math"

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // inverse view depth per pixel (larger is closer), cleared to -inf
}

// NewFrameBuffer allocates a zeroed color buffer and -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{}
	fb.Resize(w, h)
	return fb
}

// Resize reallocates when the dimensions change. Contents are undefined afterwards.
func (fb *FrameBuffer) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if fb.Width == w && fb.Height == h && fb.Color != nil {
		return
	}
	n := w * h
	fb.Width = w
	fb.Height = h
	fb.Color = make([]uint8, n*4)
	fb.ZBuf = make([]float64, n)
}

// Clear fills the color buffer with an opaque background and resets depth.
func (fb *FrameBuffer) Clear(bg [3]uint8) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = bg[0]
		fb.Color[i+1] = bg[1]
		fb.Color[i+2] = bg[2]
		fb.Color[i+3] = 255
	}
	for i := range fb.ZBuf {
		fb.ZBuf[i] = math.Inf(-1)
	}
}
