package atlas

import (
	"fmt"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Atlas is one shelf-packed RGBA texture plus its CPU-side pixel copy.
// Alloc may be called from any goroutine; Update and Texture must be
// called on the GL thread.
type Atlas struct {
	id      int
	texture uint32
	width   int32
	height  int32

	mu      sync.Mutex
	pixels  []byte
	packer  *packer
	regions map[string]Region
	dirty   bool
}

var (
	registryMu sync.Mutex
	registry   []*Atlas
)

// New creates an atlas texture of the given size and registers it under a
// process-wide id. Must be called on the GL thread.
func New(width, height int32) (*Atlas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid atlas size %dx%d", width, height)
	}

	a := &Atlas{
		width:   width,
		height:  height,
		pixels:  make([]byte, width*height*4),
		packer:  newPacker(width, height),
		regions: make(map[string]Region),
	}

	gl.GenTextures(1, &a.texture)
	gl.BindTexture(gl.TEXTURE_2D, a.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	registryMu.Lock()
	a.id = len(registry)
	registry = append(registry, a)
	registryMu.Unlock()

	return a, nil
}

// ByID returns a registered atlas, or nil for unknown ids.
func ByID(id int) *Atlas {
	registryMu.Lock()
	defer registryMu.Unlock()
	if id < 0 || id >= len(registry) {
		return nil
	}
	return registry[id]
}

// ID returns the atlas's registry id, referenced by vertex sources.
func (a *Atlas) ID() int {
	return a.id
}

// Texture returns the GL texture name.
func (a *Atlas) Texture() uint32 {
	return a.texture
}

// Size returns the atlas dimensions in pixels.
func (a *Atlas) Size() (width, height int32) {
	return a.width, a.height
}

// Alloc places an RGBA image under a key and returns its region. The key
// is stable: allocating the same key again returns the existing region
// without consuming more space.
func (a *Atlas) Alloc(key string, w, h int32, pixels []byte) (Region, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if r, ok := a.regions[key]; ok {
		return r, nil
	}
	if int32(len(pixels)) != w*h*4 {
		return Region{}, fmt.Errorf("pixel buffer for %q: got %d bytes, want %d", key, len(pixels), w*h*4)
	}

	r, err := a.packer.alloc(w, h)
	if err != nil {
		return Region{}, fmt.Errorf("allocating %q: %w", key, err)
	}

	for row := int32(0); row < h; row++ {
		dst := ((r.Y+row)*a.width + r.X) * 4
		src := row * w * 4
		copy(a.pixels[dst:dst+w*4], pixels[src:src+w*4])
	}

	a.regions[key] = r
	a.dirty = true
	return r, nil
}

// Region returns the region for a key, if allocated.
func (a *Atlas) Region(key string) (Region, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	r, ok := a.regions[key]
	return r, ok
}

// Update uploads pending CPU-side changes to the GPU texture. Called once
// per frame, before any draw that samples the atlas.
func (a *Atlas) Update() {
	a.mu.Lock()
	if !a.dirty {
		a.mu.Unlock()
		return
	}
	a.dirty = false
	pixels := a.pixels
	a.mu.Unlock()

	gl.BindTexture(gl.TEXTURE_2D, a.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, a.width, a.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}
