package ui

import (
	"sync"
	"sync/atomic"

	"github.com/schoolopoly/client/internal/engine/render"
	"github.com/schoolopoly/client/internal/engine/text"
	"github.com/schoolopoly/client/pkg/math"
)

// ClickKind distinguishes the two halves of a mouse click.
type ClickKind int

const (
	PressDown ClickKind = iota
	Release
)

// HoverMode distinguishes pointer entry from exit.
type HoverMode int

const (
	HoverEnter HoverMode = iota
	HoverExit
)

// Component is a node of the 2-D scene. Positions and dimensions are
// normalized [0,1] screen coordinates with the origin at the bottom-left.
type Component interface {
	// BuildModel returns the component's vertices, rebuilding only when
	// state changed since the last build.
	BuildModel() render.Model

	Pos() math.Vec2
	Dims() math.Vec2

	// OnClick is delivered when the click lands inside the bounds.
	OnClick(kind ClickKind, pos math.Vec2)
	// OnClickOutside is delivered to every other component.
	OnClickOutside(kind ClickKind)
	// OnHover is delivered on pointer entry and exit.
	OnHover(mode HoverMode, pos math.Vec2)
	// IsHovered reports whether the pointer is currently inside.
	IsHovered() bool
	// OnScroll is delivered to the hovered component.
	OnScroll(amount float32)
}

// TextProvider is implemented by components that draw text on top of
// their geometry. Sections are queued every frame, independent of the
// model cache.
type TextProvider interface {
	QueueText(tr *text.Renderer)
}

// cache holds a component's built model behind a dirty flag. Mutators
// call Invalidate before returning; Model rebuilds at most once per
// invalidation, no matter how many frames read it.
type cache struct {
	dirty atomic.Bool
	mu    sync.Mutex
	model render.Model
}

func newCache() cache {
	var c cache
	c.dirty.Store(true)
	return c
}

// Invalidate marks the cached model stale.
func (c *cache) Invalidate() {
	c.dirty.Store(true)
}

// Model returns the cached model, calling build only when invalidated.
func (c *cache) Model(build func() render.Model) render.Model {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dirty.Swap(false) {
		c.model = build()
	}
	return c.model
}

// contains reports whether p lies inside the rect [pos, pos+dims).
func contains(pos, dims, p math.Vec2) bool {
	return p.X >= pos.X && p.X < pos.X+dims.X &&
		p.Y >= pos.Y && p.Y < pos.Y+dims.Y
}
