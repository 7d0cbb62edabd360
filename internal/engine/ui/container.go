package ui

import (
	"sync"

	"github.com/schoolopoly/client/internal/engine/render"
	"github.com/schoolopoly/client/internal/engine/text"
	"github.com/schoolopoly/client/pkg/math"
)

// Container owns an ordered set of components and routes pointer events.
// Insertion order is draw order and hit-test order.
type Container struct {
	mu    sync.Mutex
	items []Component
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{}
}

// Add appends a component. Components cannot be removed; screens build a
// fresh container instead.
func (c *Container) Add(comp Component) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, comp)
}

// BuildModels collects every component's model in insertion order.
func (c *Container) BuildModels() []render.Model {
	c.mu.Lock()
	items := c.items
	c.mu.Unlock()

	models := make([]render.Model, 0, len(items))
	for _, comp := range items {
		models = append(models, comp.BuildModel())
	}
	return models
}

// QueueText lets text-bearing components queue their sections.
func (c *Container) QueueText(tr *text.Renderer) {
	c.mu.Lock()
	items := c.items
	c.mu.Unlock()

	for _, comp := range items {
		if tp, ok := comp.(TextProvider); ok {
			tp.QueueText(tr)
		}
	}
}

// OnMouseClick routes a click: the first component in insertion order
// whose bounds contain pos gets OnClick, every other component gets
// OnClickOutside.
func (c *Container) OnMouseClick(kind ClickKind, pos math.Vec2) {
	c.mu.Lock()
	items := c.items
	c.mu.Unlock()

	hit := -1
	for i, comp := range items {
		if hit < 0 && contains(comp.Pos(), comp.Dims(), pos) {
			hit = i
		}
	}
	for i, comp := range items {
		if i == hit {
			comp.OnClick(kind, pos)
		} else {
			comp.OnClickOutside(kind)
		}
	}
}

// OnMouseHover routes pointer movement: the first component containing
// pos gets HoverEnter, and every previously-hovered other component gets
// HoverExit exactly once.
func (c *Container) OnMouseHover(pos math.Vec2) {
	c.mu.Lock()
	items := c.items
	c.mu.Unlock()

	hit := -1
	for i, comp := range items {
		if hit < 0 && contains(comp.Pos(), comp.Dims(), pos) {
			hit = i
		}
	}
	for i, comp := range items {
		if i == hit {
			comp.OnHover(HoverEnter, pos)
		} else if comp.IsHovered() {
			comp.OnHover(HoverExit, pos)
		}
	}
}

// OnMouseScroll routes wheel input to the currently hovered component.
func (c *Container) OnMouseScroll(amount float32) {
	c.mu.Lock()
	items := c.items
	c.mu.Unlock()

	for _, comp := range items {
		if comp.IsHovered() {
			comp.OnScroll(amount)
			return
		}
	}
}
