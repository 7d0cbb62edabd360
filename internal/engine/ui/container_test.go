package ui

import (
	"testing"

	"github.com/schoolopoly/client/internal/engine/render"
	"github.com/schoolopoly/client/pkg/math"
)

// probe records the events a container delivers to it.
type probe struct {
	pos, dims math.Vec2
	hovered   bool

	clicks        []ClickKind
	clicksOutside []ClickKind
	hovers        []HoverMode
	scrolls       []float32
	builds        int
}

func (p *probe) BuildModel() render.Model {
	p.builds++
	return render.Model{}
}

func (p *probe) Pos() math.Vec2  { return p.pos }
func (p *probe) Dims() math.Vec2 { return p.dims }

func (p *probe) OnClick(kind ClickKind, _ math.Vec2) { p.clicks = append(p.clicks, kind) }
func (p *probe) OnClickOutside(kind ClickKind)       { p.clicksOutside = append(p.clicksOutside, kind) }
func (p *probe) OnHover(mode HoverMode, _ math.Vec2) {
	p.hovers = append(p.hovers, mode)
	p.hovered = mode == HoverEnter
}
func (p *probe) IsHovered() bool          { return p.hovered }
func (p *probe) OnScroll(amount float32)  { p.scrolls = append(p.scrolls, amount) }

func at(x, y, w, h float32) *probe {
	return &probe{pos: math.Vec2{X: x, Y: y}, dims: math.Vec2{X: w, Y: h}}
}

func TestContainerFirstHitWins(t *testing.T) {
	// A and B overlap; A was inserted first
	a := at(0.1, 0.1, 0.4, 0.4)
	b := at(0.2, 0.2, 0.4, 0.4)
	cOut := at(0.7, 0.7, 0.2, 0.2)

	c := NewContainer()
	c.Add(a)
	c.Add(b)
	c.Add(cOut)

	c.OnMouseClick(PressDown, math.Vec2{X: 0.3, Y: 0.3})

	if len(a.clicks) != 1 || a.clicks[0] != PressDown {
		t.Errorf("first inserted component should win the hit, got %v", a.clicks)
	}
	if len(b.clicks) != 0 || len(b.clicksOutside) != 1 {
		t.Errorf("overlapped component should get the outside event, got %v / %v", b.clicks, b.clicksOutside)
	}
	if len(cOut.clicksOutside) != 1 {
		t.Errorf("miss should get the outside event, got %v", cOut.clicksOutside)
	}
}

func TestContainerMissSendsOutsideToAll(t *testing.T) {
	a := at(0, 0, 0.1, 0.1)
	b := at(0.5, 0.5, 0.1, 0.1)

	c := NewContainer()
	c.Add(a)
	c.Add(b)

	c.OnMouseClick(Release, math.Vec2{X: 0.9, Y: 0.9})

	if len(a.clicks) != 0 || len(b.clicks) != 0 {
		t.Error("nobody should get OnClick on a miss")
	}
	if len(a.clicksOutside) != 1 || len(b.clicksOutside) != 1 {
		t.Error("everyone should get OnClickOutside on a miss")
	}
}

func TestContainerHoverExitOnlyIfEntered(t *testing.T) {
	a := at(0, 0, 0.2, 0.2)
	b := at(0.5, 0, 0.2, 0.2)

	c := NewContainer()
	c.Add(a)
	c.Add(b)

	// Pointer over a: a enters, b gets nothing (never entered)
	c.OnMouseHover(math.Vec2{X: 0.1, Y: 0.1})
	if len(a.hovers) != 1 || a.hovers[0] != HoverEnter {
		t.Errorf("a should enter, got %v", a.hovers)
	}
	if len(b.hovers) != 0 {
		t.Errorf("b never entered and must not exit, got %v", b.hovers)
	}

	// Pointer moves to b: a exits once, b enters
	c.OnMouseHover(math.Vec2{X: 0.55, Y: 0.1})
	if len(a.hovers) != 2 || a.hovers[1] != HoverExit {
		t.Errorf("a should exit once, got %v", a.hovers)
	}
	if len(b.hovers) != 1 || b.hovers[0] != HoverEnter {
		t.Errorf("b should enter, got %v", b.hovers)
	}

	// Pointer to empty space: only b exits
	c.OnMouseHover(math.Vec2{X: 0.9, Y: 0.9})
	if len(a.hovers) != 2 {
		t.Errorf("a already exited, got %v", a.hovers)
	}
	if len(b.hovers) != 2 || b.hovers[1] != HoverExit {
		t.Errorf("b should exit, got %v", b.hovers)
	}
}

func TestContainerScrollGoesToHovered(t *testing.T) {
	a := at(0, 0, 0.2, 0.2)
	b := at(0.5, 0, 0.2, 0.2)

	c := NewContainer()
	c.Add(a)
	c.Add(b)

	c.OnMouseHover(math.Vec2{X: 0.55, Y: 0.1})
	c.OnMouseScroll(2)

	if len(a.scrolls) != 0 {
		t.Errorf("unhovered component should not scroll, got %v", a.scrolls)
	}
	if len(b.scrolls) != 1 || b.scrolls[0] != 2 {
		t.Errorf("hovered component should scroll, got %v", b.scrolls)
	}
}

func TestContainerBuildOrder(t *testing.T) {
	a := at(0, 0, 0.1, 0.1)
	b := at(0.2, 0, 0.1, 0.1)

	c := NewContainer()
	c.Add(a)
	c.Add(b)

	models := c.BuildModels()
	if len(models) != 2 {
		t.Fatalf("expected 2 models, got %d", len(models))
	}
	if a.builds != 1 || b.builds != 1 {
		t.Errorf("each component builds once, got %d and %d", a.builds, b.builds)
	}
}
