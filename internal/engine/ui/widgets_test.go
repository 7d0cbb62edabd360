package ui

import (
	"testing"

	"github.com/schoolopoly/client/pkg/math"
)

func TestButtonFiresOnReleaseInBounds(t *testing.T) {
	fired := 0
	var got string
	b := NewButton(math.Vec2{}, math.Vec2{X: 0.2, Y: 0.1}, Solid(ColorButtonBg), "", "payload", func(s string) {
		fired++
		got = s
	})

	c := NewContainer()
	c.Add(b)

	inside := math.Vec2{X: 0.1, Y: 0.05}
	c.OnMouseClick(PressDown, inside)
	if fired != 0 {
		t.Fatal("press alone must not fire")
	}
	c.OnMouseClick(Release, inside)
	if fired != 1 {
		t.Fatal("release in bounds after press should fire")
	}
	if got != "payload" {
		t.Errorf("callback should receive the payload, got %q", got)
	}
}

func TestButtonReleaseOutsideDoesNotFire(t *testing.T) {
	fired := 0
	b := NewButton(math.Vec2{}, math.Vec2{X: 0.2, Y: 0.1}, Solid(ColorButtonBg), "", 0, func(int) {
		fired++
	})

	c := NewContainer()
	c.Add(b)

	c.OnMouseClick(PressDown, math.Vec2{X: 0.1, Y: 0.05})
	c.OnMouseClick(Release, math.Vec2{X: 0.9, Y: 0.9})
	if fired != 0 {
		t.Error("release outside must not fire")
	}
}

func TestButtonFiresWhenPressBeganOutside(t *testing.T) {
	fired := 0
	b := NewButton(math.Vec2{}, math.Vec2{X: 0.2, Y: 0.1}, Solid(ColorButtonBg), "", 0, func(int) {
		fired++
	})

	c := NewContainer()
	c.Add(b)

	// Drag that starts off the button and ends on it still counts
	c.OnMouseClick(PressDown, math.Vec2{X: 0.9, Y: 0.9})
	c.OnMouseClick(Release, math.Vec2{X: 0.1, Y: 0.05})
	if fired != 1 {
		t.Errorf("release in bounds should fire regardless of press origin, fired %d times", fired)
	}
}

func TestButtonDimCompounds(t *testing.T) {
	b := NewButton(math.Vec2{}, math.Vec2{X: 1, Y: 1}, Solid(ColorWhite), "", 0, nil)

	m := b.BuildModel()
	if m.Colors[0].Color[0] != 1 {
		t.Fatalf("idle button should be undimmed, got %f", m.Colors[0].Color[0])
	}

	b.OnHover(HoverEnter, math.Vec2{})
	m = b.BuildModel()
	if !close32(m.Colors[0].Color[0], 0.8) {
		t.Errorf("hovered button should dim to 0.8, got %f", m.Colors[0].Color[0])
	}

	b.OnClick(PressDown, math.Vec2{})
	m = b.BuildModel()
	if !close32(m.Colors[0].Color[0], 0.64) {
		t.Errorf("hovered+pressed should compound to 0.64, got %f", m.Colors[0].Color[0])
	}

	b.OnHover(HoverExit, math.Vec2{})
	m = b.BuildModel()
	if !close32(m.Colors[0].Color[0], 0.8) {
		t.Errorf("pressed-only should dim to 0.8, got %f", m.Colors[0].Color[0])
	}
}

func TestButtonGrayscaleLatch(t *testing.T) {
	b := NewButton(math.Vec2{}, math.Vec2{X: 1, Y: 1}, Texture{ID: 1}, "", 0, nil)

	m := b.BuildModel()
	if m.Texs[0].Meta != 0 {
		t.Fatal("fresh button should not be grayscale")
	}

	b.SetGrayscale()
	m = b.BuildModel()
	if m.Texs[0].Meta == 0 {
		t.Fatal("latched button should render grayscale")
	}

	// Latch is one-way: further interaction never clears it
	b.SetGrayscale()
	b.OnHover(HoverEnter, math.Vec2{})
	b.OnHover(HoverExit, math.Vec2{})
	b.OnClick(PressDown, math.Vec2{})
	b.OnClick(Release, math.Vec2{})
	m = b.BuildModel()
	if m.Texs[0].Meta == 0 {
		t.Error("grayscale latch must survive interaction")
	}
	if !b.IsGrayscale() {
		t.Error("IsGrayscale should report the latch")
	}
}

func TestCacheRebuildsOnlyWhenDirty(t *testing.T) {
	p := at(0, 0, 0.5, 0.5)
	box := NewColorBox(p.pos, p.dims, Solid(ColorRed))

	first := box.BuildModel()
	second := box.BuildModel()

	if len(first.Colors) != 6 || len(second.Colors) != 6 {
		t.Fatal("both calls should return the built model")
	}

	// The cache returns the identical slice until invalidated
	if &first.Colors[0] != &second.Colors[0] {
		t.Error("second build without changes should return the cached model")
	}
}

func TestButtonHoverInvalidatesOnce(t *testing.T) {
	b := NewButton(math.Vec2{}, math.Vec2{X: 1, Y: 1}, Solid(ColorWhite), "", 0, nil)
	b.BuildModel()

	b.OnHover(HoverEnter, math.Vec2{})
	m1 := b.BuildModel()
	// Hovering again with no state change must not rebuild
	b.OnHover(HoverEnter, math.Vec2{})
	m2 := b.BuildModel()
	if &m1.Colors[0] != &m2.Colors[0] {
		t.Error("repeated identical hover should not invalidate the cache")
	}
}

func TestInputBoxFocus(t *testing.T) {
	ib := NewInputBox(math.Vec2{}, math.Vec2{X: 0.3, Y: 0.1}, Solid(ColorInputBg), "name")
	other := at(0.5, 0.5, 0.2, 0.2)

	c := NewContainer()
	c.Add(ib)
	c.Add(other)

	if ib.IsActive() {
		t.Fatal("fresh input box should be inactive")
	}

	inside := math.Vec2{X: 0.1, Y: 0.05}
	c.OnMouseClick(PressDown, inside)
	c.OnMouseClick(Release, inside)
	if !ib.IsActive() {
		t.Fatal("click should activate")
	}

	// Click elsewhere clears focus
	c.OnMouseClick(PressDown, math.Vec2{X: 0.6, Y: 0.6})
	c.OnMouseClick(Release, math.Vec2{X: 0.6, Y: 0.6})
	if ib.IsActive() {
		t.Error("click outside should deactivate")
	}

	// Clicking the active box again toggles it off
	c.OnMouseClick(PressDown, inside)
	c.OnMouseClick(Release, inside)
	c.OnMouseClick(PressDown, inside)
	c.OnMouseClick(Release, inside)
	if ib.IsActive() {
		t.Error("second click should toggle focus off")
	}
}

func close32(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 0.0001
}
