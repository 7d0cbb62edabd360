package ui

import (
	"sync"

	"github.com/schoolopoly/client/internal/engine/render"
	"github.com/schoolopoly/client/internal/engine/text"
	"github.com/schoolopoly/client/pkg/math"
)

// Interaction dims a button by this factor per active state (hovered,
// pressed), compounding when both are active.
const buttonDimFactor = 0.8

// box carries the geometry and hover state every widget shares.
type box struct {
	mu      sync.RWMutex
	pos     math.Vec2
	dims    math.Vec2
	hovered bool
	cache   cache
}

func newBox(pos, dims math.Vec2) box {
	return box{pos: pos, dims: dims, cache: newCache()}
}

func (b *box) Pos() math.Vec2 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.pos
}

func (b *box) Dims() math.Vec2 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dims
}

func (b *box) IsHovered() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.hovered
}

func (b *box) setHovered(h bool) (changed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	changed = b.hovered != h
	b.hovered = h
	return changed
}

// ColorBox is a plain rectangle.
type ColorBox struct {
	box
	coloring Coloring
}

// NewColorBox creates a rectangle with a fixed coloring.
func NewColorBox(pos, dims math.Vec2, coloring Coloring) *ColorBox {
	return &ColorBox{box: newBox(pos, dims), coloring: coloring}
}

func (c *ColorBox) BuildModel() render.Model {
	return c.cache.Model(func() render.Model {
		return BuildQuad(c.Pos(), c.Dims(), c.coloring, QuadOpts{})
	})
}

func (c *ColorBox) OnClick(ClickKind, math.Vec2) {}
func (c *ColorBox) OnClickOutside(ClickKind)     {}
func (c *ColorBox) OnScroll(float32)             {}

func (c *ColorBox) OnHover(mode HoverMode, _ math.Vec2) {
	c.setHovered(mode == HoverEnter)
}

// TextBox is a rectangle with a text overlay. The background model is
// cached like any component; the text section is queued every frame.
type TextBox struct {
	box
	background Coloring
	textMu     sync.RWMutex
	text       string
	textColor  Color
	textScale  float32
}

// NewTextBox creates a text box. background may be nil for text-only.
func NewTextBox(pos, dims math.Vec2, background Coloring, txt string, textColor Color, textScale float32) *TextBox {
	return &TextBox{
		box:        newBox(pos, dims),
		background: background,
		text:       txt,
		textColor:  textColor,
		textScale:  textScale,
	}
}

// SetText replaces the displayed text.
func (t *TextBox) SetText(s string) {
	t.textMu.Lock()
	t.text = s
	t.textMu.Unlock()
}

func (t *TextBox) BuildModel() render.Model {
	return t.cache.Model(func() render.Model {
		if t.background == nil {
			return render.Model{}
		}
		return BuildQuad(t.Pos(), t.Dims(), t.background, QuadOpts{})
	})
}

func (t *TextBox) QueueText(tr *text.Renderer) {
	t.textMu.RLock()
	s, color, scale := t.text, t.textColor, t.textScale
	t.textMu.RUnlock()
	if s == "" {
		return
	}

	pos := t.Pos()
	dims := t.Dims()
	tr.Queue(text.Section{
		Pos:      math.Vec2{X: pos.X, Y: pos.Y + dims.Y},
		Text:     s,
		Scale:    scale,
		Color:    color.ToArray(),
		MaxWidth: dims.X,
	})
}

func (t *TextBox) OnClick(ClickKind, math.Vec2) {}
func (t *TextBox) OnClickOutside(ClickKind)     {}
func (t *TextBox) OnScroll(float32)             {}

func (t *TextBox) OnHover(mode HoverMode, _ math.Vec2) {
	t.setHovered(mode == HoverEnter)
}

// Button fires a callback with its payload when the pointer is released
// on it. Hovering and pressing each dim the button; the grayscale latch
// is one-way and sticks until the screen rebuilds its components.
type Button[T any] struct {
	box
	coloring Coloring
	label    string
	labelCol Color
	scale    float32

	payload  T
	callback func(T)

	stateMu   sync.Mutex
	pressed   bool
	grayscale bool
}

// NewButton creates a button. callback may be nil.
func NewButton[T any](pos, dims math.Vec2, coloring Coloring, label string, payload T, callback func(T)) *Button[T] {
	return &Button[T]{
		box:      newBox(pos, dims),
		coloring: coloring,
		label:    label,
		labelCol: ColorText,
		scale:    2,
		payload:  payload,
		callback: callback,
	}
}

func (b *Button[T]) BuildModel() render.Model {
	return b.cache.Model(func() render.Model {
		b.stateMu.Lock()
		pressed, grayscale := b.pressed, b.grayscale
		b.stateMu.Unlock()

		scale := float32(1)
		if b.IsHovered() {
			scale *= buttonDimFactor
		}
		if pressed {
			scale *= buttonDimFactor
		}
		return BuildQuad(b.Pos(), b.Dims(), b.coloring, QuadOpts{
			ColorScale: scale,
			Grayscale:  grayscale,
		})
	})
}

func (b *Button[T]) OnClick(kind ClickKind, _ math.Vec2) {
	b.stateMu.Lock()
	switch kind {
	case PressDown:
		b.pressed = true
		b.stateMu.Unlock()
	case Release:
		b.pressed = false
		b.stateMu.Unlock()
		// The container only delivers in-bounds releases, and an
		// in-bounds release fires no matter where the press began.
		if b.callback != nil {
			b.callback(b.payload)
		}
	default:
		b.stateMu.Unlock()
	}
	b.cache.Invalidate()
}

func (b *Button[T]) OnClickOutside(kind ClickKind) {
	if kind != Release {
		return
	}
	b.stateMu.Lock()
	was := b.pressed
	b.pressed = false
	b.stateMu.Unlock()
	if was {
		b.cache.Invalidate()
	}
}

func (b *Button[T]) OnHover(mode HoverMode, _ math.Vec2) {
	if b.setHovered(mode == HoverEnter) {
		b.cache.Invalidate()
	}
}

func (b *Button[T]) OnScroll(float32) {}

// SetGrayscale latches the button into grayscale rendering. There is no
// way back; recreate the button to clear it.
func (b *Button[T]) SetGrayscale() {
	b.stateMu.Lock()
	changed := !b.grayscale
	b.grayscale = true
	b.stateMu.Unlock()
	if changed {
		b.cache.Invalidate()
	}
}

// IsGrayscale reports whether the latch has been set.
func (b *Button[T]) IsGrayscale() bool {
	b.stateMu.Lock()
	defer b.stateMu.Unlock()
	return b.grayscale
}

func (b *Button[T]) QueueText(tr *text.Renderer) {
	if b.label == "" {
		return
	}
	pos := b.Pos()
	dims := b.Dims()
	tr.Queue(text.Section{
		Pos:      math.Vec2{X: pos.X, Y: pos.Y + dims.Y},
		Text:     b.label,
		Scale:    b.scale,
		Color:    b.labelCol.ToArray(),
		MaxWidth: dims.X,
	})
}

// InputBox displays text and tracks focus. Clicking it makes it active,
// clicking anywhere else deactivates it; keyboard entry is not wired.
type InputBox struct {
	box
	background Coloring
	textMu     sync.RWMutex
	content    string

	stateMu sync.Mutex
	active  bool
}

// NewInputBox creates an input box with fixed content.
func NewInputBox(pos, dims math.Vec2, background Coloring, content string) *InputBox {
	return &InputBox{
		box:        newBox(pos, dims),
		background: background,
		content:    content,
	}
}

// IsActive reports whether the box has focus.
func (ib *InputBox) IsActive() bool {
	ib.stateMu.Lock()
	defer ib.stateMu.Unlock()
	return ib.active
}

func (ib *InputBox) BuildModel() render.Model {
	return ib.cache.Model(func() render.Model {
		opts := QuadOpts{}
		if ib.IsActive() {
			opts.ColorScale = 1.3
		}
		return BuildQuad(ib.Pos(), ib.Dims(), ib.background, opts)
	})
}

func (ib *InputBox) OnClick(kind ClickKind, _ math.Vec2) {
	if kind != Release {
		return
	}
	ib.stateMu.Lock()
	ib.active = !ib.active
	ib.stateMu.Unlock()
	ib.cache.Invalidate()
}

func (ib *InputBox) OnClickOutside(kind ClickKind) {
	if kind != Release {
		return
	}
	ib.stateMu.Lock()
	was := ib.active
	ib.active = false
	ib.stateMu.Unlock()
	if was {
		ib.cache.Invalidate()
	}
}

func (ib *InputBox) OnHover(mode HoverMode, _ math.Vec2) {
	ib.setHovered(mode == HoverEnter)
}

func (ib *InputBox) OnScroll(float32) {}

func (ib *InputBox) QueueText(tr *text.Renderer) {
	ib.textMu.RLock()
	s := ib.content
	ib.textMu.RUnlock()
	if s == "" {
		return
	}
	pos := ib.Pos()
	dims := ib.Dims()
	tr.Queue(text.Section{
		Pos:      math.Vec2{X: pos.X, Y: pos.Y + dims.Y},
		Text:     s,
		Scale:    2,
		Color:    ColorText.ToArray(),
		MaxWidth: dims.X,
	})
}
