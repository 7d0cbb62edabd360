// Package screens implements the screen stack. A screen owns a ui
// container and contributes 3-D instances per frame; the stack routes
// input to the topmost screen and composes models bottom-up.
package screens

import (
	"sync"

	"go.uber.org/zap"

	"github.com/schoolopoly/client/internal/assets"
	"github.com/schoolopoly/client/internal/engine/model"
	"github.com/schoolopoly/client/internal/engine/render"
	"github.com/schoolopoly/client/internal/engine/text"
	"github.com/schoolopoly/client/internal/engine/ui"
	"github.com/schoolopoly/client/internal/game/session"
	"github.com/schoolopoly/client/internal/logger"
	"github.com/schoolopoly/client/pkg/math"
)

// Context is what the stack hands to every screen callback. Instances
// collects the 3-D draws of the current frame; the game loop resets it
// before ticking.
type Context struct {
	Renderer *render.Renderer
	Session  *session.Session
	Screens  *Stack
	Assets   *assets.Manager

	Instances []model.Instance
}

// AddInstance queues a 3-D instance for this frame.
func (c *Context) AddInstance(inst model.Instance) {
	c.Instances = append(c.Instances, inst)
}

// ResetInstances clears the per-frame instance list.
func (c *Context) ResetInstances() {
	c.Instances = c.Instances[:0]
}

// Screen is one layer of the stack.
type Screen interface {
	// Init runs once, before the screen first becomes active. GL
	// resources (textures, models) are created here.
	Init(ctx *Context) error

	// OnActive runs every time the screen becomes the top of the
	// stack, OnDeactive when it stops being the top.
	OnActive(ctx *Context)
	OnDeactive(ctx *Context)

	// Tick advances the screen. Only the top screen ticks, plus any
	// lower screen whose TicksAlways reports true.
	Tick(ctx *Context, dt float64)

	// Container returns the screen's ui components.
	Container() *ui.Container

	TicksAlways() bool
}

// Stack is the ordered set of live screens.
type Stack struct {
	mu      sync.Mutex
	screens []Screen
	inited  map[Screen]bool
}

// NewStack creates an empty screen stack.
func NewStack() *Stack {
	return &Stack{inited: make(map[Screen]bool)}
}

// Push makes s the new top screen. The previous top is deactivated
// but stays on the stack.
func (st *Stack) Push(ctx *Context, s Screen) error {
	st.mu.Lock()
	if !st.inited[s] {
		if err := s.Init(ctx); err != nil {
			st.mu.Unlock()
			return err
		}
		st.inited[s] = true
	}
	prev := st.top()
	st.screens = append(st.screens, s)
	st.mu.Unlock()

	if prev != nil {
		prev.OnDeactive(ctx)
	}
	s.OnActive(ctx)
	return nil
}

// Pop removes the top screen and reactivates the one below it.
func (st *Stack) Pop(ctx *Context) {
	st.mu.Lock()
	if len(st.screens) == 0 {
		st.mu.Unlock()
		return
	}
	top := st.screens[len(st.screens)-1]
	st.screens = st.screens[:len(st.screens)-1]
	next := st.top()
	st.mu.Unlock()

	top.OnDeactive(ctx)
	if next != nil {
		next.OnActive(ctx)
	}
}

// Replace swaps the whole stack for a single screen.
func (st *Stack) Replace(ctx *Context, s Screen) error {
	st.mu.Lock()
	old := append([]Screen(nil), st.screens...)
	st.screens = st.screens[:0]
	st.mu.Unlock()

	for i := len(old) - 1; i >= 0; i-- {
		old[i].OnDeactive(ctx)
	}
	if err := st.Push(ctx, s); err != nil {
		logger.Error("pushing replacement screen", zap.Error(err))
		return err
	}
	return nil
}

func (st *Stack) top() Screen {
	if len(st.screens) == 0 {
		return nil
	}
	return st.screens[len(st.screens)-1]
}

// Top returns the active screen, or nil for an empty stack.
func (st *Stack) Top() Screen {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.top()
}

func (st *Stack) snapshot() []Screen {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]Screen(nil), st.screens...)
}

// Tick advances the top screen and every lower screen that ticks
// always.
func (st *Stack) Tick(ctx *Context, dt float64) {
	screens := st.snapshot()
	for i, s := range screens {
		if i == len(screens)-1 || s.TicksAlways() {
			s.Tick(ctx, dt)
		}
	}
}

// BuildModels composes the ui geometry of all screens, bottom first
// so upper screens draw over lower ones.
func (st *Stack) BuildModels() []render.Model {
	var models []render.Model
	for _, s := range st.snapshot() {
		models = append(models, s.Container().BuildModels()...)
	}
	return models
}

// QueueText queues the text of all screens.
func (st *Stack) QueueText(tr *text.Renderer) {
	for _, s := range st.snapshot() {
		s.Container().QueueText(tr)
	}
}

// OnMouseClick routes a click to the top screen.
func (st *Stack) OnMouseClick(kind ui.ClickKind, pos math.Vec2) {
	if top := st.Top(); top != nil {
		top.Container().OnMouseClick(kind, pos)
	}
}

// OnMouseHover routes pointer movement to the top screen.
func (st *Stack) OnMouseHover(pos math.Vec2) {
	if top := st.Top(); top != nil {
		top.Container().OnMouseHover(pos)
	}
}

// OnMouseScroll routes wheel movement to the top screen.
func (st *Stack) OnMouseScroll(amount float32) {
	if top := st.Top(); top != nil {
		top.Container().OnMouseScroll(amount)
	}
}
