package screens

import (
	"testing"

	"github.com/schoolopoly/client/internal/engine/model"
	"github.com/schoolopoly/client/internal/engine/ui"
	"github.com/schoolopoly/client/pkg/math"
)

func instanceAt(x float32) model.Instance {
	return model.Instance{Position: math.Vec3{X: x}, Rotation: math.QuatIdentity()}
}

// stub records the lifecycle calls a stack makes.
type stub struct {
	container *ui.Container
	always    bool

	inits, actives, deactives, ticks int
}

func newStub(always bool) *stub {
	return &stub{container: ui.NewContainer(), always: always}
}

func (s *stub) Init(*Context) error        { s.inits++; return nil }
func (s *stub) OnActive(*Context)          { s.actives++ }
func (s *stub) OnDeactive(*Context)        { s.deactives++ }
func (s *stub) Tick(*Context, float64)     { s.ticks++ }
func (s *stub) Container() *ui.Container   { return s.container }
func (s *stub) TicksAlways() bool          { return s.always }

func TestStackPushActivates(t *testing.T) {
	st := NewStack()
	ctx := &Context{Screens: st}

	a := newStub(false)
	b := newStub(false)

	if err := st.Push(ctx, a); err != nil {
		t.Fatal(err)
	}
	if a.inits != 1 || a.actives != 1 {
		t.Errorf("pushed screen should init and activate once, got %d/%d", a.inits, a.actives)
	}

	if err := st.Push(ctx, b); err != nil {
		t.Fatal(err)
	}
	if a.deactives != 1 {
		t.Error("covered screen should deactivate")
	}
	if b.actives != 1 {
		t.Error("new top should activate")
	}
	if st.Top() != b {
		t.Error("top should be the last pushed screen")
	}
}

func TestStackPushInitsOnce(t *testing.T) {
	st := NewStack()
	ctx := &Context{Screens: st}

	a := newStub(false)
	st.Push(ctx, a)
	st.Pop(ctx)
	st.Push(ctx, a)

	if a.inits != 1 {
		t.Errorf("init should run once per screen, got %d", a.inits)
	}
	if a.actives != 2 {
		t.Errorf("re-pushed screen should activate again, got %d", a.actives)
	}
}

func TestStackPopReactivatesBelow(t *testing.T) {
	st := NewStack()
	ctx := &Context{Screens: st}

	a := newStub(false)
	b := newStub(false)
	st.Push(ctx, a)
	st.Push(ctx, b)

	st.Pop(ctx)
	if b.deactives != 1 {
		t.Error("popped screen should deactivate")
	}
	if a.actives != 2 {
		t.Errorf("uncovered screen should reactivate, got %d activations", a.actives)
	}
	if st.Top() != a {
		t.Error("top should fall back to the lower screen")
	}

	// Popping an empty stack is a no-op
	st.Pop(ctx)
	st.Pop(ctx)
}

func TestStackTickOnlyTop(t *testing.T) {
	st := NewStack()
	ctx := &Context{Screens: st}

	lower := newStub(false)
	alwaysLower := newStub(true)
	top := newStub(false)
	st.Push(ctx, lower)
	st.Push(ctx, alwaysLower)
	st.Push(ctx, top)

	st.Tick(ctx, 0.016)

	if top.ticks != 1 {
		t.Errorf("top should tick, got %d", top.ticks)
	}
	if alwaysLower.ticks != 1 {
		t.Errorf("tick-always screen should tick under the top, got %d", alwaysLower.ticks)
	}
	if lower.ticks != 0 {
		t.Errorf("plain lower screen must not tick, got %d", lower.ticks)
	}
}

func TestStackReplaceClearsStack(t *testing.T) {
	st := NewStack()
	ctx := &Context{Screens: st}

	a := newStub(false)
	b := newStub(false)
	next := newStub(false)
	st.Push(ctx, a)
	st.Push(ctx, b)

	if err := st.Replace(ctx, next); err != nil {
		t.Fatal(err)
	}
	if st.Top() != next {
		t.Error("replacement should be the only screen")
	}
	if a.deactives != 2 || b.deactives != 1 {
		t.Errorf("old screens should deactivate, got %d/%d", a.deactives, b.deactives)
	}

	st.Pop(ctx)
	if st.Top() != nil {
		t.Error("stack should be empty after popping the replacement")
	}
}

func TestStackRoutesInputToTop(t *testing.T) {
	st := NewStack()
	ctx := &Context{Screens: st}

	bottomBtnFired := 0
	bottom := newStub(false)
	bottom.container.Add(ui.NewButton(math.Vec2{}, math.Vec2{X: 1, Y: 1},
		ui.Solid(ui.ColorWhite), "", 0, func(int) { bottomBtnFired++ }))

	topBtnFired := 0
	top := newStub(false)
	top.container.Add(ui.NewButton(math.Vec2{}, math.Vec2{X: 1, Y: 1},
		ui.Solid(ui.ColorWhite), "", 0, func(int) { topBtnFired++ }))

	st.Push(ctx, bottom)
	st.Push(ctx, top)

	pos := math.Vec2{X: 0.5, Y: 0.5}
	st.OnMouseClick(ui.PressDown, pos)
	st.OnMouseClick(ui.Release, pos)

	if topBtnFired != 1 {
		t.Errorf("top screen should receive the click, fired %d", topBtnFired)
	}
	if bottomBtnFired != 0 {
		t.Errorf("covered screen must not receive the click, fired %d", bottomBtnFired)
	}
}

func TestContextInstances(t *testing.T) {
	ctx := &Context{}
	ctx.AddInstance(instanceAt(1))
	ctx.AddInstance(instanceAt(2))
	if len(ctx.Instances) != 2 {
		t.Fatalf("expected 2 instances, got %d", len(ctx.Instances))
	}
	ctx.ResetInstances()
	if len(ctx.Instances) != 0 {
		t.Error("reset should empty the frame list")
	}
}
