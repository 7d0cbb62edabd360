// Package game wires the window, the renderer, the screens and the
// session together and runs the main loop.
package game

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/schoolopoly/client/internal/assets"
	"github.com/schoolopoly/client/internal/config"
	"github.com/schoolopoly/client/internal/engine/camera"
	"github.com/schoolopoly/client/internal/engine/input"
	"github.com/schoolopoly/client/internal/engine/render"
	"github.com/schoolopoly/client/internal/engine/text"
	"github.com/schoolopoly/client/internal/engine/ui"
	"github.com/schoolopoly/client/internal/engine/window"
	"github.com/schoolopoly/client/internal/game/screens"
	"github.com/schoolopoly/client/internal/game/session"
	"github.com/schoolopoly/client/internal/logger"
	"github.com/schoolopoly/client/pkg/math"
)

// Game owns every subsystem of the client.
type Game struct {
	cfg      *config.Config
	window   *window.Window
	renderer *render.Renderer
	input    *input.Input

	cam        *camera.Camera
	projection camera.Projection
	controller *camera.Controller

	sess    *session.Session
	assets  *assets.Manager
	screens *screens.Stack
	ctx     *screens.Context

	running  bool
	mousePos math.Vec2
	looking  bool
	fps      int
}

// New builds the game. The window and GL context come up first, then
// the renderer, then the game data.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing client",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	g := &Game{cfg: cfg}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "Schoolopoly",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	// The renderer needs the GL context the window created.
	g.renderer, err = render.New(cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	g.sess, err = session.New(cfg.Data)
	if err != nil {
		g.renderer.Close()
		g.window.Close()
		return nil, fmt.Errorf("loading game data: %w", err)
	}

	g.input = input.New()

	g.cam = camera.New(math.Vec3{Y: 8, Z: 12})
	g.cam.Pitch = -0.55
	g.projection = camera.Projection{
		Aspect: float32(cfg.Graphics.Width) / float32(cfg.Graphics.Height),
		FovY:   cfg.Camera.FovYDeg * float32(gomath.Pi) / 180,
		Near:   cfg.Camera.Near,
		Far:    cfg.Camera.Far,
	}
	g.controller = camera.NewController(
		cfg.Camera.MoveSpeed,
		cfg.Camera.LookSensitivity,
		cfg.Camera.ZoomSensitivity,
	)

	g.assets = assets.NewManager(cfg.Data.AssetsDir)
	g.screens = screens.NewStack()
	g.ctx = &screens.Context{
		Renderer: g.renderer,
		Session:  g.sess,
		Screens:  g.screens,
		Assets:   g.assets,
	}
	if err := g.screens.Push(g.ctx, screens.NewLogin()); err != nil {
		g.Close()
		return nil, fmt.Errorf("pushing login screen: %w", err)
	}

	logger.Info("client initialized")
	return g, nil
}

// Run drives the main loop until quit.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		g.controller.UpdateCamera(g.cam, float32(dt))

		g.ctx.ResetInstances()
		g.screens.Tick(g.ctx, dt)

		models := g.screens.BuildModels()
		g.screens.QueueText(g.renderer.Text())
		if g.cfg.Game.ShowFPS {
			g.queueFPS()
		}

		frame := render.Frame{
			UI:        models,
			Instances: g.ctx.Instances,
			ViewProj:  camera.ViewProjection(g.cam, g.projection),
		}
		if err := g.renderer.Render(frame); err != nil {
			// A failed present drops the frame; the next one
			// starts from a clean target.
			logger.Warn("dropping frame", zap.Error(err))
			continue
		}
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.fps = frameCount
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents feeds the frame's input events to the ui and the
// camera controller.
func (g *Game) handleEvents() {
	width, height := dimensions()

	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			render.SetDimensions(uint32(event.Width), uint32(event.Height))
			if event.Height > 0 {
				g.projection.Aspect = float32(event.Width) / float32(event.Height)
			}
			width, height = event.Width, event.Height

		case input.EventKeyDown:
			if event.Key == sdl.SCANCODE_ESCAPE {
				g.running = false
				return
			}
			g.applyKey(event.Key, 1)

		case input.EventKeyUp:
			g.applyKey(event.Key, 0)

		case input.EventMouseMove:
			g.mousePos = event.NormalizedPos(width, height)
			if g.looking {
				g.controller.AddMouseDelta(float32(event.RelX), float32(event.RelY))
			} else {
				g.screens.OnMouseHover(g.mousePos)
			}

		case input.EventMouseDown:
			switch event.Button {
			case sdl.BUTTON_LEFT:
				g.screens.OnMouseClick(ui.PressDown, event.NormalizedPos(width, height))
			case sdl.BUTTON_RIGHT:
				g.looking = true
			}

		case input.EventMouseUp:
			switch event.Button {
			case sdl.BUTTON_LEFT:
				g.screens.OnMouseClick(ui.Release, event.NormalizedPos(width, height))
			case sdl.BUTTON_RIGHT:
				g.looking = false
			}

		case input.EventMouseWheel:
			g.screens.OnMouseScroll(event.Scroll)
			g.controller.AddScroll(event.Scroll)
		}
	}
}

// applyKey maps the movement keys onto the camera controller. amount
// is 1 on press and 0 on release, so holding a key keeps the axis
// engaged.
func (g *Game) applyKey(key sdl.Scancode, amount float32) {
	switch key {
	case sdl.SCANCODE_W:
		g.controller.SetForward(amount)
	case sdl.SCANCODE_S:
		g.controller.SetBackward(amount)
	case sdl.SCANCODE_A:
		g.controller.SetLeft(amount)
	case sdl.SCANCODE_D:
		g.controller.SetRight(amount)
	case sdl.SCANCODE_SPACE:
		g.controller.SetUp(amount)
	case sdl.SCANCODE_LSHIFT:
		g.controller.SetDown(amount)
	}
}

func (g *Game) queueFPS() {
	g.renderer.Text().Queue(text.Section{
		Pos:   math.Vec2{X: 0.01, Y: 0.99},
		Text:  fmt.Sprintf("FPS %d", g.fps),
		Scale: 2,
		Color: ui.ColorText.ToArray(),
	})
}

func dimensions() (int, int) {
	w, h := render.Dimensions()
	return int(w), int(h)
}

// Close releases every subsystem in reverse creation order.
func (g *Game) Close() {
	logger.Info("closing client")
	if g.assets != nil {
		g.assets.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
