package screens

import (
	"go.uber.org/zap"

	"github.com/schoolopoly/client/internal/engine/texture"
	"github.com/schoolopoly/client/internal/engine/ui"
	"github.com/schoolopoly/client/internal/game/board"
	"github.com/schoolopoly/client/internal/game/session"
	"github.com/schoolopoly/client/internal/logger"
	"github.com/schoolopoly/client/pkg/math"
)

// Login is the character select screen. Each character gets a portrait
// button; picking one grays the portrait out and joins a player. The
// start button switches to the in-game screen once somebody joined.
type Login struct {
	container *ui.Container
}

// NewLogin creates the login screen.
func NewLogin() *Login {
	return &Login{container: ui.NewContainer()}
}

func (l *Login) Init(ctx *Context) error {
	chars := ctx.Session.Characters()
	entryOffset := 1.0 / float32(len(chars)+3)

	for i, ch := range chars {
		coloring := l.portraitColoring(ctx, ch)
		pos := math.Vec2{
			X: float32(i+1) * entryOffset,
			Y: 1 - entryOffset*1.5,
		}
		var btn *ui.Button[board.Character]
		btn = ui.NewButton(pos, math.Vec2{X: 0.1, Y: 0.2}, coloring, ch.Name, ch, func(c board.Character) {
			if btn.IsGrayscale() {
				return
			}
			btn.SetGrayscale()
			p := ctx.Session.AddPlayer(c.Name, c.ID)
			logger.Info("player joined",
				zap.String("name", p.Name),
				zap.Int("character", c.ID),
			)
		})
		l.container.Add(btn)
	}

	start := ui.NewButton(
		math.Vec2{X: 0.4, Y: 0.1},
		math.Vec2{X: 0.2, Y: 0.1},
		ui.Solid(ui.ColorButtonBg),
		"Start",
		struct{}{},
		func(struct{}) {
			if len(ctx.Session.Players()) == 0 {
				logger.Warn("cannot start without players")
				return
			}
			ctx.Session.SetPhase(session.PhaseInGame)
			if err := ctx.Screens.Replace(ctx, NewInGame()); err != nil {
				logger.Error("switching to game screen", zap.Error(err))
			}
		},
	)
	l.container.Add(start)
	return nil
}

// portraitColoring loads the character's portrait texture, falling
// back to a plain box when the image is missing.
func (l *Login) portraitColoring(ctx *Context, ch board.Character) ui.Coloring {
	if ch.Portrait == "" {
		return ui.Solid(ui.ColorButtonBg)
	}
	img, err := ctx.Assets.Image(ch.Portrait)
	if err != nil {
		logger.Warn("loading portrait",
			zap.String("character", ch.Name),
			zap.Error(err),
		)
		return ui.Solid(ui.ColorButtonBg)
	}
	return ui.Texture{ID: texture.Upload(img)}
}

func (l *Login) OnActive(*Context)   {}
func (l *Login) OnDeactive(*Context) {}

func (l *Login) Tick(*Context, float64) {}

func (l *Login) Container() *ui.Container { return l.container }

func (l *Login) TicksAlways() bool { return true }
