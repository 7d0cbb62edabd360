package screens

import (
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/schoolopoly/client/internal/engine/model"
	"github.com/schoolopoly/client/internal/engine/ui"
	"github.com/schoolopoly/client/internal/logger"
	"github.com/schoolopoly/client/pkg/math"
)

const piecesPerRow = 10

// InGame is the playing screen: the board plane, the instanced piece
// grid and a status line for the player whose turn it is.
type InGame struct {
	container *ui.Container
	status    *ui.TextBox

	boardID int
	pieceID int
}

// NewInGame creates the in-game screen.
func NewInGame() *InGame {
	return &InGame{container: ui.NewContainer()}
}

func (g *InGame) Init(ctx *Context) error {
	boardData, err := g.boardModel(ctx)
	if err != nil {
		return err
	}
	boardModel, err := model.Upload(boardData)
	if err != nil {
		return err
	}
	g.boardID = ctx.Renderer.Registry().Add(boardModel)

	piece, err := model.Upload(model.Cube(0.5, [4]float32{0.85, 0.2, 0.2, 1}))
	if err != nil {
		return err
	}
	g.pieceID = ctx.Renderer.Registry().Add(piece)

	g.status = ui.NewTextBox(
		math.Vec2{X: 0.02, Y: 0.88},
		math.Vec2{X: 0.5, Y: 0.1},
		nil,
		"",
		ui.ColorText,
		2,
	)
	g.container.Add(g.status)
	return nil
}

// boardModel loads the board mesh from the assets, falling back to a
// flat plane when no asset is shipped.
func (g *InGame) boardModel(ctx *Context) (model.ModelData, error) {
	path := ctx.Assets.Path("board.gltf")
	data, err := model.LoadGLTF(path)
	if err != nil {
		logger.Warn("board model missing, using flat plane",
			zap.String("path", path),
			zap.Error(err),
		)
		return model.Rectangle(float32(piecesPerRow), float32(piecesPerRow),
			[4]float32{0.32, 0.5, 0.32, 1}), nil
	}
	return data, nil
}

func (g *InGame) OnActive(*Context)   {}
func (g *InGame) OnDeactive(*Context) {}

func (g *InGame) Tick(ctx *Context, _ float64) {
	ctx.AddInstance(model.Instance{
		ModelID:  g.boardID,
		Position: math.Vec3{Y: -0.5},
		Rotation: math.QuatIdentity(),
	})

	// Pieces sit on a grid centered on the origin, each tilted 45
	// degrees around its own offset direction.
	displacement := math.Vec3{
		X: piecesPerRow * 0.5,
		Z: piecesPerRow * 0.5,
	}
	for z := 0; z < piecesPerRow; z++ {
		for x := 0; x < piecesPerRow; x++ {
			pos := math.Vec3{X: float32(x), Z: float32(z)}.Sub(displacement)

			var rot math.Quat
			if pos.Length() == 0 {
				rot = math.QuatIdentity()
			} else {
				rot = math.QuatFromAxisAngle(pos.Normalize(), float32(gomath.Pi/4))
			}
			ctx.AddInstance(model.Instance{
				ModelID:  g.pieceID,
				Position: pos,
				Rotation: rot,
			})
		}
	}

	if p := ctx.Session.CurrentPlayer(); p != nil {
		g.status.SetText(fmt.Sprintf("%s $%d", p.Name, p.Currency))
	}
}

func (g *InGame) Container() *ui.Container { return g.container }

func (g *InGame) TicksAlways() bool { return false }
