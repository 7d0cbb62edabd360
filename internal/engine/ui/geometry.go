package ui

import (
	"github.com/schoolopoly/client/internal/engine/atlas"
	"github.com/schoolopoly/client/internal/engine/render"
	"github.com/schoolopoly/client/pkg/math"
)

// Quad corner order: BL, BR, TR, BL, TL, TR. Geometry, vertex colors and
// UVs all follow this order.
var cornerOffsets = [6][2]float32{
	{0, 0}, {1, 0}, {1, 1},
	{0, 0}, {0, 1}, {1, 1},
}

// Coloring selects how a quad's fragments are colored.
type Coloring interface {
	isColoring()
}

// VertexColors colors each of the six vertices directly, in corner order.
type VertexColors [6]Color

func (VertexColors) isColoring() {}

// Solid returns a VertexColors filling the whole quad with one color.
func Solid(c Color) VertexColors {
	return VertexColors{c, c, c, c, c, c}
}

// AtlasRegion textures the quad from a region of a shared atlas.
type AtlasRegion struct {
	Atlas  *atlas.Atlas
	Region atlas.Region
}

func (AtlasRegion) isColoring() {}

// Texture textures the quad from a standalone GL texture.
type Texture struct {
	ID uint32
}

func (Texture) isColoring() {}

// QuadOpts carries the per-vertex modulation state a component derives
// from its interaction state.
type QuadOpts struct {
	Alpha      float32 // 0 defaults to 1
	ColorScale float32 // 0 defaults to 1
	Grayscale  bool
}

func (o QuadOpts) alpha() float32 {
	if o.Alpha == 0 {
		return 1
	}
	return o.Alpha
}

func (o QuadOpts) colorScale() float32 {
	if o.ColorScale == 0 {
		return 1
	}
	return o.ColorScale
}

// BuildQuad builds the six vertices for a rect given in normalized [0,1]
// screen coordinates (origin bottom-left) and returns them as one model.
// Positions are emitted in clip space (2n - 1).
func BuildQuad(pos, dims math.Vec2, coloring Coloring, opts QuadOpts) render.Model {
	var clip [6][2]float32
	for i, off := range cornerOffsets {
		nx := pos.X + off[0]*dims.X
		ny := pos.Y + off[1]*dims.Y
		clip[i] = [2]float32{2*nx - 1, 2*ny - 1}
	}

	switch c := coloring.(type) {
	case VertexColors:
		m := render.Model{Source: render.Source{Kind: render.SourcePerVertex}}
		scale := opts.colorScale()
		alpha := opts.alpha()
		for i := range clip {
			col := c[i].Scale(scale)
			col.A *= alpha
			m.Colors = append(m.Colors, render.ColorVertex{Pos: clip[i], Color: col.ToArray()})
		}
		return m

	case AtlasRegion:
		m := render.Model{Source: render.Source{Kind: render.SourceAtlas, Atlas: c.Atlas.ID()}}
		for i, off := range cornerOffsets {
			// Atlas rows run top-down, so the quad's bottom edge samples
			// the region's last row
			u := float32(c.Region.X) + off[0]*float32(c.Region.W)
			v := float32(c.Region.Y) + (1-off[1])*float32(c.Region.H)
			m.Texs = append(m.Texs, texVertex(clip[i], [2]float32{u, v}, opts))
		}
		return m

	case Texture:
		m := render.Model{Source: render.Source{Kind: render.SourceTexture, Texture: c.ID}}
		for i, off := range cornerOffsets {
			m.Texs = append(m.Texs, texVertex(clip[i], [2]float32{off[0], 1 - off[1]}, opts))
		}
		return m
	}

	return render.Model{}
}

func texVertex(pos, uv [2]float32, opts QuadOpts) render.TexVertex {
	var meta uint32
	if opts.Grayscale {
		meta |= render.GrayscaleConvFlag
	}
	return render.TexVertex{
		Pos:        pos,
		UV:         uv,
		Alpha:      opts.alpha(),
		ColorScale: opts.colorScale(),
		Meta:       meta,
	}
}
