// Package render owns frame submission: it partitions 2-D models into
// per-pipeline vertex buckets, draws the instanced 3-D scene, and composes
// everything on one offscreen frame target before presenting.
package render

// Vertex meta bit flags, forwarded to the fragment shader untouched.
const (
	// GrayscaleConvFlag converts the sampled texel to grayscale.
	// Set per vertex, constant across a quad in practice.
	GrayscaleConvFlag uint32 = 1 << 0
)

// ColorVertex is a flat-colored 2-D vertex in clip space.
type ColorVertex struct {
	Pos   [2]float32
	Color [4]float32
}

// TexVertex is a textured 2-D vertex in clip space. UV is interpreted per
// source: absolute pixel coordinates for atlas sources (normalized in the
// shader against the atlas size), relative [0,1] for plain textures.
type TexVertex struct {
	Pos        [2]float32
	UV         [2]float32
	Alpha      float32
	ColorScale float32
	Meta       uint32
}

// SourceKind selects the pipeline a model's vertices are drawn with.
type SourceKind int

const (
	// SourcePerVertex colors each vertex directly.
	SourcePerVertex SourceKind = iota
	// SourceAtlas samples the shared texture atlas with absolute UVs.
	SourceAtlas
	// SourceTexture samples a standalone texture with relative UVs.
	SourceTexture
)

// Source identifies where a model's fragments get their color.
type Source struct {
	Kind    SourceKind
	Atlas   int    // atlas id, SourceAtlas only
	Texture uint32 // GL texture name, SourceTexture only
}

// Model is one component's worth of 2-D vertices sharing a single source.
// Exactly one of Colors/Texs is populated, matching Source.Kind.
type Model struct {
	Source Source
	Colors []ColorVertex
	Texs   []TexVertex
}

// Empty reports whether the model has no vertices at all.
func (m *Model) Empty() bool {
	return len(m.Colors) == 0 && len(m.Texs) == 0
}

// AtlasBucket is the merged vertex run for one atlas id.
type AtlasBucket struct {
	Atlas int
	Verts []TexVertex
}

// TexBucket is the vertex run for one standalone texture.
type TexBucket struct {
	Texture uint32
	Verts   []TexVertex
}

// Buckets is the result of partitioning a frame's 2-D models: one merged
// color run, one merged run per atlas id, one run per standalone texture.
type Buckets struct {
	Color []ColorVertex
	Atlas []AtlasBucket
	Tex   []TexBucket
}

// Partition groups models by pipeline, preserving submission order within
// each bucket. Models sharing an atlas id are merged into a single bucket
// so the atlas texture is bound once; standalone textures each keep their
// own bucket and bind.
func Partition(models []Model) Buckets {
	var b Buckets
	atlasIndex := make(map[int]int)

	for i := range models {
		m := &models[i]
		if m.Empty() {
			continue
		}
		switch m.Source.Kind {
		case SourcePerVertex:
			b.Color = append(b.Color, m.Colors...)
		case SourceAtlas:
			ai, ok := atlasIndex[m.Source.Atlas]
			if !ok {
				ai = len(b.Atlas)
				atlasIndex[m.Source.Atlas] = ai
				b.Atlas = append(b.Atlas, AtlasBucket{Atlas: m.Source.Atlas})
			}
			b.Atlas[ai].Verts = append(b.Atlas[ai].Verts, m.Texs...)
		case SourceTexture:
			n := len(b.Tex)
			if n > 0 && b.Tex[n-1].Texture == m.Source.Texture {
				// Adjacent models on the same texture share a bucket
				b.Tex[n-1].Verts = append(b.Tex[n-1].Verts, m.Texs...)
			} else {
				b.Tex = append(b.Tex, TexBucket{Texture: m.Source.Texture, Verts: m.Texs})
			}
		}
	}

	return b
}
