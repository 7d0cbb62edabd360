package text

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/schoolopoly/client/internal/engine/shader"
	"github.com/schoolopoly/client/pkg/math"
)

const (
	atlasCols   = 16
	atlasRows   = 6
	atlasWidth  = atlasCols * GlyphSize
	atlasHeight = atlasRows * GlyphSize
)

const vertexShaderSrc = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
layout (location = 2) in vec4 aColor;

out vec2 vUV;
out vec4 vColor;

void main() {
	gl_Position = vec4(aPos, 0.0, 1.0);
	vUV = aUV;
	vColor = aColor;
}
`

const fragmentShaderSrc = `
#version 410 core

in vec2 vUV;
in vec4 vColor;

uniform sampler2D uFont;

out vec4 FragColor;

void main() {
	float coverage = texture(uFont, vUV).r;
	if (coverage < 0.5) {
		discard;
	}
	FragColor = vColor;
}
`

// Section is one block of text queued for the current frame.
// Pos is the top-left corner of the block in normalized [0,1] coordinates
// with the origin at the bottom-left of the screen. Scale multiplies the
// 8-pixel glyph size. MaxWidth, when positive, wraps lines at that
// normalized width.
type Section struct {
	Pos      math.Vec2
	Text     string
	Scale    float32
	Color    [4]float32
	MaxWidth float32
}

type glyphVertex struct {
	pos   [2]float32
	uv    [2]float32
	color [4]float32
}

// Renderer owns the font texture and the overlay draw state.
type Renderer struct {
	program uint32
	uFont   int32
	vao     uint32
	vbo     uint32
	texture uint32

	queue []Section
	verts []glyphVertex
}

// NewRenderer builds the glyph texture and compiles the text program.
// Must be called on the GL thread.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{}

	var err error
	r.program, err = shader.CompileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("compiling text program: %w", err)
	}
	r.uFont = shader.GetUniform(r.program, "uFont")

	r.texture = buildFontTexture()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(unsafe.Sizeof(glyphVertex{}))
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(4*4)))
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return r, nil
}

// buildFontTexture rasterizes the embedded font into a single-channel
// glyph grid texture.
func buildFontTexture() uint32 {
	pixels := make([]byte, atlasWidth*atlasHeight)
	for ch := byte(glyphFirst); ch <= glyphLast; ch++ {
		cell := int(ch - glyphFirst)
		baseX := (cell % atlasCols) * GlyphSize
		baseY := (cell / atlasCols) * GlyphSize
		for y := 0; y < GlyphSize; y++ {
			for x := 0; x < GlyphSize; x++ {
				if GlyphPixel(ch, x, y) {
					pixels[(baseY+y)*atlasWidth+baseX+x] = 0xFF
				}
			}
		}
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, atlasWidth, atlasHeight, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// Queue adds a section to the current frame. Safe to call any time
// between flushes.
func (r *Renderer) Queue(s Section) {
	r.queue = append(r.queue, s)
}

// Reset drops the queued sections without drawing them. Called when a
// frame is abandoned before its flush, so stale sections cannot pile up
// on top of the next frame's queue.
func (r *Renderer) Reset() {
	r.queue = r.queue[:0]
}

// Flush draws every queued section on top of the current render target
// and resets the queue. Depth testing must already be off.
func (r *Renderer) Flush(width, height uint32) {
	if len(r.queue) == 0 || width == 0 || height == 0 {
		return
	}

	r.verts = r.verts[:0]
	for i := range r.queue {
		r.buildSection(&r.queue[i], float32(width), float32(height))
	}
	r.queue = r.queue[:0]

	if len(r.verts) == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.Uniform1i(r.uFont, 0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.verts)*int(unsafe.Sizeof(glyphVertex{})),
		gl.Ptr(r.verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.verts)))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (r *Renderer) buildSection(s *Section, screenW, screenH float32) {
	scale := s.Scale
	if scale <= 0 {
		scale = 1
	}
	glyphW := GlyphSize * scale
	glyphH := GlyphSize * scale

	penX := s.Pos.X * screenW
	penY := s.Pos.Y * screenH // top edge of the first line
	startX := penX

	maxX := screenW
	if s.MaxWidth > 0 {
		maxX = penX + s.MaxWidth*screenW
	}

	for i := 0; i < len(s.Text); i++ {
		ch := s.Text[i]
		if ch == '\n' {
			penX = startX
			penY -= glyphH
			continue
		}
		if penX+glyphW > maxX && penX > startX {
			penX = startX
			penY -= glyphH
		}
		if ch != ' ' {
			r.buildGlyph(ch, penX, penY, glyphW, glyphH, screenW, screenH, s.Color)
		}
		penX += glyphW
	}
}

func (r *Renderer) buildGlyph(ch byte, x, yTop, w, h, screenW, screenH float32, color [4]float32) {
	if ch < glyphFirst || ch > glyphLast {
		return
	}
	cell := int(ch - glyphFirst)
	u0 := float32(cell%atlasCols) * GlyphSize / atlasWidth
	v0 := float32(cell/atlasCols) * GlyphSize / atlasHeight
	u1 := u0 + float32(GlyphSize)/atlasWidth
	v1 := v0 + float32(GlyphSize)/atlasHeight

	// Pixel rect to clip space; glyph rows grow downward so the top of
	// the quad maps to v0
	x0 := 2*x/screenW - 1
	x1 := 2*(x+w)/screenW - 1
	y1 := 2*yTop/screenH - 1
	y0 := 2*(yTop-h)/screenH - 1

	r.verts = append(r.verts,
		glyphVertex{pos: [2]float32{x0, y0}, uv: [2]float32{u0, v1}, color: color},
		glyphVertex{pos: [2]float32{x1, y0}, uv: [2]float32{u1, v1}, color: color},
		glyphVertex{pos: [2]float32{x1, y1}, uv: [2]float32{u1, v0}, color: color},
		glyphVertex{pos: [2]float32{x0, y0}, uv: [2]float32{u0, v1}, color: color},
		glyphVertex{pos: [2]float32{x0, y1}, uv: [2]float32{u0, v0}, color: color},
		glyphVertex{pos: [2]float32{x1, y1}, uv: [2]float32{u1, v0}, color: color},
	)
}

// Destroy releases GL resources.
func (r *Renderer) Destroy() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.texture != 0 {
		gl.DeleteTextures(1, &r.texture)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
