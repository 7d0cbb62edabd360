package render

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/schoolopoly/client/internal/engine/atlas"
	"github.com/schoolopoly/client/internal/engine/model"
	"github.com/schoolopoly/client/internal/engine/shader"
	"github.com/schoolopoly/client/internal/engine/text"
	"github.com/schoolopoly/client/internal/logger"
	"github.com/schoolopoly/client/pkg/math"
)

// ClearColor is the fixed frame clear color, a light gray.
var ClearColor = [4]float32{0.384, 0.396, 0.412, 1.0}

// Frame is everything submitted for one frame.
type Frame struct {
	UI        []Model
	Instances []model.Instance
	ViewProj  math.Mat4
}

// Renderer composes a frame on an offscreen target: 2-D buckets first
// without depth, then the depth-tested instanced 3-D pass, then the text
// overlay, then a blit to the default framebuffer.
type Renderer struct {
	colorProg uint32
	atlasProg uint32
	texProg   uint32
	modelProg uint32

	uAtlasSize  int32
	uAtlasTex   int32
	uTexTex     int32
	uViewProj   int32
	uModelTex   int32
	uUseTexture int32
	uBaseColor  int32

	colorVAO uint32
	colorVBO uint32
	texVAO   uint32
	texVBO   uint32

	target atomic.Pointer[frameTarget]

	registry *model.Registry
	text     *text.Renderer
}

// New initializes OpenGL state and compiles all pipelines.
// Must be called after the GL context is current.
func New(width, height int) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	r := &Renderer{
		registry: model.NewRegistry(),
	}

	var err error
	if r.colorProg, err = shader.CompileProgram(colorVertexSrc, colorFragmentSrc); err != nil {
		return nil, fmt.Errorf("color program: %w", err)
	}
	if r.atlasProg, err = shader.CompileProgram(atlasVertexSrc, texFragmentSrc); err != nil {
		return nil, fmt.Errorf("atlas program: %w", err)
	}
	if r.texProg, err = shader.CompileProgram(texVertexSrc, texFragmentSrc); err != nil {
		return nil, fmt.Errorf("tex program: %w", err)
	}
	if r.modelProg, err = shader.CompileProgram(modelVertexSrc, modelFragmentSrc); err != nil {
		return nil, fmt.Errorf("model program: %w", err)
	}

	r.uAtlasSize = shader.GetUniform(r.atlasProg, "uAtlasSize")
	r.uAtlasTex = shader.GetUniform(r.atlasProg, "uTex")
	r.uTexTex = shader.GetUniform(r.texProg, "uTex")
	r.uViewProj = shader.GetUniform(r.modelProg, "uViewProj")
	r.uModelTex = shader.GetUniform(r.modelProg, "uTex")
	r.uUseTexture = shader.GetUniform(r.modelProg, "uUseTexture")
	r.uBaseColor = shader.GetUniform(r.modelProg, "uBaseColor")

	r.createStreams()

	if r.text, err = text.NewRenderer(); err != nil {
		return nil, fmt.Errorf("text renderer: %w", err)
	}

	SetDimensions(uint32(width), uint32(height))
	target, err := newFrameTarget(int32(width), int32(height))
	if err != nil {
		return nil, err
	}
	r.target.Store(target)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return r, nil
}

// createStreams sets up the per-frame vertex buffers for the 2-D passes.
func (r *Renderer) createStreams() {
	// Color stream: pos (2) + color (4)
	gl.GenVertexArrays(1, &r.colorVAO)
	gl.BindVertexArray(r.colorVAO)
	gl.GenBuffers(1, &r.colorVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.colorVBO)

	colorStride := int32(unsafe.Sizeof(ColorVertex{}))
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, colorStride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, colorStride, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(1)

	// Textured stream, shared by the atlas and tex pipelines:
	// pos (2) + uv (2) + alpha + colorScale + meta (uint)
	gl.GenVertexArrays(1, &r.texVAO)
	gl.BindVertexArray(r.texVAO)
	gl.GenBuffers(1, &r.texVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.texVBO)

	texStride := int32(unsafe.Sizeof(TexVertex{}))
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, texStride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, texStride, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 1, gl.FLOAT, false, texStride, unsafe.Pointer(uintptr(4*4)))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, texStride, unsafe.Pointer(uintptr(5*4)))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribIPointer(4, 1, gl.UNSIGNED_INT, texStride, unsafe.Pointer(uintptr(6*4)))
	gl.EnableVertexAttribArray(4)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Registry exposes the model registry for screens to register models.
func (r *Renderer) Registry() *model.Registry {
	return r.registry
}

// Text exposes the text overlay queue.
func (r *Renderer) Text() *text.Renderer {
	return r.text
}

// ensureTarget replaces the frame target when the framebuffer size
// changed since the last frame. The swap is a single pointer store; the
// old target is destroyed after the new one is in place.
func (r *Renderer) ensureTarget() (*frameTarget, error) {
	w, h := Dimensions()
	cur := r.target.Load()
	if cur != nil && cur.width == int32(w) && cur.height == int32(h) {
		return cur, nil
	}

	next, err := newFrameTarget(int32(w), int32(h))
	if err != nil {
		return nil, fmt.Errorf("recreating frame target %dx%d: %w", w, h, err)
	}
	r.target.Store(next)
	if cur != nil {
		cur.destroy()
	}
	logger.Debug("frame target recreated", zap.Uint32("width", w), zap.Uint32("height", h))
	return next, nil
}

// Render composes and presents one frame. Failures are returned so the
// caller can log them and drop the frame.
func (r *Renderer) Render(frame Frame) error {
	target, err := r.ensureTarget()
	if err != nil {
		// The queued text belongs to the abandoned frame
		r.text.Reset()
		return err
	}

	target.bind()
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	buckets := Partition(frame.UI)

	gl.Disable(gl.DEPTH_TEST)
	r.drawColorBucket(buckets.Color)
	r.drawAtlasBuckets(buckets.Atlas)
	r.drawTexBuckets(buckets.Tex)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	r.drawInstances(frame.Instances, frame.ViewProj)
	gl.Disable(gl.DEPTH_TEST)

	w, h := Dimensions()
	r.text.Flush(w, h)

	target.blitToScreen()
	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		return fmt.Errorf("presenting frame: GL error 0x%x", glErr)
	}
	return nil
}

func (r *Renderer) drawColorBucket(verts []ColorVertex) {
	if len(verts) == 0 {
		return
	}
	gl.UseProgram(r.colorProg)
	gl.BindVertexArray(r.colorVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.colorVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*int(unsafe.Sizeof(ColorVertex{})),
		gl.Ptr(verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)))
	gl.BindVertexArray(0)
}

func (r *Renderer) drawAtlasBuckets(bs []AtlasBucket) {
	if len(bs) == 0 {
		return
	}
	gl.UseProgram(r.atlasProg)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.uAtlasTex, 0)
	gl.BindVertexArray(r.texVAO)

	for i := range bs {
		b := &bs[i]
		a := atlas.ByID(b.Atlas)
		if a == nil {
			logger.Warn("skipping bucket for unknown atlas", zap.Int("atlas", b.Atlas))
			continue
		}
		a.Update()
		aw, ah := a.Size()
		gl.BindTexture(gl.TEXTURE_2D, a.Texture())
		gl.Uniform2f(r.uAtlasSize, float32(aw), float32(ah))
		r.streamTexVerts(b.Verts)
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (r *Renderer) drawTexBuckets(bs []TexBucket) {
	if len(bs) == 0 {
		return
	}
	gl.UseProgram(r.texProg)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.uTexTex, 0)
	gl.BindVertexArray(r.texVAO)

	for i := range bs {
		gl.BindTexture(gl.TEXTURE_2D, bs[i].Texture)
		r.streamTexVerts(bs[i].Verts)
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (r *Renderer) streamTexVerts(verts []TexVertex) {
	if len(verts) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.texVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*int(unsafe.Sizeof(TexVertex{})),
		gl.Ptr(verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)))
}

// drawInstances runs the instanced 3-D pass: camera uniform once, then
// per model one instance upload and one indexed instanced draw per mesh.
func (r *Renderer) drawInstances(instances []model.Instance, viewProj math.Mat4) {
	groups := model.GroupInstances(instances)
	if len(groups) == 0 {
		return
	}

	gl.UseProgram(r.modelProg)
	gl.UniformMatrix4fv(r.uViewProj, 1, false, viewProj.Ptr())
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.uModelTex, 0)

	for _, g := range groups {
		m := r.registry.Get(g.ModelID)
		if m == nil {
			logger.Warn("skipping instances for unknown model", zap.Int("model", g.ModelID))
			continue
		}
		transforms := model.FlattenTransforms(g.Transforms)

		for i := range m.Meshes {
			mesh := &m.Meshes[i]
			mat := m.Materials[mesh.Material]

			if mat.Texture != 0 {
				gl.BindTexture(gl.TEXTURE_2D, mat.Texture)
				gl.Uniform1i(r.uUseTexture, 1)
			} else {
				gl.Uniform1i(r.uUseTexture, 0)
			}
			gl.Uniform4f(r.uBaseColor, mat.BaseColor[0], mat.BaseColor[1], mat.BaseColor[2], mat.BaseColor[3])

			mesh.UploadInstances(transforms)
			gl.BindVertexArray(mesh.VAO)
			gl.DrawElementsInstanced(gl.TRIANGLES, mesh.IndexCount, gl.UNSIGNED_INT,
				nil, int32(len(g.Transforms)))
		}
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Close releases renderer-owned GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")

	if t := r.target.Load(); t != nil {
		t.destroy()
	}
	if r.text != nil {
		r.text.Destroy()
	}

	if r.colorVAO != 0 {
		gl.DeleteVertexArrays(1, &r.colorVAO)
	}
	if r.colorVBO != 0 {
		gl.DeleteBuffers(1, &r.colorVBO)
	}
	if r.texVAO != 0 {
		gl.DeleteVertexArrays(1, &r.texVAO)
	}
	if r.texVBO != 0 {
		gl.DeleteBuffers(1, &r.texVBO)
	}
	for _, p := range []uint32{r.colorProg, r.atlasProg, r.texProg, r.modelProg} {
		if p != 0 {
			gl.DeleteProgram(p)
		}
	}
}
