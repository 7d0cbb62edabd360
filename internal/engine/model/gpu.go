package model

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is an uploaded mesh ready for instanced drawing.
type Mesh struct {
	VAO         uint32
	VBO         uint32
	EBO         uint32
	InstanceVBO uint32
	IndexCount  int32
	Material    int

	instanceCap int
}

// Material is an uploaded surface description.
type Material struct {
	Texture   uint32 // 0 when untextured
	BaseColor [4]float32
}

// Model is a fully uploaded model, drawable via the registry.
type Model struct {
	Meshes    []Mesh
	Materials []Material
}

// Upload moves model data to the GPU.
// Must be called on the GL thread with a current context.
func Upload(data ModelData) (*Model, error) {
	m := &Model{}

	for i := range data.Materials {
		mat, err := uploadMaterial(&data.Materials[i])
		if err != nil {
			m.Destroy()
			return nil, fmt.Errorf("material %d: %w", i, err)
		}
		m.Materials = append(m.Materials, mat)
	}

	for i := range data.Meshes {
		mesh, err := uploadMesh(&data.Meshes[i])
		if err != nil {
			m.Destroy()
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		m.Meshes = append(m.Meshes, mesh)
	}

	return m, nil
}

func uploadMesh(data *MeshData) (Mesh, error) {
	vertCount := len(data.Positions) / 3
	if vertCount == 0 {
		return Mesh{}, fmt.Errorf("mesh has no vertices")
	}
	if len(data.Normals) != vertCount*3 || len(data.TexCoords) != vertCount*2 {
		return Mesh{}, fmt.Errorf("attribute count mismatch: %d verts, %d normals, %d uvs",
			vertCount, len(data.Normals)/3, len(data.TexCoords)/2)
	}

	// Interleave: position (3), normal (3), uv (2)
	interleaved := make([]float32, 0, vertCount*8)
	for i := 0; i < vertCount; i++ {
		interleaved = append(interleaved,
			data.Positions[i*3], data.Positions[i*3+1], data.Positions[i*3+2],
			data.Normals[i*3], data.Normals[i*3+1], data.Normals[i*3+2],
			data.TexCoords[i*2], data.TexCoords[i*2+1],
		)
	}

	mesh := Mesh{
		IndexCount: int32(len(data.Indices)),
		Material:   data.Material,
	}

	gl.GenVertexArrays(1, &mesh.VAO)
	gl.BindVertexArray(mesh.VAO)

	gl.GenBuffers(1, &mesh.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(interleaved)*4, gl.Ptr(interleaved), gl.STATIC_DRAW)

	stride := int32(8 * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(6*4)))
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &mesh.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	// Instance transform: one mat4 consumes attribute locations 3..6,
	// advancing once per instance.
	gl.GenBuffers(1, &mesh.InstanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.InstanceVBO)
	matStride := int32(16 * 4)
	for i := uint32(0); i < 4; i++ {
		loc := 3 + i
		gl.VertexAttribPointer(loc, 4, gl.FLOAT, false, matStride, unsafe.Pointer(uintptr(i*4*4)))
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribDivisor(loc, 1)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return mesh, nil
}

func uploadMaterial(data *MaterialData) (Material, error) {
	mat := Material{BaseColor: data.BaseColor}
	if data.Pixels == nil {
		return mat, nil
	}
	if len(data.Pixels) != data.Width*data.Height*4 {
		return mat, fmt.Errorf("pixel buffer size mismatch: %dx%d, %d bytes",
			data.Width, data.Height, len(data.Pixels))
	}

	gl.GenTextures(1, &mat.Texture)
	gl.BindTexture(gl.TEXTURE_2D, mat.Texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(data.Width), int32(data.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(data.Pixels))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return mat, nil
}

// UploadInstances streams per-instance transforms into the instance
// buffer, growing it when the frame needs more room than before.
func (m *Mesh) UploadInstances(transforms []float32) {
	if len(transforms) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.InstanceVBO)
	if len(transforms) > m.instanceCap {
		gl.BufferData(gl.ARRAY_BUFFER, len(transforms)*4, gl.Ptr(transforms), gl.STREAM_DRAW)
		m.instanceCap = len(transforms)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(transforms)*4, gl.Ptr(transforms))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Destroy releases all GPU resources owned by the model.
func (m *Model) Destroy() {
	for i := range m.Meshes {
		mesh := &m.Meshes[i]
		if mesh.VAO != 0 {
			gl.DeleteVertexArrays(1, &mesh.VAO)
		}
		if mesh.VBO != 0 {
			gl.DeleteBuffers(1, &mesh.VBO)
		}
		if mesh.EBO != 0 {
			gl.DeleteBuffers(1, &mesh.EBO)
		}
		if mesh.InstanceVBO != 0 {
			gl.DeleteBuffers(1, &mesh.InstanceVBO)
		}
	}
	for i := range m.Materials {
		if m.Materials[i].Texture != 0 {
			gl.DeleteTextures(1, &m.Materials[i].Texture)
		}
	}
	m.Meshes = nil
	m.Materials = nil
}
