// Package model manages 3-D models: CPU-side mesh data, GPU upload, the
// shared model registry, and per-frame instance batching.
package model

// MeshData is CPU-side geometry ready for upload.
// Positions and Normals are xyz triples, TexCoords are uv pairs.
type MeshData struct {
	Positions []float32
	Normals   []float32
	TexCoords []float32
	Indices   []uint32
	Material  int // index into the owning model's materials
}

// MaterialData describes a mesh surface. Pixels is RGBA; nil means the
// material is untextured and BaseColor is used instead.
type MaterialData struct {
	Pixels    []byte
	Width     int
	Height    int
	BaseColor [4]float32
}

// ModelData is a complete model as produced by loaders, before upload.
type ModelData struct {
	Meshes    []MeshData
	Materials []MaterialData
}

// VertexCount returns the total vertex count across all meshes.
func (d *ModelData) VertexCount() int {
	n := 0
	for i := range d.Meshes {
		n += len(d.Meshes[i].Positions) / 3
	}
	return n
}

// Cube builds a unit cube centered at the origin, scaled by size, with a
// solid base color. Each face has its own vertices so normals stay flat.
func Cube(size float32, color [4]float32) ModelData {
	h := size / 2

	type face struct {
		normal  [3]float32
		corners [4][3]float32
	}

	faces := []face{
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}

	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var mesh MeshData
	for _, f := range faces {
		base := uint32(len(mesh.Positions) / 3)
		for i, c := range f.corners {
			mesh.Positions = append(mesh.Positions, c[0], c[1], c[2])
			mesh.Normals = append(mesh.Normals, f.normal[0], f.normal[1], f.normal[2])
			mesh.TexCoords = append(mesh.TexCoords, uvs[i][0], uvs[i][1])
		}
		mesh.Indices = append(mesh.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	return ModelData{
		Meshes:    []MeshData{mesh},
		Materials: []MaterialData{{BaseColor: color}},
	}
}

// Rectangle builds a flat quad in the XZ plane, facing up, centered at the
// origin. Used for board tiles and the table surface.
func Rectangle(width, depth float32, color [4]float32) ModelData {
	w := width / 2
	d := depth / 2

	mesh := MeshData{
		Positions: []float32{
			-w, 0, d,
			w, 0, d,
			w, 0, -d,
			-w, 0, -d,
		},
		Normals: []float32{
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
		},
		TexCoords: []float32{
			0, 0,
			1, 0,
			1, 1,
			0, 1,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}

	return ModelData{
		Meshes:    []MeshData{mesh},
		Materials: []MaterialData{{BaseColor: color}},
	}
}
