package model

import (
	"os"
	"path/filepath"
	"testing"
)

// A single triangle with positions and uint16 indices in an embedded
// buffer; no materials, normals or texcoords, so the loader fills in
// all defaults.
const triangleGLTF = `{
  "asset": {"version": "2.0"},
  "buffers": [{
    "byteLength": 42,
    "uri": "data:application/octet-stream;base64,AAAAAAAAAAAAAAAAAACAPwAAAAAAAAAAAAAAAAAAgD8AAAAAAAABAAIA"
  }],
  "bufferViews": [
    {"buffer": 0, "byteOffset": 0, "byteLength": 36},
    {"buffer": 0, "byteOffset": 36, "byteLength": 6}
  ],
  "accessors": [
    {"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3", "min": [0, 0, 0], "max": [1, 1, 0]},
    {"bufferView": 1, "componentType": 5123, "count": 3, "type": "SCALAR"}
  ],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}, "indices": 1}]}]
}`

func TestLoadGLTFTriangle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangle.gltf")
	if err := os.WriteFile(path, []byte(triangleGLTF), 0644); err != nil {
		t.Fatalf("writing test asset: %v", err)
	}

	md, err := LoadGLTF(path)
	if err != nil {
		t.Fatalf("LoadGLTF failed: %v", err)
	}

	if len(md.Meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(md.Meshes))
	}
	mesh := md.Meshes[0]

	if len(mesh.Positions) != 9 {
		t.Fatalf("expected 9 position floats, got %d", len(mesh.Positions))
	}
	if mesh.Positions[3] != 1 || mesh.Positions[7] != 1 {
		t.Errorf("unexpected positions %v", mesh.Positions)
	}

	want := []uint32{0, 1, 2}
	if len(mesh.Indices) != len(want) {
		t.Fatalf("expected %d indices, got %d", len(want), len(mesh.Indices))
	}
	for i, idx := range want {
		if mesh.Indices[i] != idx {
			t.Errorf("index %d: got %d, want %d", i, mesh.Indices[i], idx)
		}
	}

	// Missing attributes come back as defaults sized to the vertex count
	if len(mesh.Normals) != 9 {
		t.Errorf("expected 9 default normal floats, got %d", len(mesh.Normals))
	}
	if len(mesh.TexCoords) != 6 {
		t.Errorf("expected 6 default texcoord floats, got %d", len(mesh.TexCoords))
	}

	// A document with no materials still yields one default material
	if len(md.Materials) != 1 {
		t.Fatalf("expected a default material, got %d", len(md.Materials))
	}
	if md.Materials[0].BaseColor != [4]float32{1, 1, 1, 1} {
		t.Errorf("default material should be white, got %v", md.Materials[0].BaseColor)
	}
}

func TestLoadGLTFMissingFile(t *testing.T) {
	if _, err := LoadGLTF(filepath.Join(t.TempDir(), "nope.gltf")); err == nil {
		t.Error("loading a missing file should fail")
	}
}
