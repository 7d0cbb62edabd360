package model

import (
	"testing"

	"github.com/schoolopoly/client/pkg/math"
)

func TestGroupInstancesOrder(t *testing.T) {
	instances := []Instance{
		{ModelID: 2, Position: math.Vec3{X: 1}},
		{ModelID: 0, Position: math.Vec3{X: 2}},
		{ModelID: 2, Position: math.Vec3{X: 3}},
		{ModelID: 0, Position: math.Vec3{X: 4}},
		{ModelID: 2, Position: math.Vec3{X: 5}},
	}

	groups := GroupInstances(instances)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	// First-seen model order
	if groups[0].ModelID != 2 || groups[1].ModelID != 0 {
		t.Errorf("expected model order [2, 0], got [%d, %d]", groups[0].ModelID, groups[1].ModelID)
	}

	if len(groups[0].Transforms) != 3 {
		t.Errorf("expected 3 transforms for model 2, got %d", len(groups[0].Transforms))
	}
	if len(groups[1].Transforms) != 2 {
		t.Errorf("expected 2 transforms for model 0, got %d", len(groups[1].Transforms))
	}

	// Submission order within a group: translation X of column 12
	xs := []float32{groups[0].Transforms[0][12], groups[0].Transforms[1][12], groups[0].Transforms[2][12]}
	if xs[0] != 1 || xs[1] != 3 || xs[2] != 5 {
		t.Errorf("expected per-model order [1, 3, 5], got %v", xs)
	}
}

func TestGroupInstancesEmpty(t *testing.T) {
	if groups := GroupInstances(nil); len(groups) != 0 {
		t.Errorf("expected no groups for no instances, got %d", len(groups))
	}
}

func TestInstanceTransform(t *testing.T) {
	inst := Instance{
		ModelID:  0,
		Position: math.Vec3{X: 5, Y: 6, Z: 7},
		Rotation: math.QuatIdentity(),
	}

	m := inst.Transform()
	p := m.TransformPoint([3]float32{0, 0, 0})
	if p != [3]float32{5, 6, 7} {
		t.Errorf("identity-rotation transform should translate origin to position, got %v", p)
	}
}

func TestFlattenTransforms(t *testing.T) {
	ts := []math.Mat4{math.Identity(), math.Translate(1, 2, 3)}
	flat := FlattenTransforms(ts)

	if len(flat) != 32 {
		t.Fatalf("expected 32 floats, got %d", len(flat))
	}
	if flat[0] != 1 || flat[28] != 1 || flat[29] != 2 || flat[30] != 3 {
		t.Errorf("flattened layout mismatch: %v", flat)
	}
}

func TestCubeData(t *testing.T) {
	data := Cube(2, [4]float32{1, 0, 0, 1})

	if len(data.Meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(data.Meshes))
	}
	mesh := data.Meshes[0]

	// 6 faces, 4 vertices each
	if got := len(mesh.Positions) / 3; got != 24 {
		t.Errorf("expected 24 vertices, got %d", got)
	}
	// 6 faces, 2 triangles each
	if got := len(mesh.Indices) / 3; got != 12 {
		t.Errorf("expected 12 triangles, got %d", got)
	}
	if len(mesh.Normals) != len(mesh.Positions) {
		t.Errorf("normal count should match position count")
	}

	// All positions on the half-size shell
	for i := 0; i < len(mesh.Positions); i++ {
		if mesh.Positions[i] != 1 && mesh.Positions[i] != -1 {
			t.Errorf("cube position component %d out of shell: %f", i, mesh.Positions[i])
		}
	}

	if data.Materials[0].BaseColor != [4]float32{1, 0, 0, 1} {
		t.Errorf("base color not preserved: %v", data.Materials[0].BaseColor)
	}
}

func TestRectangleData(t *testing.T) {
	data := Rectangle(4, 2, [4]float32{0, 1, 0, 1})
	mesh := data.Meshes[0]

	if got := len(mesh.Positions) / 3; got != 4 {
		t.Errorf("expected 4 vertices, got %d", got)
	}
	if got := len(mesh.Indices); got != 6 {
		t.Errorf("expected 6 indices, got %d", got)
	}

	// All normals point up
	for i := 0; i < len(mesh.Normals); i += 3 {
		if mesh.Normals[i] != 0 || mesh.Normals[i+1] != 1 || mesh.Normals[i+2] != 0 {
			t.Errorf("rectangle normal %d should be +Y", i/3)
		}
	}

	// Y is zero everywhere
	for i := 1; i < len(mesh.Positions); i += 3 {
		if mesh.Positions[i] != 0 {
			t.Errorf("rectangle should be flat, got Y=%f", mesh.Positions[i])
		}
	}
}

func TestRegistryAppendOnly(t *testing.T) {
	r := NewRegistry()

	a := &Model{}
	b := &Model{}

	idA := r.Add(a)
	idB := r.Add(b)

	if idA != 0 || idB != 1 {
		t.Errorf("expected sequential ids 0 and 1, got %d and %d", idA, idB)
	}
	if r.Get(idA) != a || r.Get(idB) != b {
		t.Error("registry should return the exact models added")
	}
	if r.Get(99) != nil || r.Get(-1) != nil {
		t.Error("unknown ids should return nil")
	}
	if r.Len() != 2 {
		t.Errorf("expected length 2, got %d", r.Len())
	}
}
