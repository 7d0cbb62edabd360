package math

import (
	"math"
	"testing"
)

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslatePoint(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint([3]float32{1, 2, 3})

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	result := m.TransformPoint([3]float32{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result[0]) > 0.001 || abs(result[1]) > 0.001 || abs(result[2]+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1.0, 0.1, 100.0)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookToMatchesLookAt(t *testing.T) {
	eye := Vec3{1, 2, 5}
	center := Vec3{0, 0, 0}
	up := Vec3{0, 1, 0}

	at := LookAt(eye, center, up)
	to := LookTo(eye, center.Sub(eye), up)

	for i := 0; i < 16; i++ {
		if abs(at[i]-to[i]) > 0.0001 {
			t.Errorf("LookAt/LookTo mismatch at %d: %f vs %f", i, at[i], to[i])
		}
	}
}

func TestLookToForward(t *testing.T) {
	// Looking down -Z from the origin must leave the world axes in place.
	m := LookTo(Vec3{}, Vec3{0, 0, -1}, Vec3{0, 1, 0})
	p := m.TransformPoint([3]float32{0, 0, -5})

	if abs(p[0]) > 0.001 || abs(p[1]) > 0.001 || abs(p[2]+5) > 0.001 {
		t.Errorf("LookTo -Z: got %v, want (0, 0, -5)", p)
	}
}

func TestQuatIdentityToMat4(t *testing.T) {
	m := QuatIdentity().ToMat4()
	id := Identity()
	for i := 0; i < 16; i++ {
		if abs(m[i]-id[i]) > 0.0001 {
			t.Errorf("identity quat should yield identity matrix, element %d: got %f", i, m[i])
		}
	}
}

func TestQuatAxisAngleRotation(t *testing.T) {
	// 90 degrees around Y, same as RotateY.
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, float32(math.Pi/2))
	got := q.ToMat4().TransformPoint([3]float32{1, 0, 0})
	want := RotateY(float32(math.Pi / 2)).TransformPoint([3]float32{1, 0, 0})

	for i := 0; i < 3; i++ {
		if abs(got[i]-want[i]) > 0.001 {
			t.Errorf("quat rotation mismatch: got %v, want %v", got, want)
		}
	}
}

func TestQuatMulComposes(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{0, 1, 0}, float32(math.Pi/4))
	b := QuatFromAxisAngle(Vec3{0, 1, 0}, float32(math.Pi/4))
	half := a.Mul(b).ToMat4().TransformPoint([3]float32{1, 0, 0})
	full := QuatFromAxisAngle(Vec3{0, 1, 0}, float32(math.Pi/2)).ToMat4().TransformPoint([3]float32{1, 0, 0})

	for i := 0; i < 3; i++ {
		if abs(half[i]-full[i]) > 0.001 {
			t.Errorf("quat composition mismatch: got %v, want %v", half, full)
		}
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}.Normalize()
	if abs(v.Length()-1) > 0.0001 {
		t.Errorf("normalized length should be 1, got %f", v.Length())
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector should normalize to zero")
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	if got != (Vec3{0, 0, 1}) {
		t.Errorf("X cross Y: got %v, want (0, 0, 1)", got)
	}
}
