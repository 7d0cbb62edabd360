// Package camera provides the first-person camera used for the 3-D scene.
package camera

import (
	gomath "math"

	"github.com/schoolopoly/client/pkg/math"
)

// Pitch stays strictly inside the poles so the view direction never
// becomes collinear with the up vector.
const maxPitch = float32(gomath.Pi/2) - 0.0001

// Camera is a free-look first-person camera.
type Camera struct {
	Position math.Vec3
	Yaw      float32 // radians, 0 looks down -Z
	Pitch    float32 // radians, clamped to ±maxPitch
}

// New creates a camera at the given position looking down -Z.
func New(position math.Vec3) *Camera {
	return &Camera{Position: position}
}

// Forward returns the unit view direction derived from yaw and pitch.
func (c *Camera) Forward() math.Vec3 {
	cosPitch := float32(gomath.Cos(float64(c.Pitch)))
	return math.Vec3{
		X: float32(gomath.Sin(float64(c.Yaw))) * cosPitch,
		Y: float32(gomath.Sin(float64(c.Pitch))),
		Z: -float32(gomath.Cos(float64(c.Yaw))) * cosPitch,
	}
}

// Right returns the unit right direction on the XZ plane.
func (c *Camera) Right() math.Vec3 {
	return math.Vec3{
		X: float32(gomath.Cos(float64(c.Yaw))),
		Z: float32(gomath.Sin(float64(c.Yaw))),
	}
}

// Rotate applies yaw and pitch deltas, clamping pitch away from the poles.
func (c *Camera) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// ViewMatrix returns the view matrix for the current position and angles.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookTo(c.Position, c.Forward(), math.Vec3{Y: 1})
}

// Projection holds perspective projection parameters.
type Projection struct {
	Aspect float32
	FovY   float32 // radians
	Near   float32
	Far    float32
}

// Matrix returns the projection matrix.
func (p Projection) Matrix() math.Mat4 {
	return math.Perspective(p.FovY, p.Aspect, p.Near, p.Far)
}

// ViewProjection composes projection and view for the instanced 3-D pass.
func ViewProjection(c *Camera, p Projection) math.Mat4 {
	return p.Matrix().Mul(c.ViewMatrix())
}
