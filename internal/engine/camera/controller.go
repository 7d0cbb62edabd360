package camera

import "github.com/schoolopoly/client/pkg/math"

// Controller accumulates input between frames and applies it to a camera
// once per tick. Key amounts are level-triggered: set on press, cleared on
// release. Mouse deltas and scroll are edge-triggered: they accumulate
// until the next UpdateCamera consumes and zeroes them.
type Controller struct {
	MoveSpeed       float32
	LookSensitivity float32
	ZoomSensitivity float32

	forward, backward float32
	left, right       float32
	up, down          float32

	mouseDX, mouseDY float32
	scroll           float32
}

// NewController creates a controller with the given tuning.
func NewController(moveSpeed, lookSensitivity, zoomSensitivity float32) *Controller {
	return &Controller{
		MoveSpeed:       moveSpeed,
		LookSensitivity: lookSensitivity,
		ZoomSensitivity: zoomSensitivity,
	}
}

// SetForward sets the forward movement amount (1 on press, 0 on release).
func (ct *Controller) SetForward(amount float32) { ct.forward = amount }

// SetBackward sets the backward movement amount.
func (ct *Controller) SetBackward(amount float32) { ct.backward = amount }

// SetLeft sets the strafe-left amount.
func (ct *Controller) SetLeft(amount float32) { ct.left = amount }

// SetRight sets the strafe-right amount.
func (ct *Controller) SetRight(amount float32) { ct.right = amount }

// SetUp sets the ascend amount.
func (ct *Controller) SetUp(amount float32) { ct.up = amount }

// SetDown sets the descend amount.
func (ct *Controller) SetDown(amount float32) { ct.down = amount }

// AddMouseDelta accumulates relative mouse motion for the next update.
func (ct *Controller) AddMouseDelta(dx, dy float32) {
	ct.mouseDX += dx
	ct.mouseDY += dy
}

// AddScroll accumulates wheel steps for the next update.
func (ct *Controller) AddScroll(amount float32) {
	ct.scroll += amount
}

// UpdateCamera applies the accumulated input to the camera, scaled by
// dt. Edge-triggered accumulators are consumed and zeroed so a still
// mouse stops the camera immediately.
func (ct *Controller) UpdateCamera(c *Camera, dt float32) {
	// Look before move, so movement follows the new direction
	c.Rotate(ct.mouseDX*ct.LookSensitivity*dt, -ct.mouseDY*ct.LookSensitivity*dt)
	ct.mouseDX = 0
	ct.mouseDY = 0

	fwd := c.Forward()
	right := c.Right()

	move := fwd.Scale((ct.forward - ct.backward) * ct.MoveSpeed * dt)
	move = move.Add(right.Scale((ct.right - ct.left) * ct.MoveSpeed * dt))
	move = move.Add(math.Vec3{Y: 1}.Scale((ct.up - ct.down) * ct.MoveSpeed * dt))

	// Scroll zooms by dollying along the view direction
	move = move.Add(fwd.Scale(ct.scroll * ct.ZoomSensitivity))
	ct.scroll = 0

	c.Position = c.Position.Add(move)
}
