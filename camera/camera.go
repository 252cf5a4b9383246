// Package camera provides an orbit camera for viewing the warehouse.
package camera

import "math"

// minPolar keeps the eye off the vertical axis, where yaw is undefined.
const minPolar = 0.01

// Camera orbits a target point on a sphere.
// Rotation and zoom requests are eased in over several updates.
type Camera struct {
	// Orbit center in world coordinates
	TargetX, TargetY, TargetZ float32

	// Spherical position of the eye relative to the target.
	// Polar is measured from +Y, Yaw around +Y starting at +Z.
	Yaw, Polar, Distance float32

	// Vertical field of view in degrees
	Fovy float32

	// Constraints
	MinDistance, MaxDistance float32
	MaxPolar                 float32

	// Damping is the share of a pending rotation applied per update.
	// 0 and 1 both apply it at once.
	Damping float32

	pendingYaw, pendingPolar float32
	pendingZoom              float32 // multiplicative, 1 = none

	home struct {
		yaw, polar, distance float32
		target               [3]float32
	}
}

// New creates a camera looking from eye at target.
func New(eye, target [3]float32, fovy float32) *Camera {
	c := &Camera{
		TargetX:     target[0],
		TargetY:     target[1],
		TargetZ:     target[2],
		Fovy:        fovy,
		MinDistance: 1,
		MaxDistance: 1000,
		MaxPolar:    math.Pi / 2,
		Damping:     1,
		pendingZoom: 1,
	}

	dx := eye[0] - target[0]
	dy := eye[1] - target[1]
	dz := eye[2] - target[2]
	c.Distance = float32(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
	if c.Distance > 0 {
		c.Polar = float32(math.Acos(float64(clamp(dy/c.Distance, -1, 1))))
	}
	c.Yaw = float32(math.Atan2(float64(dx), float64(dz)))

	c.home.yaw, c.home.polar, c.home.distance = c.Yaw, c.Polar, c.Distance
	c.home.target = target
	return c
}

// Eye returns the eye position in world coordinates.
func (c *Camera) Eye() (x, y, z float32) {
	sinP := float32(math.Sin(float64(c.Polar)))
	cosP := float32(math.Cos(float64(c.Polar)))
	sinY := float32(math.Sin(float64(c.Yaw)))
	cosY := float32(math.Cos(float64(c.Yaw)))

	x = c.TargetX + c.Distance*sinP*sinY
	y = c.TargetY + c.Distance*cosP
	z = c.TargetZ + c.Distance*sinP*cosY
	return x, y, z
}

// Rotate queues a rotation given a drag delta in screen pixels.
// Dragging right orbits left, dragging down raises the eye toward the zenith.
func (c *Camera) Rotate(dx, dy, radiansPerPixel float32) {
	c.pendingYaw -= dx * radiansPerPixel
	c.pendingPolar -= dy * radiansPerPixel
}

// ZoomBy queues a multiplicative change in distance (<1 moves closer).
func (c *Camera) ZoomBy(factor float32) {
	if factor <= 0 {
		return
	}
	c.pendingZoom *= factor
}

// LookAt moves the orbit center without changing the spherical offset.
func (c *Camera) LookAt(x, y, z float32) {
	c.TargetX, c.TargetY, c.TargetZ = x, y, z
}

// Update applies a damped share of pending rotation and all pending zoom,
// then enforces the constraints. Call once per frame.
func (c *Camera) Update() {
	damping := clamp(c.Damping, 0, 1)
	if damping == 0 {
		damping = 1
	}

	c.Yaw += c.pendingYaw * damping
	c.Polar += c.pendingPolar * damping
	c.pendingYaw *= 1 - damping
	c.pendingPolar *= 1 - damping

	c.Distance *= c.pendingZoom
	c.pendingZoom = 1

	c.Yaw = wrapAngle(c.Yaw)
	c.Polar = clamp(c.Polar, minPolar, c.MaxPolar)
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// Reset returns the camera to the position it was created with.
func (c *Camera) Reset() {
	c.Yaw, c.Polar, c.Distance = c.home.yaw, c.home.polar, c.home.distance
	c.TargetX, c.TargetY, c.TargetZ = c.home.target[0], c.home.target[1], c.home.target[2]
	c.pendingYaw, c.pendingPolar, c.pendingZoom = 0, 0, 1
}

// wrapAngle wraps a to [-pi, pi].
func wrapAngle(a float32) float32 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
