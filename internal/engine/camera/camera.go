// Package camera provides the first-person camera used for culling and rendering.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/visicull/pkg/geom"
)

// Key codes read from the keyboard snapshot (uppercase ASCII, as virtual-key codes).
const (
	KeyForward  = 'W'
	KeyBackward = 'S'
	KeyRight    = 'D'
	KeyLeft     = 'A'
	KeyUp       = 'E'
	KeyDown     = 'Q'
)

// KeyState is a keyboard snapshot indexed by key code.
type KeyState [256]bool

// worldUp is the fixed up axis; the camera never rolls.
var worldUp = mgl32.Vec3{0, 1, 0}

// Settings holds the initial pose and projection of a camera.
type Settings struct {
	Position    mgl32.Vec3 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`   // radians
	Pitch       float32    `yaml:"pitch"` // radians, positive tilts the view down
	Speed       float32    `yaml:"speed"` // units per second
	NearZ       float32    `yaml:"near_z"`
	FarZ        float32    `yaml:"far_z"`
	Aspect      float32    `yaml:"aspect"`
	FovYDegrees float32    `yaml:"fov_y_degrees"`
	Perspective bool       `yaml:"perspective"`
	FirstPerson bool       `yaml:"first_person"`
}

// DefaultSettings returns the stock camera pose and projection.
func DefaultSettings() Settings {
	return Settings{
		Position:    mgl32.Vec3{0.312183, 0.957463, -1.88458},
		Yaw:         -0.0589047,
		Pitch:       0.213803,
		Speed:       3.0,
		NearZ:       0.01,
		FarZ:        100.0,
		Aspect:      16.0 / 9.0,
		FovYDegrees: 45.0,
		Perspective: true,
		FirstPerson: false,
	}
}

// Camera is a yaw/pitch camera with a left-handed view (+X right, +Y up, +Z forward).
type Camera struct {
	position mgl32.Vec3
	yaw      float32
	pitch    float32

	// Movement basis, derived from yaw only
	forward mgl32.Vec3
	right   mgl32.Vec3

	speed float32

	// Projection
	nearZ       float32
	farZ        float32
	aspect      float32
	fovYDegrees float32
	perspective bool

	// Keyboard and mouse input are ignored unless set
	firstPerson bool
}

// New creates a camera from settings.
func New(s Settings) *Camera {
	c := &Camera{
		position:    s.Position,
		yaw:         s.Yaw,
		pitch:       s.Pitch,
		speed:       s.Speed,
		nearZ:       s.NearZ,
		farZ:        s.FarZ,
		aspect:      s.Aspect,
		fovYDegrees: s.FovYDegrees,
		perspective: s.Perspective,
		firstPerson: s.FirstPerson,
	}
	c.UpdateOrientation()
	return c
}

// Settings returns the current pose and projection, so New(c.Settings())
// recreates the camera.
func (c *Camera) Settings() Settings {
	return Settings{
		Position:    c.position,
		Yaw:         c.yaw,
		Pitch:       c.pitch,
		Speed:       c.speed,
		NearZ:       c.nearZ,
		FarZ:        c.farZ,
		Aspect:      c.aspect,
		FovYDegrees: c.fovYDegrees,
		Perspective: c.perspective,
		FirstPerson: c.firstPerson,
	}
}

// Reset moves the camera to pos with the given orientation.
func (c *Camera) Reset(pos mgl32.Vec3, yaw, pitch float32) {
	c.position = pos
	c.yaw = yaw
	c.pitch = pitch
	c.UpdateOrientation()
}

// UpdateOrientation recomputes the movement basis from yaw.
// Pitch only affects the view matrix.
func (c *Camera) UpdateOrientation() {
	c.forward = mgl32.HomogRotate3DY(c.yaw).Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3()
	c.right = worldUp.Cross(c.forward)
}

// ViewMatrix translates by -position, then rotates by -yaw and -pitch.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(-c.pitch).
		Mul4(mgl32.HomogRotate3DY(-c.yaw)).
		Mul4(mgl32.Translate3D(-c.position[0], -c.position[1], -c.position[2]))
}

// ProjectionMatrix returns a left-handed perspective projection, or in
// orthographic mode a [-aspect, aspect] x [-1, 1] view volume.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	if c.perspective {
		return PerspectiveLH(mgl32.DegToRad(c.fovYDegrees), c.aspect, c.nearZ, c.farZ)
	}
	return OrthoOffCenterLH(-c.aspect, c.aspect, -1, 1, c.nearZ, c.farZ)
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// ViewFrustum extracts the current frustum planes.
func (c *Camera) ViewFrustum() geom.ViewFrustum {
	return geom.FrustumFromMatrix(c.ViewProjection())
}

// UpdateKeyboard moves the camera from a keyboard snapshot. Only active in first-person mode.
func (c *Camera) UpdateKeyboard(dt float32, keys *KeyState) {
	if !c.firstPerson || keys == nil {
		return
	}

	if keys[KeyForward] {
		c.MoveForward(dt)
	}
	if keys[KeyBackward] {
		c.MoveForward(-dt)
	}
	if keys[KeyRight] {
		c.MoveRight(dt)
	}
	if keys[KeyLeft] {
		c.MoveRight(-dt)
	}
	if keys[KeyUp] {
		c.MoveUp(dt)
	}
	if keys[KeyDown] {
		c.MoveUp(-dt)
	}
}

// UpdateMouse sets yaw and pitch from pointer NDC in [-1, 1].
// A full sweep across X turns 360 degrees; Y spans 90 degrees and is
// inverted so moving the pointer up looks up. Only active in first-person mode.
func (c *Camera) UpdateMouse(ndcX, ndcY float32) {
	if !c.firstPerson {
		return
	}
	c.yaw = ndcX * 2 * gomath.Pi
	c.pitch = -ndcY * gomath.Pi / 2
	c.UpdateOrientation()
}

// MoveForward moves along the horizontal forward direction.
func (c *Camera) MoveForward(dt float32) {
	c.position = c.position.Add(c.forward.Mul(c.speed * dt))
}

// MoveRight strafes along the right direction.
func (c *Camera) MoveRight(dt float32) {
	c.position = c.position.Add(c.right.Mul(c.speed * dt))
}

// MoveUp moves along world up regardless of pitch.
func (c *Camera) MoveUp(dt float32) {
	c.position = c.position.Add(worldUp.Mul(c.speed * dt))
}

// EyePosition returns the camera position in world space.
func (c *Camera) EyePosition() mgl32.Vec3 {
	return c.position
}

// Yaw returns the horizontal angle in radians.
func (c *Camera) Yaw() float32 { return c.yaw }

// Pitch returns the vertical angle in radians.
func (c *Camera) Pitch() float32 { return c.pitch }

// Forward returns the horizontal movement direction.
func (c *Camera) Forward() mgl32.Vec3 { return c.forward }

// Right returns the strafe direction.
func (c *Camera) Right() mgl32.Vec3 { return c.right }

// Up returns the fixed world up axis.
func (c *Camera) Up() mgl32.Vec3 { return worldUp }

// Speed returns the movement speed in units per second.
func (c *Camera) Speed() float32 { return c.speed }

// SetSpeed sets the movement speed.
func (c *Camera) SetSpeed(speed float32) { c.speed = speed }

// SetAspectRatio sets width/height of the viewport.
func (c *Camera) SetAspectRatio(aspect float32) { c.aspect = aspect }

// Aspect returns the aspect ratio.
func (c *Camera) Aspect() float32 { return c.aspect }

// SetPerspective switches between perspective and orthographic projection.
func (c *Camera) SetPerspective(on bool) { c.perspective = on }

// Perspective reports whether perspective projection is active.
func (c *Camera) Perspective() bool { return c.perspective }

// SetFirstPerson enables or disables keyboard and mouse navigation.
func (c *Camera) SetFirstPerson(on bool) { c.firstPerson = on }

// FirstPerson reports whether keyboard and mouse navigation is enabled.
func (c *Camera) FirstPerson() bool { return c.firstPerson }
