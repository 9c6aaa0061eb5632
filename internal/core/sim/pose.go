package sim

import "math"

// Vec3 is a point in the anchor-local coordinate space, meters.
// Y is up; the ground plane is Y == 0.
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale returns the vector multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Pose is the authoritative placement of an entity: a position plus a
// heading angle about the vertical axis. Heading is kept in [0, 2π).
type Pose struct {
	Position Vec3
	Heading  float64
}

// NormalizeHeading wraps an angle in radians into [0, 2π).
func NormalizeHeading(h float64) float64 {
	h = math.Mod(h, 2*math.Pi)
	if h < 0 {
		h += 2 * math.Pi
	}
	return h
}

// Rotated returns a copy with the heading adjusted by delta radians,
// normalized. Positive delta turns counter-clockwise seen from above.
func (p Pose) Rotated(delta float64) Pose {
	p.Heading = NormalizeHeading(p.Heading + delta)
	return p
}

// Forward returns the unit vector the pose is facing on the ground plane.
// Heading 0 faces +Z.
func (p Pose) Forward() Vec3 {
	return Vec3{X: math.Sin(p.Heading), Z: math.Cos(p.Heading)}
}

// Advanced returns a copy translated along the current forward vector by
// distance meters.
func (p Pose) Advanced(distance float64) Pose {
	p.Position = p.Position.Add(p.Forward().Scale(distance))
	return p
}
