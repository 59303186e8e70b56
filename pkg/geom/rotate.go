package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// RotateX rotates v by rad radians around the X axis.
func RotateX(v r3.Vector, rad float64) r3.Vector {
	s, c := math.Sincos(rad)
	return r3.Vector{X: v.X, Y: c*v.Y - s*v.Z, Z: s*v.Y + c*v.Z}
}

// RotateY rotates v by rad radians around the Y axis.
func RotateY(v r3.Vector, rad float64) r3.Vector {
	s, c := math.Sincos(rad)
	return r3.Vector{X: c*v.X + s*v.Z, Y: v.Y, Z: -s*v.X + c*v.Z}
}

// RotateZ rotates v by rad radians around the Z axis.
func RotateZ(v r3.Vector, rad float64) r3.Vector {
	s, c := math.Sincos(rad)
	return r3.Vector{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y, Z: v.Z}
}

// RotateXYZ applies X, then Y, then Z axis rotations, angles in radians.
func RotateXYZ(v r3.Vector, rx, ry, rz float64) r3.Vector {
	return RotateZ(RotateY(RotateX(v, rx), ry), rz)
}
