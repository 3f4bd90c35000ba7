// Package geometry provides the source-body primitives used by the
// forward-modeling routines: right rectangular prisms and homogeneous
// spheres. Bodies are plain value types; they are never mutated after
// construction.
//
// Coordinates follow the usual gravimetry convention: x north, y east,
// z positive downward. A body buried below the surface therefore has
// positive z bounds.
package geometry

import (
	"fmt"
	"math"
)

// Prism is an axis-aligned rectangular box with a scalar physical
// property, usually a density contrast in kg/m³.
type Prism struct {
	X1, X2 float64
	Y1, Y2 float64
	Z1, Z2 float64
	Value  float64
}

// Validate reports degenerate bounds. Bounds must satisfy x1 < x2,
// y1 < y2, z1 < z2.
func (p Prism) Validate() error {
	if p.X1 >= p.X2 {
		return fmt.Errorf("geometry: prism x bounds [%g, %g] are degenerate", p.X1, p.X2)
	}
	if p.Y1 >= p.Y2 {
		return fmt.Errorf("geometry: prism y bounds [%g, %g] are degenerate", p.Y1, p.Y2)
	}
	if p.Z1 >= p.Z2 {
		return fmt.Errorf("geometry: prism z bounds [%g, %g] are degenerate", p.Z1, p.Z2)
	}
	return nil
}

func (p Prism) Volume() float64 {
	return (p.X2 - p.X1) * (p.Y2 - p.Y1) * (p.Z2 - p.Z1)
}

// Center returns the geometric center of the prism.
func (p Prism) Center() (x, y, z float64) {
	return 0.5 * (p.X1 + p.X2), 0.5 * (p.Y1 + p.Y2), 0.5 * (p.Z1 + p.Z2)
}

// Sphere is a homogeneous sphere with a given density in kg/m³.
type Sphere struct {
	XC, YC, ZC float64
	Radius     float64
	Density    float64
}

// Validate reports a non-positive radius.
func (s Sphere) Validate() error {
	if s.Radius <= 0 {
		return fmt.Errorf("geometry: sphere radius must be positive, got %g", s.Radius)
	}
	return nil
}

func (s Sphere) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius
}

func (s Sphere) Mass() float64 {
	return s.Density * s.Volume()
}
