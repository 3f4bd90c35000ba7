package forward

import "fmt"

// The analytic formulas themselves live outside this package. A formula
// set carries one function per field component it can produce; the
// accumulators resolve the requested component against the set before
// touching any observation point, so an unsupported combination fails
// up front rather than mid-computation.

// PrismFunc computes one component of the field of a rectangular prism
// with property value and bounds (x1,x2,y1,y2,z1,z2) at the observation
// point (xp, yp, zp).
type PrismFunc func(value, x1, x2, y1, y2, z1, z2, xp, yp, zp float64) float64

// SphereFunc computes one component of the field of a homogeneous
// sphere with the given density, radius and center (xc, yc, zc) at the
// observation point (xp, yp, zp).
type SphereFunc func(density, radius, xc, yc, zc, xp, yp, zp float64) float64

// PrismSet maps field components to prism formulas.
type PrismSet struct {
	funcs [numComponents]PrismFunc
}

func NewPrismSet() *PrismSet { return &PrismSet{} }

// Register binds f to component c, replacing any previous binding.
func (s *PrismSet) Register(c Component, f PrismFunc) *PrismSet {
	s.funcs[c] = f
	return s
}

// Supports reports whether the set has a formula for c.
func (s *PrismSet) Supports(c Component) bool {
	return c < numComponents && s.funcs[c] != nil
}

func (s *PrismSet) lookup(c Component) (PrismFunc, error) {
	if c >= numComponents {
		return nil, fmt.Errorf("%w: %v", ErrUnknownComponent, c)
	}
	f := s.funcs[c]
	if f == nil {
		return nil, fmt.Errorf("%w: %v for prisms", ErrUnsupportedComponent, c)
	}
	return f, nil
}

// SphereSet maps field components to sphere formulas. Sphere formula
// libraries typically cover fewer components than prism ones; the gap
// surfaces as ErrUnsupportedComponent, never as a degraded result.
type SphereSet struct {
	funcs [numComponents]SphereFunc
}

func NewSphereSet() *SphereSet { return &SphereSet{} }

func (s *SphereSet) Register(c Component, f SphereFunc) *SphereSet {
	s.funcs[c] = f
	return s
}

func (s *SphereSet) Supports(c Component) bool {
	return c < numComponents && s.funcs[c] != nil
}

func (s *SphereSet) lookup(c Component) (SphereFunc, error) {
	if c >= numComponents {
		return nil, fmt.Errorf("%w: %v", ErrUnknownComponent, c)
	}
	f := s.funcs[c]
	if f == nil {
		return nil, fmt.Errorf("%w: %v for spheres", ErrUnsupportedComponent, c)
	}
	return f, nil
}
