// Package pointmass provides stock formula sets built on the field of a
// point mass.
//
// For a homogeneous sphere the point-mass field is exact everywhere
// outside the sphere, so Spheres returns the standard closed forms. For
// a prism the point-mass field (total mass concentrated at the prism
// center) is only the far-field approximation; Prisms is meant for
// quick synthetic data and for exercising the accumulation machinery.
// Exact prism formulas belong to a dedicated formula library and can be
// registered on a forward.PrismSet in their place.
//
// Units: coordinates and sizes in meters, densities in kg/m³. gz comes
// out in mGal, tensor components in Eötvös.
package pointmass

import (
	"math"

	"github.com/mtelles/gravsynth/internal/forward"
)

const (
	// G is the gravitational constant in SI units.
	G = 6.673e-11

	// SI2MGal converts accelerations from m/s² to mGal.
	SI2MGal = 1e5

	// SI2Eotvos converts gravity gradients from 1/s² to Eötvös.
	SI2Eotvos = 1e9
)

// kernel computes one field component of a point mass m located at
// offset (dx, dy, dz) from the observation point, where the offsets
// point from the observation toward the mass.
type kernel func(m, dx, dy, dz float64) float64

func gz(m, dx, dy, dz float64) float64 {
	r2 := dx*dx + dy*dy + dz*dz
	r := math.Sqrt(r2)
	return G * m * dz / (r2 * r) * SI2MGal
}

// Second derivatives of the potential: gab = G m (3 da db - δab r²)/r⁵.
// The diagonal components sum to zero (Laplace's equation).

func gxx(m, dx, dy, dz float64) float64 { return diag(m, dx, dy, dz, dx) }
func gyy(m, dx, dy, dz float64) float64 { return diag(m, dx, dy, dz, dy) }
func gzz(m, dx, dy, dz float64) float64 { return diag(m, dx, dy, dz, dz) }

func gxy(m, dx, dy, dz float64) float64 { return offdiag(m, dx, dy, dz, dx, dy) }
func gxz(m, dx, dy, dz float64) float64 { return offdiag(m, dx, dy, dz, dx, dz) }
func gyz(m, dx, dy, dz float64) float64 { return offdiag(m, dx, dy, dz, dy, dz) }

func diag(m, dx, dy, dz, da float64) float64 {
	r2 := dx*dx + dy*dy + dz*dz
	r5 := r2 * r2 * math.Sqrt(r2)
	return G * m * (3*da*da - r2) / r5 * SI2Eotvos
}

func offdiag(m, dx, dy, dz, da, db float64) float64 {
	r2 := dx*dx + dy*dy + dz*dz
	r5 := r2 * r2 * math.Sqrt(r2)
	return G * m * 3 * da * db / r5 * SI2Eotvos
}

// spherical wraps a kernel as a forward.SphereFunc.
func spherical(k kernel) forward.SphereFunc {
	return func(density, radius, xc, yc, zc, xp, yp, zp float64) float64 {
		m := density * 4.0 / 3.0 * math.Pi * radius * radius * radius
		return k(m, xc-xp, yc-yp, zc-zp)
	}
}

// prismatic wraps a kernel as a forward.PrismFunc, concentrating the
// prism's mass at its center.
func prismatic(k kernel) forward.PrismFunc {
	return func(value, x1, x2, y1, y2, z1, z2, xp, yp, zp float64) float64 {
		m := value * (x2 - x1) * (y2 - y1) * (z2 - z1)
		return k(m, 0.5*(x1+x2)-xp, 0.5*(y1+y2)-yp, 0.5*(z1+z2)-zp)
	}
}

// Spheres returns the closed-form field of homogeneous spheres. Only
// gz, gxx, gyy and gzz are registered; requesting any other component
// through this set fails with forward.ErrUnsupportedComponent.
func Spheres() *forward.SphereSet {
	return forward.NewSphereSet().
		Register(forward.Gz, spherical(gz)).
		Register(forward.Gxx, spherical(gxx)).
		Register(forward.Gyy, spherical(gyy)).
		Register(forward.Gzz, spherical(gzz))
}

// Prisms returns the far-field point-mass approximation of prisms, all
// seven components.
func Prisms() *forward.PrismSet {
	return forward.NewPrismSet().
		Register(forward.Gz, prismatic(gz)).
		Register(forward.Gxx, prismatic(gxx)).
		Register(forward.Gxy, prismatic(gxy)).
		Register(forward.Gxz, prismatic(gxz)).
		Register(forward.Gyy, prismatic(gyy)).
		Register(forward.Gyz, prismatic(gyz)).
		Register(forward.Gzz, prismatic(gzz))
}
