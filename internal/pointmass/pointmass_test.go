package pointmass_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/mtelles/gravsynth/internal/forward"
	"github.com/mtelles/gravsynth/internal/geometry"
	"github.com/mtelles/gravsynth/internal/gridder"
	"github.com/mtelles/gravsynth/internal/pointmass"
)

func singlePoint(x, y, z float64) *gridder.ObservationSet {
	return &gridder.ObservationSet{
		X: []float64{x},
		Y: []float64{y},
		Z: []float64{z},
	}
}

func TestSphereGzReference(t *testing.T) {
	g := NewWithT(t)

	// 100 m sphere of 1000 kg/m³ at 1 km depth, observed straight
	// above: gz = G * (4/3 π R³ ρ) / r² = 0.0279518 mGal.
	sphere := geometry.Sphere{ZC: 1000, Radius: 100, Density: 1000}

	data, err := forward.FromSpheres(singlePoint(0, 0, 0), []geometry.Sphere{sphere}, forward.Gz, pointmass.Spheres())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(data.Value[0]).To(BeNumerically("~", 0.027951797037, 1e-10))
}

func TestSphereGzSignConvention(t *testing.T) {
	g := NewWithT(t)

	// z is positive downward, so a body below the observation point
	// pulls in the +z direction: gz > 0.
	sphere := geometry.Sphere{ZC: 500, Radius: 50, Density: 2000}

	data, err := forward.FromSpheres(singlePoint(0, 0, -100), []geometry.Sphere{sphere}, forward.Gz, pointmass.Spheres())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(data.Value[0]).To(BeNumerically(">", 0))
}

func TestTensorTraceFree(t *testing.T) {
	g := NewWithT(t)

	// The gravity gradient tensor of a point mass satisfies Laplace's
	// equation: gxx + gyy + gzz = 0, at any off-axis point too.
	sphere := geometry.Sphere{XC: 130, YC: -40, ZC: 800, Radius: 75, Density: 1500}
	obs := singlePoint(-25, 60, -10)

	var trace float64
	for _, comp := range []forward.Component{forward.Gxx, forward.Gyy, forward.Gzz} {
		data, err := forward.FromSpheres(obs, []geometry.Sphere{sphere}, comp, pointmass.Spheres())
		g.Expect(err).NotTo(HaveOccurred())
		trace += data.Value[0]
	}

	g.Expect(trace).To(BeNumerically("~", 0, 1e-9))
}

func TestPrismMatchesEquivalentSphere(t *testing.T) {
	g := NewWithT(t)

	// The prism set concentrates the prism's mass at its center, so a
	// sphere of equal mass at that point produces the identical field.
	prism := geometry.Prism{
		X1: -100, X2: 100,
		Y1: -100, Y2: 100,
		Z1: 400, Z2: 600,
	}
	sphere := geometry.Sphere{ZC: 500, Radius: 80, Density: 1000}
	prism.Value = sphere.Mass() / prism.Volume()

	obs := singlePoint(35, -70, 0)

	for _, comp := range []forward.Component{forward.Gz, forward.Gxx, forward.Gyy, forward.Gzz} {
		fromPrism, err := forward.FromPrisms(obs, []geometry.Prism{prism}, comp, pointmass.Prisms())
		g.Expect(err).NotTo(HaveOccurred())
		fromSphere, err := forward.FromSpheres(obs, []geometry.Sphere{sphere}, comp, pointmass.Spheres())
		g.Expect(err).NotTo(HaveOccurred())

		g.Expect(fromPrism.Value[0]).To(BeNumerically("~", fromSphere.Value[0], 1e-12))
	}
}

func TestSphereSetCapabilities(t *testing.T) {
	g := NewWithT(t)

	set := pointmass.Spheres()
	for _, comp := range []forward.Component{forward.Gz, forward.Gxx, forward.Gyy, forward.Gzz} {
		g.Expect(set.Supports(comp)).To(BeTrue(), "missing %v", comp)
	}
	for _, comp := range []forward.Component{forward.Gxy, forward.Gxz, forward.Gyz} {
		g.Expect(set.Supports(comp)).To(BeFalse(), "unexpected %v", comp)
	}

	prisms := pointmass.Prisms()
	for _, comp := range []forward.Component{
		forward.Gz, forward.Gxx, forward.Gxy, forward.Gxz,
		forward.Gyy, forward.Gyz, forward.Gzz,
	} {
		g.Expect(prisms.Supports(comp)).To(BeTrue(), "missing %v", comp)
	}
}
