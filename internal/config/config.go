// Package config loads and saves synthetic-survey model descriptions in
// YAML: the observation region, how the points are distributed, which
// field component to compute, and the source bodies.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mtelles/gravsynth/internal/forward"
	"github.com/mtelles/gravsynth/internal/geometry"
	"github.com/mtelles/gravsynth/internal/gridder"
)

const (
	DefaultNX     = 25
	DefaultNY     = 25
	DefaultHeight = 150.0
	DefaultMode   = "regular"
	DefaultField  = "gz"
	DefaultX2     = 5000.0
	DefaultY2     = 5000.0
)

type Model struct {
	Region Region  `yaml:"region"`
	NX     int     `yaml:"nx"`
	NY     int     `yaml:"ny"`
	Mode   string  `yaml:"mode"`
	Height float64 `yaml:"height"`
	Field  string  `yaml:"field"`
	Seed   uint64  `yaml:"seed"`

	Prisms  []PrismSpec  `yaml:"prisms"`
	Spheres []SphereSpec `yaml:"spheres"`
}

type Region struct {
	X1 float64 `yaml:"x1"`
	X2 float64 `yaml:"x2"`
	Y1 float64 `yaml:"y1"`
	Y2 float64 `yaml:"y2"`
}

type PrismSpec struct {
	X1    float64 `yaml:"x1"`
	X2    float64 `yaml:"x2"`
	Y1    float64 `yaml:"y1"`
	Y2    float64 `yaml:"y2"`
	Z1    float64 `yaml:"z1"`
	Z2    float64 `yaml:"z2"`
	Value float64 `yaml:"value"`
}

type SphereSpec struct {
	XC      float64 `yaml:"xc"`
	YC      float64 `yaml:"yc"`
	ZC      float64 `yaml:"zc"`
	Radius  float64 `yaml:"radius"`
	Density float64 `yaml:"density"`
}

func DefaultModel() *Model {
	return &Model{
		Region: Region{X2: DefaultX2, Y2: DefaultY2},
		NX:     DefaultNX,
		NY:     DefaultNY,
		Mode:   DefaultMode,
		Height: DefaultHeight,
		Field:  DefaultField,
	}
}

func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m := DefaultModel()
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, err
	}
	return m, nil
}

func Save(path string, m *Model) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GridParams converts the model's region and distribution settings into
// gridder parameters, rejecting unknown modes.
func (m *Model) GridParams() (gridder.Params, error) {
	mode, err := gridder.ParseMode(m.Mode)
	if err != nil {
		return gridder.Params{}, err
	}
	return gridder.Params{
		X1: m.Region.X1, X2: m.Region.X2,
		Y1: m.Region.Y1, Y2: m.Region.Y2,
		NX: m.NX, NY: m.NY,
		Mode:   mode,
		Height: m.Height,
		Seed:   m.Seed,
	}, nil
}

// Component parses the model's field-component name.
func (m *Model) Component() (forward.Component, error) {
	return forward.ParseComponent(m.Field)
}

func (m *Model) PrismBodies() []geometry.Prism {
	out := make([]geometry.Prism, len(m.Prisms))
	for i, p := range m.Prisms {
		out[i] = geometry.Prism{
			X1: p.X1, X2: p.X2,
			Y1: p.Y1, Y2: p.Y2,
			Z1: p.Z1, Z2: p.Z2,
			Value: p.Value,
		}
	}
	return out
}

func (m *Model) SphereBodies() []geometry.Sphere {
	out := make([]geometry.Sphere, len(m.Spheres))
	for i, s := range m.Spheres {
		out[i] = geometry.Sphere{
			XC: s.XC, YC: s.YC, ZC: s.ZC,
			Radius:  s.Radius,
			Density: s.Density,
		}
	}
	return out
}
