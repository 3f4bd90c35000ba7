package geometry

import (
	"math"
	"testing"
)

func TestPrismValidate(t *testing.T) {
	tests := []struct {
		name    string
		p       Prism
		wantErr bool
	}{
		{"valid", Prism{X1: 0, X2: 1, Y1: 0, Y2: 1, Z1: 0, Z2: 1}, false},
		{"flat in x", Prism{X1: 1, X2: 1, Y1: 0, Y2: 1, Z1: 0, Z2: 1}, true},
		{"inverted y", Prism{X1: 0, X2: 1, Y1: 2, Y2: 1, Z1: 0, Z2: 1}, true},
		{"flat in z", Prism{X1: 0, X2: 1, Y1: 0, Y2: 1, Z1: 5, Z2: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPrismVolumeCenter(t *testing.T) {
	p := Prism{X1: -100, X2: 100, Y1: 0, Y2: 50, Z1: 10, Z2: 110}

	if got := p.Volume(); got != 200*50*100 {
		t.Errorf("Volume() = %v, want %v", got, 200*50*100)
	}

	x, y, z := p.Center()
	if x != 0 || y != 25 || z != 60 {
		t.Errorf("Center() = (%v, %v, %v), want (0, 25, 60)", x, y, z)
	}
}

func TestSphereValidate(t *testing.T) {
	if err := (Sphere{Radius: 10}).Validate(); err != nil {
		t.Errorf("valid sphere rejected: %v", err)
	}
	if err := (Sphere{Radius: 0}).Validate(); err == nil {
		t.Error("zero radius accepted")
	}
	if err := (Sphere{Radius: -3}).Validate(); err == nil {
		t.Error("negative radius accepted")
	}
}

func TestSphereMass(t *testing.T) {
	s := Sphere{Radius: 2, Density: 3}
	want := 3 * 4.0 / 3.0 * math.Pi * 8

	if got := s.Mass(); math.Abs(got-want) > 1e-12 {
		t.Errorf("Mass() = %v, want %v", got, want)
	}
}
