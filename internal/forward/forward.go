// Package forward accumulates synthetic gravity-field observations from
// geometric source bodies. Given an observation set, a list of bodies
// and a field component, it sums every body's analytic contribution at
// every point. The analytic formulas are supplied by the caller through
// a formula set; this package only orchestrates the summation.
package forward

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mtelles/gravsynth/internal/geometry"
	"github.com/mtelles/gravsynth/internal/gridder"
)

// FieldData holds one computed field value per observation point,
// alongside copies of the point coordinates and the grid metadata of
// the observation set it was computed from. StdErr is a zero-filled
// placeholder kept for compatibility with downstream consumers that
// expect an error estimate per value.
type FieldData struct {
	X, Y, Z []float64
	Value   []float64
	StdErr  []float64

	Grid   bool
	NX, NY int
}

// Len returns the number of field values.
func (d *FieldData) Len() int { return len(d.Value) }

type options struct {
	log *zap.Logger
}

// Option configures an accumulation call.
type Option func(*options)

// WithLogger attaches a logger for advisory progress messages (point
// and body counts, timing). The messages carry no contract.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

func buildOptions(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// FromPrisms computes the comp component of the summed field of prisms
// at every point of obs, using the formulas in set. The accumulation is
// independent per point and commutative over the body list; an empty
// list yields zero everywhere.
//
// Observation points coinciding with a prism face can hit singularities
// in the analytic formulas; whatever the formula returns there is
// passed through unchanged.
func FromPrisms(obs *gridder.ObservationSet, prisms []geometry.Prism, comp Component, set *PrismSet, opts ...Option) (*FieldData, error) {
	if set == nil {
		return nil, fmt.Errorf("%w: prism set", ErrNilFormulaSet)
	}
	fn, err := set.lookup(comp)
	if err != nil {
		return nil, err
	}
	if err := checkCoordinates(obs); err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	start := time.Now()

	data := newFieldData(obs)
	for i := range data.Value {
		x, y, z := obs.X[i], obs.Y[i], obs.Z[i]
		var v float64
		for _, p := range prisms {
			v += fn(p.Value, p.X1, p.X2, p.Y1, p.Y2, p.Z1, p.Z2, x, y, z)
		}
		data.Value[i] = v
	}

	o.log.Info("synthetic prism data generated",
		zap.Stringer("component", comp),
		zap.Int("points", data.Len()),
		zap.Int("prisms", len(prisms)),
		zap.Bool("grid", data.Grid),
		zap.Duration("elapsed", time.Since(start)))

	return data, nil
}

// FromSpheres computes the comp component of the summed field of
// spheres at every point of obs, using the formulas in set. It is a
// pure function: obs is read, never written, and the result is a fresh
// FieldData.
func FromSpheres(obs *gridder.ObservationSet, spheres []geometry.Sphere, comp Component, set *SphereSet, opts ...Option) (*FieldData, error) {
	if set == nil {
		return nil, fmt.Errorf("%w: sphere set", ErrNilFormulaSet)
	}
	fn, err := set.lookup(comp)
	if err != nil {
		return nil, err
	}
	if err := checkCoordinates(obs); err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	start := time.Now()

	data := newFieldData(obs)
	for i := range data.Value {
		x, y, z := obs.X[i], obs.Y[i], obs.Z[i]
		var v float64
		for _, s := range spheres {
			v += fn(s.Density, s.Radius, s.XC, s.YC, s.ZC, x, y, z)
		}
		data.Value[i] = v
	}

	o.log.Info("synthetic sphere data generated",
		zap.Stringer("component", comp),
		zap.Int("points", data.Len()),
		zap.Int("spheres", len(spheres)),
		zap.Bool("grid", data.Grid),
		zap.Duration("elapsed", time.Since(start)))

	return data, nil
}

func checkCoordinates(obs *gridder.ObservationSet) error {
	if obs == nil {
		return fmt.Errorf("%w: nil observation set", ErrMissingCoordinate)
	}
	if obs.X == nil {
		return fmt.Errorf("%w: x", ErrMissingCoordinate)
	}
	if obs.Y == nil {
		return fmt.Errorf("%w: y", ErrMissingCoordinate)
	}
	if obs.Z == nil {
		return fmt.Errorf("%w: z", ErrMissingCoordinate)
	}
	if len(obs.Y) != len(obs.X) || len(obs.Z) != len(obs.X) {
		return fmt.Errorf("%w: x=%d y=%d z=%d", ErrLengthMismatch, len(obs.X), len(obs.Y), len(obs.Z))
	}
	return nil
}

// newFieldData copies the coordinates out of obs so the result stays
// valid even if the caller reuses the observation set's slices.
func newFieldData(obs *gridder.ObservationSet) *FieldData {
	n := obs.Len()
	d := &FieldData{
		X:      make([]float64, n),
		Y:      make([]float64, n),
		Z:      make([]float64, n),
		Value:  make([]float64, n),
		StdErr: make([]float64, n),
		Grid:   obs.Grid,
		NX:     obs.NX,
		NY:     obs.NY,
	}
	copy(d.X, obs.X)
	copy(d.Y, obs.Y)
	copy(d.Z, obs.Z)
	return d
}
