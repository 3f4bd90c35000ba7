// Package gridder builds sets of observation coordinates over a
// rectangular region, either on a regular lattice or uniformly
// scattered at random. The resulting ObservationSet is what the
// forward-modeling routines consume.
package gridder

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Mode selects how observation points are distributed over the region.
type Mode int

const (
	// Regular places points on an evenly spaced lattice, both region
	// endpoints included.
	Regular Mode = iota
	// Random draws points uniformly from the region.
	Random
)

func (m Mode) String() string {
	switch m {
	case Regular:
		return "regular"
	case Random:
		return "random"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts the string form used in configuration files.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "regular":
		return Regular, nil
	case "random":
		return Random, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// ObservationSet is an ordered sequence of observation points. X, Y and
// Z always have the same length. Grid is true when the points form a
// regular lattice, in which case NX and NY record the point counts
// along each axis and the ordering is row-major: all x for the first y,
// then all x for the second y, and so on.
type ObservationSet struct {
	X, Y, Z []float64

	Grid   bool
	NX, NY int
}

// Len returns the number of observation points.
func (o *ObservationSet) Len() int { return len(o.X) }

// Params describes the region and distribution of observation points.
//
// Height is the elevation of the points above the sources; the z
// coordinate of every point is set to -Height (z is positive downward,
// so points above the bodies sit at negative z). Heights, when
// non-nil, supplies one elevation per point instead and must have
// NX*NY entries.
//
// Seed drives the uniform sampling in Random mode. A zero Seed is
// replaced by the current time.
type Params struct {
	X1, X2 float64
	Y1, Y2 float64
	NX, NY int

	Mode Mode

	Height  float64
	Heights []float64

	Seed uint64
}

// Build generates an ObservationSet from p. It validates p eagerly and
// returns without side effects on any error.
//
// To generate a 1-D profile along x, set NY=1; every point then shares
// y = Y1, in Random mode included.
func Build(p Params) (*ObservationSet, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	n := p.NX * p.NY
	obs := &ObservationSet{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
	}

	switch p.Mode {
	case Regular:
		fillRegular(obs, p)
	case Random:
		fillRandom(obs, p)
	}

	if p.Heights != nil {
		for i, h := range p.Heights {
			obs.Z[i] = -h
		}
	} else {
		for i := range obs.Z {
			obs.Z[i] = -p.Height
		}
	}

	return obs, nil
}

func validate(p Params) error {
	if p.NX < 1 || p.NY < 1 {
		return fmt.Errorf("%w: nx=%d ny=%d", ErrBadShape, p.NX, p.NY)
	}
	switch p.Mode {
	case Regular:
		// The lattice spacing is (x2-x1)/(nx-1), so a regular grid
		// needs at least two points along x.
		if p.NX < 2 {
			return fmt.Errorf("%w: regular grid needs nx >= 2, got %d", ErrBadShape, p.NX)
		}
	case Random:
	default:
		return fmt.Errorf("%w: %v", ErrInvalidMode, p.Mode)
	}
	if p.Heights != nil && len(p.Heights) != p.NX*p.NY {
		return fmt.Errorf("%w: got %d, want %d", ErrHeightLength, len(p.Heights), p.NX*p.NY)
	}
	return nil
}

// fillRegular lays out the lattice row-major: outer loop over y, inner
// loop over x. floats.Span guarantees both interval endpoints appear
// exactly, where naive step accumulation could stop short of x2.
func fillRegular(obs *ObservationSet, p Params) {
	xs := floats.Span(make([]float64, p.NX), p.X1, p.X2)

	ys := []float64{p.Y1}
	if p.NY > 1 {
		ys = floats.Span(make([]float64, p.NY), p.Y1, p.Y2)
	}

	i := 0
	for _, y := range ys {
		for _, x := range xs {
			obs.X[i] = x
			obs.Y[i] = y
			i++
		}
	}

	obs.Grid = true
	obs.NX = p.NX
	obs.NY = p.NY
}

func fillRandom(obs *ObservationSet, p Params) {
	seed := p.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := rand.NewSource(seed)

	ux := distuv.Uniform{Min: p.X1, Max: p.X2, Src: src}
	for i := range obs.X {
		obs.X[i] = ux.Rand()
	}

	if p.NY > 1 {
		uy := distuv.Uniform{Min: p.Y1, Max: p.Y2, Src: src}
		for i := range obs.Y {
			obs.Y[i] = uy.Rand()
		}
	} else {
		for i := range obs.Y {
			obs.Y[i] = p.Y1
		}
	}
}
