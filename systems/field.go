package systems

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Distribution selects how particle radii are sampled on the ground disc.
type Distribution uint8

const (
	// DistributionLinear samples r = U(0,R). Uniform in radius, so density per unit
	// area falls off toward the edge relative to an area-uniform disc.
	DistributionLinear Distribution = iota
	// DistributionAreaUniform samples r = R*sqrt(U(0,1)).
	DistributionAreaUniform
)

// String returns the config name of the distribution.
func (d Distribution) String() string {
	switch d {
	case DistributionLinear:
		return "linear"
	case DistributionAreaUniform:
		return "area_uniform"
	}
	return "unknown"
}

// FieldParams controls initial particle placement.
type FieldParams struct {
	Count        int
	Radius       float32 // disc radius around the trunk base
	MaxHeight    float32 // initial y is drawn from [0, MaxHeight)
	MaxOffset    float32 // phase offset is drawn from [0, MaxOffset)
	Distribution Distribution
}

// DefaultFieldParams returns the stock petal field.
func DefaultFieldParams() FieldParams {
	return FieldParams{
		Count:     10000,
		Radius:    2.5,
		MaxHeight: 0.2,
		MaxOffset: 10,
	}
}

// Field holds the immutable initial state of every particle as parallel flat buffers:
// three floats of position and one float of phase offset per particle.
type Field struct {
	params    FieldParams
	positions []float32
	offsets   []float32
}

// NewField samples a particle field. Draw order per particle is radius, angle, height,
// offset, so a seeded rng reproduces the same buffers.
func NewField(rng *rand.Rand, p FieldParams) *Field {
	f := &Field{
		params:    p,
		positions: make([]float32, p.Count*3),
		offsets:   make([]float32, p.Count),
	}

	for i := 0; i < p.Count; i++ {
		var r float64
		switch p.Distribution {
		case DistributionAreaUniform:
			r = float64(p.Radius) * math.Sqrt(rng.Float64())
		default:
			r = rng.Float64() * float64(p.Radius)
		}
		a := rng.Float64() * 2 * math.Pi

		f.positions[i*3] = float32(math.Cos(a) * r)
		f.positions[i*3+1] = float32(rng.Float64() * float64(p.MaxHeight))
		f.positions[i*3+2] = float32(math.Sin(a) * r)

		f.offsets[i] = float32(rng.Float64() * float64(p.MaxOffset))
	}

	// Rounding to float32 can land exactly on the open upper bound.
	for i := range f.offsets {
		if f.offsets[i] >= p.MaxOffset {
			f.offsets[i] = math.Nextafter32(p.MaxOffset, 0)
		}
	}
	for i := 1; i < len(f.positions); i += 3 {
		if f.positions[i] >= p.MaxHeight {
			f.positions[i] = math.Nextafter32(p.MaxHeight, 0)
		}
	}

	return f
}

// Count returns the number of particles.
func (f *Field) Count() int {
	return f.params.Count
}

// Params returns the parameters the field was generated with.
func (f *Field) Params() FieldParams {
	return f.params
}

// Position returns the initial position of particle i.
func (f *Field) Position(i int) (x, y, z float32) {
	return f.positions[i*3], f.positions[i*3+1], f.positions[i*3+2]
}

// Offset returns the phase offset of particle i.
func (f *Field) Offset(i int) float32 {
	return f.offsets[i]
}

// PositionBuffer returns a copy of the position buffer (x0,y0,z0,x1,...).
func (f *Field) PositionBuffer() []float32 {
	out := make([]float32, len(f.positions))
	copy(out, f.positions)
	return out
}

// OffsetBuffer returns a copy of the phase offset buffer.
func (f *Field) OffsetBuffer() []float32 {
	out := make([]float32, len(f.offsets))
	copy(out, f.offsets)
	return out
}

// FieldStats summarises a field's spatial distribution.
type FieldStats struct {
	Count        int
	MeanRadius   float64
	StdRadius    float64
	MaxRadius    float64
	MeanHeight   float64
	MaxHeight    float64
	MeanOffset   float64
	StdOffset    float64
	MedianRadius float64
}

// Stats computes summary statistics over the field.
func (f *Field) Stats() FieldStats {
	n := f.Count()
	if n == 0 {
		return FieldStats{}
	}
	radii := make([]float64, n)
	heights := make([]float64, n)
	offsets := make([]float64, n)

	var maxR, maxH float64
	for i := 0; i < n; i++ {
		x, y, z := f.Position(i)
		r := math.Hypot(float64(x), float64(z))
		radii[i] = r
		heights[i] = float64(y)
		offsets[i] = float64(f.offsets[i])
		maxR = math.Max(maxR, r)
		maxH = math.Max(maxH, float64(y))
	}

	s := FieldStats{Count: n, MaxRadius: maxR, MaxHeight: maxH}
	s.MeanRadius, s.StdRadius = stat.MeanStdDev(radii, nil)
	s.MeanHeight = stat.Mean(heights, nil)
	s.MeanOffset, s.StdOffset = stat.MeanStdDev(offsets, nil)

	sorted := append([]float64(nil), radii...)
	sort.Float64s(sorted)
	s.MedianRadius = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	return s
}
