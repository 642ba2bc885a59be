package systems

import "math"

// PetalParams are the constants of the petal animation. The GPU program receives the
// same values as uniforms once at load time; only the elapsed time changes per frame.
type PetalParams struct {
	CycleRate   float64 // cycles per second (0.25 = 4 second period)
	RiseHeight  float64 // vertical travel over one cycle
	BloomStart  float64 // cycle fraction where horizontal bloom begins
	BloomEnd    float64 // cycle fraction where bloom reaches 1
	BloomSpread float64 // extra horizontal scale at full bloom
	Size        float64 // sprite edge length in world units
	ColorStart  [3]float64
	ColorEnd    [3]float64
}

// DefaultPetalParams returns the stock animation constants.
func DefaultPetalParams() PetalParams {
	return PetalParams{
		CycleRate:   0.25,
		RiseHeight:  4.0,
		BloomStart:  0.6,
		BloomEnd:    1.0,
		BloomSpread: 1.5,
		Size:        0.08,
		ColorStart:  [3]float64{1.0, 0.7, 0.8},
		ColorEnd:    [3]float64{1.0, 0.8, 0.9},
	}
}

// Period returns the length of one rise cycle in seconds.
func (p PetalParams) Period() float64 {
	return 1 / p.CycleRate
}

// Smoothstep is the cubic Hermite ease: x clamped to [a,b], normalized to u, u²(3-2u).
func Smoothstep(a, b, x float64) float64 {
	u := clamp01((x - a) / (b - a))
	return u * u * (3 - 2*u)
}

// CyclePos returns the sawtooth position in [0,1) of a particle with the given phase
// offset at elapsed time t.
func (p PetalParams) CyclePos(elapsed, offset float64) float64 {
	return fract((elapsed + offset) * p.CycleRate)
}

// Bloom returns the horizontal bloom factor for a cycle position.
func (p PetalParams) Bloom(cyclePos float64) float64 {
	return Smoothstep(p.BloomStart, p.BloomEnd, cyclePos)
}

// Displace returns the rendered position of a particle. It matches the vertex stage of
// the petal program.
func (p PetalParams) Displace(x, y, z, offset, elapsed float64) (dx, dy, dz float64) {
	c := p.CyclePos(elapsed, offset)
	scale := 1 + p.Bloom(c)*p.BloomSpread
	return x * scale, y + c*p.RiseHeight, z * scale
}

// Color returns the interior sprite color for a cycle position.
func (p PetalParams) Color(cyclePos float64) [3]float64 {
	var out [3]float64
	for i := range out {
		out[i] = lerp(p.ColorStart[i], p.ColorEnd[i], cyclePos)
	}
	return out
}

// SpriteVisible reports whether a sprite-local coordinate in [0,1]² survives the
// circular cutout. Anything farther than 0.5 from the center is discarded.
func SpriteVisible(u, v float64) bool {
	return math.Hypot(u-0.5, v-0.5) <= 0.5
}
