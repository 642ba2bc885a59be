package geometry

// ParticleSource exposes per-particle initial state. systems.Field implements it.
type ParticleSource interface {
	Count() int
	Position(i int) (x, y, z float32)
	Offset(i int) float32
}

// spriteCorners are the sprite-local coordinates of a quad, counter-clockwise.
var spriteCorners = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// SpriteBatches expands particles into camera-facing quads. Every quad's four
// vertices sit at the particle center; the corner goes in TexCoords and the phase
// offset in TexCoords2.x, so the vertex program can billboard and animate them.
// Particles are split into meshes of at most maxPerBatch (capped at MaxSpriteBatch).
func SpriteBatches(src ParticleSource, maxPerBatch int) []*Mesh {
	if maxPerBatch <= 0 || maxPerBatch > MaxSpriteBatch {
		maxPerBatch = MaxSpriteBatch
	}

	n := src.Count()
	var batches []*Mesh
	for start := 0; start < n; start += maxPerBatch {
		end := min(start+maxPerBatch, n)
		batches = append(batches, spriteBatch(src, start, end))
	}
	return batches
}

func spriteBatch(src ParticleSource, start, end int) *Mesh {
	count := end - start
	m := &Mesh{
		Vertices:   make([]float32, 0, count*4*3),
		TexCoords:  make([]float32, 0, count*4*2),
		TexCoords2: make([]float32, 0, count*4*2),
		Indices:    make([]uint16, 0, count*6),
	}

	for i := start; i < end; i++ {
		x, y, z := src.Position(i)
		offset := src.Offset(i)
		base := uint16((i - start) * 4)

		for _, c := range spriteCorners {
			m.Vertices = append(m.Vertices, x, y, z)
			m.TexCoords = append(m.TexCoords, c[0], c[1])
			m.TexCoords2 = append(m.TexCoords2, offset, 0)
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}
