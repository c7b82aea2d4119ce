package overlay

import (
	"encoding/binary"
	"hash/fnv"
	"image/color"
	"math/rand"
)

// FallbackColor is drawn for any track id the palette was never told about.
var FallbackColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}

// Palette maps track ids to stable draw colors. Colors derive from the id
// and the palette seed, so one run always paints a given id the same way,
// and two runs sharing a seed produce identical videos.
type Palette struct {
	seed   int64
	colors map[int]color.RGBA
}

// NewPalette creates an empty palette for the given seed.
func NewPalette(seed int64) *Palette {
	return &Palette{seed: seed, colors: make(map[int]color.RGBA)}
}

// Assign populates the table for every id. Ids already present keep their
// color; the table is not mutated after rendering starts.
func (p *Palette) Assign(ids []int) {
	for _, id := range ids {
		if _, ok := p.colors[id]; ok {
			continue
		}
		p.colors[id] = p.colorFor(id)
	}
}

func (p *Palette) colorFor(id int) color.RGBA {
	h := fnv.New64a()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(id))
	binary.LittleEndian.PutUint64(buf[8:], uint64(p.seed))
	h.Write(buf[:])

	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	return color.RGBA{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
		A: 255,
	}
}

// Color returns the assigned color for id, or FallbackColor when the id was
// never assigned. Lookups never fail.
func (p *Palette) Color(id int) color.RGBA {
	if c, ok := p.colors[id]; ok {
		return c
	}
	return FallbackColor
}

// Len returns the number of assigned ids.
func (p *Palette) Len() int { return len(p.colors) }
