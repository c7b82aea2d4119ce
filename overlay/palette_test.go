package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorStableWithinRun(t *testing.T) {
	p := NewPalette(0)
	p.Assign([]int{1, 2, 3})

	first := p.Color(2)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, p.Color(2))
	}
}

func TestSameSeedReproduces(t *testing.T) {
	ids := []int{1, 5, 9, 42}

	a := NewPalette(7)
	a.Assign(ids)
	b := NewPalette(7)
	b.Assign(ids)

	for _, id := range ids {
		assert.Equal(t, a.Color(id), b.Color(id), "id %d", id)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	ids := make([]int, 50)
	for i := range ids {
		ids[i] = i + 1
	}

	a := NewPalette(1)
	a.Assign(ids)
	b := NewPalette(2)
	b.Assign(ids)

	same := 0
	for _, id := range ids {
		if a.Color(id) == b.Color(id) {
			same++
		}
	}
	assert.Less(t, same, len(ids), "seeds 1 and 2 produced identical palettes")
}

func TestFallbackColorForUnknownID(t *testing.T) {
	p := NewPalette(0)
	p.Assign([]int{1, 2})

	assert.Equal(t, FallbackColor, p.Color(99))
}

func TestAssignKeepsExistingColors(t *testing.T) {
	p := NewPalette(0)
	p.Assign([]int{3})
	c := p.Color(3)

	p.Assign([]int{3, 4})
	assert.Equal(t, c, p.Color(3))
	require.Equal(t, 2, p.Len())
}
