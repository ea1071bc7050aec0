package dynamics

import (
	"math"

	"github.com/sphere-md/davis/geom"
)

// Cells is a linked-cell grid over the axis-aligned box [-1,1]³, which
// embeds the unit sphere. Each head entry is either -1 (empty cell) or
// the index of the first particle in that cell; further particles in the
// same cell are threaded through Particle.Next, terminated by -1.
//
// The cutoff used with CalcForces must not exceed Dr, the cell edge
// length, or pairs will be silently dropped. See
// https://en.wikipedia.org/wiki/Cell_lists
type Cells struct {
	geom.Grid
	Dr    float64
	Heads []int
}

// NewCells returns a cell grid with binning cells per side. The box is
// 2.0 wide, not 1.0, because it embeds the sphere of radius 1.
func NewCells(binning int) *Cells {
	c := &Cells{Dr: 2.0 / float64(binning)}
	c.Grid.Init(binning)
	c.Heads = make([]int, c.Volume)
	c.Clear()
	return c
}

// Clear marks every cell as empty.
func (c *Cells) Clear() {
	for i := range c.Heads {
		c.Heads[i] = -1
	}
}

// Populate clears the grid and rebuilds the cell lists from the particle
// positions. After it returns, the lists rooted at the heads partition
// the index range [0, len(ps)). List order is reverse insertion order;
// callers may only rely on the partition property.
func (c *Cells) Populate(ps []Particle) {
	c.Clear()
	L := c.Length
	for i := range ps {
		p := &ps[i]
		// A coordinate of exactly +1 would otherwise land in bin L.
		bx := clampBin(int(math.Floor((p.R[0]+1.0)/c.Dr)), L)
		by := clampBin(int(math.Floor((p.R[1]+1.0)/c.Dr)), L)
		bz := clampBin(int(math.Floor((p.R[2]+1.0)/c.Dr)), L)

		idx := c.Idx(bx, by, bz)
		p.Next = c.Heads[idx]
		c.Heads[idx] = i
	}
}

func clampBin(b, L int) int {
	if b < 0 {
		return 0
	}
	if b >= L {
		return L - 1
	}
	return b
}
