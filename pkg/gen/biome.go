package gen

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GridKey identifies one calendar cell by week column and day row.
type GridKey struct {
	Week, Day int
}

// BiomeContext is the per-cell biome produced once per grid and read by
// the asset placer, the landmark selector, and the renderer for tinting.
type BiomeContext struct {
	IsRiver       bool
	IsPond        bool
	ForestDensity float64 // [0,1], spatially clustered
	NearWater     bool    // a 4-connected neighbor is river or pond
}

const (
	riverCount = 2
	maxPonds   = 12

	riverFreq  = 0.35
	forestFreq = 0.18
)

// BiomeGenerator synthesizes rivers, ponds, and forest density over the
// grid from seeded coherent noise channels.
type BiomeGenerator struct {
	river  opensimplex.Noise
	forest opensimplex.Noise
}

// NewBiomeGenerator creates a BiomeGenerator. The river and forest channels
// are salted independently so their fields cannot correlate.
func NewBiomeGenerator(seed int64) *BiomeGenerator {
	return &BiomeGenerator{
		river:  opensimplex.New(DeriveSeed(seed, "river")),
		forest: opensimplex.NewNormalized(DeriveSeed(seed, "forest")),
	}
}

// GenerateBiome produces the full biome map for a weeks×days grid.
// Deterministic for fixed inputs; a zero-sized grid yields an empty map.
func GenerateBiome(weeks, days int, seed int64) map[GridKey]BiomeContext {
	return NewBiomeGenerator(seed).Generate(weeks, days)
}

// Generate covers every cell of the grid exactly once.
func (bg *BiomeGenerator) Generate(weeks, days int) map[GridKey]BiomeContext {
	m := make(map[GridKey]BiomeContext, weeks*days)
	if weeks <= 0 || days <= 0 {
		return m
	}

	grid := make([][]BiomeContext, weeks)
	for w := range grid {
		grid[w] = make([]BiomeContext, days)
	}

	ponds := 0
	for i := 0; i < riverCount; i++ {
		ponds = bg.traceRiver(grid, weeks, days, i, ponds)
	}

	for w := 0; w < weeks; w++ {
		for d := 0; d < days; d++ {
			grid[w][d].ForestDensity = bg.forestDensity(w, d)
			grid[w][d].NearWater = nearWater(grid, weeks, days, w, d)
			m[GridKey{Week: w, Day: d}] = grid[w][d]
		}
	}
	return m
}

// traceRiver walks the grid left to right, perturbing the day position with
// coherent noise so the path meanders instead of scattering. Vertical steps
// between columns are filled so every river is a 4-connected path. Ponds are
// budgeted across rivers; the running count is threaded through and returned.
func (bg *BiomeGenerator) traceRiver(grid [][]BiomeContext, weeks, days, idx, ponds int) int {
	center := float64(days-1) / 2
	amp := float64(days) / 2

	prev := -1
	prevDir := 0
	for w := 0; w < weeks; w++ {
		n := bg.river.Eval2(float64(w)*riverFreq, float64(idx)*57.31)
		d := int(math.Round(center + n*amp))
		if d < 0 {
			d = 0
		}
		if d > days-1 {
			d = days - 1
		}

		if prev < 0 {
			grid[w][d].IsRiver = true
		} else {
			// Mark the whole vertical span so consecutive columns stay
			// 4-connected.
			step := 1
			if d < prev {
				step = -1
			}
			for dd := prev; ; dd += step {
				grid[w][dd].IsRiver = true
				if dd == d {
					break
				}
			}

			dir := sign(d - prev)
			if dir != 0 && prevDir != 0 && dir != prevDir && ponds < maxPonds {
				// Inflection point: the bend pools into a pond bulge.
				grid[w][d].IsPond = true
				ponds++
			}
			if dir != 0 {
				prevDir = dir
			}
		}
		prev = d
	}
	return ponds
}

// forestDensity samples the clustered forest channel; the normalized noise
// already lands in [0,1), clamped defensively at the edges.
func (bg *BiomeGenerator) forestDensity(w, d int) float64 {
	v := bg.forest.Eval2(float64(w)*forestFreq, float64(d)*forestFreq)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func nearWater(grid [][]BiomeContext, weeks, days, w, d int) bool {
	for _, n := range [4][2]int{{w - 1, d}, {w + 1, d}, {w, d - 1}, {w, d + 1}} {
		nw, nd := n[0], n[1]
		if nw < 0 || nw >= weeks || nd < 0 || nd >= days {
			continue
		}
		if grid[nw][nd].IsRiver || grid[nw][nd].IsPond {
			return true
		}
	}
	return false
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
