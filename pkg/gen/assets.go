package gen

// AssetType identifies a decorative asset the renderer knows how to draw.
type AssetType string

const (
	AssetGrass    AssetType = "grass"
	AssetFlower   AssetType = "flower"
	AssetMushroom AssetType = "mushroom"
	AssetBush     AssetType = "bush"
	AssetTree     AssetType = "tree"
	AssetPine     AssetType = "pine"
	AssetRock     AssetType = "rock"
	AssetCrystal  AssetType = "crystal"
)

// PlacedAsset is one decoration anchored to a cell. A cell carries zero,
// one, or two of these.
type PlacedAsset struct {
	Cell             GridKey
	Type             AssetType
	CenterX, CenterY float64
	OffsetX, OffsetY float64
}

// richnessBonus is the maximum boost richness adds to the placement chance:
// up to +20 percentage points at richness 1. Empirically tuned; do not
// round-trip it with the landmark bonus formula, the two are intentionally
// different.
const richnessBonus = 0.20

// bonusAssetChance gates the independent draw for a second asset on rich,
// high-level cells.
const bonusAssetChance = 0.35

type assetPool struct {
	types      []AssetType
	weights    []int
	baseChance float64
}

// Decoration pools by level band. Low levels get sparse meadow scatter,
// high levels dense forest and showpieces.
var (
	poolLow  = assetPool{types: []AssetType{AssetGrass, AssetFlower}, weights: []int{3, 1}, baseChance: 0.15}
	poolMid  = assetPool{types: []AssetType{AssetBush, AssetTree, AssetFlower, AssetMushroom}, weights: []int{3, 3, 1, 1}, baseChance: 0.30}
	poolHigh = assetPool{types: []AssetType{AssetTree, AssetPine, AssetRock}, weights: []int{4, 3, 1}, baseChance: 0.45}
	poolPeak = assetPool{types: []AssetType{AssetPine, AssetTree, AssetCrystal}, weights: []int{4, 2, 1}, baseChance: 0.60}
)

func poolForLevel(level, maxLevel int) (assetPool, bool) {
	if level <= 0 || maxLevel <= 0 {
		return assetPool{}, false
	}
	r := float64(level) / float64(maxLevel)
	switch {
	case r <= 0.3:
		return poolLow, true
	case r <= 0.6:
		return poolMid, true
	case r <= 0.85:
		return poolHigh, true
	default:
		return poolPeak, true
	}
}

func (p assetPool) pick(rng *Rand) AssetType {
	total := 0
	for _, w := range p.weights {
		total += w
	}
	roll := rng.IntN(total)
	for i, w := range p.weights {
		if roll < w {
			return p.types[i]
		}
		roll -= w
	}
	return p.types[len(p.types)-1]
}

// levelIndex builds the neighbor-lookup map richness reads from.
func levelIndex(cells []IsoCell) map[GridKey]int {
	idx := make(map[GridKey]int, len(cells))
	for _, c := range cells {
		idx[c.Key()] = c.Level
	}
	return idx
}

// richnessAt averages the levels of the up-to-8 grid neighbors present in
// idx, normalized by the scale maximum. No neighbors means richness 0.
func richnessAt(idx map[GridKey]int, at GridKey, maxLevel int) float64 {
	sum, n := 0, 0
	for dw := -1; dw <= 1; dw++ {
		for dd := -1; dd <= 1; dd++ {
			if dw == 0 && dd == 0 {
				continue
			}
			if lvl, ok := idx[GridKey{Week: at.Week + dw, Day: at.Day + dd}]; ok {
				sum += lvl
				n++
			}
		}
	}
	if n == 0 || maxLevel <= 0 {
		return 0
	}
	return float64(sum) / float64(n) / float64(maxLevel)
}

// PlaceAssets decorates cells stochastically. The random stream is consumed
// strictly in cell-iteration order, so a fixed seed replays the exact same
// decisions against the same cells. Callers wanting water-free decoration
// exclude river/pond cells from the input; the placer itself does not
// special-case biome.
func PlaceAssets(cells []IsoCell, biome map[GridKey]BiomeContext, seed int64, scale Scale) []PlacedAsset {
	rng := NewRand(DeriveSeed(seed, "assets"))
	idx := levelIndex(cells)
	maxLevel := scale.Max()

	var placed []PlacedAsset
	for _, c := range cells {
		pool, ok := poolForLevel(c.Level, maxLevel)
		if !ok {
			continue
		}
		rich := richnessAt(idx, c.Key(), maxLevel)
		chance := pool.baseChance + rich*richnessBonus

		if rng.Next() >= chance {
			continue
		}
		placed = append(placed, newAsset(c, pool.pick(rng), rng))

		// A second asset only on rich, high-level cells, decided by an
		// independent draw from the same stream.
		if rich > 0.5 && float64(c.Level) >= 0.7*float64(maxLevel) && rng.Next() < bonusAssetChance {
			placed = append(placed, newAsset(c, pool.pick(rng), rng))
		}
	}
	return placed
}

func newAsset(c IsoCell, t AssetType, rng *Rand) PlacedAsset {
	return PlacedAsset{
		Cell:    c.Key(),
		Type:    t,
		CenterX: c.ScreenX,
		CenterY: c.ScreenY - c.Height,
		OffsetX: (rng.Next() - 0.5) * HalfTileWidth,
		OffsetY: (rng.Next() - 0.5) * HalfTileHeight,
	}
}
