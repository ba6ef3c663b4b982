package gen

import "github.com/contribscape/contribscape/pkg/activity"

// Tier is the rarity class of a landmark building.
type Tier int

const (
	TierRare Tier = iota
	TierEpic
	TierLegendary
)

func (t Tier) String() string {
	switch t {
	case TierLegendary:
		return "legendary"
	case TierEpic:
		return "epic"
	default:
		return "rare"
	}
}

// BuildingType identifies a landmark structure variant.
type BuildingType string

var tierBuildings = map[Tier][]BuildingType{
	TierRare:      {"watchtower", "windmill", "shrine"},
	TierEpic:      {"castle", "cathedral", "lighthouse"},
	TierLegendary: {"wizard_tower", "dragon_spire", "world_tree"},
}

// TierConfig is the fixed admission configuration for one tier. The set of
// tiers is fixed at compile time; nothing mutates these at runtime.
type TierConfig struct {
	Tier        Tier
	MinLevel    int                       // gate 1: cell level floor (Scale10 units)
	MinRichness float64                   // gate 2: neighborhood richness floor
	BaseChance  float64                   // roll probability before bonuses
	StatsGate   func(activity.Stats) bool // gate 3: evaluated once per run
}

// tierConfigs is ordered highest rarity first; the selector attempts only
// the first tier whose stats gate passes.
var tierConfigs = []TierConfig{
	{
		Tier:        TierLegendary,
		MinLevel:    8,
		MinRichness: 0.65,
		BaseChance:  0.08,
		StatsGate: func(s activity.Stats) bool {
			return s.Total >= 1000 || s.LongestStreak >= 30
		},
	},
	{
		Tier:        TierEpic,
		MinLevel:    6,
		MinRichness: 0.45,
		BaseChance:  0.18,
		StatsGate: func(s activity.Stats) bool {
			return s.Total >= 400 || s.LongestStreak >= 14
		},
	},
	{
		Tier:        TierRare,
		MinLevel:    4,
		MinRichness: 0.25,
		BaseChance:  0.30,
		StatsGate: func(s activity.Stats) bool {
			return s.Total >= 100 || s.LongestStreak >= 7
		},
	},
}

const (
	// maxBuildings caps landmark placements per grid.
	maxBuildings = 3
	// minSpacing is the minimum Manhattan distance between two landmarks.
	minSpacing = 3
)

// PlacedEpicBuilding is one admitted landmark.
type PlacedEpicBuilding struct {
	Type             BuildingType
	Tier             Tier
	Week, Day        int
	CenterX, CenterY float64
}

// EpicResult carries the placements and the cells they occupy.
type EpicResult struct {
	Placed   []PlacedEpicBuilding
	Occupied map[GridKey]struct{}
}

// minLevelFor rescales a Scale10 gate floor onto the active scale.
func (tc TierConfig) minLevelFor(scale Scale) int {
	if scale == Scale10 {
		return tc.MinLevel
	}
	return tc.MinLevel * (scale.Max() + 1) / 10
}

// firstEligibleTier returns the highest-rarity tier whose stats gate
// passes. A single explicit lookup keeps the "one attempt per cell" rule
// auditable: cells never fall through to a lower tier after a failed roll.
func firstEligibleTier(stats activity.Stats) (TierConfig, bool) {
	for _, tc := range tierConfigs {
		if tc.StatsGate(stats) {
			return tc, true
		}
	}
	return TierConfig{}, false
}

// streakMultiplier is a uniform probability bonus for sustained activity.
func streakMultiplier(current int) float64 {
	switch {
	case current >= 30:
		return 1.5
	case current >= 14:
		return 1.3
	case current >= 7:
		return 1.15
	default:
		return 1.0
	}
}

// farEnough reports whether k keeps the minimum Manhattan spacing to every
// already-placed landmark.
func farEnough(placed []PlacedEpicBuilding, k GridKey) bool {
	for _, p := range placed {
		if absInt(k.Week-p.Week)+absInt(k.Day-p.Day) < minSpacing {
			return false
		}
	}
	return true
}

// SelectEpicBuildings runs the three-gate admission over a deterministically
// shuffled copy of the cells and places at most three landmarks. Degenerate
// inputs (no eligible tier, empty grid) yield zero placements, never an
// error.
func SelectEpicBuildings(cells []IsoCell, seed int64, stats activity.Stats, biome map[GridKey]BiomeContext, scale Scale) EpicResult {
	res := EpicResult{Occupied: make(map[GridKey]struct{})}

	tc, ok := firstEligibleTier(stats)
	if !ok {
		return res
	}
	minLevel := tc.minLevelFor(scale)
	mult := streakMultiplier(stats.CurrentStreak)

	rng := NewRand(DeriveSeed(seed, "epic"))
	shuffled := shuffleCells(cells, rng)
	idx := levelIndex(cells)

	for _, c := range shuffled {
		if len(res.Placed) >= maxBuildings {
			break
		}
		key := c.Key()
		if b := biome[key]; b.IsRiver || b.IsPond {
			continue
		}
		if !farEnough(res.Placed, key) {
			continue
		}
		if c.Level < minLevel {
			continue
		}
		rich := richnessAt(idx, key, scale.Max())
		if rich < tc.MinRichness {
			continue
		}

		bonus := (rich - tc.MinRichness) * 2
		if bonus > 0.5 {
			bonus = 0.5
		}
		chance := tc.BaseChance * (1 + bonus) * mult
		if rng.Next() >= chance {
			continue
		}

		variants := tierBuildings[tc.Tier]
		res.Placed = append(res.Placed, PlacedEpicBuilding{
			Type:    variants[rng.IntN(len(variants))],
			Tier:    tc.Tier,
			Week:    c.Week,
			Day:     c.Day,
			CenterX: c.ScreenX,
			CenterY: c.ScreenY - c.Height,
		})
		res.Occupied[key] = struct{}{}
	}
	return res
}

// shuffleCells is a seeded Fisher-Yates over a copy; the input order is
// left untouched.
func shuffleCells(cells []IsoCell, rng *Rand) []IsoCell {
	out := make([]IsoCell, len(cells))
	copy(out, cells)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
