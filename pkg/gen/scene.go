package gen

import "github.com/contribscape/contribscape/pkg/activity"

// Scene is the full output contract handed to the renderer: projected cells
// in draw order, the biome map, decorations, landmarks, and the cells the
// landmarks occupy. Built fresh on every call, never mutated afterward.
type Scene struct {
	Cells     []IsoCell
	Biome     map[GridKey]BiomeContext
	Assets    []PlacedAsset
	Buildings []PlacedEpicBuilding
	Occupied  map[GridKey]struct{}
	Stats     activity.Stats
	Scale     Scale
}

// Options tune the layout; the zero value is not useful, use
// DefaultOptions.
type Options struct {
	Scale            Scale
	OriginX, OriginY float64
	Heights          HeightTable
}

// DefaultOptions centers a weeks×7 grid with the standard height table.
func DefaultOptions(scale Scale) Options {
	return Options{
		Scale:   scale,
		OriginX: float64(activity.DaysPerWeek) * HalfTileWidth,
		OriginY: HalfTileHeight * 4,
		Heights: DefaultHeightTable(scale),
	}
}

// BuildScene runs the whole pipeline in stage order. Two calls with the
// same calendar, stats, and seed produce identical scenes; nothing here
// reads process-wide state.
func BuildScene(cal *activity.Calendar, stats activity.Stats, seed int64, opts Options) *Scene {
	maxCount := activity.MaxCount(cal)

	assignments := make([]LevelAssignment, 0, len(cal.Weeks)*activity.DaysPerWeek)
	for wi, w := range cal.Weeks {
		for di, d := range w.Days {
			assignments = append(assignments, LevelAssignment{
				Week:  wi,
				Day:   di,
				Level: Level(d.Count, maxCount, opts.Scale),
			})
		}
	}

	biome := GenerateBiome(len(cal.Weeks), activity.DaysPerWeek, seed)
	cells := Project(assignments, opts.Heights, opts.OriginX, opts.OriginY)

	// Decoration stays off the water: river and pond cells are excluded
	// before the placer runs.
	land := make([]IsoCell, 0, len(cells))
	for _, c := range cells {
		if b := biome[c.Key()]; b.IsRiver || b.IsPond {
			continue
		}
		land = append(land, c)
	}
	assets := PlaceAssets(land, biome, seed, opts.Scale)

	epic := SelectEpicBuildings(cells, seed, stats, biome, opts.Scale)

	return &Scene{
		Cells:     cells,
		Biome:     biome,
		Assets:    assets,
		Buildings: epic.Placed,
		Occupied:  epic.Occupied,
		Stats:     stats,
		Scale:     opts.Scale,
	}
}
