package gen

import "sort"

// Fixed diamond dimensions for the isometric projection, in user units.
const (
	HalfTileWidth  = 14.0
	HalfTileHeight = 7.0
)

// LevelAssignment is one cell's discrete intensity level.
type LevelAssignment struct {
	Week, Day, Level int
}

// IsoCell is one projected grid cell: screen-space center plus block height.
type IsoCell struct {
	Week, Day, Level int
	Height           float64
	ScreenX, ScreenY float64
}

// Key returns the cell's grid coordinate key.
func (c IsoCell) Key() GridKey {
	return GridKey{Week: c.Week, Day: c.Day}
}

// HeightTable maps a level to its block height. Must be monotonically
// non-decreasing; index 0 is conventionally 0 (a flat water-capable tile).
type HeightTable []float64

// DefaultHeightTable returns the fixed height lookup for a scale.
func DefaultHeightTable(scale Scale) HeightTable {
	if scale == Scale100 {
		t := make(HeightTable, 100)
		for l := 1; l < 100; l++ {
			t[l] = 3.0 + float64(l-1)*0.32
		}
		return t
	}
	return HeightTable{0, 4, 7, 10, 13, 16, 20, 24, 29, 34}
}

func (t HeightTable) height(level int) float64 {
	if len(t) == 0 || level <= 0 {
		return 0
	}
	if level >= len(t) {
		level = len(t) - 1
	}
	return t[level]
}

// Project places every assignment on screen using the fixed diamond
// projection and returns the cells sorted back to front: ascending by
// week+day, ties broken by ascending week. Rendering in any other order
// produces visibly wrong overlap, so the sort is a correctness requirement
// of the painter's algorithm, not cosmetics.
func Project(assignments []LevelAssignment, heights HeightTable, originX, originY float64) []IsoCell {
	cells := make([]IsoCell, 0, len(assignments))
	for _, a := range assignments {
		cells = append(cells, IsoCell{
			Week:    a.Week,
			Day:     a.Day,
			Level:   a.Level,
			Height:  heights.height(a.Level),
			ScreenX: originX + float64(a.Week-a.Day)*HalfTileWidth,
			ScreenY: originY + float64(a.Week+a.Day)*HalfTileHeight,
		})
	}
	sort.SliceStable(cells, func(i, j int) bool {
		si := cells[i].Week + cells[i].Day
		sj := cells[j].Week + cells[j].Day
		if si != sj {
			return si < sj
		}
		return cells[i].Week < cells[j].Week
	})
	return cells
}
