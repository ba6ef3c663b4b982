package gen

import "testing"

func gridAssignments(weeks, days, level int) []LevelAssignment {
	var out []LevelAssignment
	for w := 0; w < weeks; w++ {
		for d := 0; d < days; d++ {
			out = append(out, LevelAssignment{Week: w, Day: d, Level: level})
		}
	}
	return out
}

func TestProjectFormula(t *testing.T) {
	heights := DefaultHeightTable(Scale10)
	cells := Project([]LevelAssignment{{Week: 3, Day: 2, Level: 5}}, heights, 100, 50)

	if len(cells) != 1 {
		t.Fatalf("got %d cells, want 1", len(cells))
	}
	c := cells[0]
	wantX := 100 + float64(3-2)*HalfTileWidth
	wantY := 50 + float64(3+2)*HalfTileHeight
	if c.ScreenX != wantX || c.ScreenY != wantY {
		t.Errorf("screen = (%f,%f), want (%f,%f)", c.ScreenX, c.ScreenY, wantX, wantY)
	}
	if c.Height != heights[5] {
		t.Errorf("height = %f, want %f", c.Height, heights[5])
	}
}

func TestProjectDrawOrder(t *testing.T) {
	cells := Project(gridAssignments(52, 7, 1), DefaultHeightTable(Scale10), 0, 0)

	for i := 1; i < len(cells); i++ {
		prevSum := cells[i-1].Week + cells[i-1].Day
		sum := cells[i].Week + cells[i].Day
		if sum < prevSum {
			t.Fatalf("draw order broken at %d: sum %d after %d", i, sum, prevSum)
		}
		if sum == prevSum && cells[i].Week < cells[i-1].Week {
			t.Fatalf("tie-break broken at %d: week %d after %d", i, cells[i].Week, cells[i-1].Week)
		}
	}
}

func TestProjectEmpty(t *testing.T) {
	cells := Project(nil, DefaultHeightTable(Scale10), 0, 0)
	if len(cells) != 0 {
		t.Errorf("got %d cells, want 0", len(cells))
	}
}

func TestDefaultHeightTableMonotonic(t *testing.T) {
	for _, scale := range []Scale{Scale10, Scale100} {
		ht := DefaultHeightTable(scale)
		if len(ht) != int(scale) {
			t.Fatalf("scale %d: table has %d entries", scale, len(ht))
		}
		if ht[0] != 0 {
			t.Errorf("scale %d: level 0 height = %f, want 0 (flat water tile)", scale, ht[0])
		}
		for l := 1; l < len(ht); l++ {
			if ht[l] < ht[l-1] {
				t.Fatalf("scale %d: height decreases at level %d", scale, l)
			}
		}
	}
}

func TestHeightLookupClamps(t *testing.T) {
	ht := DefaultHeightTable(Scale10)
	if ht.height(-1) != 0 {
		t.Error("negative level should map to height 0")
	}
	if ht.height(99) != ht[9] {
		t.Error("level beyond the table should clamp to the top entry")
	}
}
