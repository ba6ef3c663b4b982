package gen

import "testing"

func TestLevelZeroCount(t *testing.T) {
	for _, scale := range []Scale{Scale10, Scale100} {
		if got := Level(0, 100, scale); got != 0 {
			t.Errorf("Level(0, 100, %d) = %d, want 0", scale, got)
		}
		if got := Level(0, 0, scale); got != 0 {
			t.Errorf("Level(0, 0, %d) = %d, want 0", scale, got)
		}
	}
}

func TestLevelMonotonic(t *testing.T) {
	for _, scale := range []Scale{Scale10, Scale100} {
		prev := 0
		for count := uint(0); count <= 120; count++ {
			lvl := Level(count, 100, scale)
			if lvl < prev {
				t.Fatalf("scale %d: Level(%d) = %d < Level(%d) = %d", scale, count, lvl, count-1, prev)
			}
			prev = lvl
		}
	}
}

func TestLevelSaturates(t *testing.T) {
	tests := []struct {
		scale Scale
		want  int
	}{
		{Scale10, 9},
		{Scale100, 99},
	}
	for _, tt := range tests {
		if got := Level(100, 100, tt.scale); got != tt.want {
			t.Errorf("Level(100, 100, %d) = %d, want %d", tt.scale, got, tt.want)
		}
		// Counts above the maximum still saturate.
		if got := Level(500, 100, tt.scale); got != tt.want {
			t.Errorf("Level(500, 100, %d) = %d, want %d", tt.scale, got, tt.want)
		}
	}
}

func TestLevelBounds(t *testing.T) {
	for _, scale := range []Scale{Scale10, Scale100} {
		for count := uint(0); count <= 200; count += 3 {
			lvl := Level(count, 150, scale)
			if lvl < 0 || lvl > scale.Max() {
				t.Fatalf("scale %d: Level(%d, 150) = %d, out of [0,%d]", scale, count, lvl, scale.Max())
			}
		}
	}
}

func TestLevelZeroMaxTreatedAsOne(t *testing.T) {
	// maxCount 0 must not divide by zero; a nonzero count saturates.
	if got := Level(5, 0, Scale10); got != 9 {
		t.Errorf("Level(5, 0) = %d, want 9", got)
	}
}

func TestLevelLowCountsNonzero(t *testing.T) {
	if got := Level(1, 1000, Scale10); got != 1 {
		t.Errorf("Level(1, 1000) = %d, want 1 (any activity is visible)", got)
	}
}

func TestBreakpointsAscending(t *testing.T) {
	for name, bps := range map[string][]float64{"scale10": breakpoints10, "scale100": breakpoints100} {
		for i := 1; i < len(bps); i++ {
			if bps[i] <= bps[i-1] {
				t.Fatalf("%s: breakpoint %d (%f) not above %d (%f)", name, i, bps[i], i-1, bps[i-1])
			}
		}
	}
}
