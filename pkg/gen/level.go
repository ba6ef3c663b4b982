package gen

import "math"

// Scale selects the ordinal intensity scale cells are mapped onto.
type Scale int

const (
	// Scale10 maps counts onto levels 0-9.
	Scale10 Scale = 10
	// Scale100 maps counts onto levels 0-99.
	Scale100 Scale = 100
)

// Max returns the highest level on the scale.
func (s Scale) Max() int {
	return int(s) - 1
}

// breakpoints10 are ascending count/max ratio thresholds for Scale10.
// A ratio at or above breakpoints10[i] yields at least level i+2; below the
// first threshold a nonzero count maps to level 1. Denser at low ratios
// because most days carry modest counts.
var breakpoints10 = []float64{0.02, 0.05, 0.10, 0.18, 0.28, 0.40, 0.55, 0.75}

// breakpoints100 follows the same contract with 98 thresholds on a fixed
// power curve, again front-loaded toward low ratios.
var breakpoints100 = makeBreakpoints100()

func makeBreakpoints100() []float64 {
	bps := make([]float64, 98)
	for i := range bps {
		t := float64(i+1) / 99.0
		bps[i] = math.Pow(t, 1.6)
	}
	return bps
}

// Level maps a raw count and the reference maximum onto the scale.
// A zero count is always level 0. Otherwise the ratio count/max(maxCount,1)
// walks the scale's ascending breakpoints; ratios at or above the top
// threshold saturate at the maximum level. Pure and total: no input errors.
func Level(count, maxCount uint, scale Scale) int {
	if count == 0 {
		return 0
	}
	if maxCount == 0 {
		maxCount = 1
	}
	ratio := float64(count) / float64(maxCount)

	var bps []float64
	switch scale {
	case Scale100:
		bps = breakpoints100
	default:
		bps = breakpoints10
	}

	lvl := 1
	for _, bp := range bps {
		if ratio < bp {
			break
		}
		lvl++
	}
	if lvl > scale.Max() {
		lvl = scale.Max()
	}
	return lvl
}
