package render

import (
	"fmt"
	"strconv"
)

// Theme is a fixed palette for one rendering mode.
type Theme struct {
	Name        string
	Background  string
	Water       string
	Pond        string
	GroundLight string // forest density 0
	GroundDark  string // forest density 1
	BlockLow    string // lowest nonzero level top face
	BlockHigh   string // maximum level top face
	Trunk       string
	Leaf        string
	Rock        string
	Accent      string // flowers, crystals
	Landmark    string
	FaceShadeL  float64 // left face brightness
	FaceShadeR  float64 // right face brightness
}

var themes = []Theme{
	{
		Name:        "meadow",
		Background:  "#eaf6e6",
		Water:       "#4f8fd0",
		Pond:        "#6aa8e0",
		GroundLight: "#b8dca4",
		GroundDark:  "#5f9a52",
		BlockLow:    "#9be9a8",
		BlockHigh:   "#216e39",
		Trunk:       "#7a5230",
		Leaf:        "#2f7a3d",
		Rock:        "#8d8d8d",
		Accent:      "#e36bae",
		Landmark:    "#d9c27a",
		FaceShadeL:  0.78,
		FaceShadeR:  0.60,
	},
	{
		Name:        "dusk",
		Background:  "#1d2233",
		Water:       "#2b4a78",
		Pond:        "#38608f",
		GroundLight: "#4a5a6e",
		GroundDark:  "#27364a",
		BlockLow:    "#3f6d8e",
		BlockHigh:   "#c9a7eb",
		Trunk:       "#4d3a2e",
		Leaf:        "#3b5a6e",
		Rock:        "#5a5f6e",
		Accent:      "#f2a65a",
		Landmark:    "#e8d28a",
		FaceShadeL:  0.72,
		FaceShadeR:  0.52,
	},
}

// ThemeByName looks up a registered theme; ok is false for unknown names.
func ThemeByName(name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// DefaultTheme returns the standard palette.
func DefaultTheme() Theme {
	return themes[0]
}

func parseHex(c string) (r, g, b int) {
	if len(c) != 7 || c[0] != '#' {
		return 0, 0, 0
	}
	rv, _ := strconv.ParseInt(c[1:3], 16, 0)
	gv, _ := strconv.ParseInt(c[3:5], 16, 0)
	bv, _ := strconv.ParseInt(c[5:7], 16, 0)
	return int(rv), int(gv), int(bv)
}

func toHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clamp255(r), clamp255(g), clamp255(b))
}

func clamp255(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// lerpColor blends a toward b by t in [0,1].
func lerpColor(a, b string, t float64) string {
	ar, ag, ab := parseHex(a)
	br, bg, bb := parseHex(b)
	return toHex(
		ar+int(t*float64(br-ar)),
		ag+int(t*float64(bg-ag)),
		ab+int(t*float64(bb-ab)),
	)
}

// shade scales a color's brightness by f.
func shade(c string, f float64) string {
	r, g, b := parseHex(c)
	return toHex(int(float64(r)*f), int(float64(g)*f), int(float64(b)*f))
}
