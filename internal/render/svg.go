// Package render emits the generated scene as static SVG markup. Emission
// walks the scene strictly in draw order and formats every coordinate with
// a fixed precision, so identical scenes produce byte-identical documents.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/contribscape/contribscape/pkg/gen"
)

// Renderer writes a Scene as SVG using a fixed theme.
type Renderer struct {
	theme Theme
}

// New creates a Renderer for the given theme.
func New(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Render writes the complete SVG document for the scene.
func (r *Renderer) Render(w io.Writer, s *gen.Scene) error {
	var sb strings.Builder

	width, height := bounds(s)

	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s">`+"\n",
		f(width), f(height))
	fmt.Fprintf(&sb, `<rect width="%s" height="%s" fill="%s"/>`+"\n",
		f(width), f(height), r.theme.Background)

	assetsByCell := make(map[gen.GridKey][]gen.PlacedAsset, len(s.Assets))
	for _, a := range s.Assets {
		assetsByCell[a.Cell] = append(assetsByCell[a.Cell], a)
	}
	buildingByCell := make(map[gen.GridKey]gen.PlacedEpicBuilding, len(s.Buildings))
	for _, b := range s.Buildings {
		buildingByCell[gen.GridKey{Week: b.Week, Day: b.Day}] = b
	}

	// Cells arrive back-to-front; a cell's own contents draw immediately
	// after its block so nearer cells still overlap them correctly.
	for _, c := range s.Cells {
		key := c.Key()
		b := s.Biome[key]
		r.writeCell(&sb, c, b, s.Scale)
		for _, a := range assetsByCell[key] {
			r.writeAsset(&sb, a)
		}
		if eb, ok := buildingByCell[key]; ok {
			r.writeBuilding(&sb, eb)
		}
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func bounds(s *gen.Scene) (width, height float64) {
	for _, c := range s.Cells {
		if x := c.ScreenX + gen.HalfTileWidth; x > width {
			width = x
		}
		if y := c.ScreenY + gen.HalfTileHeight; y > height {
			height = y
		}
	}
	return width + gen.HalfTileWidth, height + gen.HalfTileHeight
}

// writeCell draws a flat diamond for level 0 and an extruded three-face
// block otherwise. Biome tints the flat tiles: water for rivers and ponds,
// forest density shading for ground.
func (r *Renderer) writeCell(sb *strings.Builder, c gen.IsoCell, b gen.BiomeContext, scale gen.Scale) {
	x, y := c.ScreenX, c.ScreenY

	if c.Level == 0 || c.Height == 0 {
		fill := lerpColor(r.theme.GroundLight, r.theme.GroundDark, b.ForestDensity)
		switch {
		case b.IsPond:
			fill = r.theme.Pond
		case b.IsRiver:
			fill = r.theme.Water
		}
		writeDiamond(sb, x, y, fill)
		return
	}

	t := float64(c.Level-1) / float64(scale.Max()-1)
	top := lerpColor(r.theme.BlockLow, r.theme.BlockHigh, t)
	h := c.Height

	// Top face.
	writeDiamond(sb, x, y-h, top)
	// Left face.
	writePolygon(sb, shade(top, r.theme.FaceShadeL), [][2]float64{
		{x - gen.HalfTileWidth, y - h},
		{x, y - h + gen.HalfTileHeight},
		{x, y + gen.HalfTileHeight},
		{x - gen.HalfTileWidth, y},
	})
	// Right face.
	writePolygon(sb, shade(top, r.theme.FaceShadeR), [][2]float64{
		{x + gen.HalfTileWidth, y - h},
		{x, y - h + gen.HalfTileHeight},
		{x, y + gen.HalfTileHeight},
		{x + gen.HalfTileWidth, y},
	})
}

func (r *Renderer) writeAsset(sb *strings.Builder, a gen.PlacedAsset) {
	x := a.CenterX + a.OffsetX
	y := a.CenterY + a.OffsetY

	switch a.Type {
	case gen.AssetTree, gen.AssetPine, gen.AssetBush:
		fmt.Fprintf(sb, `<rect x="%s" y="%s" width="1.6" height="4" fill="%s"/>`+"\n",
			f(x-0.8), f(y-4), r.theme.Trunk)
		writePolygon(sb, r.theme.Leaf, [][2]float64{
			{x, y - 12}, {x + 4, y - 4}, {x - 4, y - 4},
		})
	case gen.AssetRock:
		fmt.Fprintf(sb, `<circle cx="%s" cy="%s" r="2.2" fill="%s"/>`+"\n",
			f(x), f(y), r.theme.Rock)
	case gen.AssetFlower, gen.AssetCrystal, gen.AssetMushroom:
		fmt.Fprintf(sb, `<circle cx="%s" cy="%s" r="1.4" fill="%s"/>`+"\n",
			f(x), f(y-1.4), r.theme.Accent)
	default: // grass
		fmt.Fprintf(sb, `<rect x="%s" y="%s" width="2" height="1.2" fill="%s"/>`+"\n",
			f(x-1), f(y-1.2), r.theme.Leaf)
	}
}

func (r *Renderer) writeBuilding(sb *strings.Builder, b gen.PlacedEpicBuilding) {
	x, y := b.CenterX, b.CenterY
	body := r.theme.Landmark

	// Tower body plus a roof; rarer tiers stand taller.
	h := 14.0 + 4.0*float64(b.Tier)
	fmt.Fprintf(sb, `<g><title>%s (%s)</title>`+"\n", b.Type, b.Tier)
	fmt.Fprintf(sb, `<rect x="%s" y="%s" width="8" height="%s" fill="%s"/>`+"\n",
		f(x-4), f(y-h), f(h), body)
	writePolygon(sb, shade(body, 0.7), [][2]float64{
		{x, y - h - 7}, {x + 5, y - h}, {x - 5, y - h},
	})
	sb.WriteString("</g>\n")
}

func writeDiamond(sb *strings.Builder, cx, cy float64, fill string) {
	writePolygon(sb, fill, [][2]float64{
		{cx, cy - gen.HalfTileHeight},
		{cx + gen.HalfTileWidth, cy},
		{cx, cy + gen.HalfTileHeight},
		{cx - gen.HalfTileWidth, cy},
	})
}

func writePolygon(sb *strings.Builder, fill string, pts [][2]float64) {
	sb.WriteString(`<polygon points="`)
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f(p[0]))
		sb.WriteByte(',')
		sb.WriteString(f(p[1]))
	}
	fmt.Fprintf(sb, `" fill="%s"/>`+"\n", fill)
}

// f formats coordinates with fixed precision so output bytes never vary
// between runs.
func f(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
