package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contribscape/contribscape/pkg/activity"
	"github.com/contribscape/contribscape/pkg/gen"
)

func testScene(t *testing.T, count uint) *gen.Scene {
	t.Helper()
	cal := &activity.Calendar{Weeks: make([]activity.Week, 10)}
	base := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	for w := range cal.Weeks {
		for d := 0; d < activity.DaysPerWeek; d++ {
			cal.Weeks[w].Days[d] = activity.Day{Date: base.AddDate(0, 0, w*7+d), Count: count}
		}
	}
	stats := activity.ComputeStats(cal)
	return gen.BuildScene(cal, stats, 42, gen.DefaultOptions(gen.Scale10))
}

func TestRenderDeterministic(t *testing.T) {
	scene := testScene(t, 5)
	r := New(DefaultTheme())

	var b1, b2 bytes.Buffer
	require.NoError(t, r.Render(&b1, scene))
	require.NoError(t, r.Render(&b2, scene))

	assert.Equal(t, b1.Bytes(), b2.Bytes(), "same scene must render byte-identically")
}

func TestRenderWellFormed(t *testing.T) {
	scene := testScene(t, 5)

	var buf bytes.Buffer
	require.NoError(t, New(DefaultTheme()).Render(&buf, scene))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Equal(t, strings.Count(out, "<g>"), strings.Count(out, "</g>"))
}

func TestRenderWaterTint(t *testing.T) {
	// All-zero counts leave every tile flat, so river cells render with
	// the water fill.
	scene := testScene(t, 0)

	hasRiver := false
	for _, b := range scene.Biome {
		if b.IsRiver {
			hasRiver = true
		}
	}
	require.True(t, hasRiver, "grid should contain a river")

	var buf bytes.Buffer
	require.NoError(t, New(DefaultTheme()).Render(&buf, scene))
	assert.Contains(t, buf.String(), DefaultTheme().Water)
}

func TestRenderEmptyScene(t *testing.T) {
	scene := gen.BuildScene(&activity.Calendar{}, activity.Stats{}, 1, gen.DefaultOptions(gen.Scale10))

	var buf bytes.Buffer
	require.NoError(t, New(DefaultTheme()).Render(&buf, scene))
	assert.Contains(t, buf.String(), "<svg ")
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"meadow", "dusk"} {
		th, ok := ThemeByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, th.Name)
	}
	_, ok := ThemeByName("vaporwave")
	assert.False(t, ok)
}

func TestColorHelpers(t *testing.T) {
	assert.Equal(t, "#000000", lerpColor("#000000", "#ffffff", 0))
	assert.Equal(t, "#ffffff", lerpColor("#000000", "#ffffff", 1))
	assert.Equal(t, "#808080", shade("#ffffff", 0.5020))
	assert.Equal(t, "#000000", shade("#404040", 0))
}
