package export

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/gaugekit/internal/config"
	"github.com/san-kum/gaugekit/internal/render"
	"github.com/san-kum/gaugekit/internal/scene"
)

func gaugeScene(value float64) *scene.Scene {
	return render.New().Gauge(render.GaugeInput(config.DefaultWidget(), value))
}

func TestSVGGaugeStructure(t *testing.T) {
	out := SVG(gaugeScene(20))

	assert.Equal(t, 5, strings.Count(out, `class="tick-major"`))
	assert.Equal(t, 8, strings.Count(out, `class="tick-minor"`))
	assert.Equal(t, 5, strings.Count(out, `class="tick-label"`))
	assert.Equal(t, 1, strings.Count(out, "<path"))
	assert.Contains(t, out, `d="M 10 100 A 90 90 0 0 1 190 100"`)
	assert.Contains(t, out, `transform="rotate(0 100 100)"`)
	assert.Contains(t, out, `<circle cx="100" cy="100" r="12" fill="none"`)
	assert.Contains(t, out, `viewBox="0 0 200 200"`)
	assert.Contains(t, out, `width="100%"`)
	assert.Contains(t, out, ">20 knt</text>")
}

func TestSVGNeedleRotation(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "rotate(-90 100 100)"},
		{10, "rotate(-45 100 100)"},
		{40, "rotate(90 100 100)"},
		{100, "rotate(90 100 100)"},
	}
	for _, tt := range tests {
		assert.Contains(t, SVG(gaugeScene(tt.value)), tt.want, "value %v", tt.value)
	}
}

func TestSVGPaddingAndTitle(t *testing.T) {
	s := scene.New(200, 200)
	s.Padding = 10
	s.Title = "speed < limit & co"
	s.Add(&scene.Text{X: 1, Y: 2, Content: "<b>", Color: "#000", Font: "Arial", Size: 12, Bold: true})

	out := SVG(s)
	assert.Contains(t, out, `viewBox="-10 -10 220 220"`)
	assert.Contains(t, out, "<title>speed &lt; limit &amp; co</title>")
	assert.Contains(t, out, ">&lt;b&gt;</text>")
	assert.Contains(t, out, `font-weight="bold"`)
	assert.Contains(t, out, `text-anchor="start"`)
}

func TestSVGGroupTranslate(t *testing.T) {
	s := scene.New(200, 260)
	s.Add(&scene.Group{TranslateY: 60, Class: "speedometer"})
	assert.Contains(t, SVG(s), `<g class="speedometer" transform="translate(0 60)">`)
}

func TestArcPathCounterClockwise(t *testing.T) {
	a := &scene.Arc{CX: 100, CY: 100, R: 50, Start: 0, End: 270}
	assert.Equal(t, "M 150 100 A 50 50 0 1 0 100 150", ArcPath(a))
}

func TestNum(t *testing.T) {
	assert.Equal(t, "0", num(-0.001))
	assert.Equal(t, "1.5", num(1.5))
	assert.Equal(t, "33.33", num(100.0/3))
	assert.Equal(t, "-45", num(-45))
}

func TestSVGNil(t *testing.T) {
	assert.Empty(t, SVG(nil))
}

func TestPNGSizeFollowsViewBox(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, gaugeScene(20), 400))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())

	// needle is painted with the top threshold band
	r, g, _, _ := img.At(200, 150).RGBA()
	assert.Greater(t, g, r)

	// hub is stroked, not filled
	r, g, b, _ := img.At(190, 200).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})

	// corners stay background
	r, g, b, _ = img.At(2, 2).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
}

func TestPNGDefaultWidthAndPadding(t *testing.T) {
	s := gaugeScene(5)
	s.Padding = 50

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, s, 0))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultPNGWidth, img.Bounds().Dx())
	assert.Equal(t, DefaultPNGWidth, img.Bounds().Dy())
}

func TestPNGNilScene(t *testing.T) {
	assert.Error(t, PNG(&bytes.Buffer{}, nil, 100))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(".PNG")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, f)

	_, err = ParseFormat("gif")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("out/gauge.svg", FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, f)

	f, err = FormatFromPath("gauge", FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, f)

	_, err = FormatFromPath("gauge.gif", FormatSVG)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteDispatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatSVG, gaugeScene(1), 0))
	assert.True(t, strings.HasPrefix(buf.String(), "<svg"))

	buf.Reset()
	require.NoError(t, Write(&buf, FormatPNG, gaugeScene(1), 100))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	assert.ErrorIs(t, Write(&buf, Format("bmp"), gaugeScene(1), 0), ErrUnknownFormat)
}

func TestFrames(t *testing.T) {
	frames := Frames(0, 40, 5, "out", "speed", FormatSVG)
	require.Len(t, frames, 5)
	assert.Equal(t, 0.0, frames[0].Value)
	assert.Equal(t, 20.0, frames[2].Value)
	assert.Equal(t, 40.0, frames[4].Value)
	assert.Equal(t, filepath.Join("out", "speed-0003.svg"), frames[3].Path)

	single := Frames(7, 9, 0, ".", "g", FormatPNG)
	require.Len(t, single, 1)
	assert.Equal(t, 7.0, single[0].Value)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	frames := Frames(0, 40, 4, dir, "g", FormatSVG)
	r := render.New(render.WithMemo(0))
	build := func(v float64) *scene.Scene {
		return r.Gauge(render.GaugeInput(config.DefaultWidget(), v))
	}

	require.NoError(t, Batch(context.Background(), frames, build, FormatSVG, 0))
	for _, fr := range frames {
		data, err := os.ReadFile(fr.Path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<svg")
	}
	last, err := os.ReadFile(frames[3].Path)
	require.NoError(t, err)
	assert.Contains(t, string(last), "rotate(90 100 100)")
}

func TestBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	frames := Frames(0, 1, 2, t.TempDir(), "g", FormatSVG)
	err := Batch(ctx, frames, func(float64) *scene.Scene { return scene.New(1, 1) }, FormatSVG, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
