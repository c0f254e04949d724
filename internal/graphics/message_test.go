package graphics_test

import (
	"image"
	"image/color"
	"testing"

	"surfview/internal/graphics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inkBounds(img *image.RGBA, bg color.RGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestRasterizeMessageCentred(t *testing.T) {
	bg := color.RGBA{0, 0, 0, 255}
	img, err := graphics.RasterizeMessage("Something went wrong.", 400, 200, color.White, bg)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 400, 200), img.Bounds())

	ink := inkBounds(img, bg)
	require.False(t, ink.Empty(), "no glyphs drawn")

	cx := (ink.Min.X + ink.Max.X) / 2
	cy := (ink.Min.Y + ink.Max.Y) / 2
	assert.InDelta(t, 200, cx, 20)
	assert.InDelta(t, 100, cy, 30)
}

func TestRasterizeMessageFitsNarrowTarget(t *testing.T) {
	bg := color.RGBA{0, 0, 0, 255}
	img, err := graphics.RasterizeMessage("Something went wrong.", 60, 400, color.White, bg)
	require.NoError(t, err)

	ink := inkBounds(img, bg)
	require.False(t, ink.Empty())
	assert.GreaterOrEqual(t, ink.Min.X, 0)
	assert.LessOrEqual(t, ink.Max.X, 60)
}

func TestRasterizeMessageBackground(t *testing.T) {
	bg := color.RGBA{10, 20, 30, 255}
	img, err := graphics.RasterizeMessage("", 16, 16, color.White, bg)
	require.NoError(t, err)
	assert.Equal(t, bg, img.RGBAAt(0, 0))
	assert.Equal(t, bg, img.RGBAAt(15, 15))
}

func TestRasterizeMessageInvalidSize(t *testing.T) {
	_, err := graphics.RasterizeMessage("x", 0, 10, color.White, color.Black)
	assert.Error(t, err)
}
