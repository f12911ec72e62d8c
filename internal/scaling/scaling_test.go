package scaling

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitRect(t *testing.T) {
	tests := []struct {
		name             string
		srcW, srcH       int
		targetW, targetH int
		want             image.Rectangle
	}{
		{"wide image letterboxed", 4000, 2000, 1920, 1080, image.Rect(0, 60, 1920, 1020)},
		{"tall image pillarboxed", 1000, 2000, 1920, 1080, image.Rect(690, 0, 1230, 1080)},
		{"small image is upscaled", 192, 108, 1920, 1080, image.Rect(0, 0, 1920, 1080)},
		{"exact fit", 1920, 1080, 1920, 1080, image.Rect(0, 0, 1920, 1080)},
		{"empty source", 0, 10, 1920, 1080, image.Rectangle{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FitRect(tt.srcW, tt.srcH, tt.targetW, tt.targetH))
		})
	}
}

func TestFitRectMarginsAreEqual(t *testing.T) {
	r := FitRect(4000, 2000, 1920, 1080)
	assert.Equal(t, 1920, r.Dx())
	assert.Equal(t, 960, r.Dy())
	assert.Equal(t, r.Min.Y, 1080-r.Max.Y)
}

func TestFitCentersOnBlack(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 200))
	white := color.RGBA{255, 255, 255, 255}
	for y := 0; y < 200; y++ {
		for x := 0; x < 400; x++ {
			src.Set(x, y, white)
		}
	}

	out := Fit(src, 192, 108)
	require.Equal(t, image.Rect(0, 0, 192, 108), out.Bounds())

	// 400x200 scaled by 0.48 is 192x96, leaving 6px bars top and bottom
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, out.RGBAAt(96, 2))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, out.RGBAAt(96, 105))
	center := out.RGBAAt(96, 54)
	assert.GreaterOrEqual(t, center.R, uint8(250))
	assert.Equal(t, uint8(255), center.A)
}
