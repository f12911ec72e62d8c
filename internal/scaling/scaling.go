package scaling

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// FitRect returns where an srcW x srcH image lands on a targetW x targetH screen when it is
// scaled uniformly to fit and centered on both axes.
func FitRect(srcW, srcH, targetW, targetH int) image.Rectangle {
	if srcW <= 0 || srcH <= 0 || targetW <= 0 || targetH <= 0 {
		return image.Rectangle{}
	}

	scale := math.Min(float64(targetW)/float64(srcW), float64(targetH)/float64(srcH))
	w := int(math.Round(float64(srcW) * scale))
	h := int(math.Round(float64(srcH) * scale))

	// rounding can push one side a pixel past the screen
	w = min(max(w, 1), targetW)
	h = min(max(h, 1), targetH)

	x := (targetW - w) / 2
	y := (targetH - h) / 2
	return image.Rect(x, y, x+w, y+h)
}

// Fit scales img to fit inside a targetW x targetH canvas, keeping its aspect ratio, and
// composites it centered on an opaque black background.
func Fit(img image.Image, targetW, targetH int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	dstRect := FitRect(img.Bounds().Dx(), img.Bounds().Dy(), targetW, targetH)
	if dstRect.Empty() {
		return dst
	}

	draw.CatmullRom.Scale(dst, dstRect, img, img.Bounds(), draw.Over, nil)
	return dst
}
