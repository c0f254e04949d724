package graphics

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// RasterizeMessage draws msg centred on a width×height RGBA image with an
// opaque background. The glyph size scales with the image height.
func RasterizeMessage(msg string, width, height int, fg, bg color.Color) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rasterize: invalid size %dx%d", width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	size := float64(height) / 12
	if size < 8 {
		size = 8
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	d := &font.Drawer{Dst: img, Src: image.NewUniform(fg), Face: face}
	// Shrink until the line fits horizontally.
	for advance := d.MeasureString(msg); advance.Ceil() > width && size > 4; advance = d.MeasureString(msg) {
		_ = face.Close()
		size *= float64(width) / float64(advance.Ceil()+1)
		face, err = opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			return nil, fmt.Errorf("new face: %w", err)
		}
		d.Face = face
	}

	m := face.Metrics()
	textHeight := m.Ascent + m.Descent
	x := (fixed.I(width) - d.MeasureString(msg)) / 2
	y := (fixed.I(height)-textHeight)/2 + m.Ascent
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(msg)
	return img, nil
}
