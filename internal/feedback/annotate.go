package feedback

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
)

var markColor = color.RGBA{R: 220, G: 20, B: 60, A: 255}

const markWidth = 3

// MarkImage draws each mark as a vertical line across the tracing and
// returns the result as PNG.
func MarkImage(data []byte, marks []float64) ([]byte, string, error) {
	if len(marks) == 0 {
		return nil, "", errors.New("no marks to draw")
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode tracing: %w", err)
	}

	b := src.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)

	for _, m := range marks {
		x := b.Min.X + int(m)
		line := image.Rect(x-markWidth/2, b.Min.Y, x-markWidth/2+markWidth, b.Max.Y).Intersect(b)
		if line.Empty() {
			return nil, "", fmt.Errorf("mark at x=%.0f is outside the %dpx tracing", m, b.Dx())
		}
		draw.Draw(dst, line, &image.Uniform{C: markColor}, image.Point{}, draw.Src)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, "", fmt.Errorf("encode tracing: %w", err)
	}
	return buf.Bytes(), "image/png", nil
}
