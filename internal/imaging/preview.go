package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Preview renders a photo payload as a terminal image using half-block
// characters, two pixel rows per text row. cols and rows bound the output
// in terminal cells; aspect ratio is preserved.
func Preview(payload []byte, cols, rows int) (string, error) {
	img, err := Decode(payload)
	if err != nil {
		return "", err
	}
	return RenderHalfBlocks(img, cols, rows), nil
}

// RenderHalfBlocks downscales img to at most cols x rows terminal cells
// and renders it with the upper-half-block character, foreground colored
// by the top pixel and background by the bottom pixel.
func RenderHalfBlocks(img image.Image, cols, rows int) string {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	bounds := img.Bounds()
	// Terminal cells are roughly twice as tall as wide; with two pixels
	// per cell vertically the pixel grid is cols x rows*2.
	w, h := fit(bounds.Dx(), bounds.Dy(), cols, rows*2)
	if h%2 == 1 {
		h++
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top := toHex(dst.At(x, y))
			bottom := toHex(dst.At(x, y+1))
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀")
			sb.WriteString(cell)
		}
		if y+2 < h {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// toHex converts a color to a #RRGGBB string for lipgloss.
func toHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
