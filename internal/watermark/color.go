package watermark

import "image/color"

func parseHexColor(rgb uint32) color.Color {
	return color.NRGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 255,
	}
}
