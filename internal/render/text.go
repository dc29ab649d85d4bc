package render

import (
	"image"
	"image/color"
)

// digitPatterns contains 3x5 pixel patterns for digits 0-9.
// Each digit is represented as 5 rows of 3 bits.
var digitPatterns = [10][5]uint8{
	{0b111, 0b101, 0b101, 0b101, 0b111}, // 0
	{0b010, 0b110, 0b010, 0b010, 0b111}, // 1
	{0b111, 0b001, 0b111, 0b100, 0b111}, // 2
	{0b111, 0b001, 0b111, 0b001, 0b111}, // 3
	{0b101, 0b101, 0b111, 0b001, 0b001}, // 4
	{0b111, 0b100, 0b111, 0b001, 0b111}, // 5
	{0b111, 0b100, 0b111, 0b101, 0b111}, // 6
	{0b111, 0b001, 0b001, 0b001, 0b001}, // 7
	{0b111, 0b101, 0b111, 0b101, 0b111}, // 8
	{0b111, 0b101, 0b111, 0b001, 0b111}, // 9
}

// letterPatterns contains 3x5 pixel patterns for letters A-Z and the symbols
// used by the diagram annotations and the equation readout.
var letterPatterns = map[rune][5]uint8{
	'A': {0b010, 0b101, 0b111, 0b101, 0b101},
	'B': {0b110, 0b101, 0b110, 0b101, 0b110},
	'C': {0b011, 0b100, 0b100, 0b100, 0b011},
	'D': {0b110, 0b101, 0b101, 0b101, 0b110},
	'E': {0b111, 0b100, 0b110, 0b100, 0b111},
	'F': {0b111, 0b100, 0b110, 0b100, 0b100},
	'G': {0b011, 0b100, 0b101, 0b101, 0b011},
	'H': {0b101, 0b101, 0b111, 0b101, 0b101},
	'I': {0b111, 0b010, 0b010, 0b010, 0b111},
	'J': {0b001, 0b001, 0b001, 0b101, 0b010},
	'K': {0b101, 0b101, 0b110, 0b101, 0b101},
	'L': {0b100, 0b100, 0b100, 0b100, 0b111},
	'M': {0b101, 0b111, 0b101, 0b101, 0b101},
	'N': {0b101, 0b111, 0b111, 0b101, 0b101},
	'O': {0b010, 0b101, 0b101, 0b101, 0b010},
	'P': {0b110, 0b101, 0b110, 0b100, 0b100},
	'Q': {0b010, 0b101, 0b101, 0b111, 0b011},
	'R': {0b110, 0b101, 0b110, 0b101, 0b101},
	'S': {0b011, 0b100, 0b010, 0b001, 0b110},
	'T': {0b111, 0b010, 0b010, 0b010, 0b010},
	'U': {0b101, 0b101, 0b101, 0b101, 0b111},
	'V': {0b101, 0b101, 0b101, 0b101, 0b010},
	'W': {0b101, 0b101, 0b101, 0b111, 0b101},
	'X': {0b101, 0b101, 0b010, 0b101, 0b101},
	'Y': {0b101, 0b101, 0b010, 0b010, 0b010},
	'Z': {0b111, 0b001, 0b010, 0b100, 0b111},
	'+': {0b000, 0b010, 0b111, 0b010, 0b000},
	'-': {0b000, 0b000, 0b111, 0b000, 0b000},
	'*': {0b000, 0b101, 0b010, 0b101, 0b000},
	' ': {0b000, 0b000, 0b000, 0b000, 0b000},
	'.': {0b000, 0b000, 0b000, 0b000, 0b010},
	',': {0b000, 0b000, 0b000, 0b010, 0b100},
	':': {0b000, 0b010, 0b000, 0b010, 0b000},
	'=': {0b000, 0b111, 0b000, 0b111, 0b000},
	'/': {0b001, 0b001, 0b010, 0b100, 0b100},
	'<': {0b001, 0b010, 0b100, 0b010, 0b001},
	'>': {0b100, 0b010, 0b001, 0b010, 0b100},
	'^': {0b010, 0b101, 0b000, 0b000, 0b000},
	'(': {0b001, 0b010, 0b010, 0b010, 0b001},
	')': {0b100, 0b010, 0b010, 0b010, 0b100},
	'\'': {0b010, 0b010, 0b000, 0b000, 0b000},
	'%': {0b101, 0b001, 0b010, 0b100, 0b101},
}

// widePatterns holds the 5x5 glyphs that do not fit the 3-column grid.
// The infinity sign and the edge-indicator arrows get their own glyphs
// rather than ASCII stand-ins.
var widePatterns = map[rune][5]uint8{
	'∞': {0b00000, 0b01010, 0b10101, 0b01010, 0b00000},
	'°': {0b01100, 0b10010, 0b01100, 0b00000, 0b00000},
	'↑': {0b00100, 0b01110, 0b10101, 0b00100, 0b00100},
	'↓': {0b00100, 0b00100, 0b10101, 0b01110, 0b00100},
}

// charPattern returns the pattern and pixel-column count for a character.
// Unsupported characters render as a blank narrow cell.
func charPattern(ch rune) ([5]uint8, int) {
	if ch >= '0' && ch <= '9' {
		return digitPatterns[ch-'0'], 3
	}
	if p, ok := widePatterns[ch]; ok {
		return p, 5
	}
	if ch >= 'a' && ch <= 'z' {
		ch = ch - 'a' + 'A'
	}
	if p, ok := letterPatterns[ch]; ok {
		return p, 3
	}
	return [5]uint8{}, 3
}

// TextWidth returns the pixel width of s at the given scale.
func TextWidth(s string, scale int) int {
	if scale < 1 {
		scale = 1
	}
	w := 0
	n := 0
	for _, ch := range s {
		_, cols := charPattern(ch)
		w += cols * scale
		n++
	}
	if n > 1 {
		w += (n - 1) * scale // inter-character spacing
	}
	return w
}

// TextHeight returns the pixel height of text at the given scale.
func TextHeight(scale int) int {
	if scale < 1 {
		scale = 1
	}
	return 5 * scale
}

// DrawText renders s with its top-left corner at (x, y).
func DrawText(output *image.RGBA, s string, x, y int, col color.RGBA, scale int) {
	if scale < 1 {
		scale = 1
	}
	bounds := output.Bounds()
	penX := x

	for _, ch := range s {
		pattern, cols := charPattern(ch)
		for row := 0; row < 5; row++ {
			for c := 0; c < cols; c++ {
				if (pattern[row] & (1 << (cols - 1 - c))) == 0 {
					continue
				}
				for dy := 0; dy < scale; dy++ {
					for dx := 0; dx < scale; dx++ {
						px := penX + c*scale + dx
						py := y + row*scale + dy
						if px >= bounds.Min.X && px < bounds.Max.X &&
							py >= bounds.Min.Y && py < bounds.Max.Y {
							output.Set(px, py, col)
						}
					}
				}
			}
		}
		penX += (cols + 1) * scale
	}
}

// DrawTextCentered renders s centred on (cx, cy).
func DrawTextCentered(output *image.RGBA, s string, cx, cy int, col color.RGBA, scale int) {
	DrawText(output, s, cx-TextWidth(s, scale)/2, cy-TextHeight(scale)/2, col, scale)
}

// DrawSubscripted renders base text followed by a subscript at the next
// smaller scale, dropped toward the baseline. Returns the total width, so
// callers can chain runs. Used by the equation readout for d_o and d_i.
func DrawSubscripted(output *image.RGBA, base, sub string, x, y int, col color.RGBA, scale int) int {
	if scale < 1 {
		scale = 1
	}
	subScale := scale - 1
	if subScale < 1 {
		subScale = 1
	}

	DrawText(output, base, x, y, col, scale)
	w := TextWidth(base, scale)
	if base != "" {
		w += scale
	}

	drop := TextHeight(scale) - TextHeight(subScale) + subScale
	DrawText(output, sub, x+w, y+drop, col, subScale)
	w += TextWidth(sub, subScale)
	return w
}
