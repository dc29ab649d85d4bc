// Package render rasterises a scene frame into an RGBA image. The same
// renderer backs the interactive canvas widget and the headless snapshot
// tool, so everything here works on plain image.RGBA buffers with no
// toolkit types.
package render

import (
	"image"
	"image/color"
	"math"

	"optics-bench/pkg/geometry"
)

// DrawLine draws a line between two points using Bresenham's algorithm.
func DrawLine(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	bounds := output.Bounds()

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		for t := -thickness / 2; t <= thickness/2; t++ {
			for s := -thickness / 2; s <= thickness/2; s++ {
				px, py := x1+s, y1+t
				if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
					output.Set(px, py, col)
				}
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawDashedLine draws a Bresenham line with an on/off dash pattern,
// counted in steps along the line.
func DrawDashedLine(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, thickness, dash, gap int) {
	if dash < 1 {
		dash = 4
	}
	if gap < 1 {
		gap = 3
	}
	bounds := output.Bounds()

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	step := 0

	for {
		if step%(dash+gap) < dash {
			for t := -thickness / 2; t <= thickness/2; t++ {
				for s := -thickness / 2; s <= thickness/2; s++ {
					px, py := x1+s, y1+t
					if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
						output.Set(px, py, col)
					}
				}
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		step++
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// FillPolygon fills a polygon using a scanline algorithm.
func FillPolygon(output *image.RGBA, points []geometry.Point2D, col color.RGBA) {
	if len(points) < 3 {
		return
	}
	bounds := output.Bounds()

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	n := len(points)
	for y := int(minY); y <= int(maxY); y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}

		var xIntersections []float64
		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]

			if (p1.Y <= float64(y) && p2.Y > float64(y)) ||
				(p2.Y <= float64(y) && p1.Y > float64(y)) {
				t := (float64(y) - p1.Y) / (p2.Y - p1.Y)
				xIntersections = append(xIntersections, p1.X+t*(p2.X-p1.X))
			}
		}

		for i := 0; i < len(xIntersections)-1; i++ {
			for j := i + 1; j < len(xIntersections); j++ {
				if xIntersections[j] < xIntersections[i] {
					xIntersections[i], xIntersections[j] = xIntersections[j], xIntersections[i]
				}
			}
		}

		for i := 0; i+1 < len(xIntersections); i += 2 {
			x1 := int(xIntersections[i])
			x2 := int(xIntersections[i+1])
			for x := x1; x <= x2; x++ {
				if x >= bounds.Min.X && x < bounds.Max.X {
					output.Set(x, y, col)
				}
			}
		}
	}
}

// StrokePolygon draws the closed outline of a polygon.
func StrokePolygon(output *image.RGBA, points []geometry.Point2D, col color.RGBA, thickness int) {
	n := len(points)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		DrawLine(output, int(p1.X), int(p1.Y), int(p2.X), int(p2.Y), col, thickness)
	}
}

// DrawCircle draws a filled circle or a 2-pixel ring.
func DrawCircle(output *image.RGBA, cx, cy, r float64, col color.RGBA, filled bool) {
	bounds := output.Bounds()

	minX := int(cx - r - 1)
	maxX := int(cx + r + 1)
	minY := int(cy - r - 1)
	maxY := int(cy + r + 1)

	r2 := r * r
	innerR2 := (r - 2) * (r - 2)

	for y := minY; y <= maxY; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := minX; x <= maxX; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			dist2 := dx*dx + dy*dy

			if filled {
				if dist2 <= r2 {
					output.Set(x, y, col)
				}
			} else if dist2 <= r2 && dist2 >= innerR2 {
				output.Set(x, y, col)
			}
		}
	}
}

// FillRect fills an axis-aligned pixel rectangle.
func FillRect(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := output.Bounds()
	for y := y1; y <= y2; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := x1; x <= x2; x++ {
			if x >= bounds.Min.X && x < bounds.Max.X {
				output.Set(x, y, col)
			}
		}
	}
}

// DrawArrowhead draws a filled triangular arrowhead with its tip at
// (tipX, tipY), pointing along (dirX, dirY).
func DrawArrowhead(output *image.RGBA, tipX, tipY, dirX, dirY, size float64, col color.RGBA) {
	length := math.Hypot(dirX, dirY)
	if length == 0 {
		return
	}
	ux, uy := dirX/length, dirY/length
	// Perpendicular.
	px, py := -uy, ux

	base := geometry.Point2D{X: tipX - ux*size, Y: tipY - uy*size}
	half := size * 0.5
	FillPolygon(output, []geometry.Point2D{
		{X: tipX, Y: tipY},
		{X: base.X + px*half, Y: base.Y + py*half},
		{X: base.X - px*half, Y: base.Y - py*half},
	}, col)
}

// blendPixel writes col over the existing pixel at the given opacity.
func blendPixel(output *image.RGBA, x, y int, col color.RGBA, opacity float64) {
	existing := output.RGBAAt(x, y)
	inv := 1 - opacity
	output.Set(x, y, color.RGBA{
		R: uint8(float64(col.R)*opacity + float64(existing.R)*inv),
		G: uint8(float64(col.G)*opacity + float64(existing.G)*inv),
		B: uint8(float64(col.B)*opacity + float64(existing.B)*inv),
		A: 255,
	})
}

// DrawEdgeGlow paints a gradient strip along one side of the image, fading
// from the given colour at the border to nothing at depth pixels inward.
// side follows the image coordinate convention: 0 left, 1 right, 2 top,
// 3 bottom.
func DrawEdgeGlow(output *image.RGBA, side, depth int, col color.RGBA) {
	bounds := output.Bounds()
	if depth < 1 {
		return
	}

	for i := 0; i < depth; i++ {
		opacity := (1 - float64(i)/float64(depth)) * 0.85

		switch side {
		case 0:
			x := bounds.Min.X + i
			if x >= bounds.Max.X {
				return
			}
			for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
				blendPixel(output, x, y, col, opacity)
			}
		case 1:
			x := bounds.Max.X - 1 - i
			if x < bounds.Min.X {
				return
			}
			for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
				blendPixel(output, x, y, col, opacity)
			}
		case 2:
			y := bounds.Min.Y + i
			if y >= bounds.Max.Y {
				return
			}
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				blendPixel(output, x, y, col, opacity)
			}
		case 3:
			y := bounds.Max.Y - 1 - i
			if y < bounds.Min.Y {
				return
			}
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				blendPixel(output, x, y, col, opacity)
			}
		}
	}
}
