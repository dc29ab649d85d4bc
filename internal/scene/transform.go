package scene

import (
	"gonum.org/v1/gonum/mat"

	"optics-bench/pkg/geometry"
)

// canvasPad is the pixel inset between the canvas border and the mapped
// viewport rectangle.
const canvasPad = 8.0

// WorldToCanvas builds the affine transform mapping the world viewport to
// the padded canvas rectangle, with the Y axis flipped so world-up is
// canvas-up. The transform is solved from three corner correspondences;
// because the viewport was already expanded to the canvas aspect ratio the
// per-axis scales come out uniform.
func WorldToCanvas(view geometry.Rect, canvasW, canvasH int) geometry.AffineTransform {
	w := float64(canvasW)
	h := float64(canvasH)

	src := []geometry.Point2D{
		{X: view.XMin, Y: view.YMin},
		{X: view.XMax, Y: view.YMin},
		{X: view.XMin, Y: view.YMax},
	}
	dst := []geometry.Point2D{
		{X: canvasPad, Y: h - canvasPad},
		{X: w - canvasPad, Y: h - canvasPad},
		{X: canvasPad, Y: canvasPad},
	}

	if t, ok := affineFromPoints(src, dst); ok {
		return t
	}
	// Degenerate viewport (zero area); identity keeps the renderer alive.
	return geometry.Identity()
}

// affineFromPoints solves the 2x3 affine transform from exactly three
// point correspondences via the 6x6 linear system
// [x', y'] = [a, b, tx; c, d, ty] * [x, y, 1].
func affineFromPoints(src, dst []geometry.Point2D) (geometry.AffineTransform, bool) {
	a := mat.NewDense(6, 6, nil)
	b := mat.NewVecDense(6, nil)

	for i := 0; i < 3; i++ {
		x, y := src[i].X, src[i].Y
		xp, yp := dst[i].X, dst[i].Y

		// x' = a*x + b*y + tx
		a.Set(i*2, 0, x)
		a.Set(i*2, 1, y)
		a.Set(i*2, 2, 1)
		b.SetVec(i*2, xp)

		// y' = c*x + d*y + ty
		a.Set(i*2+1, 3, x)
		a.Set(i*2+1, 4, y)
		a.Set(i*2+1, 5, 1)
		b.SetVec(i*2+1, yp)
	}

	var params mat.VecDense
	if err := params.SolveVec(a, b); err != nil {
		return geometry.AffineTransform{}, false
	}

	return geometry.AffineTransform{
		A:  params.AtVec(0),
		B:  params.AtVec(1),
		TX: params.AtVec(2),
		C:  params.AtVec(3),
		D:  params.AtVec(4),
		TY: params.AtVec(5),
	}, true
}
