// Package geometry solves the projective transforms used by the perspective
// templates and applies them to images.
package geometry

import (
	"errors"
	"fmt"
	"image"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrDegenerate is returned when the quads do not define a projective
// transform (collinear or repeated corners).
var ErrDegenerate = errors.New("degenerate quadrilateral")

type Point struct {
	X, Y float64
}

// Quad holds four corners ordered top-left, top-right, bottom-right,
// bottom-left.
type Quad [4]Point

// RectQuad returns the corners of the axis-aligned rectangle (x0,y0)-(x1,y1).
func RectQuad(x0, y0, x1, y1 float64) Quad {
	return Quad{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

// Translate shifts every corner by (dx, dy).
func (q Quad) Translate(dx, dy float64) Quad {
	for i := range q {
		q[i].X += dx
		q[i].Y += dy
	}
	return q
}

// Bounds returns the smallest integer rectangle containing the quad.
func (q Quad) Bounds() image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range q {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}

// Coefficients are the eight parameters (a..h) of the projective transform
//
//	x' = (a*x + b*y + c) / (g*x + h*y + 1)
//	y' = (d*x + e*y + f) / (g*x + h*y + 1)
type Coefficients [8]float64

// Identity maps every point onto itself.
var Identity = Coefficients{1, 0, 0, 0, 1, 0, 0, 0}

// Solve returns the coefficients mapping each corner of target onto the
// matching corner of source.
//
// Warping samples the source image for every destination pixel, so callers
// pass the destination quad as target and the source rectangle as source.
func Solve(target, source Quad) (Coefficients, error) {
	a := mat.NewDense(8, 8, nil)
	b := mat.NewVecDense(8, nil)
	for i := 0; i < 4; i++ {
		t, s := target[i], source[i]
		a.SetRow(2*i, []float64{t.X, t.Y, 1, 0, 0, 0, -s.X * t.X, -s.X * t.Y})
		a.SetRow(2*i+1, []float64{0, 0, 0, t.X, t.Y, 1, -s.Y * t.X, -s.Y * t.Y})
		b.SetVec(2*i, s.X)
		b.SetVec(2*i+1, s.Y)
	}

	// The system is square, so its least-squares solution is the exact one;
	// solving A directly keeps the condition number of A instead of AᵀA.
	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil && !usable(err) {
		return Coefficients{}, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}

	var c Coefficients
	for i := range c {
		c[i] = x.AtVec(i)
		if math.IsNaN(c[i]) || math.IsInf(c[i], 0) {
			return Coefficients{}, ErrDegenerate
		}
	}
	return c, nil
}

// usable reports whether a solver error is only an ill-conditioning warning.
func usable(err error) bool {
	var cond mat.Condition
	if errors.As(err, &cond) {
		return !math.IsInf(float64(cond), 1)
	}
	return false
}

// Apply maps p through the transform.
func (c Coefficients) Apply(p Point) Point {
	w := c[6]*p.X + c[7]*p.Y + 1
	return Point{
		X: (c[0]*p.X + c[1]*p.Y + c[2]) / w,
		Y: (c[3]*p.X + c[4]*p.Y + c[5]) / w,
	}
}

// Inverse returns the transform undoing c.
func (c Coefficients) Inverse() (Coefficients, error) {
	m := mat.NewDense(3, 3, []float64{
		c[0], c[1], c[2],
		c[3], c[4], c[5],
		c[6], c[7], 1,
	})
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil && !usable(err) {
		return Coefficients{}, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}
	scale := inv.At(2, 2)
	if scale == 0 {
		return Coefficients{}, ErrDegenerate
	}
	return Coefficients{
		inv.At(0, 0) / scale, inv.At(0, 1) / scale, inv.At(0, 2) / scale,
		inv.At(1, 0) / scale, inv.At(1, 1) / scale, inv.At(1, 2) / scale,
		inv.At(2, 0) / scale, inv.At(2, 1) / scale,
	}, nil
}
