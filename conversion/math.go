// Package conversion holds the numeric kernels mapping component vectors of
// every supported space to sRGB channels (0..255) and back.
//
// Kernels are pure and do not clamp: callers validate ranges first. Output in
// RGB is rounded only where a kernel goes through a nonlinear or matrix step,
// so chains like Lab -> XYZ -> RGB do not accumulate rounding error.
package conversion

import "math"

// Matrix is a row-major matrix of arbitrary shape.
type Matrix [][]float64

// MultiplyMatrices returns a*b where a is m x n and b is n x p. Shapes are
// not checked.
//
// based on:
// https://www.w3.org/TR/css-color-4/multiply-matrices.js
func MultiplyMatrices(a, b Matrix) Matrix {
	res := make(Matrix, len(a))
	for i := range a {
		p := len(b[0])
		row := make([]float64, p)
		for j := range p {
			var sum float64
			for k := range a[i] {
				sum += a[i][k] * b[k][j]
			}
			row[j] = sum
		}
		res[i] = row
	}
	return res
}

// column turns three scalars into a 3x1 matrix.
func column(x, y, z float64) Matrix {
	return Matrix{{x}, {y}, {z}}
}

func apply(m Matrix, x, y, z float64) (float64, float64, float64) {
	p := MultiplyMatrices(m, column(x, y, z))
	return p[0][0], p[1][0], p[2][0]
}

// Round rounds half away from zero to the given number of decimals and never
// returns negative zero.
func Round(v float64, precision int) float64 {
	factor := math.Pow10(precision)
	v = math.Round(v*factor) / factor
	if v == 0 {
		return 0
	}
	return v
}

func normalize(r, g, b float64) (float64, float64, float64) {
	return r / 255, g / 255, b / 255
}

func toByteScale(r, g, b float64) (float64, float64, float64) {
	return Round(r*255, 0), Round(g*255, 0), Round(b*255, 0)
}

// wrapHue maps any hue onto [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	} else if x > max {
		return max
	} else {
		return x
	}
}

const (
	radToDeg = 180 / math.Pi
	degToRad = math.Pi / 180
)
