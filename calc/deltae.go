// Package calc compares and composites colors.
package calc

import (
	"math"

	"colorart/chroma"
	"colorart/colorspace"
)

const pow25to7 = 6103515625 // 25^7

// DeltaE is the CIEDE2000 difference between two colors, with unit
// weighting factors, clamped to 0..100.
//
// based on:
// https://hajim.rochester.edu/ece/sites/gsharma/ciede2000/ciede2000noteCRNA.pdf
func DeltaE(c1, c2 chroma.Color) float64 {
	lab1 := c1.VecOf(colorspace.Lab)
	lab2 := c2.VecOf(colorspace.Lab)
	l1, a1, b1 := lab1[0], lab1[1], lab1[2]
	l2, a2, b2 := lab2[0], lab2[1], lab2[2]

	avgL := (l1 + l2) / 2
	avgC := (math.Hypot(a1, b1) + math.Hypot(a2, b2)) / 2

	g := 0.5 * (1 - math.Sqrt(math.Pow(avgC, 7)/(math.Pow(avgC, 7)+pow25to7)))
	a1p := (1 + g) * a1
	a2p := (1 + g) * a2

	c1p := math.Hypot(a1p, b1)
	c2p := math.Hypot(a2p, b2)
	avgCp := (c1p + c2p) / 2

	h1p := hueAngle(b1, a1p)
	h2p := hueAngle(b2, a2p)

	avgHp := (h1p + h2p) / 2
	if math.Abs(h1p-h2p) > 180 {
		avgHp += 180
	}

	t := 1 - 0.17*cosDeg(avgHp-30) +
		0.24*cosDeg(2*avgHp) +
		0.32*cosDeg(3*avgHp+6) -
		0.2*cosDeg(4*avgHp-63)

	dhp := h2p - h1p
	switch {
	case math.Abs(dhp) <= 180:
	case h2p <= h1p:
		dhp += 360
	default:
		dhp -= 360
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * sinDeg(dhp/2)

	dLp := l2 - l1
	dCp := c2p - c1p

	sl := 1 + 0.015*(avgL-50)*(avgL-50)/math.Sqrt(20+(avgL-50)*(avgL-50))
	sc := 1 + 0.045*avgCp
	sh := 1 + 0.015*avgCp*t

	dTheta := 30 * math.Exp(-math.Pow((avgHp-275)/25, 2))
	rc := 2 * math.Sqrt(math.Pow(avgCp, 7)/(math.Pow(avgCp, 7)+pow25to7))
	rt := -rc * sinDeg(2*dTheta)

	dl := dLp / sl
	dc := dCp / sc
	dh := dHp / sh

	return clamp(math.Sqrt(dl*dl+dc*dc+dh*dh+rt*dc*dh), 0, 100)
}

func hueAngle(b, a float64) float64 {
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func cosDeg(d float64) float64 { return math.Cos(d * math.Pi / 180) }
func sinDeg(d float64) float64 { return math.Sin(d * math.Pi / 180) }

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	} else if x > max {
		return max
	} else {
		return x
	}
}
