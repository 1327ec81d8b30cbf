package colorspace

import (
	"errors"
	"math"
	"testing"
)

func TestValid(t *testing.T) {
	for _, tc := range []struct {
		space     Space
		values    []float64
		component string
	}{
		{RGB, []float64{0, 128, 255}, ""},
		{RGB, []float64{0, 256, 0}, "Green"},
		{HEXA, []float64{255, 255, 255, 1}, ""},
		{HSL, []float64{360, 1, 1}, ""},
		{HSL, []float64{-1, 0, 0}, "Hue"},
		{HSLA, []float64{0, 0, 0, 1.01}, "Alpha"},
		{CMYK, []float64{0, 0, 0, 1}, ""},
		{XYZ, []float64{0.950456, 1, 1.088754}, ""},
		{XYZ, []float64{0.95, 1, 1.089058}, "Z"},
		{Lab, []float64{0, -128, 127}, ""},
		{Lab, []float64{101, 0, 0}, "L"},
		{YIQ, []float64{1, 0.5957, -0.5226}, ""},
		{YUV, []float64{0, 0.436, -0.615}, ""},
		{YUV, []float64{0, 0.437, 0}, "U"},
		{YCbCr, []float64{255, 0, 255}, ""},
		{HSV, []float64{0, math.NaN(), 0}, "Saturation"},
	} {
		t.Run(tc.space.String()+"/"+tc.component, func(t *testing.T) {
			err := tc.space.Valid(tc.values)
			if tc.component == "" {
				if err != nil {
					t.Fatal(err)
				}
				return
			}

			var rerr *RangeError
			if !errors.As(err, &rerr) {
				t.Fatalf("expected a range error, got %v", err)
			}
			if rerr.Component != tc.component || rerr.Space != tc.space {
				t.Fatalf("got %s %s, want %s %s", rerr.Space, rerr.Component, tc.space, tc.component)
			}
		})
	}
}

func TestValidErrors(t *testing.T) {
	if err := RGB.Valid([]float64{0, 0}); !errors.Is(err, ErrArity) {
		t.Fatalf("got %v, want %v", err, ErrArity)
	}
	if err := Unknown.Valid(nil); !errors.Is(err, ErrUnknownSpace) {
		t.Fatalf("got %v, want %v", err, ErrUnknownSpace)
	}
}

func TestValidHex(t *testing.T) {
	for in, ok := range map[string]bool{
		"#fff":       true,
		"#FfFa":      true,
		"#a0b1c2":    true,
		"#a0b1c2d3":  true,
		"":           false,
		"fff":        false,
		"#ff":        false,
		"#fffff":     false,
		"#ggg":       false,
		"#a0b1c2d":   false,
		"#a0b1c2d3e": false,
	} {
		t.Run(in, func(t *testing.T) {
			err := ValidHex(in)
			if ok != (err == nil) {
				t.Fatalf("ValidHex(%q) = %v", in, err)
			}
			if err != nil && !errors.Is(err, ErrInvalidHex) {
				t.Fatalf("got %v, want %v", err, ErrInvalidHex)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	for _, space := range All {
		if got := Lookup(space.String()); got != space {
			t.Errorf("Lookup(%q) = %s", space.String(), got)
		}
	}
	if got := Lookup("YCBCR"); got != YCbCr {
		t.Errorf("Lookup(YCBCR) = %s", got)
	}
	if got := Lookup("oklab"); got != Unknown {
		t.Errorf("Lookup(oklab) = %s", got)
	}
}
