package calc

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"colorart/chroma"
	"colorart/colorspace"
)

func TestDeltaE(t *testing.T) {
	for _, tc := range []struct {
		a, b      string
		want, tol float64
	}{
		{"#fefe0e", "#fff", 30.165629067733, 1e-6},
		{"#ededee", "#edeeed", 1.2364506278717, 1e-5},
		// Lab constants differ from other references in the sixth digit
		{"#e0e0ee", "#e0eee0", 14.618185117696, 1e-5},
		{"#000", "#fff", 100, 1e-6},
		{"#7654cd", "#7654cd", 0, 1e-9},
	} {
		a, b := chroma.MustParse(tc.a), chroma.MustParse(tc.b)
		got := DeltaE(a, b)
		if math.Abs(got-tc.want) > tc.tol {
			t.Errorf("DeltaE(%s, %s) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
		if back := DeltaE(b, a); math.Abs(back-got) > 1e-9 {
			t.Errorf("DeltaE is not symmetric for %s, %s: %v vs %v", tc.a, tc.b, got, back)
		}
	}

	for range 50 {
		if d := DeltaE(chroma.Random(), chroma.Random()); d < 0 || d > 100 {
			t.Fatalf("DeltaE out of bounds: %v", d)
		}
	}
}

func TestDistance(t *testing.T) {
	a, b := chroma.MustParse("#fefe0e"), chroma.MustParse("#fff")

	d, err := Distance(a, b, colorspace.RGBA)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(241.00414934187336, d, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatal(diff)
	}

	d, err = Distance(a, a, colorspace.Lab)
	if err != nil || d != 0 {
		t.Fatalf("self distance %v, %v", d, err)
	}

	if _, err := Distance(a, b, colorspace.Unknown); err == nil {
		t.Fatal("unknown space accepted")
	}
}

func TestContrastRatio(t *testing.T) {
	black, white := chroma.MustParse("#000"), chroma.MustParse("#fff")
	if got := ContrastRatio(black, white); got != 21 {
		t.Fatalf("got %v", got)
	}
	got := ContrastRatio(chroma.MustParse("#fefe0e"), white)
	if diff := cmp.Diff(1.0826287103122008, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatal(diff)
	}
}

func TestBlend(t *testing.T) {
	backdrop, source := chroma.MustParse("#4cbbfc"), chroma.MustParse("#ee2")
	for _, tc := range []struct {
		mode BlendMode
		want string
	}{
		{Normal, "#ee2"},
		{Multiply, "#47af22"},
		{Darken, "#4cbb22"},
		{Lighten, "#eeeefc"},
		{Screen, "#f3fafc"},
		{Overlay, "#8ef6fa"},
		{ColorBurn, "#3fb6e9"},
		{ColorDodge, "#fff"},
		{HardLight, "#e7f643"},
		{SoftLight, "#83d6fa"},
		{Difference, "#a233da"},
		{Exclusion, "#ac4cdb"},
	} {
		t.Run(tc.mode.String(), func(t *testing.T) {
			if got := Blend(backdrop, source, tc.mode).Hex(); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestBlendBoundaries(t *testing.T) {
	black, white := chroma.MustParse("#000"), chroma.MustParse("#fff")
	for range 20 {
		c := chroma.Random()
		if got := Blend(c, black, Multiply); got.Hex() != "#000" {
			t.Fatalf("multiply %s with black gave %s", c, got)
		}
		if got := Blend(black, c, Multiply); got.Hex() != "#000" {
			t.Fatalf("multiply black with %s gave %s", c, got)
		}
		if got := Blend(c, white, Screen); got.Hex() != "#fff" {
			t.Fatalf("screen %s with white gave %s", c, got)
		}
		if got := Blend(white, c, Screen); got.Hex() != "#fff" {
			t.Fatalf("screen white with %s gave %s", c, got)
		}
	}

	source := chroma.New(12.5, 200, 77, 0.4)
	if got := Blend(white, source, Normal); got != source {
		t.Fatalf("normal changed the source: %v", got)
	}
}

func TestBlendIsOpaque(t *testing.T) {
	backdrop := chroma.MustParse("#4cbbfc")
	source := chroma.MustParse("rgba(238,238,34,0.4)")

	for _, mode := range []BlendMode{Multiply, Screen, Difference} {
		got := Blend(backdrop, source, mode)
		if got.Opacity() != 1 {
			t.Errorf("%s: alpha = %v, want 1", mode, got.Opacity())
		}
	}
	if got := Blend(backdrop, source, Multiply).Hex(); got != "#47af22" {
		t.Fatalf("multiply gave %s, want #47af22", got)
	}
	if got := Blend(backdrop, source, Normal); got.Opacity() != 0.4 {
		t.Fatalf("normal alpha = %v, want 0.4", got.Opacity())
	}
}

func TestParseBlendMode(t *testing.T) {
	for _, name := range BlendModes() {
		m, err := ParseBlendMode(name)
		if err != nil {
			t.Fatal(err)
		}
		if m.String() != name {
			t.Fatalf("%s round-tripped to %s", name, m)
		}
	}
	var m BlendMode
	if err := m.UnmarshalText([]byte("Color-Burn")); err != nil || m != ColorBurn {
		t.Fatalf("got %v, %v", m, err)
	}
	if _, err := ParseBlendMode("plus"); err == nil {
		t.Fatal("unknown mode accepted")
	}
}
