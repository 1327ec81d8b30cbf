package chroma

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lucasb-eyer/go-colorful"

	"colorart/colorspace"
	"colorart/names"
	"colorart/parser"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// cmpColor compares colors field by field with a float margin.
var cmpColor = cmp.Comparer(func(a, b Color) bool {
	return cmp.Equal(
		[]float64{a.rgb[0], a.rgb[1], a.rgb[2], a.alpha},
		[]float64{b.rgb[0], b.rgb[1], b.rgb[2], b.alpha},
		approx,
	)
})

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Color
	}{
		{"rgb(255, 0, 0)", New(255, 0, 0, 1)},
		{"rgba(255,255,255,0.5)", New(255, 255, 255, 0.5)},
		{"hsl(180,100%,50%)", New(0, 255, 255, 1)},
		{"HSL(180, 100%, 50%)", New(0, 255, 255, 1)},
		{"hsla(0, 100%, 50%, 0.3)", New(255, 0, 0, 0.3)},
		{"hsv(240, 100%, 100%)", New(0, 0, 255, 1)},
		{"hsi(240°,100%,33.33%)", New(0, 0, 255, 1)},
		{"hwb(0, 0%, 0%)", New(255, 0, 0, 1)},
		{"cmyk(0,100%,100%,0)", New(255, 0, 0, 1)},
		{"cmyk(35%,0,60%,0)", New(165.75, 255, 102, 1)},
		{"lab(100, 0, 0)", New(255, 255, 255, 1)},
		{"ycbcr(255, 128, 128)", New(255, 255, 255, 1)},
		{"yuv(0, 0, 0)", New(0, 0, 0, 1)},
		{"#7654cd", New(118, 84, 205, 1)},
		{"  #FFF  ", New(255, 255, 255, 1)},
		{"#ffffff80", New(255, 255, 255, 0.5)},
		{"teal", New(0, 128, 128, 1)},
		{"Yellow", New(255, 255, 0, 1)},
		{"水绿", New(0x8c, 0xc2, 0x69, 1)},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got, cmpColor); diff != "" {
				t.Fatalf("unexpected color:\n%s", diff)
			}
		})
	}
}

func TestParseClampsOutOfGamut(t *testing.T) {
	c, err := Parse("lab(50, 127, -128)")
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range c.rgb {
		if v < 0 || v > 255 {
			t.Fatalf("channel %v escaped 0..255", v)
		}
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("rgb(256, 0, 0)")
	var rerr *colorspace.RangeError
	if !errors.As(err, &rerr) || rerr.Component != "Red" {
		t.Fatalf("expected a red range error, got %v", err)
	}

	_, err = Parse("rgbbb(255, 255, 255)")
	if !errors.Is(err, names.ErrUnknownName) || !errors.Is(err, parser.ErrInvalidInput) {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := err.Error()[:len("rgbbb(255, 255, 255) is not a valid color")], "rgbbb(255, 255, 255) is not a valid color"; got != want {
		t.Fatalf("message = %q", err.Error())
	}

	for _, in := range []string{"#ff", "#gggggg", "rgb(1,2)", "rgb(1,2,3", "没有的颜色", ""} {
		if _, err := Parse(in); err == nil {
			t.Errorf("%q parsed", in)
		}
	}

	if _, err := ParseWith("teal", names.Traditional); !errors.Is(err, names.ErrUnknownName) {
		t.Fatalf("teal is not a traditional color name, got %v", err)
	}
}

func TestConstructors(t *testing.T) {
	c, err := FromRGB(uint8(10), 20, 30)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(New(10, 20, 30, 1), c, cmpColor); diff != "" {
		t.Fatal(diff)
	}
	if _, err := FromRGB(-1, 0, 0); err == nil {
		t.Fatal("negative channel accepted")
	}
	if _, err := FromRGBA(1.5, 0, 0, 2); err == nil {
		t.Fatal("alpha 2 accepted")
	}

	c, err = FromHSL(90, 1, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(New(127.5, 255, 0, 1), c, cmpColor); diff != "" {
		t.Fatal(diff)
	}
	if _, err := FromHSV(400, 1, 1); err == nil {
		t.Fatal("hue 400 accepted")
	}

	c, err = FromCMYK(0.2, 0.8, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if c.Hex() != "#c3f" {
		t.Fatalf("cmyk hex = %s", c.Hex())
	}

	c, err = FromName("茉莉黄")
	if err != nil {
		t.Fatal(err)
	}
	if c.HexFull() != "#f8df72" {
		t.Fatalf("got %s", c.HexFull())
	}

	c, err = FromNum(0xff3399)
	if err != nil || c.Hex() != "#f39" {
		t.Fatalf("got %s, %v", c.Hex(), err)
	}
	c, _ = FromNum(777)
	if c.Hex() != "#000309" {
		t.Fatalf("got %s", c.Hex())
	}
	if _, err := FromNum(0x1000000); err == nil {
		t.Fatal("0x1000000 accepted")
	}

	c, err = FromSpace(colorspace.HSI, 240, 1, 0.3333)
	if err != nil {
		t.Fatal(err)
	}
	if c.Format(colorspace.RGB) != "rgb(0, 0, 255)" {
		t.Fatalf("got %s", c.Format(colorspace.RGB))
	}
}

func TestChannels(t *testing.T) {
	c := MustParse("rgba(10, 20, 30, 0.8)")
	if c.Red() != 10 || c.Green() != 20 || c.Blue() != 30 || c.Alpha() != 0.8 {
		t.Fatalf("unexpected channels %d %d %d %v", c.Red(), c.Green(), c.Blue(), c.Alpha())
	}
	got := []float64{c.Whiteness(), c.Blackness(), c.Luminance(), c.Gray()}
	want := []float64{0.0392156862745098, 0.8823529411764706, 0.006585790668061925, 18.15}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("unexpected channels:\n%s", diff)
	}

	c = MustParse("hsl(90, 100%, 50%)")
	got = []float64{c.Hue(), c.Saturation(), c.Lightness(), c.Luminance(), c.Gray()}
	want = []float64{90, 1, 0.5, 0.7607051464665225, 187.8075}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("unexpected hsl channels:\n%s", diff)
	}

	c = MustParse("hsv(90, 100%, 50%)")
	got = []float64{c.HSVHue(), c.HSVSaturation(), c.HSVValue(), c.Gray()}
	want = []float64{90, 1, 0.5, 93.90375}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("unexpected hsv channels:\n%s", diff)
	}

	if a := New(0, 0, 0, 0.333).Alpha(); a != 0.33 {
		t.Fatalf("alpha = %v", a)
	}
}

func TestFormat(t *testing.T) {
	white := New(255, 255, 255, 1)
	teal := New(0, 128, 128, 1)
	brown := New(161, 110, 87, 1)
	yellow := New(255, 255, 0, 1)
	red := New(255, 0, 0, 1)

	for _, tc := range []struct {
		c     Color
		space colorspace.Space
		want  string
	}{
		{white, colorspace.HEX, "#fff"},
		{white, colorspace.HEXA, "#ffffffff"},
		{white, colorspace.RGB, "rgb(255, 255, 255)"},
		{white, colorspace.RGBA, "rgba(255, 255, 255, 1)"},
		{white, colorspace.HSL, "hsl(0, 0%, 100%)"},
		{white, colorspace.HSV, "hsv(0, 0%, 100%)"},
		{white, colorspace.HSI, "hsi(0, 0%, 100%)"},
		{white, colorspace.HWB, "hwb(0, 100%, 0%)"},
		{white, colorspace.CMYK, "cmyk(0%, 0%, 0%, 0%)"},
		{white, colorspace.XYZ, "xyz(0.950456, 1, 1.089058)"},
		{white, colorspace.YCbCr, "YCbCr(255, 128, 128)"},
		{white, colorspace.Lab, "lab(100, 0, 0)"},
		{white, colorspace.Unknown, "#fff"},
		{teal, colorspace.HSL, "hsl(180, 100%, 25%)"},
		{teal, colorspace.HSV, "hsv(180, 100%, 50%)"},
		{teal, colorspace.HSI, "hsi(180, 100%, 33.46%)"},
		{teal, colorspace.HWB, "hwb(180, 0%, 50%)"},
		{teal, colorspace.XYZ, "xyz(0.116147, 0.16996, 0.230912)"},
		{teal, colorspace.YCbCr, "YCbCr(89.728, 149.5854, 64.0239)"},
		{teal, colorspace.Lab, "lab(47.99, -30.39, -8.98)"},
		{brown, colorspace.HSL, "hsl(19, 30%, 49%)"},
		{brown, colorspace.HSV, "hsv(19, 46%, 63%)"},
		{brown, colorspace.HSI, "hsi(18, 27.09%, 46.8%)"},
		{brown, colorspace.HWB, "hwb(19, 34%, 37%)"},
		{brown, colorspace.XYZ, "xyz(0.219934, 0.194179, 0.116068)"},
		{brown, colorspace.YCbCr, "YCbCr(122.627, 107.9064, 155.3599)"},
		{brown, colorspace.Lab, "lab(51.48, 18.82, 21.44)"},
		{yellow, colorspace.YUV, "yuv(0.886, -0.4359, 0.1)"},
		{yellow, colorspace.CMYK, "cmyk(0%, 0%, 100%, 0%)"},
		{yellow, colorspace.HSI, "hsi(60, 100%, 66.67%)"},
		{yellow, colorspace.Lab, "lab(97.61, -15.75, 93.39)"},
		{red, colorspace.YIQ, "yiq(0.299, 0.59572, 0.21146)"},
		{red, colorspace.XYZ, "xyz(0.412391, 0.212639, 0.019331)"},
		{New(255, 255, 255, 0.3), colorspace.HSLA, "hsla(0, 0%, 100%, 0.3)"},
	} {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.c.Format(tc.space); got != tc.want {
				t.Fatalf("got %s", got)
			}
		})
	}
}

func TestHexAndName(t *testing.T) {
	for _, tc := range []struct {
		c             Color
		hex, full, nm string
	}{
		{New(255, 0, 255, 1), "#f0f", "#ff00ff", "fuchsia"},
		{New(255, 255, 255, 0.5), "#ffffff80", "#ffffff80", "#ffffff80"},
		{New(0, 255, 0, 0.2), "#0f03", "#00ff0033", "#0f03"},
		{New(42, 42, 42, 1), "#2a2a2a", "#2a2a2a", "#2a2a2a"},
		{New(0xf8, 0xdf, 0x72, 1), "#f8df72", "#f8df72", "茉莉黄"},
		{New(255, 255, 255, 1), "#fff", "#ffffff", "white"},
	} {
		if got := tc.c.Hex(); got != tc.hex {
			t.Errorf("Hex() = %s, want %s", got, tc.hex)
		}
		if got := tc.c.HexFull(); got != tc.full {
			t.Errorf("HexFull() = %s, want %s", got, tc.full)
		}
		if got := tc.c.Name(); got != tc.nm {
			t.Errorf("Name() = %s, want %s", got, tc.nm)
		}
		if got := tc.c.String(); got != tc.hex {
			t.Errorf("String() = %s, want %s", got, tc.hex)
		}
	}
}

func TestOps(t *testing.T) {
	hexOf := func(c Color) string { return c.Hex() }
	mustOK := func(c Color, err error) Color {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return c
	}

	base := MustParse("hsl(60, 80%, 50%)")
	for _, tc := range []struct {
		name string
		got  string
		want string
	}{
		{"mix", hexOf(MustParse("#003366").Mix(MustParse("#d2e1dd"), 0.5)), "#698aa2"},
		{"mix rb", hexOf(MustParse("#ff0000").Mix(MustParse("#0000ff"), 0.5)), "#800080"},
		{"mix clamp", hexOf(MustParse("#ff0000").Mix(MustParse("#0000ff"), 7)), "#00f"},
		{"tint", hexOf(MustParse("rgb(255, 0, 0)").Tint(0.5)), "#ff8080"},
		{"shade", hexOf(MustParse("rgb(255, 0, 0)").Shade(0.5)), "#800000"},
		{"darken", hexOf(MustParse("#426105").Darken(0.1)), "#213102"},
		{"darken2", hexOf(MustParse("#80e619").Darken(0.2)), "#4d8a0f"},
		{"lighten", hexOf(MustParse("#426105").Lighten(0.1)), "#639207"},
		{"darken floor", hexOf(MustParse("#426105").Darken(5)), "#000"},
		{"saturate", mustOK(base.Saturate(0.2)).Format(colorspace.HSL), "hsl(60, 100%, 50%)"},
		{"desaturate", mustOK(base.Desaturate(0.2)).Format(colorspace.HSL), "hsl(60, 60%, 50%)"},
		{"greyscale", hexOf(base.Greyscale()), "#808080"},
		{"spin", hexOf(base.Spin(120)), "#19e6e6"},
		{"spin back", base.Spin(-120).Spin(120).Format(colorspace.HSL), "hsl(60, 80%, 50%)"},
		{"negate", hexOf(MustParse("#fff").Negate()), "#000"},
		{"fade", mustOK(MustParse("#fff").Fade(0.5)).Format(colorspace.RGBA), "rgba(255, 255, 255, 0.5)"},
		{"fade in", mustOK(MustParse("rgba(0,0,0,0.5)").FadeIn(0.8)).Format(colorspace.RGBA), "rgba(0, 0, 0, 1)"},
		{"fade out", mustOK(MustParse("rgba(0,0,0,0.5)").FadeOut(0.2)).Format(colorspace.RGBA), "rgba(0, 0, 0, 0.3)"},
	} {
		if tc.got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, tc.got, tc.want)
		}
	}

	if _, err := base.Saturate(1.5); err == nil {
		t.Fatal("saturate 1.5 accepted")
	}
	if _, err := base.Fade(-0.1); err == nil {
		t.Fatal("fade -0.1 accepted")
	}
	if _, err := base.FadeIn(2); err == nil {
		t.Fatal("fade in 2 accepted")
	}

	// ops never touch the receiver
	before := base
	_ = base.Darken(0.3)
	_, _ = base.Fade(0.1)
	if base != before {
		t.Fatal("receiver mutated")
	}
}

func TestAverage(t *testing.T) {
	if diff := cmp.Diff(Color{}, Average(), cmpColor); diff != "" {
		t.Fatal(diff)
	}
	got := Average(New(0, 0, 0, 1), New(255, 255, 255, 0), New(30, 60, 90, 0.5))
	if diff := cmp.Diff(New(95, 105, 115, 0.5), got, cmpColor); diff != "" {
		t.Fatal(diff)
	}
}

func TestRandom(t *testing.T) {
	for range 100 {
		c := Random()
		if err := colorspace.RGB.Valid(c.VecOf(colorspace.RGB)); err != nil {
			t.Fatal(err)
		}
		if c.Alpha() != 1 {
			t.Fatalf("alpha = %v", c.Alpha())
		}
	}
}

func TestImageColor(t *testing.T) {
	var _ color.Color = Color{}

	c := New(255, 0, 0, 0.5)
	r, g, b, a := c.RGBA()
	if r != 0x8000 || g != 0 || b != 0 || a != 0x8000 {
		t.Fatalf("unexpected premultiplied channels %#x %#x %#x %#x", r, g, b, a)
	}

	back := Model.Convert(color.NRGBA{R: 118, G: 84, B: 205, A: 255}).(Color)
	if back.Hex() != "#7654cd" {
		t.Fatalf("got %s", back.Hex())
	}
	if Model.Convert(c) != c {
		t.Fatal("Model changed a Color")
	}

	half := Model.Convert(color.NRGBA{R: 255, A: 128}).(Color)
	if half.Red() != 255 || half.Alpha() != 0.5 {
		t.Fatalf("got %s with alpha %v", half.Hex(), half.Alpha())
	}
}

func TestColorful(t *testing.T) {
	c := MustParse("#7654cd")
	if got := c.Colorful().Hex(); got != "#7654cd" {
		t.Fatalf("got %s", got)
	}
	cc, err := colorful.Hex("#4cbbfc")
	if err != nil {
		t.Fatal(err)
	}
	if got := FromColorful(cc).Hex(); got != "#4cbbfc" {
		t.Fatalf("got %s", got)
	}
}
