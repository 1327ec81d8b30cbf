package palette

import (
	"slices"

	"colorart/chroma"
)

var builtin = map[string]Palette{
	"bw":       hexes("#000", "#fff"),
	"spectra6": hexes("#000", "#fff", "#f00", "#ff0", "#00f", "#0f0"),
	"gray16":   gray(16),
	"vga16":    vga16,
	"web216":   web(),
}

var vga16 = hexes(
	"#000000", "#0000aa", "#00aa00", "#00aaaa", "#aa0000", "#aa00aa", "#aa5500", "#aaaaaa",
	"#555555", "#5555ff", "#55ff55", "#55ffff", "#ff5555", "#ff55ff", "#ffff55", "#ffffff",
)

// Builtin lists the names Load resolves without touching the filesystem.
func Builtin() []string {
	res := make([]string, 0, len(builtin))
	for name := range builtin {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

func hexes(hs ...string) Palette {
	res := make(Palette, len(hs))
	for i, h := range hs {
		res[i] = chroma.MustParse(h)
	}
	return res
}

func gray(n int) Palette {
	res := make(Palette, n)
	for i := range n {
		v := float64(i) * 255 / float64(n-1)
		res[i] = chroma.New(v, v, v, 1)
	}
	return res
}

// web returns the 6x6x6 web-safe cube.
func web() Palette {
	res := make(Palette, 0, 216)
	for r := range 6 {
		for g := range 6 {
			for b := range 6 {
				res = append(res, chroma.New(float64(r*51), float64(g*51), float64(b*51), 1))
			}
		}
	}
	return res
}
