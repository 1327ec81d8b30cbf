// Package colorspace names the color models understood by colorart and holds
// the per-model arity and range rules.
package colorspace

import (
	"fmt"
	"strings"
)

// Space identifies a color model. The zero value is Unknown.
type Space uint8

const (
	Unknown Space = iota
	RGB
	RGBA
	HEX
	HEXA
	HSI
	HSL
	HSLA
	HSV
	HWB
	CMYK
	XYZ
	YIQ
	YUV
	YCbCr
	Lab
)

// All lists every known space, Unknown excluded.
var All = []Space{RGB, RGBA, HEX, HEXA, HSI, HSL, HSLA, HSV, HWB, CMYK, XYZ, YIQ, YUV, YCbCr, Lab}

// Lookup resolves a space name, ignoring case. Unrecognized names map to
// Unknown.
func Lookup(name string) Space {
	switch strings.ToLower(name) {
	case "rgb":
		return RGB
	case "rgba":
		return RGBA
	case "hex":
		return HEX
	case "hexa":
		return HEXA
	case "hsi":
		return HSI
	case "hsl":
		return HSL
	case "hsla":
		return HSLA
	case "hsv":
		return HSV
	case "hwb":
		return HWB
	case "cmyk":
		return CMYK
	case "xyz":
		return XYZ
	case "yiq":
		return YIQ
	case "yuv":
		return YUV
	case "ycbcr":
		return YCbCr
	case "lab":
		return Lab
	default:
		return Unknown
	}
}

func (s Space) String() string {
	switch s {
	case RGB:
		return "rgb"
	case RGBA:
		return "rgba"
	case HEX:
		return "hex"
	case HEXA:
		return "hexa"
	case HSI:
		return "hsi"
	case HSL:
		return "hsl"
	case HSLA:
		return "hsla"
	case HSV:
		return "hsv"
	case HWB:
		return "hwb"
	case CMYK:
		return "cmyk"
	case XYZ:
		return "xyz"
	case YIQ:
		return "yiq"
	case YUV:
		return "yuv"
	case YCbCr:
		return "YCbCr"
	case Lab:
		return "lab"
	default:
		return "unknown"
	}
}

// Arity is the number of numeric components the space's literal syntax
// requires. Unknown has none.
func (s Space) Arity() int {
	switch s {
	case RGBA, HEXA, HSLA, CMYK:
		return 4
	case RGB, HEX, HSI, HSL, HSV, HWB, XYZ, YIQ, YUV, YCbCr, Lab:
		return 3
	default:
		return 0
	}
}

// HasAlpha reports whether the last component of the space is an alpha
// channel.
func (s Space) HasAlpha() bool {
	switch s {
	case RGBA, HEXA, HSLA:
		return true
	default:
		return false
	}
}

// UnmarshalText lets a Space be used directly as a flag or config value.
func (s *Space) UnmarshalText(text []byte) error {
	sp := Lookup(string(text))
	if sp == Unknown {
		return fmt.Errorf("%w: %q", ErrUnknownSpace, text)
	}
	*s = sp
	return nil
}

func (s Space) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
