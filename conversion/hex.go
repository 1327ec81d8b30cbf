package conversion

import (
	"fmt"
	"strconv"

	"colorart/colorspace"
)

// HexToRGBA decodes a #rgb, #rgba, #rrggbb or #rrggbbaa literal. Alpha is
// returned in 0..1 rounded to two decimals; it is 1 when the literal has no
// alpha digits.
func HexToRGBA(hex string) (r, g, b, a float64, err error) {
	if err = colorspace.ValidHex(hex); err != nil {
		return 0, 0, 0, 0, err
	}

	digits := hex[1:]
	width := 2
	if len(digits) <= 4 {
		width = 1
	}

	channels := [4]float64{0, 0, 0, 255}
	for i := 0; i*width < len(digits); i++ {
		part := digits[i*width : (i+1)*width]
		if width == 1 {
			part += part
		}
		v, perr := strconv.ParseUint(part, 16, 8)
		if perr != nil {
			return 0, 0, 0, 0, fmt.Errorf("%w: %s", colorspace.ErrInvalidHex, hex)
		}
		channels[i] = float64(v)
	}

	return channels[0], channels[1], channels[2], Round(channels[3]/255, 2), nil
}

// RGBAToHex encodes channels as #rrggbb, or #rrggbbaa when alpha is below 1.
// Channels are rounded and clamped to a byte.
func RGBAToHex(r, g, b, a float64) string {
	if a >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", toByte(r), toByte(g), toByte(b))
	}
	return RGBAToHex8(r, g, b, a)
}

// RGBAToHex8 always encodes the alpha digits.
func RGBAToHex8(r, g, b, a float64) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", toByte(r), toByte(g), toByte(b), toByte(a*255))
}

// ShortHex collapses #rrggbb and #rrggbbaa to #rgb and #rgba when every
// channel repeats its digit.
func ShortHex(hex string) string {
	if len(hex) != 7 && len(hex) != 9 {
		return hex
	}

	short := []byte{'#'}
	for i := 1; i < len(hex); i += 2 {
		if hex[i] != hex[i+1] {
			return hex
		}
		short = append(short, hex[i])
	}
	return string(short)
}

func toByte(v float64) uint8 {
	return uint8(clamp(Round(v, 0), 0, 255))
}
