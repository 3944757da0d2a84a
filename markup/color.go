package markup

import "image/color"

// Alias so that span styles and color helpers read naturally without
// importing image/color at every use site.
type RGBA = color.RGBA

// ParseHexColor parses "#rgb", "#rgba", "#rrggbb" and "#rrggbbaa"
// strings. The leading '#' is optional. Missing alpha means opaque.
func ParseHexColor(s string) (RGBA, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3, 4:
		var c [4]uint8
		c[3] = 255
		for i := 0; i < len(s); i++ {
			v, ok := hexNibble(s[i])
			if !ok {
				return RGBA{}, false
			}
			c[i] = v*16 + v
		}
		return RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, true
	case 6, 8:
		var c [4]uint8
		c[3] = 255
		for i := 0; i+1 < len(s); i += 2 {
			hi, ok1 := hexNibble(s[i])
			lo, ok2 := hexNibble(s[i+1])
			if !ok1 || !ok2 {
				return RGBA{}, false
			}
			c[i/2] = hi*16 + lo
		}
		return RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, true
	}
	return RGBA{}, false
}

// HexFromColor formats a color as "#rrggbbaa", the form used when
// wrapping label text in a color span.
func HexFromColor(c RGBA) string {
	const digits = "0123456789abcdef"
	out := make([]byte, 9)
	out[0] = '#'
	for i, v := range [4]uint8{c.R, c.G, c.B, c.A} {
		out[1+i*2] = digits[v>>4]
		out[2+i*2] = digits[v&0x0f]
	}
	return string(out)
}

// WrapColor wraps text in a color span matching the given color. Used
// by labels in markup mode so the resolved label color applies to any
// text not already inside a [color] tag.
func WrapColor(text string, c RGBA) string {
	return "[color=" + HexFromColor(c) + "]" + text + "[/color]"
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
