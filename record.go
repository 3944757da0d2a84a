package lazylabel

import "image/color"

import "github.com/recyclable/lazylabel/markup"

// applyRecord copies the recognized option keys of a data record onto
// the label. Unknown keys and values of unexpected types are ignored;
// records routinely carry host-side keys (like the size key) that are
// none of our business.
func (self *Label) applyRecord(record Record) {
	if record == nil {
		return
	}
	if v, ok := record["text"].(string); ok {
		self.text = v
	}
	if v, ok := record["markup"].(bool); ok {
		self.opts.Markup = v
	}
	if v, ok := record["strip"].(bool); ok {
		self.opts.Strip = v
	}
	if v, ok := record["mipmap"].(bool); ok {
		self.opts.Mipmap = v
	}
	if v, ok := record["halign"].(string); ok {
		if align, ok := parseHorzAlign(v); ok {
			self.opts.HorzAlign = align
		}
	}
	if v, ok := record["valign"].(string); ok {
		if align, ok := parseVertAlign(v); ok {
			self.opts.VertAlign = align
		}
	}
	if v, ok := record["color"]; ok {
		if clr, ok := ParseColor(v); ok {
			self.opts.Color = clr
		}
	}
	if v, ok := recordNumber(record["padding_x"]); ok {
		self.opts.PadX = v
	}
	if v, ok := recordNumber(record["padding_y"]); ok {
		self.opts.PadY = v
	}
}

func parseHorzAlign(name string) (HorzAlign, bool) {
	switch name {
	case "left":
		return Left, true
	case "center":
		return HorzCenter, true
	case "right":
		return Right, true
	case "justify":
		return Justify, true
	}
	return Left, false
}

func parseVertAlign(name string) (VertAlign, bool) {
	switch name {
	case "top":
		return Top, true
	case "middle", "center":
		return VertCenter, true
	case "bottom":
		return Bottom, true
	}
	return Top, false
}

// ParseColor interprets the color forms accepted in data records:
// a [color.Color], a "#rgb"/"#rrggbb"/"#rrggbbaa" hex string, or a
// slice of 3 or 4 float64 components in the [0, 1] range.
func ParseColor(value any) (color.RGBA, bool) {
	switch v := value.(type) {
	case color.RGBA:
		return v, true
	case color.Color:
		r, g, b, a := v.RGBA()
		return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}, true
	case string:
		return markup.ParseHexColor(v)
	case []float64:
		if len(v) != 3 && len(v) != 4 {
			return color.RGBA{}, false
		}
		clr := color.RGBA{
			R: floatComponent(v[0]),
			G: floatComponent(v[1]),
			B: floatComponent(v[2]),
			A: 255,
		}
		if len(v) == 4 {
			clr.A = floatComponent(v[3])
		}
		return clr, true
	}
	return color.RGBA{}, false
}

func recordNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func floatComponent(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
