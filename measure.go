package lazylabel

import "strings"

import "github.com/recyclable/lazylabel/markup"

// measurement is the result of one full measure pass. It's replaced
// wholesale on every re-measure and never mutated in place.
type measurement struct {
	width, height float64
	par           Paragraph

	// no visible content; short-circuits all window management
	empty bool

	// y inside the logical block where line 0 starts, derived from
	// vertical alignment and padding
	originY float64
}

// measure runs the full measure pass: one call into the layout engine
// to obtain the logical size and line list. No pixels are rasterized
// here; the previous texture window becomes stale and is discarded.
func (self *Label) measure() error {
	self.measurePending = false
	if self.win.tex != nil {
		self.win.tex.Dispose()
	}
	self.win = windowState{}
	self.meas = measurement{}

	stripping := self.opts.Strip || self.opts.HorzAlign == Justify
	text := self.text
	if text == "" || (stripping && strings.TrimSpace(text) == "") {
		self.meas.empty = true
		return nil
	}

	if self.opts.Markup {
		// strip before wrapping in the color span: the markup engine
		// only strips line by line, so a trailing blank line would
		// otherwise survive
		if stripping {
			text = strings.TrimSpace(text)
		}
		text = markup.WrapColor(text, self.opts.Color)
	}

	constraints := Constraints{
		HorzAlign: self.opts.HorzAlign,
		Strip:     stripping,
		Markup:    self.opts.Markup,
		Color:     self.opts.Color,
		PadX:      self.opts.PadX,
		PadY:      self.opts.PadY,
	}
	if self.opts.ConstrainWidth {
		constraints.WrapWidth = self.wrapWidth
	}

	par, err := self.engine.Measure(text, constraints)
	if err != nil {
		return err
	}
	width, height := par.Size()
	if width <= 1 || height <= 1 || par.LineCount() == 0 {
		self.meas.empty = true
		return nil
	}

	self.meas = measurement{width: width, height: height, par: par}

	// vertical origin of line 0 within the logical block
	internal := par.ContentHeight() + 2*self.opts.PadY
	y := self.opts.PadY
	switch self.opts.VertAlign {
	case VertCenter:
		y = (height-internal)/2 + self.opts.PadY
	case Bottom:
		y = height - internal + self.opts.PadY
	}
	self.meas.originY = y
	return nil
}
