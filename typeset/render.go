package typeset

import "fmt"
import "image"
import "image/draw"

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

import "github.com/recyclable/lazylabel"
import "github.com/recyclable/lazylabel/markup"

// RenderLines implements [lazylabel.Paragraph]: it rasterizes lines
// [first, end) into a fresh RGBA image of the given pixel size, with
// the top of line first at y.
func (self *paragraph) RenderLines(first, end int, y float64, width, height int) (image.Image, error) {
	if first < 0 || end > len(self.lines) || first > end {
		return nil, fmt.Errorf("line range [%d, %d) out of bounds (%d lines)", first, end, len(self.lines))
	}
	if first == end || width <= 0 || height <= 0 {
		return nil, nil
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	lineTop := y
	for i := first; i < end; i++ {
		self.renderLine(img, i, lineTop)
		lineTop += self.lineHeight
	}
	return img, nil
}

func (self *paragraph) renderLine(img *image.RGBA, index int, top float64) {
	ln := self.lines[index]
	if ln.start >= ln.end {
		return
	}
	constraints := self.constraints
	lineWidth := fixedToFloat(ln.width)

	x := constraints.PadX
	switch constraints.HorzAlign {
	case lazylabel.HorzCenter:
		x = (self.width - lineWidth) / 2
	case lazylabel.Right:
		x = self.width - constraints.PadX - lineWidth
	}

	// justify expands spaces of every line except the last of each
	// explicit paragraph
	var extraPerSpace fixed.Int26_6
	if constraints.HorzAlign == lazylabel.Justify && !ln.endsParagraph {
		spaces := 0
		for i := ln.start; i < ln.end; i++ {
			if self.runes[i] == ' ' {
				spaces += 1
			}
		}
		if spaces > 0 {
			usable := self.width - 2*constraints.PadX
			extra := (usable - lineWidth) / float64(spaces)
			if extra > 0 {
				extraPerSpace = floatToFixed(extra)
			}
		}
	}

	dot := fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(top + self.ascent)}
	i := ln.start
	for i < ln.end {
		style := self.styleAt(i)
		j := i + 1
		for j < ln.end && self.styleAt(j) == style {
			j += 1
		}
		dot = self.drawRun(img, i, j, style, dot, extraPerSpace)
		i = j
	}
}

// drawRun draws the [start, end) rune run in a single style and
// returns the advanced pen position.
func (self *paragraph) drawRun(img *image.RGBA, start, end int, style markup.Style, dot fixed.Point26_6, extraPerSpace fixed.Int26_6) fixed.Point26_6 {
	face := self.engine.faceFor(style)
	col := self.constraints.Color
	if style.HasColor {
		col = style.Color
	}
	if (col == markup.RGBA{}) {
		col = markup.RGBA{R: 255, G: 255, B: 255, A: 255}
	}

	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  dot,
	}
	runStart := dot.X

	if extraPerSpace > 0 {
		chunk := start
		for i := start; i < end; i++ {
			if self.runes[i] != ' ' {
				continue
			}
			drawer.DrawString(string(self.runes[chunk:i]))
			drawer.Dot.X += glyphAdvance(face, ' ') + extraPerSpace
			chunk = i + 1
		}
		drawer.DrawString(string(self.runes[chunk:end]))
	} else {
		drawer.DrawString(string(self.runes[start:end]))
	}

	if style.Underline || style.Strike {
		metrics := face.Metrics()
		x0, x1 := runStart.Floor(), drawer.Dot.X.Ceil()
		src := image.NewUniform(col)
		if style.Underline {
			y := (dot.Y + metrics.Descent/2).Floor()
			draw.Draw(img, image.Rect(x0, y, x1, y+1), src, image.Point{}, draw.Over)
		}
		if style.Strike {
			y := (dot.Y - metrics.Ascent/3).Floor()
			draw.Draw(img, image.Rect(x0, y, x1, y+1), src, image.Point{}, draw.Over)
		}
	}
	return drawer.Dot
}
