// typeset implements lazylabel's text layout engine on top of
// golang.org/x/image/font faces: it splits text into paragraphs, wraps
// them greedily at spaces, resolves inline markup spans, and can
// rasterize any line subrange into an RGBA image.
//
// The wrapping algorithm is a trivial greedy one using spaces as the
// only break points. Overlong words overflow the wrap width instead of
// being broken mid-word.
package typeset

import "math"

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

import "github.com/recyclable/lazylabel"
import "github.com/recyclable/lazylabel/markup"

// Engine shapes and wraps text using x/image font faces. It implements
// [lazylabel.Engine].
//
// The regular face drives all vertical metrics. Style faces for bold
// and italic markup are optional; when missing, the regular face is
// used and only color/decoration styling applies.
type Engine struct {
	regular    font.Face
	bold       font.Face
	italic     font.Face
	boldItalic font.Face
}

// Creates an [Engine] from the face used for regular text.
func New(regular font.Face) *Engine {
	if regular == nil {
		panic("can't create a typeset.Engine with a nil face")
	}
	return &Engine{regular: regular}
}

// SetStyleFaces configures the faces used for [b] and [i] markup
// spans. Any of them may be nil to fall back to the regular face.
func (self *Engine) SetStyleFaces(bold, italic, boldItalic font.Face) {
	self.bold = bold
	self.italic = italic
	self.boldItalic = boldItalic
}

func (self *Engine) faceFor(style markup.Style) font.Face {
	switch {
	case style.Bold && style.Italic && self.boldItalic != nil:
		return self.boldItalic
	case style.Bold && self.bold != nil:
		return self.bold
	case style.Italic && self.italic != nil:
		return self.italic
	}
	return self.regular
}

// Measure implements [lazylabel.Engine]. The returned paragraph is
// immutable and independent of any later Measure calls.
func (self *Engine) Measure(text string, constraints lazylabel.Constraints) (lazylabel.Paragraph, error) {
	plain := text
	var spans []markup.Span
	if constraints.Markup {
		var err error
		plain, spans, err = markup.Parse(text)
		if err != nil {
			return nil, err
		}
	}

	par := &paragraph{
		engine:      self,
		runes:       []rune(plain),
		spans:       spans,
		constraints: constraints,
	}
	metrics := self.regular.Metrics()
	par.lineHeight = fixedToFloat(metrics.Height)
	par.ascent = fixedToFloat(metrics.Ascent)
	par.wrap()
	par.computeSize()
	return par, nil
}

// A line is one wrapped layout line: a rune range into the plain text
// plus its advance width.
type line struct {
	start, end int
	width      fixed.Int26_6

	// last line of an explicit paragraph; justify doesn't expand these
	endsParagraph bool
}

type paragraph struct {
	engine      *Engine
	runes       []rune
	spans       []markup.Span
	constraints lazylabel.Constraints

	lines         []line
	lineHeight    float64
	ascent        float64
	width, height float64
	contentHeight float64
}

func (self *paragraph) Size() (width, height float64) { return self.width, self.height }

func (self *paragraph) ContentHeight() float64 { return self.contentHeight }

func (self *paragraph) LineCount() int { return len(self.lines) }

func (self *paragraph) LineHeight(index int) float64 { return self.lineHeight }

// ---- wrapping ----

func (self *paragraph) wrap() {
	limit := fixed.Int26_6(-1)
	if self.constraints.WrapWidth > 0 {
		usable := self.constraints.WrapWidth - 2*self.constraints.PadX
		if usable < 1 {
			usable = 1
		}
		limit = floatToFixed(usable)
	}

	runes := self.runes
	count := len(runes)
	parStart := 0
	for {
		parEnd := parStart
		for parEnd < count && runes[parEnd] != '\n' {
			parEnd += 1
		}
		self.wrapParagraph(parStart, parEnd, limit)
		if parEnd >= count {
			return
		}
		parStart = parEnd + 1
	}
}

func (self *paragraph) wrapParagraph(start, end int, limit fixed.Int26_6) {
	if limit < 0 || start >= end {
		self.pushLine(start, end, true)
		return
	}

	runes := self.runes
	lineStart := start
	lastSpace := -1
	var x fixed.Int26_6
	prev := rune(-1)
	var prevFace font.Face
	for i := lineStart; i < end; i++ {
		r := runes[i]
		face := self.engine.faceFor(self.styleAt(i))
		var kern fixed.Int26_6
		if prev >= 0 && face == prevFace {
			kern = face.Kern(prev, r)
		}
		adv := glyphAdvance(face, r)

		if r == ' ' {
			lastSpace = i
		} else if x+kern+adv > limit && lastSpace >= lineStart {
			self.pushLine(lineStart, lastSpace, false)
			lineStart = lastSpace + 1
			lastSpace = -1
			x = 0
			prev, prevFace = -1, nil
			i = lineStart - 1 // loop increment brings us back to lineStart
			continue
		}
		x += kern + adv
		prev, prevFace = r, face
	}
	self.pushLine(lineStart, end, true)
}

func (self *paragraph) pushLine(start, end int, endsParagraph bool) {
	if self.constraints.Strip {
		for start < end && self.runes[start] == ' ' {
			start += 1
		}
		for end > start && self.runes[end-1] == ' ' {
			end -= 1
		}
	}
	self.lines = append(self.lines, line{
		start:         start,
		end:           end,
		width:         self.sliceWidth(start, end),
		endsParagraph: endsParagraph,
	})
}

func (self *paragraph) computeSize() {
	var maxWidth fixed.Int26_6
	for _, ln := range self.lines {
		if ln.width > maxWidth {
			maxWidth = ln.width
		}
	}
	self.contentHeight = self.lineHeight * float64(len(self.lines))
	if self.constraints.WrapWidth > 0 {
		self.width = self.constraints.WrapWidth
	} else {
		self.width = fixedToFloat(maxWidth) + 2*self.constraints.PadX
	}
	self.height = self.contentHeight + 2*self.constraints.PadY
}

// ---- style and measuring helpers ----

// styleAt returns the markup style covering the given rune index, or
// the default style when the text has no spans there.
func (self *paragraph) styleAt(index int) markup.Style {
	for _, span := range self.spans {
		if index < span.End {
			if index >= span.Start {
				return span.Style
			}
			break
		}
	}
	return markup.Style{}
}

func (self *paragraph) sliceWidth(start, end int) fixed.Int26_6 {
	var width fixed.Int26_6
	prev := rune(-1)
	var prevFace font.Face
	for i := start; i < end; i++ {
		r := self.runes[i]
		face := self.engine.faceFor(self.styleAt(i))
		if prev >= 0 && face == prevFace {
			width += face.Kern(prev, r)
		}
		width += glyphAdvance(face, r)
		prev, prevFace = r, face
	}
	return width
}

func glyphAdvance(face font.Face, r rune) fixed.Int26_6 {
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		// same fallback the drawer uses when a glyph is missing
		adv, _ = face.GlyphAdvance('�')
	}
	return adv
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

func floatToFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }

var _ lazylabel.Engine = (*Engine)(nil)
