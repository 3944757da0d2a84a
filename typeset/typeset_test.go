package typeset

import "image"
import "image/color"
import "testing"

import "golang.org/x/image/font/basicfont"

import "github.com/recyclable/lazylabel"

// basicfont.Face7x13: every glyph advances 7 pixels, line height 13,
// ascent 11. All the geometry below follows from that.

func newTestEngine() *Engine { return New(basicfont.Face7x13) }

func measure(t *testing.T, text string, constraints lazylabel.Constraints) *paragraph {
	t.Helper()
	par, err := newTestEngine().Measure(text, constraints)
	if err != nil {
		t.Fatal(err)
	}
	return par.(*paragraph)
}

func TestSingleLineMeasure(t *testing.T) {
	par := measure(t, "aaa bbb", lazylabel.Constraints{})
	if par.LineCount() != 1 {
		t.Fatalf("expected 1 line, got %d", par.LineCount())
	}
	width, height := par.Size()
	if width != 49 {
		t.Fatalf("expected width 49, got %f", width)
	}
	if height != 13 || par.ContentHeight() != 13 {
		t.Fatalf("expected height 13, got %f (content %f)", height, par.ContentHeight())
	}
	if par.LineHeight(0) != 13 {
		t.Fatalf("expected line height 13, got %f", par.LineHeight(0))
	}
}

func TestWrapAtSpaces(t *testing.T) {
	par := measure(t, "aaa bbb ccc", lazylabel.Constraints{WrapWidth: 49})
	if par.LineCount() != 2 {
		t.Fatalf("expected 2 lines, got %d", par.LineCount())
	}
	if got := string(par.runes[par.lines[0].start:par.lines[0].end]); got != "aaa bbb" {
		t.Fatalf("first line %q", got)
	}
	if got := string(par.runes[par.lines[1].start:par.lines[1].end]); got != "ccc" {
		t.Fatalf("second line %q", got)
	}
	width, _ := par.Size()
	if width != 49 {
		t.Fatalf("constrained width must win, got %f", width)
	}
}

func TestOverlongWordOverflows(t *testing.T) {
	par := measure(t, "abcdefghij", lazylabel.Constraints{WrapWidth: 21})
	if par.LineCount() != 1 {
		t.Fatalf("words never break mid-word, got %d lines", par.LineCount())
	}
	if par.lines[0].width.Round() != 70 {
		t.Fatalf("expected overflow width 70, got %d", par.lines[0].width.Round())
	}
}

func TestExplicitNewlines(t *testing.T) {
	par := measure(t, "a\nb\n\nc", lazylabel.Constraints{})
	if par.LineCount() != 4 {
		t.Fatalf("expected 4 lines (one empty), got %d", par.LineCount())
	}
	if par.ContentHeight() != 52 {
		t.Fatalf("expected content height 52, got %f", par.ContentHeight())
	}
}

func TestStripTrimsLineEdges(t *testing.T) {
	par := measure(t, "  a  \nb", lazylabel.Constraints{Strip: true})
	if got := string(par.runes[par.lines[0].start:par.lines[0].end]); got != "a" {
		t.Fatalf("expected stripped line \"a\", got %q", got)
	}
	if par.lines[0].width.Round() != 7 {
		t.Fatalf("stripped width must ignore spaces, got %d", par.lines[0].width.Round())
	}
}

func TestPaddingInflatesSize(t *testing.T) {
	par := measure(t, "aa", lazylabel.Constraints{PadX: 4, PadY: 3})
	width, height := par.Size()
	if width != 14+8 {
		t.Fatalf("expected width 22, got %f", width)
	}
	if height != 13+6 {
		t.Fatalf("expected height 19, got %f", height)
	}
	if par.ContentHeight() != 13 {
		t.Fatalf("content height excludes padding, got %f", par.ContentHeight())
	}
}

func TestRenderProducesInk(t *testing.T) {
	par := measure(t, "hello", lazylabel.Constraints{})
	img, err := par.RenderLines(0, 1, 0, 40, 13)
	if err != nil {
		t.Fatal(err)
	}
	if img == nil {
		t.Fatal("expected an image")
	}
	if !hasInk(img.(*image.RGBA)) {
		t.Fatal("rendered line has no visible pixels")
	}
}

func TestRenderEmptyRangeReturnsNil(t *testing.T) {
	par := measure(t, "hello", lazylabel.Constraints{})
	img, err := par.RenderLines(1, 1, 0, 40, 13)
	if err != nil || img != nil {
		t.Fatalf("empty range must render nothing, got %v, %v", img, err)
	}
	if _, err := par.RenderLines(0, 5, 0, 40, 13); err == nil {
		t.Fatal("out of range render must fail")
	}
}

func TestRenderSubrangeOffset(t *testing.T) {
	par := measure(t, "a\nb\nc", lazylabel.Constraints{})
	// render only line 1 with its top at y=0: ink must sit in the
	// first line-height band of the image
	img, err := par.RenderLines(1, 2, 0, 20, 39)
	if err != nil {
		t.Fatal(err)
	}
	rgba := img.(*image.RGBA)
	band := rgba.SubImage(image.Rect(0, 0, 20, 13)).(*image.RGBA)
	if !hasInk(band) {
		t.Fatal("expected ink within the first band")
	}
	below := rgba.SubImage(image.Rect(0, 13, 20, 39)).(*image.RGBA)
	if hasInk(below) {
		t.Fatal("single-line render must not spill below its band")
	}
}

func TestMarkupColorRendering(t *testing.T) {
	constraints := lazylabel.Constraints{
		Markup: true,
		Color:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
	par := measure(t, "[color=#ff0000]hi[/color]", constraints)
	if string(par.runes) != "hi" {
		t.Fatalf("markup must be resolved before shaping, got %q", string(par.runes))
	}
	img, err := par.RenderLines(0, 1, 0, 20, 13)
	if err != nil {
		t.Fatal(err)
	}
	rgba := img.(*image.RGBA)
	var sawRed bool
	for i := 0; i < len(rgba.Pix); i += 4 {
		if rgba.Pix[i] > 0 && rgba.Pix[i+1] == 0 && rgba.Pix[i+3] > 0 {
			sawRed = true
			break
		}
	}
	if !sawRed {
		t.Fatal("expected red pixels from the color span")
	}
}

func TestMarkupStyleFallsBackToRegularFace(t *testing.T) {
	par := measure(t, "[b]x[/b]", lazylabel.Constraints{Markup: true})
	if par.LineCount() != 1 || par.lines[0].width.Round() != 7 {
		t.Fatalf("bold without a bold face must use regular metrics, got %v", par.lines[0])
	}
}

func TestUnderlineDrawsDecoration(t *testing.T) {
	constraints := lazylabel.Constraints{Markup: true}
	par := measure(t, "[u]mm[/u]", constraints)
	img, err := par.RenderLines(0, 1, 0, 20, 14)
	if err != nil {
		t.Fatal(err)
	}
	rgba := img.(*image.RGBA)
	// the underline sits below the baseline (11), where Face7x13
	// glyphs for 'm' leave no ink of their own
	row := rgba.SubImage(image.Rect(0, 12, 20, 13)).(*image.RGBA)
	if !hasInk(row) {
		t.Fatal("expected underline ink below the baseline")
	}
}

func hasInk(img *image.RGBA) bool {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				return true
			}
		}
	}
	return false
}
