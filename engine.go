package lazylabel

import "image"
import "image/color"

// This file defines the two seams of the package: the text layout
// engine that shapes text into lines, and the raster backend that owns
// the bounded textures. The core never touches glyphs or pixels itself,
// it only decides what needs to be measured, rendered and blitted.

// Horizontal alignment of lines within the text block.
type HorzAlign uint8

const (
	Left HorzAlign = iota
	HorzCenter
	Right
	Justify
)

// Vertical alignment of the text content within the widget.
type VertAlign uint8

const (
	Top VertAlign = iota
	VertCenter
	Bottom
)

// Constraints are the layout inputs of a single measure pass.
// They are resolved by the [Label] from its [Options] and the
// assigned widget size before being handed to the [Engine].
type Constraints struct {
	// Target wrap width. Values <= 0 mean the text is unconstrained
	// and lines only break at explicit line feeds.
	WrapWidth float64

	HorzAlign HorzAlign

	// Strip leading and trailing whitespace per line.
	Strip bool

	// Whether the text carries inline markup tags that the engine
	// must parse (see the markup subpackage). Resolved once at
	// measurement time; there's no runtime sniffing of the text.
	Markup bool

	// Text color when no markup overrides it.
	Color color.RGBA

	PadX, PadY float64
}

// An Engine shapes and wraps a text block into layout lines. Engines
// must be stateless with respect to previous measurements: every call
// returns a fresh, immutable [Paragraph].
//
// The typeset subpackage provides an implementation on top of
// golang.org/x/image/font faces.
type Engine interface {
	Measure(text string, constraints Constraints) (Paragraph, error)
}

// A Paragraph is the result of one full measure pass: the logical size
// of the text block, its line list, and the ability to rasterize any
// subrange of those lines. Paragraphs are immutable; the [Label]
// replaces them wholesale on every re-measure.
type Paragraph interface {
	// Logical size of the whole block, padding included. This is the
	// size the widget would need to display everything at once.
	Size() (width, height float64)

	// Height of the shaped lines alone, without vertical padding.
	ContentHeight() float64

	LineCount() int

	// Height of the given line. Line indices go top to bottom.
	LineHeight(index int) float64

	// RenderLines rasterizes lines [first, end) into a fresh raster of
	// the given pixel size, with the top of line first placed at y.
	// A nil image may be returned when there's nothing to draw.
	RenderLines(first, end int, y float64, width, height int) (image.Image, error)
}

// A Texture is one bounded raster buffer owned by a [Label]. Textures
// hold only a window of the full logical text and are recreated, never
// resized, when the window geometry changes.
type Texture interface {
	// Size in pixels.
	Size() (width, height int)

	// Blit replaces the texture contents with the given raster.
	Blit(src image.Image)

	// SetReloadObserver registers a function to be called if the
	// backing graphics context is lost and the texture contents must
	// be considered gone. The label reacts by forcing a full redraw
	// on the next layout pass.
	SetReloadObserver(fn func())

	// Dispose releases the texture resources. The label disposes
	// textures it replaces; no method is called after Dispose.
	Dispose()
}

// A TextureFactory allocates textures for a raster backend. The etex
// subpackage provides an Ebitengine-backed factory, and typeset
// provides a software one.
type TextureFactory interface {
	New(width, height int, mipmap bool) Texture
}
