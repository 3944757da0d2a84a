package lazylabel

import "image/color"

// Outcome is the result of a layout pass.
//
// [Aborted] is not an error: it's the deliberate early return used when
// a measure pass discovers that the content height differs from the
// height the host assigned to the item. The corrected height has
// already been written into the data record by the time Layout returns,
// and the host is expected to refresh its extents and re-run layout
// within the same frame.
type Outcome uint8

const (
	Continue Outcome = iota
	Aborted
)

func (self Outcome) String() string {
	if self == Aborted {
		return "Aborted"
	}
	return "Continue"
}

// Extent passed to [Host.AskRefreshFromData] when a label corrects the
// size stored in its data record.
const ExtentDataSize = "data_size"

// Host is the surface through which a [Label] talks back to the
// recycler that owns it. The recycler's reuse pool, layout manager and
// event wiring are all behind this interface; the label only needs to
// write corrected sizes and request refreshes.
type Host interface {
	// SizeKey returns the record key under which per-item sizes are
	// stored, or "" if the host doesn't have one configured yet.
	SizeKey() string

	// SetSizeKey configures the record key for per-item sizes. Called
	// by labels configured with HeightFromContent when the host has
	// no key set, defaulting it to "height".
	SetSizeKey(key string)

	// AskRefreshFromData asks the host to recompute its aggregate
	// content extents from the (just mutated) data records.
	AskRefreshFromData(extent string)

	// AskRefreshViewport asks the host to re-deliver the current
	// viewport. Used after a raster context loss.
	AskRefreshViewport()
}

// Record is one item's data record in the host recycler. See
// [Label.Attach] for the recognized option keys.
type Record = map[string]any

// Options is the per-item configuration surface. Every Label carries
// its own copy, initialized at construction; there is no shared
// default state between instances.
type Options struct {
	// Force the text wrap width to the assigned widget width. When
	// set, a change in assigned width triggers a re-measure.
	ConstrainWidth bool

	// Drive the host's stored item height from the measured content
	// height instead of treating the assigned height as authoritative.
	HeightFromContent bool

	// Whether the text carries inline markup tags.
	Markup bool

	// Strip leading/trailing whitespace. Justify alignment always
	// implies stripping.
	Strip bool

	HorzAlign HorzAlign
	VertAlign VertAlign

	Color color.RGBA

	PadX, PadY float64

	// Request mipmapping for the texture windows. Whether it has any
	// effect depends on the texture backend.
	Mipmap bool
}

// DefaultOptions returns the options most recyclers want: wrap width
// locked to the widget width, item height driven from content, white
// text, no markup.
func DefaultOptions() Options {
	return Options{
		ConstrainWidth:    true,
		HeightFromContent: true,
		Color:             color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// A Label is the windowed text cache for one visible slot of a
// recycler. It binds to a data record through [Label.Attach], gets
// driven by [Label.Layout] once per layout pass, and exposes the
// resulting bounded texture through [Label.Texture] and
// [Label.TexturePosition] for the host's draw step.
//
// Labels are single threaded: all methods must be called from the
// host's layout/render goroutine.
type Label struct {
	engine  Engine
	factory TextureFactory
	base    Options // construction-time options, restored on re-attach
	opts    Options // base overlaid with the current record's keys

	host  Host
	index int
	text  string

	wrapWidth      float64
	measurePending bool
	meas           measurement

	win   windowState
	frame Rect
}

// Creates a [Label] bound to the given layout engine and texture
// backend. Both are required.
func New(engine Engine, factory TextureFactory, opts Options) *Label {
	if engine == nil {
		panic("can't create a Label with engine == nil")
	}
	if factory == nil {
		panic("can't create a Label with factory == nil")
	}
	return &Label{engine: engine, factory: factory, base: opts, opts: opts}
}

// Attach binds the label to a data record. Recyclers reuse slots, so
// every attach invalidates all derived state: the previous measurement,
// line index, covered range and texture are discarded before anything
// from the new record is used. Stale geometry from a previous record
// must never leak into the new one.
//
// Recognized record keys: "text" (string), "markup", "strip", "mipmap"
// (bool), "halign", "valign" (string), "color" (see [ParseColor]),
// "padding_x", "padding_y" (number).
//
// When the label is configured with HeightFromContent and the host has
// no size key yet, the key defaults to "height".
func (self *Label) Attach(host Host, index int, record Record) {
	if host == nil {
		panic("can't attach a Label to host == nil")
	}
	self.host = host
	self.index = index
	self.reset()
	self.applyRecord(record)
	if self.opts.HeightFromContent && host.SizeKey() == "" {
		host.SetSizeKey("height")
	}
}

// Layout runs one layout pass: re-measure if needed, reconcile the
// measured height against the assigned one, then make sure the texture
// window covers the viewport.
//
// frame is the rectangle the host assigned to this item and viewport
// is the currently visible region, both in scroll-space coordinates.
//
// When the outcome is [Aborted] the caller must not draw this item:
// the corrected height has been written into the record, the host's
// extents have been invalidated through [Host.AskRefreshFromData], and
// layout will run again with updated geometry.
func (self *Label) Layout(record Record, frame, viewport Rect) (Outcome, error) {
	if self.host == nil {
		panic("Layout called before Attach")
	}
	self.frame = frame

	width, height := frame.Width(), frame.Height()
	if self.opts.ConstrainWidth && self.wrapWidth != width {
		self.wrapWidth = width
		self.measurePending = true
	}

	// measure, maybe correct the host's plan, else proceed
	if self.measurePending || (self.opts.HeightFromContent && height != self.meas.height) {
		if err := self.measure(); err != nil {
			return Continue, err
		}
		if self.opts.HeightFromContent && height != self.meas.height {
			record[self.host.SizeKey()] = self.meas.height
			self.host.AskRefreshFromData(ExtentDataSize)
			return Aborted, nil
		}
	}

	if self.meas.empty {
		return Continue, nil
	}
	return Continue, self.ensureWindow(viewport, frame)
}

// Texture returns the current texture window, or nil if nothing has
// been rendered yet (no layout pass, or empty content).
func (self *Label) Texture() Texture {
	return self.win.tex
}

// TexturePosition returns the scroll-space top-left corner at which the
// texture window must be drawn: the texture is centered horizontally
// within the item frame, and the vertical offset tracks the window's
// position within the full logical text.
func (self *Label) TexturePosition() (x, y float64) {
	x = self.frame.MinX + (self.frame.Width()-self.win.width)/2
	y = toScrollY(self.win.offsetY, self.frame.MinY)
	return x, y
}

// MeasuredSize returns the logical size of the text block from the
// last measure pass. Zero for empty content.
func (self *Label) MeasuredSize() (width, height float64) {
	return self.meas.width, self.meas.height
}

// Empty reports whether the last measure pass produced no visible
// content.
func (self *Label) Empty() bool { return self.meas.empty }

// Text returns the raw text currently bound to the label.
func (self *Label) Text() string { return self.text }

// SetText replaces the label text and schedules a re-measure on the
// next layout pass. Prefer putting text in the data record; this is
// for hosts that manage content out of band.
func (self *Label) SetText(text string) {
	if self.text == text {
		return
	}
	self.text = text
	self.measurePending = true
}

// Options returns a copy of the label's current options.
func (self *Label) Options() Options { return self.opts }

// reset discards every piece of state derived from the current record:
// measurement, line index, covered range, texture, and any option keys
// the previous record may have overridden. A recycled slot starts from
// the construction-time options every time.
func (self *Label) reset() {
	if self.win.tex != nil {
		self.win.tex.Dispose()
	}
	self.win = windowState{}
	self.meas = measurement{}
	self.wrapWidth = 0
	self.measurePending = true
	self.opts = self.base
	self.text = ""
}
