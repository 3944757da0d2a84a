package lazylabel

import "math"

// How much taller than the viewport a texture window may be. Together
// with coverageMargin and the one line of padding from locateRange,
// these constants are tuned so that moderate scrolling never hits an
// unrendered region. They are empirical: visual correctness depends on
// keeping coverage strictly inside the window, not on these exact
// numbers.
const (
	windowHeightFactor = 3.0
	rebuildEpsilon     = 0.01

	// margin added around the viewport when rendering, in viewport
	// heights
	coverageMargin = 1.0

	// slack allowed by the coverage containment test
	coverageEpsilon = 0.1
)

// coveredRange is the vertical extent, in widget-local top-relative
// coordinates, already rasterized into the current texture window.
// The zero value is the empty range, which contains nothing and forces
// a full render.
type coveredRange struct {
	lo, hi float64
	valid  bool
}

func (self coveredRange) contains(top, bottom float64) bool {
	return self.valid && top >= self.lo+coverageEpsilon && bottom <= self.hi-coverageEpsilon
}

// windowState is the bounded texture plus its bookkeeping. The window
// is recreated from scratch, never resized, whenever its geometry
// becomes stale.
type windowState struct {
	tex Texture

	// logical size of the window (height capped by windowHeightFactor)
	width, height float64

	// line offset table, anchored so line 0 lands at its on-screen
	// position within the widget (see buildLineIndex)
	offsets []float64

	covered coveredRange

	// widget-local y of the texture's top row
	offsetY float64

	// widget height at the last rebuild
	lastHeight float64
}

// ensureWindow guarantees that the texture window exists and covers the
// viewport, rendering the missing line range if it doesn't. Must only
// be called with a non-empty measurement.
func (self *Label) ensureWindow(viewport, frame Rect) error {
	win := &self.win
	viewHeight := viewport.Height()
	widgetHeight := frame.Height()

	// rebuild from scratch when there's no window yet, when the widget
	// height changed, or when the window is oversized relative to a
	// shrunk viewport and should be tightened
	if win.offsets == nil || win.lastHeight != widgetHeight ||
		win.height-windowHeightFactor*viewHeight > rebuildEpsilon {
		if win.tex != nil {
			win.tex.Dispose()
		}
		win.width = self.meas.width
		win.height = math.Min(self.meas.height, windowHeightFactor*viewHeight)

		// anchor the line index so that line 0 lands where it would if
		// the full logical block were centered within the widget
		originY := self.meas.originY + (widgetHeight-self.meas.height)/2
		win.offsets = buildLineIndex(self.meas.par, originY)

		win.tex = self.factory.New(texturePixels(win.width), texturePixels(win.height), self.opts.Mipmap)
		win.tex.SetReloadObserver(self.textureReloaded)
		win.covered = coveredRange{}
		win.lastHeight = widgetHeight
	}

	localTop := toLocalY(viewport.MinY, frame.MinY)
	localBottom := toLocalY(viewport.MaxY, frame.MinY)
	if win.covered.contains(localTop, localBottom) {
		return nil
	}

	renderTop := localTop - coverageMargin*viewHeight
	renderBottom := localBottom + coverageMargin*viewHeight
	start, end := locateRange(win.offsets, renderTop, renderBottom)
	count := self.meas.par.LineCount()
	if end > count {
		end = count
	}
	if start > count {
		start = count
	}

	if start >= end {
		win.offsetY = renderTop
		win.covered = coveredRange{lo: renderTop, hi: renderBottom, valid: true}
		return nil
	}

	raster, err := self.meas.par.RenderLines(
		start, end, win.offsets[start]-renderTop,
		texturePixels(win.width), texturePixels(win.height))
	if err != nil {
		// coverage must only be claimed for pixels that actually landed;
		// leaving the old bookkeeping forces a retry on the next pass
		return err
	}
	win.offsetY = renderTop
	win.covered = coveredRange{lo: renderTop, hi: renderBottom, valid: true}
	// near zero width rasters come out as a thin dark bar; skip them
	if raster == nil || raster.Bounds().Dx() <= 1 {
		return nil
	}
	win.tex.Blit(raster)
	return nil
}

// textureReloaded is registered as the reload observer on every texture
// window. A lost graphics context means the pixels are gone even though
// the bookkeeping says otherwise, so the covered range is emptied and
// the host is asked to re-deliver the viewport.
func (self *Label) textureReloaded() {
	self.win.covered = coveredRange{}
	if self.host != nil {
		self.host.AskRefreshViewport()
	}
}

func texturePixels(v float64) int {
	return int(math.Ceil(v))
}
