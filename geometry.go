package lazylabel

// A Rect is an axis-aligned rectangle in scroll-space coordinates.
// The y axis grows downwards, matching Go's image conventions.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Creates a [Rect] from an origin and a size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

func (self Rect) Width() float64 { return self.MaxX - self.MinX }

func (self Rect) Height() float64 { return self.MaxY - self.MinY }

// All conversions between scroll space (absolute coordinates of the
// scrolling container) and widget-local top-relative space go through
// the two functions below. Keeping them in one place is what keeps
// sign errors out of the viewport math.

// toLocalY converts a scroll-space y coordinate into the local space
// of a widget whose top edge sits at itemTop in scroll space.
func toLocalY(scrollY, itemTop float64) float64 {
	return scrollY - itemTop
}

// toScrollY converts a widget-local top-relative y coordinate back
// into scroll space.
func toScrollY(localY, itemTop float64) float64 {
	return localY + itemTop
}
