package lazylabel

import "image"
import "strings"

// ---- test doubles for the engine, raster and host seams ----

type renderCall struct {
	first, end    int
	y             float64
	width, height int
}

// fakeEngine counts each text segment separated by '\n' as one line of
// fixed height, which is all the core needs to exercise indexing,
// windowing and reconciliation.
type fakeEngine struct {
	lineHeight float64
	lineWidth  float64

	measures    int
	lastText    string
	lastConstr  Constraints
	renderCalls []renderCall
	renderErr   error
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{lineHeight: 20, lineWidth: 100}
}

func (self *fakeEngine) Measure(text string, constraints Constraints) (Paragraph, error) {
	self.measures += 1
	self.lastText = text
	self.lastConstr = constraints
	count := strings.Count(text, "\n") + 1
	width := self.lineWidth
	if constraints.WrapWidth > 0 {
		width = constraints.WrapWidth
	}
	content := float64(count) * self.lineHeight
	return &fakeParagraph{
		engine:  self,
		count:   count,
		width:   width,
		height:  content + 2*constraints.PadY,
		content: content,
	}, nil
}

type fakeParagraph struct {
	engine  *fakeEngine
	count   int
	width   float64
	height  float64
	content float64
}

func (self *fakeParagraph) Size() (float64, float64) { return self.width, self.height }
func (self *fakeParagraph) ContentHeight() float64   { return self.content }
func (self *fakeParagraph) LineCount() int           { return self.count }
func (self *fakeParagraph) LineHeight(index int) float64 {
	return self.engine.lineHeight
}

func (self *fakeParagraph) RenderLines(first, end int, y float64, width, height int) (image.Image, error) {
	self.engine.renderCalls = append(self.engine.renderCalls, renderCall{
		first: first, end: end, y: y, width: width, height: height,
	})
	if self.engine.renderErr != nil {
		return nil, self.engine.renderErr
	}
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

type fakeTexture struct {
	width, height int
	blits         int
	observer      func()
	disposed      bool
}

func (self *fakeTexture) Size() (int, int)            { return self.width, self.height }
func (self *fakeTexture) Blit(src image.Image)        { self.blits += 1 }
func (self *fakeTexture) SetReloadObserver(fn func()) { self.observer = fn }
func (self *fakeTexture) Dispose()                    { self.disposed = true }

type fakeFactory struct {
	created []*fakeTexture
}

func (self *fakeFactory) New(width, height int, mipmap bool) Texture {
	tex := &fakeTexture{width: width, height: height}
	self.created = append(self.created, tex)
	return tex
}

func (self *fakeFactory) last() *fakeTexture {
	return self.created[len(self.created)-1]
}

type fakeHost struct {
	sizeKey           string
	dataRefreshes     []string
	viewportRefreshes int
}

func (self *fakeHost) SizeKey() string       { return self.sizeKey }
func (self *fakeHost) SetSizeKey(key string) { self.sizeKey = key }
func (self *fakeHost) AskRefreshFromData(extent string) {
	self.dataRefreshes = append(self.dataRefreshes, extent)
}
func (self *fakeHost) AskRefreshViewport() { self.viewportRefreshes += 1 }

// textWithLines builds a text whose fakeEngine line count is exactly n.
func textWithLines(n int) string {
	return strings.Repeat("x\n", n-1) + "x"
}

type testRig struct {
	engine  *fakeEngine
	factory *fakeFactory
	host    *fakeHost
	label   *Label
	record  Record
}

func newTestRig(lines int, opts Options) *testRig {
	rig := &testRig{
		engine:  newFakeEngine(),
		factory: &fakeFactory{},
		host:    &fakeHost{},
	}
	rig.label = New(rig.engine, rig.factory, opts)
	rig.record = Record{"text": textWithLines(lines)}
	rig.label.Attach(rig.host, 0, rig.record)
	return rig
}
