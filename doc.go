// lazylabel is a package for displaying very long text blocks inside
// recyclable scroll views without ever rasterizing more than a small,
// bounded texture around the visible region.
//
// The core idea: a text block with hundreds of thousands of lines is
// measured once to obtain its line geometry, but pixels are only drawn
// for the lines near the current viewport, into a texture capped at a
// small multiple of the viewport height. As the view scrolls, the
// covered region is tested first and the texture is only re-rendered
// when the viewport actually escapes the already-rasterized margin.
//
// Common usage depends on three pieces:
//   - a [Label], one per visible slot of your recycler, rebound to
//     different data records as slots get reused.
//   - an [Engine], the text layout backend that shapes and wraps text
//     into lines (see the typeset subpackage for the default one).
//   - a [TextureFactory], the raster backend that allocates the bounded
//     texture windows (see the etex subpackage for Ebitengine textures).
//
// The host recycler drives everything through two calls per slot:
// [Label.Attach]() when binding a data record, and [Label.Layout]() on
// every layout pass. Layout may return [Aborted], which means the label
// just discovered its true content height, wrote it back into the data
// record, and the host must refresh its extents and lay out again. This
// two-phase protocol is what keeps variable-height recycled items and
// windowed textures consistent with each other.
package lazylabel
