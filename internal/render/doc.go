// Package render holds the renderer collaborators that consume a
// finished [layout.Result] and emit bytes: a fixed-width markdown
// emitter, a standalone-HTML emitter built on goldmark, and a
// paginated raster emitter built on freetype. Renderers never re-lay
// anything out; they only style what the engine already placed.
package render
