// Package layout is the document layout and pagination engine.
//
// The engine is a pure batch transform: canonical section text goes in,
// a finished page sequence comes out. It has no I/O and no shared state;
// identical inputs always produce identical pages.
//
// # Pipeline
//
// Each stage consumes the complete output of the previous one:
//
//  1. [Reflow] wraps one paragraph into width-bounded [Line] values.
//  2. [BuildSection] turns a section into a [Block] stream with
//     per-block vertical cost.
//  3. [Paginate] packs blocks into fixed-capacity [Page] values and
//     records where every section starts.
//  4. [Compose] runs the whole document, resolving the table of
//     contents against the page numbers the body actually lands on.
//
// # Measurement
//
// All widths and costs are plain int units. Character output uses one
// unit per rune and one cost unit per text row. Print output supplies a
// font-metrics [WidthFunc] (26.6 fixed-point) and pixel line heights.
// The engine never interprets units; it only compares and sums them.
package layout
