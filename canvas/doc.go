// Package canvas renders bitmaps into terminal text at sub-cell resolution.
//
// Three canvas types share the same draw-to-string contract:
//   - Dots: monochrome, 2x4 dots per cell, braille glyphs (U+2800 block)
//   - Pixels: RGB, 2 pixels per cell, truecolor half-block glyphs
//   - Plot: a real-valued coordinate domain mapped onto a Dots canvas
//
// Canvases are plain value stores. Draw is a pure projection to text and
// performs no terminal I/O; position the cursor and write the result
// through whatever output path the application uses.
package canvas
