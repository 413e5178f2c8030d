// Package render converts SVG diagrams to PDF and PNG.
//
// Conversion shells out to rsvg-convert from librsvg. A missing converter is
// reported with code UNSUPPORTED so callers can suggest installing it; SVG
// output never needs it.
//
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2) // 2x resolution
//
// Use a [Converter] to point at a specific binary.
package render
