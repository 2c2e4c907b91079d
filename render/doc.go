// Package render turns a settled distance field into an image.
//
// It is a consumer of the solver's output, not part of it: it only reads
// field.Field values and never feeds anything back.
//
// What:
//
//   - Palette maps a distance (and the field's largest finite distance) to a colour.
//     Falloff reproduces the classic green glow, Gradient blends two colours.
//   - Image paints one pixel per cell with rows flipped so the window's YMin
//     is at the bottom, like a plot.
//   - Scale resamples with Catmull-Rom (golang.org/x/image/draw).
//   - WritePNG / SavePNG encode the result.
//
// Display policy for +Inf (unreached) and NaN cells is the palette's job;
// both built-in palettes paint them as their "far" colour.
package render
