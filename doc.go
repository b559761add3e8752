// Package painter rasterizes simple primitives into pixel buffers and
// projects 3D geometry through a pinhole camera onto them.
//
// # Overview
//
// painter is a small CPU drawing library for debug visualisation: it paints
// lines, rectangles, circles, ellipses, Gaussian confidence ellipses and
// bitmap text into any [Surface], and renders world-frame points, segments,
// labels and 3D Gaussians as seen by a [camera.View].
//
// # Quick Start
//
//	import "github.com/imgpaint/painter"
//
//	img := painter.NewRGBImage(480, 640)
//	c := painter.NewCanvas[painter.RGBPixel](img)
//
//	c.DrawHollowRectangle(10, 10, 100, 50, painter.Red)
//	c.DrawBresenhamLine(0, 0, 639, 479, painter.Green)
//	c.DrawString("hello", 20, 20, painter.White, 16)
//
// # Surfaces
//
// The rasterizers are generic over the pixel type. [GrayImage] and
// [RGBImage] are the built-in row-major buffers; both ignore writes outside
// their bounds and also implement image.Image, so they can be passed
// straight to an encoder.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - x is a column and increases right
//   - y is a row and increases down
//   - Surface.SetPixel takes (row, col)
//
// # Rounding
//
// The primitives reproduce fixed pixel patterns: interpolated lines
// truncate toward zero, trust-region samples round half up and all floating
// point work is done in float32. Changing any of these moves pixels.
//
// # Concurrency
//
// Drawing holds no global state except the logger and the lazily built
// glyph table, both safe for concurrent use. Painting the same surface from
// several goroutines is the caller's responsibility.
package painter
