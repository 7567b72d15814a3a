// Package ggart renders fixed pieces of project artwork with the gg 2D
// graphics library.
//
// # Overview
//
// Two renderers live in sub-packages:
//
//   - [github.com/gogpu/ggart/ribbon] draws a "Fork me on GitHub" corner
//     ribbon: a diagonal band, rotated label and dashed guide lines.
//   - [github.com/gogpu/ggart/logo] draws the pyts logo: the letters p, y,
//     t, s built from arcs and lines, overlaid with a colour-graded curve.
//
// Both are stateless. Each call builds its own [figure.Figure], draws
// into it, optionally saves it and hands it to a viewer.
//
// # Quick Start
//
//	err := ribbon.Make(
//	    ribbon.WithText("Fork me on GitHub"),
//	    ribbon.WithOutputFile("ribbon.png"),
//	    ribbon.WithDPI(200),
//	)
//
//	err = logo.Make(
//	    logo.WithColormap("jet"),
//	    logo.WithOutputFile("logo.pdf"),
//	)
//
// # Coordinates
//
// Renderers work in data coordinates with y pointing up. [figure.Axes] maps them to gg's pixel
// space (origin top-left, y down). Line widths and font sizes are given
// in points and scale with the figure's dpi.
//
// # Logging
//
// ggart is silent by default. Use [SetLogger] to route diagnostics to a
// [log/slog] handler.
package ggart

// Version is the current ggart version.
const Version = "0.1.0"
