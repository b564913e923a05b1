package nametags

import (
	"log/slog"

	"github.com/chtl/nametags/assets"
	"github.com/chtl/nametags/layout"
)

// Option is a functional option for configuring a Generator via New.
type Option func(*Generator)

// WithGeometry replaces the default sheet measurements.
func WithGeometry(g layout.Geometry) Option {
	return func(gen *Generator) {
		gen.geometry = g
	}
}

// WithAssets sets the logo and fonts used on every sheet.
func WithAssets(b assets.Bundle) Option {
	return func(gen *Generator) {
		gen.assets = b
	}
}

// WithTemplate sets the PDF whose first page is drawn under the tags when a
// background is requested.
func WithTemplate(pdf []byte) Option {
	return func(gen *Generator) {
		gen.template = pdf
	}
}

// WithLogger sets the logger for generation events.
func WithLogger(l *slog.Logger) Option {
	return func(gen *Generator) {
		gen.log = l
	}
}

// WithTitle sets the document title written into generated PDFs.
func WithTitle(title string) Option {
	return func(gen *Generator) {
		gen.title = title
	}
}
