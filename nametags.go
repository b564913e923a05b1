// Package nametags prints name tags onto a fixed US Letter label sheet.
//
// A Generator owns the sheet geometry, the logo and fonts, and an optional
// background template. Generate lays out the selected tags and writes a
// single-page PDF:
//
//	gen := nametags.New()
//	entries := []layout.TagEntry{
//	    {Coordinate: layout.Coordinate{Column: 0, Row: 0}, Title: "Sam Wolfson", Subtitle: "he/him"},
//	}
//	if err := gen.Generate(ctx, w, entries, false); err != nil {
//	    return err
//	}
package nametags

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/chtl/nametags/assets"
	"github.com/chtl/nametags/fontmetrics"
	"github.com/chtl/nametags/layout"
	"github.com/chtl/nametags/render"
)

const creator = "nametags"

// Generator renders label sheets. It holds no per-request state and is safe
// for concurrent use.
type Generator struct {
	geometry layout.Geometry
	assets   assets.Bundle
	template []byte
	title    string
	log      *slog.Logger

	metricsOnce sync.Once
	metrics     *fontmetrics.Measurer
	metricsErr  error
}

// New returns a Generator using the default geometry and embedded assets
// unless overridden by opts.
func New(opts ...Option) *Generator {
	gen := &Generator{
		geometry: layout.DefaultGeometry(),
		assets:   assets.Default(),
		title:    "Name tags",
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(gen)
	}
	return gen
}

// Geometry returns the sheet measurements in use.
func (gen *Generator) Geometry() layout.Geometry {
	return gen.geometry
}

// Assets returns the logo and fonts in use.
func (gen *Generator) Assets() assets.Bundle {
	return gen.assets
}

// HasTemplate reports whether a background template is configured.
func (gen *Generator) HasTemplate() bool {
	return len(gen.template) > 0
}

// Generate writes a PDF with one tag per entry to w. When background is
// set the configured template is drawn first. Nothing is written to w unless
// the whole document was built.
func (gen *Generator) Generate(ctx context.Context, w io.Writer, entries []layout.TagEntry, background bool) error {
	if err := gen.geometry.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}
	if background && !gen.HasTemplate() {
		return ErrNoTemplate
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	opts := []render.Option{
		render.WithFonts(gen.assets.Regular, gen.assets.Semibold),
		render.WithTitle(gen.title),
		render.WithCreator(creator),
	}
	if background {
		opts = append(opts, render.WithBackground(bytes.NewReader(gen.template)))
	}

	doc, err := render.New(gen.geometry, opts...)
	if err != nil {
		return newGenError("document", err)
	}
	logo, err := doc.LoadLogo(bytes.NewReader(gen.assets.Logo))
	if err != nil {
		return newGenError("logo", err)
	}

	for _, p := range layout.LayoutDocument(entries, gen.geometry, logo, doc) {
		if err := doc.Draw(p.Instructions()...); err != nil {
			return newGenError("draw", fmt.Errorf("cell %v: %w", p.Cell, err))
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return newGenError("output", err)
	}
	size := buf.Len()
	if _, err := buf.WriteTo(w); err != nil {
		return newGenError("write", err)
	}

	gen.log.DebugContext(ctx, "sheet generated",
		"tags", len(entries),
		"background", background,
		"bytes", size,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// Layout returns the placements Generate would draw, measuring text with the
// configured fonts directly instead of building a PDF.
func (gen *Generator) Layout(entries []layout.TagEntry) ([]layout.TagPlacement, error) {
	if err := gen.geometry.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}
	gen.metricsOnce.Do(func() {
		gen.metrics, gen.metricsErr = fontmetrics.New(gen.assets.Regular, gen.assets.Semibold)
	})
	if gen.metricsErr != nil {
		return nil, newGenError("fonts", gen.metricsErr)
	}
	img, err := png.Decode(bytes.NewReader(gen.assets.Logo))
	if err != nil {
		return nil, newGenError("logo", fmt.Errorf("%w: %v", render.ErrLogo, err))
	}
	b := img.Bounds()
	logo := layout.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
	return layout.LayoutDocument(entries, gen.geometry, logo, gen.metrics), nil
}
