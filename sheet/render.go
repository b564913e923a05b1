package sheet

import (
	"context"
	"fmt"
	"io"

	"github.com/chtl/nametags"
	"github.com/chtl/nametags/layout"
)

// Render parses a JSON form and writes the resulting PDF to w.
func Render(ctx context.Context, w io.Writer, gen *nametags.Generator, data []byte) error {
	f, err := Parse(data)
	if err != nil {
		return err
	}
	return RenderForm(ctx, w, gen, f)
}

// RenderForm writes the PDF for f to w.
func RenderForm(ctx context.Context, w io.Writer, gen *nametags.Generator, f *Form) error {
	entries, err := f.Entries()
	if err != nil {
		return err
	}
	if err := gen.Generate(ctx, w, entries, f.Background); err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	return nil
}

// Layout returns the placements for the printed labels of f.
func Layout(gen *nametags.Generator, f *Form) ([]layout.TagPlacement, error) {
	entries, err := f.Entries()
	if err != nil {
		return nil, err
	}
	placements, err := gen.Layout(entries)
	if err != nil {
		return nil, fmt.Errorf("sheet: %w", err)
	}
	return placements, nil
}
