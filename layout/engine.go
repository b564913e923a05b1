// Package layout turns name tag entries into absolute draw instructions for
// a fixed label sheet.
//
// The sheet is a 2x3 grid. Slots are addressed 0..5 and mapped to grid
// coordinates with ToCoordinate; LayoutTag then places a logo, a title and a
// subtitle inside the cell, centering each horizontally. Text widths come
// from a Measurer so the package never touches a font file itself.
//
// Example:
//
//	c, err := layout.ToCoordinate(3)
//	if err != nil {
//	    return err
//	}
//	p := layout.LayoutTag(c, "Sam Wolfson", "he/him", layout.DefaultGeometry(), logo, measurer)
//	for _, in := range p.Instructions() {
//	    // hand in to a renderer
//	}
package layout

// Measurer reports the width of text set at size points in the given font.
type Measurer interface {
	MeasureText(text string, size float64, variant FontVariant) float64
}

// MeasurerFunc adapts an ordinary function to the Measurer interface.
type MeasurerFunc func(text string, size float64, variant FontVariant) float64

func (f MeasurerFunc) MeasureText(text string, size float64, variant FontVariant) float64 {
	return f(text, size, variant)
}

// LayoutTag computes the placement of one tag in cell.
func LayoutTag(cell Coordinate, title, subtitle string, g Geometry, logo Size, m Measurer) TagPlacement {
	originX, originY := g.CellOrigin(cell)
	centerX := originX + g.TagWidth/2

	logoW := logo.Width * g.LogoScale
	logoH := logo.Height * g.LogoScale

	return TagPlacement{
		Cell: cell,
		Logo: DrawInstruction{
			Kind:   KindImage,
			X:      centerX - logoW/2,
			Y:      originY + g.LogoOffset,
			Width:  logoW,
			Height: logoH,
		},
		Title:    centeredText(title, centerX, originY+g.TitleOffset, g.TitleSize, Semibold, m),
		Subtitle: centeredText(subtitle, centerX, originY+g.SubtitleOffset, g.SubtitleSize, Regular, m),
	}
}

func centeredText(text string, centerX, y, size float64, v FontVariant, m Measurer) DrawInstruction {
	w := m.MeasureText(text, size, v)
	return DrawInstruction{
		Kind:     KindText,
		X:        centerX - w/2,
		Y:        y,
		Text:     text,
		FontSize: size,
		Font:     v,
	}
}

// LayoutDocument lays out every entry independently, preserving order.
// Entries sharing a coordinate are not detected; their output overlaps.
func LayoutDocument(entries []TagEntry, g Geometry, logo Size, m Measurer) []TagPlacement {
	out := make([]TagPlacement, 0, len(entries))
	for _, e := range entries {
		out = append(out, LayoutTag(e.Coordinate, e.Title, e.Subtitle, g, logo, m))
	}
	return out
}
