// Package render draws layout instructions onto a one-page PDF with fpdf.
//
// Instructions arrive in page space with the origin at the bottom-left
// corner of the page; fpdf places things from the top-left, so every
// coordinate is flipped against the page height before drawing.
//
// Example:
//
//	doc, err := render.New(layout.DefaultGeometry(), render.WithFonts(regular, semibold))
//	if err != nil {
//	    return err
//	}
//	logo, err := doc.LoadLogo(bytes.NewReader(png))
//	if err != nil {
//	    return err
//	}
//	for _, p := range layout.LayoutDocument(entries, g, logo, doc) {
//	    if err := doc.Draw(p.Instructions()...); err != nil {
//	        return err
//	    }
//	}
//	return doc.Output(w)
package render

import (
	"bytes"
	"fmt"
	"image/png"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/chtl/nametags/layout"
)

const logoName = "logo"

type fontSpec struct {
	family string
	style  string
}

// Document is a single-page label sheet under construction.
type Document struct {
	pdf   *fpdf.Fpdf
	fonts map[layout.FontVariant]fontSpec
	pageH float64
	logo  bool
}

// New creates a document sized to g. With WithBackground the page takes the
// size of the template instead and the template is drawn first.
func New(g layout.Geometry, opts ...Option) (*Document, error) {
	cfg := &documentConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	if cfg.title != "" {
		pdf.SetTitle(cfg.title, true)
	}
	if cfg.creator != "" {
		pdf.SetCreator(cfg.creator, true)
	}

	d := &Document{pdf: pdf, pageH: g.PageHeight}

	if cfg.fonts {
		if len(cfg.regular) == 0 || len(cfg.semibold) == 0 {
			return nil, newError("New", fmt.Errorf("%w: both font variants are required", ErrFont))
		}
		if err := registerFont(pdf, "tag-regular", cfg.regular); err != nil {
			return nil, newError("New", fmt.Errorf("regular: %w", err))
		}
		if err := registerFont(pdf, "tag-semibold", cfg.semibold); err != nil {
			return nil, newError("New", fmt.Errorf("semibold: %w", err))
		}
		d.fonts = map[layout.FontVariant]fontSpec{
			layout.Regular:  {"tag-regular", ""},
			layout.Semibold: {"tag-semibold", ""},
		}
	} else {
		d.fonts = map[layout.FontVariant]fontSpec{
			layout.Regular:  {"Helvetica", ""},
			layout.Semibold: {"Helvetica", "B"},
		}
	}

	if cfg.background == nil {
		pdf.AddPage()
		return d, nil
	}

	imp, tplID, w, h, err := importBackground(pdf, cfg.background)
	if err != nil {
		return nil, newError("New", err)
	}
	if w == 0 || h == 0 {
		w, h = g.PageWidth, g.PageHeight
	}
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})
	imp.UseImportedTemplate(pdf, tplID, 0, 0, w, h)
	d.pageH = h
	if pdf.Err() {
		return nil, newError("New", fmt.Errorf("%w: %v", ErrTemplate, pdf.Error()))
	}
	return d, nil
}

// LoadLogo registers the PNG read from r as the tag logo and returns its
// natural size in points. The image is decoded in full first so a truncated
// file is rejected before fpdf sees it.
func (d *Document) LoadLogo(r io.Reader) (layout.Size, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return layout.Size{}, newError("LoadLogo", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		return layout.Size{}, newError("LoadLogo", fmt.Errorf("%w: %v", ErrLogo, err))
	}
	info, err := registerLogo(d.pdf, data)
	if err != nil {
		return layout.Size{}, newError("LoadLogo", err)
	}
	d.logo = true
	w, h := info.Extent()
	return layout.Size{Width: w, Height: h}, nil
}

// MeasureText implements layout.Measurer using the document's fonts.
func (d *Document) MeasureText(text string, size float64, variant layout.FontVariant) float64 {
	if text == "" {
		return 0
	}
	f, ok := d.fonts[variant]
	if !ok {
		return 0
	}
	d.pdf.SetFont(f.family, f.style, size)
	return d.pdf.GetStringWidth(text)
}

// Draw executes instructions in order. Empty text is skipped.
func (d *Document) Draw(instrs ...layout.DrawInstruction) error {
	for _, in := range instrs {
		switch in.Kind {
		case layout.KindImage:
			if !d.logo {
				return newError("Draw", ErrNoLogo)
			}
			top := d.pageH - in.Y - in.Height
			d.pdf.ImageOptions(logoName, in.X, top, in.Width, in.Height, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		case layout.KindText:
			if in.Text == "" {
				continue
			}
			f, ok := d.fonts[in.Font]
			if !ok {
				return newError("Draw", fmt.Errorf("no font for variant %v", in.Font))
			}
			d.pdf.SetFont(f.family, f.style, in.FontSize)
			d.pdf.Text(in.X, d.pageH-in.Y, in.Text)
		default:
			return newError("Draw", fmt.Errorf("%w: %v", ErrUnknown, in.Kind))
		}
	}
	if d.pdf.Err() {
		return newError("Draw", d.pdf.Error())
	}
	return nil
}

// PageSize returns the size of the sheet page in points.
func (d *Document) PageSize() (w, h float64) {
	return d.pdf.GetPageSize()
}

// Output serializes the document to w. The document cannot be drawn on
// afterwards.
func (d *Document) Output(w io.Writer) error {
	if d.pdf.Err() {
		return newError("Output", d.pdf.Error())
	}
	if err := d.pdf.Output(w); err != nil {
		return newError("Output", err)
	}
	return nil
}
