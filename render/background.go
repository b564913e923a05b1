package render

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
)

// importBackground imports page 1 of r as a template and returns its id and
// MediaBox size. gofpdi panics on malformed input, so the panic is turned
// into ErrTemplate.
func importBackground(pdf *fpdf.Fpdf, r io.ReadSeeker) (imp *gofpdi.Importer, tplID int, w, h float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrTemplate, p)
		}
	}()

	imp = gofpdi.NewImporter()
	tplID = imp.ImportPageFromStream(pdf, &r, 1, "/MediaBox")
	if dims, ok := imp.GetPageSizes()[1]; ok {
		if mb, ok := dims["/MediaBox"]; ok {
			w = mb["w"]
			h = mb["h"]
		}
	}
	if pdf.Err() {
		return nil, 0, 0, 0, fmt.Errorf("%w: %v", ErrTemplate, pdf.Error())
	}
	return imp, tplID, w, h, nil
}
