package render

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/opentype"
)

// TrueType sfnt versions fpdf's UTF-8 font parser accepts. CFF-based
// OpenType ("OTTO") is rejected by it.
const (
	sfntTrueType = 0x00010000
	sfntApple    = 0x74727565 // "true"
)

// registerFont checks data with opentype before handing it to fpdf, which
// prints parse failures to stdout instead of recording them and panics on
// truncated tables.
func registerFont(pdf *fpdf.Fpdf, family string, data []byte) (err error) {
	if len(data) < 4 {
		return fmt.Errorf("%w: %d bytes", ErrFont, len(data))
	}
	if v := binary.BigEndian.Uint32(data); v != sfntTrueType && v != sfntApple {
		return fmt.Errorf("%w: unsupported sfnt version %#08x", ErrFont, v)
	}
	if _, err := opentype.Parse(data); err != nil {
		return fmt.Errorf("%w: %v", ErrFont, err)
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrFont, p)
		}
	}()
	pdf.AddUTF8FontFromBytes(family, "", data)
	// fpdf keeps no record of a font it failed to parse; selecting it
	// turns that into an "undefined font" error.
	pdf.SetFont(family, "", 12)
	if pdf.Err() {
		return fmt.Errorf("%w: %v", ErrFont, pdf.Error())
	}
	return nil
}

// registerLogo registers data as the logo image, turning fpdf panics on
// malformed chunks into ErrLogo.
func registerLogo(pdf *fpdf.Fpdf, data []byte) (info *fpdf.ImageInfoType, err error) {
	defer func() {
		if p := recover(); p != nil {
			info, err = nil, fmt.Errorf("%w: %v", ErrLogo, p)
		}
	}()
	info = pdf.RegisterImageOptionsReader(logoName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(data))
	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrLogo, pdf.Error())
	}
	if info == nil {
		return nil, fmt.Errorf("%w: image was not registered", ErrLogo)
	}
	return info, nil
}
