// Package fontmetrics measures text from TrueType/OpenType font bytes
// without building a PDF.
package fontmetrics

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/chtl/nametags/layout"
)

// Faces are rendered at 72 DPI so one font unit equals one point.
const dpi = 72

// Measurer implements layout.Measurer over two parsed fonts. Faces are
// created lazily per size and cached.
type Measurer struct {
	fonts map[layout.FontVariant]*sfnt.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	variant layout.FontVariant
	size    float64
}

// New parses the regular and semibold font files.
func New(regular, semibold []byte) (*Measurer, error) {
	r, err := opentype.Parse(regular)
	if err != nil {
		return nil, fmt.Errorf("fontmetrics: parsing regular font: %w", err)
	}
	s, err := opentype.Parse(semibold)
	if err != nil {
		return nil, fmt.Errorf("fontmetrics: parsing semibold font: %w", err)
	}
	return &Measurer{
		fonts: map[layout.FontVariant]*sfnt.Font{
			layout.Regular:  r,
			layout.Semibold: s,
		},
		faces: make(map[faceKey]font.Face),
	}, nil
}

// MeasureText returns the advance width of text in points. An unknown
// variant or a face that cannot be built measures as zero.
func (m *Measurer) MeasureText(text string, size float64, variant layout.FontVariant) float64 {
	if text == "" {
		return 0
	}
	face, err := m.face(variant, size)
	if err != nil {
		return 0
	}
	return fixedToFloat(font.MeasureString(face, text))
}

func (m *Measurer) face(variant layout.FontVariant, size float64) (font.Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := faceKey{variant, size}
	if f, ok := m.faces[key]; ok {
		return f, nil
	}
	ft, ok := m.fonts[variant]
	if !ok {
		return nil, fmt.Errorf("fontmetrics: no font for variant %v", variant)
	}
	f, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("fontmetrics: building %v face at %g: %w", variant, size, err)
	}
	m.faces[key] = f
	return f, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
