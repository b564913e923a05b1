package layout

import "fmt"

// FontVariant selects one of the two registered typefaces. The zero value
// means no font and is what image instructions carry.
type FontVariant int

const (
	NoFont FontVariant = iota
	Regular
	Semibold
)

// MarshalText encodes the variant by name.
func (v FontVariant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes a variant name written by MarshalText.
func (v *FontVariant) UnmarshalText(b []byte) error {
	switch string(b) {
	case "none":
		*v = NoFont
	case "regular":
		*v = Regular
	case "semibold":
		*v = Semibold
	default:
		return fmt.Errorf("layout: unknown font variant %q", b)
	}
	return nil
}

func (v FontVariant) String() string {
	switch v {
	case NoFont:
		return "none"
	case Regular:
		return "regular"
	case Semibold:
		return "semibold"
	default:
		return "unknown"
	}
}

// Kind distinguishes image placements from text placements.
type Kind int

const (
	KindImage Kind = iota
	KindText
)

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "image":
		*k = KindImage
	case "text":
		*k = KindText
	default:
		return fmt.Errorf("layout: unknown instruction kind %q", b)
	}
	return nil
}

func (k Kind) String() string {
	if k == KindImage {
		return "image"
	}
	return "text"
}

// DrawInstruction is an absolutely positioned element in page space.
// For images (X, Y) is the bottom-left corner; for text Y is the baseline.
type DrawInstruction struct {
	Kind     Kind        `json:"kind"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Width    float64     `json:"width,omitempty"`  // image only
	Height   float64     `json:"height,omitempty"` // image only
	Text     string      `json:"text,omitempty"`
	FontSize float64     `json:"fontSize,omitempty"`
	Font     FontVariant `json:"font,omitempty"` // text only
}

// TagPlacement holds the three instructions that make up one tag.
type TagPlacement struct {
	Cell     Coordinate      `json:"cell"`
	Logo     DrawInstruction `json:"logo"`
	Title    DrawInstruction `json:"title"`
	Subtitle DrawInstruction `json:"subtitle"`
}

// Instructions returns the placement's elements in draw order.
func (p TagPlacement) Instructions() []DrawInstruction {
	return []DrawInstruction{p.Logo, p.Title, p.Subtitle}
}

// TagEntry is a slot selected for printing.
type TagEntry struct {
	Coordinate Coordinate `json:"coordinate"`
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle"`
}

// Size is the natural size of an image in points.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
