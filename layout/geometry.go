package layout

import "fmt"

// Geometry describes a physical label sheet. All lengths are in points,
// measured from the bottom-left corner of the page.
type Geometry struct {
	PageWidth  float64 `toml:"page_width" json:"pageWidth"`
	PageHeight float64 `toml:"page_height" json:"pageHeight"`

	TagWidth  float64 `toml:"tag_width" json:"tagWidth"`
	TagHeight float64 `toml:"tag_height" json:"tagHeight"`

	// XOffset and YOffset locate the bottom-left corner of the
	// lowest band of the grid.
	XOffset float64 `toml:"x_offset" json:"xOffset"`
	YOffset float64 `toml:"y_offset" json:"yOffset"`

	// TopBand is the page band (counted from the bottom, starting at 0)
	// that receives grid row 0. Lower rows take the bands below it.
	// The default of 2 fills the lowest three bands. The four-row Avery 5390
	// badge template needs 3 to print on its top three rows instead.
	TopBand int `toml:"top_band" json:"topBand"`

	LogoScale    float64 `toml:"logo_scale" json:"logoScale"`
	TitleSize    float64 `toml:"title_size" json:"titleSize"`
	SubtitleSize float64 `toml:"subtitle_size" json:"subtitleSize"`

	// Vertical offsets above the cell origin.
	LogoOffset     float64 `toml:"logo_offset" json:"logoOffset"`
	TitleOffset    float64 `toml:"title_offset" json:"titleOffset"`
	SubtitleOffset float64 `toml:"subtitle_offset" json:"subtitleOffset"`
}

// DefaultGeometry returns the measurements of the US Letter name badge
// sheet the tags are printed on.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:      612,
		PageHeight:     792,
		TagWidth:       252,
		TagHeight:      159,
		XOffset:        54,
		YOffset:        77,
		TopBand:        2,
		LogoScale:      0.09,
		TitleSize:      24,
		SubtitleSize:   16,
		LogoOffset:     64,
		TitleOffset:    36,
		SubtitleOffset: 14,
	}
}

// CellOrigin returns the bottom-left corner of the cell at c in page space.
// Row indices grow downward on the sheet while page space grows upward, so
// the row is subtracted from the top band.
func (g Geometry) CellOrigin(c Coordinate) (x, y float64) {
	x = g.XOffset + float64(c.Column)*g.TagWidth
	y = g.YOffset + float64(g.TopBand-c.Row)*g.TagHeight
	return x, y
}

// Validate reports whether g describes a usable sheet: positive sizes and a
// grid whose bands all fall on the page.
func (g Geometry) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"page width", g.PageWidth},
		{"page height", g.PageHeight},
		{"tag width", g.TagWidth},
		{"tag height", g.TagHeight},
		{"logo scale", g.LogoScale},
		{"title size", g.TitleSize},
		{"subtitle size", g.SubtitleSize},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("layout: %s must be positive, got %g", p.name, p.v)
		}
	}
	if g.XOffset < 0 || g.YOffset < 0 {
		return fmt.Errorf("layout: offsets must not be negative, got (%g, %g)", g.XOffset, g.YOffset)
	}
	if g.TopBand < rows-1 {
		return fmt.Errorf("layout: top band %d leaves no room for %d rows", g.TopBand, rows)
	}
	if right := g.XOffset + columns*g.TagWidth; right > g.PageWidth {
		return fmt.Errorf("layout: grid right edge %g exceeds page width %g", right, g.PageWidth)
	}
	if top := g.YOffset + float64(g.TopBand+1)*g.TagHeight; top > g.PageHeight {
		return fmt.Errorf("layout: grid top edge %g exceeds page height %g", top, g.PageHeight)
	}
	return nil
}

const (
	columns = 2
	rows    = 3
)
