package layout_test

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/chtl/nametags/layout"
)

// perRune is a stub measurer: every rune is a fixed fraction of the font size,
// semibold glyphs slightly wider.
var perRune = layout.MeasurerFunc(func(text string, size float64, v layout.FontVariant) float64 {
	f := 0.5
	if v == layout.Semibold {
		f = 0.6
	}
	return float64(len([]rune(text))) * size * f
})

var testLogo = layout.Size{Width: 1000, Height: 800}

func mustCoordinate(t *testing.T, i int) layout.Coordinate {
	t.Helper()
	c, err := layout.ToCoordinate(i)
	if err != nil {
		t.Fatalf("ToCoordinate(%d): %v", i, err)
	}
	return c
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLayoutTagEndToEnd(t *testing.T) {
	g := layout.DefaultGeometry()
	c := mustCoordinate(t, 3)
	if c != (layout.Coordinate{Column: 1, Row: 1}) {
		t.Fatalf("unexpected coordinate %v", c)
	}

	x, y := g.CellOrigin(c)
	if x != 306 || y != 236 {
		t.Fatalf("cell origin = (%g, %g), want (306, 236)", x, y)
	}

	p := layout.LayoutTag(c, "Sam Wolfson", "he/him", g, testLogo, perRune)
	if p.Logo.Y != 300 {
		t.Errorf("logo y = %g, want 300", p.Logo.Y)
	}
	if p.Title.Y != 272 {
		t.Errorf("title y = %g, want 272", p.Title.Y)
	}
	if p.Subtitle.Y != 250 {
		t.Errorf("subtitle y = %g, want 250", p.Subtitle.Y)
	}
	if p.Title.FontSize != 24 || p.Title.Font != layout.Semibold {
		t.Errorf("title font = %v %g, want semibold 24", p.Title.Font, p.Title.FontSize)
	}
	if p.Subtitle.FontSize != 16 || p.Subtitle.Font != layout.Regular {
		t.Errorf("subtitle font = %v %g, want regular 16", p.Subtitle.Font, p.Subtitle.FontSize)
	}
}

func TestLayoutTagLogo(t *testing.T) {
	g := layout.DefaultGeometry()
	p := layout.LayoutTag(mustCoordinate(t, 0), "", "", g, testLogo, perRune)

	if !almostEqual(p.Logo.Width, 90) || !almostEqual(p.Logo.Height, 72) {
		t.Errorf("logo size = %gx%g, want 90x72", p.Logo.Width, p.Logo.Height)
	}
	// cell 0 spans x 54..306, center 180
	if !almostEqual(p.Logo.X+p.Logo.Width/2, 180) {
		t.Errorf("logo not centered: x=%g w=%g", p.Logo.X, p.Logo.Width)
	}
	if p.Logo.Kind != layout.KindImage {
		t.Errorf("logo kind = %v", p.Logo.Kind)
	}
}

func TestLayoutTagCentering(t *testing.T) {
	g := layout.DefaultGeometry()
	titles := []string{"", "A", "Sam Wolfson", "An Unreasonably Long Name For A Badge"}

	for i := 0; i < layout.Slots; i++ {
		c := mustCoordinate(t, i)
		originX, _ := g.CellOrigin(c)
		center := originX + g.TagWidth/2
		for _, title := range titles {
			p := layout.LayoutTag(c, title, title, g, testLogo, perRune)
			w := perRune(title, g.TitleSize, layout.Semibold)
			if !almostEqual(p.Title.X+w/2, center) {
				t.Errorf("slot %d %q: title x %g + w/2 %g != center %g", i, title, p.Title.X, w/2, center)
			}
			sw := perRune(title, g.SubtitleSize, layout.Regular)
			if !almostEqual(p.Subtitle.X+sw/2, center) {
				t.Errorf("slot %d %q: subtitle not centered", i, title)
			}
		}
	}
}

func TestLayoutTagVerticalInversion(t *testing.T) {
	g := layout.DefaultGeometry()

	_, top := g.CellOrigin(mustCoordinate(t, 0))
	if top != 395 {
		t.Errorf("row 0 origin y = %g, want 395", top)
	}
	_, bottom := g.CellOrigin(mustCoordinate(t, 4))
	if bottom != 77 {
		t.Errorf("row 2 origin y = %g, want 77", bottom)
	}
	_, mid := g.CellOrigin(mustCoordinate(t, 2))
	if !(bottom < mid && mid < top) {
		t.Errorf("bands out of order: %g %g %g", top, mid, bottom)
	}
}

func TestLayoutTagAlternateGeometry(t *testing.T) {
	g := layout.DefaultGeometry()
	g.TopBand = 3
	g.XOffset = 10

	x, y := g.CellOrigin(mustCoordinate(t, 1))
	if x != 262 || y != 554 {
		t.Errorf("cell origin = (%g, %g), want (262, 554)", x, y)
	}
}

func TestLayoutTagEmptyStrings(t *testing.T) {
	g := layout.DefaultGeometry()
	p := layout.LayoutTag(mustCoordinate(t, 5), "", "", g, testLogo, perRune)

	for _, in := range p.Instructions() {
		if math.IsNaN(in.X) || math.IsInf(in.X, 0) || math.IsNaN(in.Y) || math.IsInf(in.Y, 0) {
			t.Errorf("non-finite coordinate in %+v", in)
		}
	}
	originX, _ := g.CellOrigin(mustCoordinate(t, 5))
	if p.Title.X != originX+g.TagWidth/2 {
		t.Errorf("empty title x = %g, want cell midpoint %g", p.Title.X, originX+g.TagWidth/2)
	}
	if p.Title.Text != "" || p.Subtitle.Text != "" {
		t.Errorf("expected empty text instructions")
	}
}

func TestLayoutDocumentIndependence(t *testing.T) {
	g := layout.DefaultGeometry()
	entries := []layout.TagEntry{
		{Coordinate: mustCoordinate(t, 0), Title: "Ada", Subtitle: "she/her"},
		{Coordinate: mustCoordinate(t, 5), Title: "Grace", Subtitle: "they/them"},
	}

	batch := layout.LayoutDocument(entries, g, testLogo, perRune)

	var singles []layout.TagPlacement
	for _, e := range entries {
		singles = append(singles, layout.LayoutDocument([]layout.TagEntry{e}, g, testLogo, perRune)...)
	}
	if !reflect.DeepEqual(batch, singles) {
		t.Errorf("batch layout differs from individual layouts:\n%+v\n%+v", batch, singles)
	}
}

func TestLayoutDocumentDuplicates(t *testing.T) {
	g := layout.DefaultGeometry()
	c := mustCoordinate(t, 2)
	out := layout.LayoutDocument([]layout.TagEntry{
		{Coordinate: c, Title: "first"},
		{Coordinate: c, Title: "second"},
	}, g, testLogo, perRune)

	if len(out) != 2 {
		t.Fatalf("expected both entries laid out, got %d", len(out))
	}
	if out[0].Logo != out[1].Logo {
		t.Errorf("duplicate cells should share logo placement")
	}
}

func TestLayoutDocumentEmpty(t *testing.T) {
	out := layout.LayoutDocument(nil, layout.DefaultGeometry(), testLogo, perRune)
	if len(out) != 0 {
		t.Errorf("expected no placements, got %d", len(out))
	}
}

func TestGeometryValidate(t *testing.T) {
	if err := layout.DefaultGeometry().Validate(); err != nil {
		t.Fatalf("default geometry: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*layout.Geometry)
	}{
		{"zero tag width", func(g *layout.Geometry) { g.TagWidth = 0 }},
		{"negative offset", func(g *layout.Geometry) { g.YOffset = -1 }},
		{"band too low", func(g *layout.Geometry) { g.TopBand = 1 }},
		{"band too high", func(g *layout.Geometry) { g.TopBand = 5 }},
		{"too wide", func(g *layout.Geometry) { g.XOffset = 200 }},
		{"zero logo scale", func(g *layout.Geometry) { g.LogoScale = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := layout.DefaultGeometry()
			tt.mutate(&g)
			if err := g.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestInstructionJSONFont(t *testing.T) {
	p := layout.LayoutTag(mustCoordinate(t, 0), "Sam Wolfson", "he/him", layout.DefaultGeometry(), testLogo, perRune)

	logo, err := json.Marshal(p.Logo)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(logo, []byte(`"font"`)) {
		t.Errorf("image instruction should not carry a font: %s", logo)
	}

	title, err := json.Marshal(p.Title)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(title, []byte(`"font":"semibold"`)) {
		t.Errorf("title instruction lost its font: %s", title)
	}

	var back layout.DrawInstruction
	if err := json.Unmarshal(title, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != p.Title {
		t.Errorf("round trip = %+v, want %+v", back, p.Title)
	}
}
