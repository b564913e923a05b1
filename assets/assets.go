// Package assets bundles the default logo and fonts and loads replacements
// from disk.
package assets

import (
	_ "embed"
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

//go:embed logo.png
var defaultLogo []byte

// Bundle holds the raw bytes a sheet is rendered with.
type Bundle struct {
	Logo     []byte // PNG
	Regular  []byte // TTF
	Semibold []byte // TTF
}

// Paths names optional files that replace the embedded defaults.
// Empty fields keep the default.
type Paths struct {
	Logo     string
	Regular  string
	Semibold string
}

// Default returns the embedded logo with Go Regular and Go Medium.
func Default() Bundle {
	return Bundle{
		Logo:     defaultLogo,
		Regular:  goregular.TTF,
		Semibold: gomedium.TTF,
	}
}

// Load returns the default bundle with every path in p read from disk.
func Load(p Paths) (Bundle, error) {
	b := Default()
	files := []struct {
		path string
		dst  *[]byte
	}{
		{p.Logo, &b.Logo},
		{p.Regular, &b.Regular},
		{p.Semibold, &b.Semibold},
	}
	for _, f := range files {
		if f.path == "" {
			continue
		}
		data, err := os.ReadFile(f.path)
		if err != nil {
			return Bundle{}, fmt.Errorf("assets: reading %s: %w", f.path, err)
		}
		*f.dst = data
	}
	return b, nil
}
