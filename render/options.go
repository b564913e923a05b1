package render

import "io"

// Option configures a Document created by New.
type Option func(*documentConfig)

type documentConfig struct {
	fonts      bool
	regular    []byte
	semibold   []byte
	background io.ReadSeeker
	title      string
	creator    string
}

// WithFonts registers TrueType fonts for the regular and semibold variants.
// Without it the PDF core fonts Helvetica and Helvetica-Bold are used, which
// only cover Latin-1 text. Both fonts must be non-empty TrueType data.
func WithFonts(regular, semibold []byte) Option {
	return func(c *documentConfig) {
		c.fonts = true
		c.regular = regular
		c.semibold = semibold
	}
}

// WithBackground draws the first page of an existing PDF under the tags.
// The page size of the document follows the template.
func WithBackground(r io.ReadSeeker) Option {
	return func(c *documentConfig) {
		c.background = r
	}
}

// WithTitle sets the document title metadata.
func WithTitle(title string) Option {
	return func(c *documentConfig) {
		c.title = title
	}
}

// WithCreator sets the document creator metadata.
func WithCreator(creator string) Option {
	return func(c *documentConfig) {
		c.creator = creator
	}
}
