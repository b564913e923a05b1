package sheet

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chtl/nametags/layout"
)

// ErrTooManyLabels is returned when a form holds more labels than the sheet
// has slots.
var ErrTooManyLabels = errors.New("sheet: too many labels")

// maxText bounds title and subtitle length. Anything longer cannot fit a
// 252pt cell at the sizes used.
const maxText = 200

// Parse decodes a JSON form. Missing labels are filled with blank,
// unprinted ones.
func Parse(data []byte) (*Form, error) {
	var f Form
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("sheet: parsing form: %w", err)
	}
	if err := f.normalize(); err != nil {
		return nil, err
	}
	return &f, nil
}

// FromValues decodes an HTML form post.
func FromValues(v url.Values) (*Form, error) {
	f := &Form{
		Background: checked(v.Get("background")),
		Labels:     make([]Label, layout.Slots),
	}
	for i := range f.Labels {
		n := strconv.Itoa(i)
		f.Labels[i] = Label{
			Title:    v.Get("title" + n),
			Subtitle: v.Get("subtitle" + n),
			Print:    checked(v.Get("print" + n)),
		}
	}
	if err := f.normalize(); err != nil {
		return nil, err
	}
	return f, nil
}

func checked(s string) bool {
	switch strings.ToLower(s) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

func (f *Form) normalize() error {
	if len(f.Labels) > layout.Slots {
		return fmt.Errorf("%w: got %d, the sheet has %d slots", ErrTooManyLabels, len(f.Labels), layout.Slots)
	}
	for i := range f.Labels {
		l := &f.Labels[i]
		l.Title = strings.TrimSpace(l.Title)
		l.Subtitle = strings.TrimSpace(l.Subtitle)
		if utf8.RuneCountInString(l.Title) > maxText || utf8.RuneCountInString(l.Subtitle) > maxText {
			return fmt.Errorf("sheet: label %d: text longer than %d characters", i, maxText)
		}
	}
	for len(f.Labels) < layout.Slots {
		f.Labels = append(f.Labels, Label{})
	}
	return nil
}

// Entries returns the labels marked for printing, each paired with its grid
// coordinate.
func (f *Form) Entries() ([]layout.TagEntry, error) {
	var out []layout.TagEntry
	for i, l := range f.Labels {
		if !l.Print {
			continue
		}
		c, err := layout.ToCoordinate(i)
		if err != nil {
			return nil, fmt.Errorf("sheet: label %d: %w", i, err)
		}
		out = append(out, layout.TagEntry{Coordinate: c, Title: l.Title, Subtitle: l.Subtitle})
	}
	return out, nil
}
