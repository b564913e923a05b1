package sheet

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/chtl/nametags/layout"
)

func TestParsePadsLabels(t *testing.T) {
	f, err := Parse([]byte(`{"labels": [{"title": " Sam Wolfson ", "subtitle": "he/him", "print": true}]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(f.Labels) != layout.Slots {
		t.Fatalf("expected %d labels, got %d", layout.Slots, len(f.Labels))
	}
	if f.Labels[0].Title != "Sam Wolfson" {
		t.Errorf("title not trimmed: %q", f.Labels[0].Title)
	}
	for i, l := range f.Labels[1:] {
		if l.Print {
			t.Errorf("padded label %d should not print", i+1)
		}
	}
}

func TestParseTooManyLabels(t *testing.T) {
	data := `{"labels": [{},{},{},{},{},{},{}]}`
	_, err := Parse([]byte(data))
	if !errors.Is(err, ErrTooManyLabels) {
		t.Fatalf("expected ErrTooManyLabels, got %v", err)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"labels": [`)); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestParseTextTooLong(t *testing.T) {
	data := `{"labels": [{"title": "` + strings.Repeat("x", maxText+1) + `"}]}`
	if _, err := Parse([]byte(data)); err == nil {
		t.Fatal("expected error for oversized title")
	}
}

func TestParseTextLimitAfterTrim(t *testing.T) {
	name := strings.Repeat("é", maxText)
	data := `{"labels": [{"title": "  ` + name + ` ", "subtitle": "` + name + `\n", "print": true}]}`
	f, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse rejected %d characters plus whitespace: %v", maxText, err)
	}
	if f.Labels[0].Title != name || f.Labels[0].Subtitle != name {
		t.Error("surrounding whitespace was not trimmed")
	}
}

func TestEntriesFiltersAndAddresses(t *testing.T) {
	f := &Form{Labels: []Label{
		{Title: "a", Print: true},
		{Title: "b"},
		{Title: "c"},
		{Title: "d", Subtitle: "they/them", Print: true},
		{Title: "e"},
		{Title: "f", Print: true},
	}}

	entries, err := f.Entries()
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	want := []layout.TagEntry{
		{Coordinate: layout.Coordinate{Column: 0, Row: 0}, Title: "a"},
		{Coordinate: layout.Coordinate{Column: 1, Row: 1}, Title: "d", Subtitle: "they/them"},
		{Coordinate: layout.Coordinate{Column: 1, Row: 2}, Title: "f"},
	}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestEntriesRejectsExtraLabels(t *testing.T) {
	f := &Form{Labels: make([]Label, 7)}
	f.Labels[6].Print = true
	if _, err := f.Entries(); !errors.Is(err, layout.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestFromValues(t *testing.T) {
	v := url.Values{}
	v.Set("title2", "Grace")
	v.Set("subtitle2", "she/her")
	v.Set("print2", "on")
	v.Set("title4", "not printed")
	v.Set("background", "true")

	f, err := FromValues(v)
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}
	if !f.Background {
		t.Error("expected background to be set")
	}
	entries, err := f.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Coordinate != (layout.Coordinate{Column: 0, Row: 1}) || entries[0].Title != "Grace" {
		t.Errorf("unexpected entry %+v", entries[0])
	}
}
