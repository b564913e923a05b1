// Package sheet decodes the name tag form and renders it.
//
// The form is six labels, one per slot of the sheet, plus a switch for
// drawing the background template. It arrives either as JSON:
//
//	{
//	  "background": false,
//	  "labels": [
//	    {"title": "Sam Wolfson", "subtitle": "he/him", "print": true},
//	    {"title": "", "subtitle": "", "print": false}
//	  ]
//	}
//
// or as an HTML form post with fields title0..title5, subtitle0..subtitle5
// and print0..print5.
package sheet

// Form is the state of the six-slot form.
type Form struct {
	Background bool    `json:"background,omitempty"`
	Labels     []Label `json:"labels"`
}

// Label is one slot of the form.
type Label struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Print    bool   `json:"print"`
}
