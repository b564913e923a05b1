package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/chtl/nametags"
	"github.com/chtl/nametags/layout"
	"github.com/chtl/nametags/sheet"
)

// handleSheet implements POST /sheet.pdf. The body is either the HTML form
// (urlencoded or multipart) or a JSON sheet.Form. The PDF is returned inline.
func (s *Server) handleSheet(w http.ResponseWriter, r *http.Request) {
	form, err := s.decodeForm(r)
	if err != nil {
		s.writeDecodeError(w, r, err)
		return
	}
	entries, err := form.Entries()
	if err != nil {
		writeError(w, http.StatusBadRequest, validationBody(err))
		return
	}

	var buf bytes.Buffer
	if err := s.gen.Generate(r.Context(), &buf, entries, form.Background); err != nil {
		if errors.Is(err, nametags.ErrNoTemplate) {
			writeError(w, http.StatusBadRequest, validationBody(err))
			return
		}
		s.log.ErrorContext(r.Context(), "generating sheet", "error", err, "tags", len(entries))
		writeError(w, http.StatusInternalServerError, internalBody())
		return
	}

	name := fmt.Sprintf("nametags-%s.pdf", uuid.NewString())
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": name}))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// handleLayout implements POST /api/layout. It accepts a JSON form and
// returns the draw instructions for every printed label.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeDecodeError(w, r, err)
		return
	}
	form, err := sheet.Parse(data)
	if err != nil {
		writeError(w, http.StatusBadRequest, validationBody(err))
		return
	}
	entries, err := form.Entries()
	if err != nil {
		writeError(w, http.StatusBadRequest, validationBody(err))
		return
	}
	placements, err := s.gen.Layout(entries)
	if err != nil {
		s.log.ErrorContext(r.Context(), "laying out sheet", "error", err)
		writeError(w, http.StatusInternalServerError, internalBody())
		return
	}
	if placements == nil {
		placements = []layout.TagPlacement{}
	}
	writeJSON(w, http.StatusOK, layoutResponse{Tags: placements})
}

type layoutResponse struct {
	Tags []layout.TagPlacement `json:"tags"`
}

func (s *Server) decodeForm(r *http.Request) (*sheet.Form, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch ct {
	case "application/json":
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		return sheet.Parse(data)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(s.maxBody); err != nil {
			return nil, err
		}
		return sheet.FromValues(r.PostForm)
	default:
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		return sheet.FromValues(r.PostForm)
	}
}

func (s *Server) writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, requestBody("request body too large"))
		return
	}
	s.log.DebugContext(r.Context(), "rejecting form", "error", err)
	writeError(w, http.StatusBadRequest, validationBody(err))
}
