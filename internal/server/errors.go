package server

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code and a message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// validationBody returns an ErrorResponse for input the form rejected.
func validationBody(err error) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an ErrorResponse for a request rejected before decoding.
func requestBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "request_error", Message: message}}
}

// internalBody hides generation failures from the client; details go to the log.
func internalBody() ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "internal_error", Message: "could not generate the sheet"}}
}

// unwrapMessage strips package prefixes so the client sees the human part.
// e.g. "sheet: parsing form: unexpected end of JSON input" -> "parsing form: unexpected end of JSON input"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{"sheet: ", "nametags: ", "layout: "} {
		msg = strings.TrimPrefix(msg, prefix)
	}
	return msg
}

func writeError(w http.ResponseWriter, status int, body ErrorResponse) {
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
