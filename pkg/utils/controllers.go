package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"projetos/pkg/constants/headers"
)

// SendJSON writes data as the response body. Bodies are never wrapped so clients
// receive the view object or list directly.
func SendJSON(w http.ResponseWriter, data interface{}, status int, customHeaders map[string]string) {
	w.Header().Add("Access-Control-Allow-Origin", "*")
	w.Header().Set(headers.ContentTypeHeader, headers.JSONContentType)

	for header, val := range customHeaders {
		w.Header().Add(header, val)
	}

	w.WriteHeader(status)
	if status == http.StatusNoContent {
		return
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(data)
}

// SendError writes the error payload with the status carried by err.
func SendError(w http.ResponseWriter, err *GenericError) {
	status := err.Type
	if status == 0 {
		status = http.StatusInternalServerError
	}
	SendJSON(w, err.Payload(), status, nil)
}

// ExtractBody reads the whole request body. An empty body is returned as "{}" so that
// decoding reports missing fields instead of a syntax error.
func ExtractBody(r *http.Request) ([]byte, *GenericError) {
	if r.Body == nil {
		return []byte("{}"), nil
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, HTTPGenericError(http.StatusBadRequest, "request body could not be read")
	}
	if len(body) < 1 {
		return []byte("{}"), nil
	}
	return body, nil
}
