package utils

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// NonFieldErrorsKey holds validation messages that do not belong to a single field.
const NonFieldErrorsKey = "non_field_errors"

type GenericError struct {
	Message string
	Type    int
	Code    string
	Fields  map[string][]string
}

func (g *GenericError) Error() string {
	if len(g.Fields) > 0 {
		keys := make([]string, 0, len(g.Fields))
		for key := range g.Fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", key, strings.Join(g.Fields[key], " ")))
		}
		return fmt.Sprintf("message: %s, code: %v", strings.Join(parts, "; "), g.Type)
	}
	return fmt.Sprintf("message: %s, code: %v", g.Message, g.Type)
}

// Payload is the JSON body sent to clients for this error.
func (g *GenericError) Payload() interface{} {
	if len(g.Fields) > 0 {
		return g.Fields
	}
	body := map[string]string{"detail": g.Message}
	if g.Code != "" {
		body["code"] = g.Code
	}
	return body
}

func HTTPGenericError(httpStatus int, errorMessage string) *GenericError {
	return &GenericError{
		Type:    httpStatus,
		Message: errorMessage,
	}
}

// ValidationError builds a 400 error keyed by the offending fields.
func ValidationError(fields map[string][]string) *GenericError {
	return &GenericError{
		Type:    http.StatusBadRequest,
		Message: "invalid input",
		Fields:  fields,
	}
}

func NotFoundError() *GenericError {
	return HTTPGenericError(http.StatusNotFound, "Not found.")
}
