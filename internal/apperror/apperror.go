// Package apperror maps validation and upstream failures to API error payloads.
package apperror

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var errRequired = errors.New("field required")

// GatewayError reports a non-success answer from an external provider. Detail is
// safe to return to the caller.
type GatewayError struct {
	Provider string
	Detail   string
}

func (e *GatewayError) Error() string {
	return e.Detail
}

// NewGatewayError builds a GatewayError whose detail carries at most limit
// characters of the upstream message.
func NewGatewayError(provider, upstreamMessage string, limit int) *GatewayError {
	return &GatewayError{
		Provider: provider,
		Detail:   fmt.Sprintf("%s error: %s", provider, Truncate(upstreamMessage, limit)),
	}
}

// ValidationDetails converts binding errors into a list of {field: message} pairs.
// Errors that are not validator errors (malformed JSON, wrong types) yield nil.
func ValidationDetails(err error) []map[string]string {
	var validationErr validator.ValidationErrors
	if !errors.As(err, &validationErr) {
		return nil
	}

	details := make([]map[string]string, 0, len(validationErr))
	for _, e := range validationErr {
		var msg string
		switch e.Tag() {
		case "required":
			msg = errRequired.Error()
		case "min":
			msg = fmt.Sprintf("ensure this value has at least %s characters", e.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", e.Field())
		}
		details = append(details, map[string]string{e.Field(): msg})
	}
	return details
}

// RegisterFieldNames makes validation errors report json (or form) names
// instead of Go struct field names.
func RegisterFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
}

// Truncate returns the first limit characters of s.
func Truncate(s string, limit int) string {
	if limit < 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
