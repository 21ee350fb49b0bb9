package service

import (
	"strings"

	"github.com/MKhiriev/user-directory/internal/validators"
)

// ValidationError carries per-field validation failures of a form.
type ValidationError struct {
	Fields map[string]error
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range []string{validators.FieldName, validators.FieldEmail} {
		if err, ok := e.Fields[f]; ok {
			parts = append(parts, f+": "+err.Error())
		}
	}
	return ErrInvalidDataProvided.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap returns [ErrInvalidDataProvided].
func (e *ValidationError) Unwrap() error {
	return ErrInvalidDataProvided
}
