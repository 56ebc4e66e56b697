package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Action is the write action being validated. It mirrors the REST verb the
// request arrived on: POST → create, PUT → update, PATCH → partial_update.
type Action string

const (
	ActionCreate        Action = "create"
	ActionUpdate        Action = "update"
	ActionPartialUpdate Action = "partial_update"
)

var (
	// ErrNotFound is returned when the target aggregate does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the acting identity owns neither the
	// staff capability nor the target aggregate.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError carries the field→message map of a rejected write.
// A write that produces one never has side effects: validation runs before
// any persistence and a failure aborts the whole transaction.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// fieldError builds a single-field ValidationError.
func fieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// allowedFieldsError is the rejection for an update touching restricted
// fields; the payload lists the permitted fields sorted and comma-joined.
func allowedFieldsError(allowed []string) *ValidationError {
	sorted := append([]string(nil), allowed...)
	sort.Strings(sorted)
	return fieldError("error", fmt.Sprintf("allowed fields for update: %s", strings.Join(sorted, ", ")))
}

// restrictedKeys returns the submitted keys that are known writable fields
// but not in the allowed set. Unknown keys are ignored, mirroring how the
// binding layer drops fields the aggregate doesn't have.
func restrictedKeys(submitted map[string]struct{}, known, allowed []string) []string {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		allowedSet[f] = struct{}{}
	}

	var out []string
	for _, f := range known {
		if _, sent := submitted[f]; !sent {
			continue
		}
		if _, ok := allowedSet[f]; !ok {
			out = append(out, f)
		}
	}
	return out
}
