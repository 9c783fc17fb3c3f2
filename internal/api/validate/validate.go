// Package validate collects field-level validation failures the way the API
// reports them: a map of field name to messages, carried through the service
// layer as an error value.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

// error interface
func (e Errs) Error() string {
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Map groups messages by field for the 422 response body.
func (e Errs) Map() map[string][]string {
	m := make(map[string][]string, len(e))
	for _, ef := range e {
		m[ef.Field] = append(m[ef.Field], ef.Msg)
	}
	return m
}

// Add appends a failure and returns the updated slice, so callers can chain
// checks without nil-guarding.
func (e Errs) Add(field, msg string) Errs {
	return append(e, ErrField{Field: field, Msg: msg})
}

// Helpers

func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func MaxLen(field, value string, max int) *ErrField {
	if len(value) > max {
		return &ErrField{Field: field, Msg: fmt.Sprintf("must not exceed %d characters", max)}
	}
	return nil
}

func MinLen(field, value string, min int) *ErrField {
	if len(value) < min {
		return &ErrField{Field: field, Msg: fmt.Sprintf("must be at least %d characters", min)}
	}
	return nil
}

func IntRange(field string, v, min, max int) *ErrField {
	if v < min || v > max {
		return &ErrField{Field: field, Msg: fmt.Sprintf("must be between %d and %d", min, max)}
	}
	return nil
}

func FloatRange(field string, v, min, max float64) *ErrField {
	if v < min || v > max {
		return &ErrField{Field: field, Msg: fmt.Sprintf("must be between %v and %v", min, max)}
	}
	return nil
}

var hhmmRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// TimeHHMM checks the 24h "HH:MM" time-of-day format.
func TimeHHMM(field, value string) *ErrField {
	if !hhmmRe.MatchString(value) {
		return &ErrField{Field: field, Msg: "must match the HH:MM time format"}
	}
	return nil
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func Email(field, value string) *ErrField {
	if !emailRe.MatchString(value) {
		return &ErrField{Field: field, Msg: "must be a valid email address"}
	}
	return nil
}

// Collect appends every non-nil check result to errs.
func Collect(errs Errs, checks ...*ErrField) Errs {
	for _, c := range checks {
		if c != nil {
			errs = append(errs, *c)
		}
	}
	return errs
}
