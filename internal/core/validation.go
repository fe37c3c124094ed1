package core

// validation.go checks "add applicant" submissions before they reach the store.
//
// All fields are trimmed first. Name, email, phone and branch are required;
// the remaining fields are free text except the passout year, which must be
// a four-digit year when present. Every problem is reported at once so the
// form can highlight all offending fields.

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a single validation error for a field.
type ValidationError struct {
	Field   string `json:"field"`           // JSON field name
	Value   string `json:"value,omitempty"` // The invalid value
	Message string `json:"message"`         // Human-readable error message
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ValidationErrors is every problem found in one submission.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationErrors extracts ValidationErrors from err.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var errs ValidationErrors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}

// Normalize returns a copy of the input with surrounding whitespace removed
// from every field.
func (in ApplicantInput) Normalize() ApplicantInput {
	trim := strings.TrimSpace
	return ApplicantInput{
		Name:                 trim(in.Name),
		Email:                strings.ToLower(trim(in.Email)),
		Phone:                trim(in.Phone),
		Branch:               trim(in.Branch),
		College:              trim(in.College),
		Specialization:       trim(in.Specialization),
		Qualification:        trim(in.Qualification),
		PassoutYear:          trim(in.PassoutYear),
		ProgrammingLanguages: trim(in.ProgrammingLanguages),
		PreferredDomain:      trim(in.PreferredDomain),
		Experience:           trim(in.Experience),
		Duration:             trim(in.Duration),
		InternshipMode:       trim(in.InternshipMode),
		LinkedIn:             trim(in.LinkedIn),
		Portfolio:            trim(in.Portfolio),
	}
}

// Validate reports every problem with a normalized input, or nil.
func (in ApplicantInput) Validate() error {
	var errs ValidationErrors

	required := []struct {
		field, value string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"phone", in.Phone},
		{"branch", in.Branch},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, ValidationError{Field: r.field, Message: "required field is empty"})
		}
	}

	if in.Email != "" && !validEmail(in.Email) {
		errs = append(errs, ValidationError{Field: "email", Value: in.Email, Message: "invalid email address"})
	}

	if in.PassoutYear != "" {
		if _, err := parsePassoutYear(in.PassoutYear); err != nil {
			errs = append(errs, ValidationError{Field: "passoutYear", Value: in.PassoutYear, Message: err.Error()})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validEmail is a shape check, not RFC 5322 parsing.
func validEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t") && strings.Count(s, "@") == 1
}

func parsePassoutYear(s string) (int, error) {
	if len(s) != 4 {
		return 0, errors.New("invalid number: year must have four digits")
	}
	y, err := strconv.Atoi(s)
	if err != nil || y < 1900 {
		return 0, errors.New("invalid number: year must have four digits")
	}
	return y, nil
}
