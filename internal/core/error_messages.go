package core

// error_messages.go maps technical errors to user-friendly messages with
// codes for support reference.
//
// # Error Codes Reference
//
//	APP001 - Applicant not found        Patterns: "applicant not found"
//	APP002 - Unknown list view          Patterns: "unknown view"
//	VAL001 - Required field is empty    Patterns: "required field"
//	VAL002 - Invalid email address      Patterns: "invalid email"
//	VAL003 - Invalid year               Patterns: "invalid number"
//	VAL004 - Value not allowed          Patterns: "invalid enum"
//	DB001  - Duplicate record           Patterns: "duplicate key"
//	DB002  - Unique value taken         Patterns: "unique constraint", "violates unique"
//	DB003  - Database unreachable       Patterns: "connection refused"
//	DB004  - Connection interrupted     Patterns: "connection reset"
//	DB005  - Database timeout           Patterns: "timeout"
//	DB006  - Conflicting operations     Patterns: "deadlock"
//	REQ001 - Request cancelled          Patterns: "context canceled"
//	REQ002 - Request timed out          Patterns: "context deadline exceeded"
//	REQ003 - Malformed request          Patterns: "invalid request body", "invalid applicant id"
//	RATE001 - Too many requests         Patterns: "rate limit"
//	ERR000 - Fallback when nothing matches
//
// Patterns are matched case-insensitively with strings.Contains, first match
// wins, so specific patterns come before general ones.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// Lookups
	{
		pattern: "applicant not found",
		msg: UserMessage{
			Message: "Applicant not found",
			Action:  "The applicant may have been deleted. Refresh the list",
			Code:    "APP001",
		},
	},
	{
		pattern: "unknown view",
		msg: UserMessage{
			Message: "This list does not exist",
			Action:  "Verify the link is correct",
			Code:    "APP002",
		},
	},

	// Validation
	{
		pattern: "required field",
		msg: UserMessage{
			Message: "Required field is empty",
			Action:  "Fill in name, email, phone and branch",
			Code:    "VAL001",
		},
	},
	{
		pattern: "invalid email",
		msg: UserMessage{
			Message: "Invalid email address",
			Action:  "Use an address like name@example.com",
			Code:    "VAL002",
		},
	},
	{
		pattern: "invalid number",
		msg: UserMessage{
			Message: "Invalid year",
			Action:  "Enter the passout year with four digits, e.g. 2025",
			Code:    "VAL003",
		},
	},
	{
		pattern: "invalid enum",
		msg: UserMessage{
			Message: "Value is not in the allowed list",
			Action:  "Choose pending, approved, rejected or interview",
			Code:    "VAL004",
		},
	},

	// Database
	{
		pattern: "duplicate key",
		msg: UserMessage{
			Message: "A record with this ID already exists",
			Action:  "Submit the form again",
			Code:    "DB001",
		},
	},
	{
		pattern: "unique constraint",
		msg: UserMessage{
			Message: "This value must be unique but already exists",
			Action:  "Check whether the applicant was already added",
			Code:    "DB002",
		},
	},
	{
		pattern: "violates unique",
		msg: UserMessage{
			Message: "A duplicate value was found",
			Action:  "Check whether the applicant was already added",
			Code:    "DB002",
		},
	},
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Please try again in a few moments",
			Code:    "DB003",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB004",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Operation timed out",
			Action:  "Please try again later",
			Code:    "DB005",
		},
	},
	{
		pattern: "deadlock",
		msg: UserMessage{
			Message: "Database was busy with conflicting operations",
			Action:  "Please try again",
			Code:    "DB006",
		},
	},

	// Requests
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again or narrow the search",
			Code:    "REQ002",
		},
	},
	{
		pattern: "invalid request body",
		msg: UserMessage{
			Message: "The request could not be read",
			Action:  "Send a JSON or form-encoded body",
			Code:    "REQ003",
		},
	},
	{
		pattern: "invalid applicant id",
		msg: UserMessage{
			Message: "The applicant ID is malformed",
			Action:  "Use the link from the applicant list",
			Code:    "REQ003",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It returns the first pattern match, or the ERR000 fallback.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display:
// "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern rather than the
// ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its user-facing message. The
// original error is preserved for logging.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
