package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeEmptyInput        = 4001
	CodeInvalidFormat     = 4002
	CodeOutOfRange        = 4003
	CodeNegativeResult    = 4004
	CodeTypeMismatch      = 4005
	CodeInvalidName       = 4006
	CodeInvalidRequest    = 4007
	CodeSprinterNotFound  = 4040
	CodeNoSprinters       = 4041
	CodeDuplicateSprinter = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrEmptyInput is returned when a parser receives empty text
	ErrEmptyInput = errors.New("input text is empty")

	// ErrInvalidFormat is returned when text does not match the expected grammar
	ErrInvalidFormat = errors.New("invalid format")

	// ErrOutOfRange is returned when a constructor receives a field outside its bounds
	ErrOutOfRange = errors.New("value out of range")

	// ErrNegativeResult is returned when a duration subtraction would go below zero
	ErrNegativeResult = errors.New("result would be negative")

	// ErrTypeMismatch is returned when a value is compared against an incompatible type
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidName is returned when a sprinter first or last name is blank
	ErrInvalidName = errors.New("name cannot be empty")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSprinterNotFound is returned when no sprinter matches the given name
	ErrSprinterNotFound = errors.New("sprinter not found")

	// ErrNoSprinters is returned when an operation needs at least one sprinter
	ErrNoSprinters = errors.New("no sprinters registered")

	// ErrDuplicateSprinter is returned when a sprinter with the same name already exists
	ErrDuplicateSprinter = errors.New("sprinter already exists")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return CodeEmptyInput
	case errors.Is(err, ErrInvalidFormat):
		return CodeInvalidFormat
	case errors.Is(err, ErrOutOfRange):
		return CodeOutOfRange
	case errors.Is(err, ErrNegativeResult):
		return CodeNegativeResult
	case errors.Is(err, ErrTypeMismatch):
		return CodeTypeMismatch
	case errors.Is(err, ErrInvalidName):
		return CodeInvalidName
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrSprinterNotFound):
		return CodeSprinterNotFound
	case errors.Is(err, ErrNoSprinters):
		return CodeNoSprinters
	case errors.Is(err, ErrDuplicateSprinter):
		return CodeDuplicateSprinter
	default:
		return CodeInternalServer
	}
}

// ParseError describes text rejected by the Time or Duration parser.
// Err is either ErrEmptyInput or ErrInvalidFormat.
type ParseError struct {
	Kind   string // "time" or "duration"
	Input  string
	Reason string
	Err    error
}

// Error implements the error interface for ParseError
func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("cannot parse %s %q: %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("cannot parse %s %q: %v: %s", e.Kind, e.Input, e.Err, e.Reason)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ParseError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "parse_error",
		"kind":       e.Kind,
		"input":      e.Input,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewEmptyInputError creates a parse error for empty text
func NewEmptyInputError(kind string) error {
	return &ParseError{Kind: kind, Err: ErrEmptyInput}
}

// NewFormatError creates a parse error for text that does not match the grammar
func NewFormatError(kind, input, reason string) error {
	return &ParseError{Kind: kind, Input: input, Reason: reason, Err: ErrInvalidFormat}
}

// RangeError provides detailed information about a constructor field outside its bounds.
// Max is negative when the field has no upper bound.
type RangeError struct {
	Field string
	Value int64
	Min   int64
	Max   int64
}

// Error implements the error interface
func (e *RangeError) Error() string {
	if e.Max < 0 {
		return fmt.Sprintf("%s %d out of range: must be at least %d", e.Field, e.Value, e.Min)
	}
	return fmt.Sprintf("%s %d out of range: must be between %d and %d", e.Field, e.Value, e.Min, e.Max)
}

// Is checks if the target error is an ErrOutOfRange
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// LogFields returns a map of fields for structured logging
func (e *RangeError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "range_error",
		"field":      e.Field,
		"value":      e.Value,
		"min":        e.Min,
		"max":        e.Max,
		"error_code": CodeOutOfRange,
	}
}

// NewRangeError creates a new detailed range error
func NewRangeError(field string, value, minValue, maxValue int64) error {
	return &RangeError{
		Field: field,
		Value: value,
		Min:   minValue,
		Max:   maxValue,
	}
}

// NegativeResultError provides detailed error information for a subtraction below zero
type NegativeResultError struct {
	Left  string
	Right string
}

// Error implements the error interface
func (e *NegativeResultError) Error() string {
	return fmt.Sprintf("cannot subtract %s from %s: result would be negative", e.Right, e.Left)
}

// Is checks if the target error is an ErrNegativeResult
func (e *NegativeResultError) Is(target error) bool {
	return target == ErrNegativeResult
}

// LogFields returns a map of fields for structured logging
func (e *NegativeResultError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "negative_result",
		"left":       e.Left,
		"right":      e.Right,
		"error_code": CodeNegativeResult,
	}
}

// NewNegativeResultError creates a new detailed negative result error
func NewNegativeResultError(left, right string) error {
	return &NegativeResultError{
		Left:  left,
		Right: right,
	}
}

// TypeMismatchError reports a comparison against a value of another type
type TypeMismatchError struct {
	Expected string
	Actual   string
}

// Error implements the error interface
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot compare %s with %s", e.Expected, e.Actual)
}

// Is checks if the target error is an ErrTypeMismatch
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// LogFields returns a map of fields for structured logging
func (e *TypeMismatchError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "type_mismatch",
		"expected":   e.Expected,
		"actual":     e.Actual,
		"error_code": CodeTypeMismatch,
	}
}

// NewTypeMismatchError creates a new type mismatch error; actual is rendered with %T
func NewTypeMismatchError(expected string, actual any) error {
	return &TypeMismatchError{
		Expected: expected,
		Actual:   fmt.Sprintf("%T", actual),
	}
}

// SprinterError wraps a race book failure with the sprinter it concerns
type SprinterError struct {
	FirstName string
	LastName  string
	Operation string
	Err       error
}

// Error implements the error interface for SprinterError
func (e *SprinterError) Error() string {
	return fmt.Sprintf("%s failed for sprinter %s %s: %v", e.Operation, e.FirstName, e.LastName, e.Err)
}

// Unwrap returns the underlying error
func (e *SprinterError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SprinterError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "sprinter_error",
		"first_name": e.FirstName,
		"last_name":  e.LastName,
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewSprinterError creates a detailed sprinter error
func NewSprinterError(firstName, lastName, operation string, err error) error {
	return &SprinterError{
		FirstName: firstName,
		LastName:  lastName,
		Operation: operation,
		Err:       err,
	}
}

// LogFields extracts structured logging fields from err when it carries any
func LogFields(err error) map[string]any {
	var carrier interface{ LogFields() map[string]any }
	if errors.As(err, &carrier) {
		return carrier.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}

// IsParseError checks if the error is an empty-input or format failure
func IsParseError(err error) bool {
	return errors.Is(err, ErrEmptyInput) || errors.Is(err, ErrInvalidFormat)
}

// IsNegativeResultError checks if the error is a negative subtraction result
func IsNegativeResultError(err error) bool {
	return errors.Is(err, ErrNegativeResult)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrSprinterNotFound) ||
		errors.Is(err, ErrNoSprinters)
}

// IsValidationError checks if the error was caused by bad caller input
func IsValidationError(err error) bool {
	return IsParseError(err) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrTypeMismatch) ||
		errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrInvalidRequest)
}
