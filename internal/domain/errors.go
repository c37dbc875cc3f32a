package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrTreasuryCredentialMissing is returned when a token record has no treasury signing key
	ErrTreasuryCredentialMissing = errors.New("treasury credential missing")

	// ErrAlreadyTokenized is returned when tokenizing a property that already has a token
	ErrAlreadyTokenized = errors.New("property already tokenized")

	// ErrInsufficientSupply is returned when a burn would drive supply below zero
	ErrInsufficientSupply = errors.New("insufficient token supply")

	// ErrNoAuditTopic is returned when no audit topic is configured or linked
	ErrNoAuditTopic = errors.New("no audit topic configured")
)

// ValidationError reports malformed input. Fields maps a field name to its problem.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, ", "))
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, problem string) *ValidationError {
	return &ValidationError{
		Message: "validation failed",
		Fields:  map[string]string{field: problem},
	}
}

// NotFoundError reports a missing entity
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError reports a uniqueness or state conflict
type ConflictError struct {
	Message string
	Err     error
}

func (e *ConflictError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// UpstreamError wraps a failure from an external service (ledger, mirror node, IPFS)
type UpstreamError struct {
	Service string
	Op      string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Service, e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates an upstream error
func NewUpstreamError(service, op string, err error) *UpstreamError {
	return &UpstreamError{Service: service, Op: op, Err: err}
}

// IndeterminateStateError is returned when a sale failed and its FAILED status
// could not be persisted, leaving the sale PENDING. It unwraps to the original
// failure; StatusErr holds the status write error.
type IndeterminateStateError struct {
	SaleID    string
	Cause     error
	StatusErr error
}

func (e *IndeterminateStateError) Error() string {
	return fmt.Sprintf("sale %s left in indeterminate state: %v (status update: %v)", e.SaleID, e.Cause, e.StatusErr)
}

func (e *IndeterminateStateError) Unwrap() error {
	return e.Cause
}
