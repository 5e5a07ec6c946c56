package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNetwork represents network-related errors
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeParsing represents HTML/feed parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeResolve represents event-page resolution errors
	ErrorTypeResolve ErrorType = "resolve"
	// ErrorTypeDelivery represents chat delivery errors
	ErrorTypeDelivery ErrorType = "delivery"
	// ErrorTypePublisher represents stream publisher errors
	ErrorTypePublisher ErrorType = "publisher"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// PipelineError represents an error raised by one stage of the announce pipeline
type PipelineError struct {
	Type    ErrorType
	Stage   string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Stage, e.Message)
}

// Unwrap returns the underlying error
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// IsRetryable returns true if the error is worth retrying on a later run
func (e *PipelineError) IsRetryable() bool {
	switch e.Type {
	case ErrorTypeNetwork, ErrorTypeDelivery:
		return true
	default:
		return false
	}
}

// New creates a new PipelineError
func New(errType ErrorType, stage, message string, err error) *PipelineError {
	return &PipelineError{
		Type:    errType,
		Stage:   stage,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewNetwork creates a new network error
func NewNetwork(stage, message string, err error) *PipelineError {
	return New(ErrorTypeNetwork, stage, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(stage, message string, err error) *PipelineError {
	return New(ErrorTypeParsing, stage, message, err)
}

// NewResolve creates a new resolution error
func NewResolve(stage, message string, err error) *PipelineError {
	return New(ErrorTypeResolve, stage, message, err)
}

// NewDelivery creates a new delivery error
func NewDelivery(stage, message string, err error) *PipelineError {
	return New(ErrorTypeDelivery, stage, message, err)
}

// NewPublisher creates a new publisher error
func NewPublisher(stage, message string, err error) *PipelineError {
	return New(ErrorTypePublisher, stage, message, err)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *PipelineError {
	return New(ErrorTypeConfiguration, "", message, err)
}
