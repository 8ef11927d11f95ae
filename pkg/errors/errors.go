// Package errors provides the typed error domain for the gocatboost binding.
//
// Every failure of the native scoring engine is surfaced as a structured
// error carrying the engine's own diagnostic text verbatim, wrapped with a
// stack trace from cockroachdb/errors. Each error type implements
// zerolog.LogObjectMarshaler so failures can be logged as structured events.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Native engine errors
//
// ===========================================================================

// EngineError represents a failure reported by the native scoring engine.
// Message is the engine's last-error diagnostic, preserved without
// reformatting: it is the most specific information available about why a
// native call failed.
type EngineError struct {
	Op      string // native entry point that returned falsy
	Message string // GetErrorString() text, verbatim
}

func (e *EngineError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gocatboost: %s: native call failed", e.Op)
	}
	return fmt.Sprintf("gocatboost: %s: %s", e.Op, e.Message)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *EngineError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("native_op", e.Op).
		Str("native_message", e.Message).
		Str("type", "EngineError")
}

// NewEngineError creates a new EngineError and attaches a stack trace.
func NewEngineError(op, message string) error {
	err := &EngineError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelLoadError represents a failure to load a serialized model, either
// from a file path or from an in-memory buffer. It wraps the underlying
// EngineError.
type ModelLoadError struct {
	Path string // empty when loading from a buffer
	Err  error
}

func (e *ModelLoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("gocatboost: failed to load model from %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("gocatboost: failed to load model from buffer: %v", e.Err)
}

func (e *ModelLoadError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *ModelLoadError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_path", e.Path).
		AnErr("cause", e.Err).
		Str("type", "ModelLoadError")
}

// NewModelLoadError creates a new ModelLoadError and attaches a stack trace.
func NewModelLoadError(path string, cause error) error {
	err := &ModelLoadError{Path: path, Err: cause}
	return errors.WithStack(err)
}

// PredictionError represents a failure of a scoring call. Same underlying
// payload as a load failure, different call-site context.
type PredictionError struct {
	Op  string // public operation, e.g. "PredictRaw"
	Err error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("gocatboost: %s: %v", e.Op, e.Err)
}

func (e *PredictionError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *PredictionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		AnErr("cause", e.Err).
		Str("type", "PredictionError")
}

// NewPredictionError creates a new PredictionError and attaches a stack trace.
func NewPredictionError(op string, cause error) error {
	err := &PredictionError{Op: op, Err: cause}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Input precondition errors
//
// ===========================================================================

// BatchShapeError reports a feature batch whose shape does not match the
// loaded model's declared feature counts, or whose float and categorical
// tables disagree on row count. It is raised before any native call:
// forwarding a malformed shape to the engine would read past allocated
// memory.
type BatchShapeError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for features within a row
	Row      int // offending row for axis 1, -1 otherwise
}

func (e *BatchShapeError) Error() string {
	if e.Axis == 0 {
		return fmt.Sprintf("gocatboost: %s: row count mismatch between float and categorical features. Expected %d, got %d", e.Op, e.Expected, e.Got)
	}
	return fmt.Sprintf("gocatboost: %s: row %d has %d features, model expects %d", e.Op, e.Row, e.Got, e.Expected)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *BatchShapeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Int("row", e.Row).
		Str("type", "BatchShapeError")
}

// NewBatchShapeError creates a new BatchShapeError and attaches a stack trace.
func NewBatchShapeError(op string, expected, got, axis, row int) error {
	err := &BatchShapeError{Op: op, Expected: expected, Got: got, Axis: axis, Row: row}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches the target error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reports whether err can be assigned to target's type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyBatch is returned when a prediction is requested for zero rows.
	ErrEmptyBatch = New("empty batch")

	// ErrEmptyModelData is returned when loading a model from a zero-length buffer.
	ErrEmptyModelData = New("empty model data")

	// ErrModelClosed is returned when a prediction is requested on a closed model.
	ErrModelClosed = New("model is closed")
)
