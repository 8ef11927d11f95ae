// Package log provides testing utilities for structured logging.
//
// NewTestLogger captures log output in memory so tests can assert on the
// structured records the binding emits without touching process-wide state.

package log

import (
	"bytes"
)

// NewTestLogger creates a logger that writes JSON records to the returned
// buffer. All records at or above the given level are captured.
func NewTestLogger(level Level) (Logger, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	return newZerologLogger(buffer, level), buffer
}
