// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import "go.uber.org/zap"

// Logger defines the interface that is used to keep a record of all events
// that happen to the program.
type Logger interface {
	// Fatal messages are written when the program is in an unrecoverable
	// state.
	Fatal(msg string, fields ...zap.Field)

	// Error messages are written when the program enters a state that it
	// wasn't designed to handle.
	Error(msg string, fields ...zap.Field)

	// Warn messages are written when something unexpected happened, but the
	// program can continue operating.
	Warn(msg string, fields ...zap.Field)

	// Info messages describe the normal operation of the program.
	Info(msg string, fields ...zap.Field)

	// Debug messages are for information that is useful when diagnosing
	// issues, too verbose for normal operation.
	Debug(msg string, fields ...zap.Field)

	// Stop flushes and closes the logger's output.
	Stop()
}
