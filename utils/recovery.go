package utils

import (
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverFromPanic recovers from panics and logs them
func RecoverFromPanic(log zerolog.Logger, context string) {
	if r := recover(); r != nil {
		log.Error().
			Str("context", context).
			Str("stack", string(debug.Stack())).
			Msgf("panic recovered: %v", r)
	}
}

// SafeGo runs a goroutine with panic recovery
func SafeGo(log zerolog.Logger, context string, fn func()) {
	go func() {
		defer RecoverFromPanic(log, context)
		fn()
	}()
}

// WrapError wraps an error with additional context
func WrapError(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}
