package logging

import (
	"time"
)

// Time executes the given function and logs its execution time at debug level.
//
// Example:
//
//	logging.Time("load config", func() {
//	    // ... load logic here ...
//	})
func Time(name string, fn func()) {
	if !IsEnabled() {
		fn()
		return
	}

	start := time.Now()
	fn()
	logDuration(Get(), name, time.Since(start))
}

// TimeWithResult executes the given function and logs its execution time,
// returning the function's result.
//
// Example:
//
//	writer := logging.TimeWithResult("resolve backend", func() clipboard.Writer {
//	    return clipboard.Auto(os.Stdout)
//	})
func TimeWithResult[T any](name string, fn func() T) T {
	if !IsEnabled() {
		return fn()
	}

	start := time.Now()
	result := fn()
	logDuration(Get(), name, time.Since(start))

	return result
}

func logDuration(l *Logger, name string, duration time.Duration) {
	l.Debug(name,
		"duration", duration.String(),
		"ms", duration.Milliseconds(),
	)
}
