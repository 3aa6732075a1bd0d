// Package sl contains helpers for the slog logger. The main purpose is
// to keep structured log fields uniform, for example when attaching
// error information.
package sl

import "log/slog"

// Err returns a slog.Attr with the key "error" and the error's text as
// the value. Convenient for uniform error output in logs.
//
// Example:
//
//	log.Error("failed to do something", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
