// Package sl holds small helpers for building slog attributes.
package sl

import "log/slog"

// Err wraps an error as an "error" attribute.
//
//	slog.Error("failed to enroll member", sl.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{Key: "error", Value: slog.StringValue("<nil>")}
	}
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Op tags a log record with the operation that produced it.
func Op(op string) slog.Attr {
	return slog.String("op", op)
}
