package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Key records a cache key under the key "key".
func Key(k any) slog.Attr {
	return slog.Any("key", k)
}

// Reason records why an entry left the cache under the key "reason".
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// Capacity records a configured entry ceiling under the key "capacity".
func Capacity(n int) slog.Attr {
	return slog.Int("capacity", n)
}

// Size records a resident entry count under the key "size".
func Size(n int) slog.Attr {
	return slog.Int("size", n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
