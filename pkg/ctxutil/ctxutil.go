// Package ctxutil carries request-scoped values through context.Context and
// into log records.
package ctxutil

import (
	"context"
	"log/slog"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

// RequestIDLogKey is the log attribute key for the request ID.
const RequestIDLogKey = "request_id"

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestIDAttr returns the request ID of ctx as a log attribute.
func RequestIDAttr(ctx context.Context) slog.Attr {
	return slog.String(RequestIDLogKey, RequestIDFromCtx(ctx))
}

// LogHandler wraps h so records logged with a context carrying a request ID
// get a request_id attribute, unless the record already has one.
func LogHandler(h slog.Handler) slog.Handler {
	return requestIDHandler{next: h}
}

type requestIDHandler struct {
	next slog.Handler
}

func (h requestIDHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h requestIDHandler) Handle(ctx context.Context, r slog.Record) error {
	id := RequestIDFromCtx(ctx)
	if id == "" || hasAttr(r, RequestIDLogKey) {
		return h.next.Handle(ctx, r)
	}

	r = r.Clone()
	r.AddAttrs(slog.String(RequestIDLogKey, id))
	return h.next.Handle(ctx, r)
}

func (h requestIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return requestIDHandler{next: h.next.WithAttrs(attrs)}
}

func (h requestIDHandler) WithGroup(name string) slog.Handler {
	return requestIDHandler{next: h.next.WithGroup(name)}
}

func hasAttr(r slog.Record, key string) bool {
	found := false
	r.Attrs(func(a slog.Attr) bool {
		found = a.Key == key
		return !found
	})
	return found
}
