package logging

import (
	"context"
	"log/slog"
	"strings"

	"turtu/internal/core/ports"
)

// serviceAttrKey is the slog attribute carrying the service name.
const serviceAttrKey = "service"

// StoreHandler is a slog.Handler that persists records through a
// ports.LogRepository on top of forwarding them to an inner handler.
// Persistence failures are swallowed; logging must never take the
// request down with it.
type StoreHandler struct {
	inner slog.Handler
	store ports.LogRepository
	attrs []slog.Attr
}

// NewStoreHandler wraps inner with persistence to store.
func NewStoreHandler(inner slog.Handler, store ports.LogRepository) *StoreHandler {
	return &StoreHandler{
		inner: inner,
		store: store,
	}
}

// Enabled defers to the inner handler.
func (h *StoreHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle forwards the record to the inner handler and persists it.
func (h *StoreHandler) Handle(ctx context.Context, record slog.Record) error {
	err := h.inner.Handle(ctx, record)

	trackerID, _ := TrackerFromContext(ctx)

	entry := ports.LogEntry{
		Time:      record.Time,
		Level:     record.Level.String(),
		Service:   h.serviceName(record),
		TrackerID: trackerID,
		Message:   h.renderMessage(record),
	}

	_ = h.store.Add(ctx, entry)
	return err
}

// WithAttrs returns a handler carrying the additional attributes.
func (h *StoreHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)

	return &StoreHandler{
		inner: h.inner.WithAttrs(attrs),
		store: h.store,
		attrs: merged,
	}
}

// WithGroup returns a handler forwarding the group to the inner handler.
// Groups are not reflected in the persisted message.
func (h *StoreHandler) WithGroup(name string) slog.Handler {
	return &StoreHandler{
		inner: h.inner.WithGroup(name),
		store: h.store,
		attrs: h.attrs,
	}
}

func (h *StoreHandler) serviceName(record slog.Record) string {
	name := ""
	for _, attr := range h.attrs {
		if attr.Key == serviceAttrKey {
			name = attr.Value.String()
		}
	}
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == serviceAttrKey {
			name = attr.Value.String()
		}
		return true
	})
	return name
}

func (h *StoreHandler) renderMessage(record slog.Record) string {
	var b strings.Builder
	b.WriteString(record.Message)

	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == serviceAttrKey {
			return true
		}
		b.WriteString(" ")
		b.WriteString(attr.Key)
		b.WriteString("=")
		b.WriteString(attr.Value.String())
		return true
	})

	return b.String()
}
