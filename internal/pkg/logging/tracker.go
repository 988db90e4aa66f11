package logging

import (
	"context"
)

type trackerKey struct{}

// WithTracker stores the request tracker id in the context.
func WithTracker(ctx context.Context, trackerID string) context.Context {
	return context.WithValue(ctx, trackerKey{}, trackerID)
}

// TrackerFromContext retrieves the request tracker id, if one was set.
func TrackerFromContext(ctx context.Context) (string, bool) {
	trackerID, ok := ctx.Value(trackerKey{}).(string)
	return trackerID, ok
}
