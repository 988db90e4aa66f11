package logging

import (
	"log/slog"
)

// Registry hands out one logger per business vertical. Every logger
// shares the same handler chain and differs only in its service
// attribute, so a line can always be traced back to its stream.
type Registry struct {
	loggers  map[Service]*slog.Logger
	fallback *slog.Logger
}

// NewRegistry builds per-service loggers on top of handler.
func NewRegistry(handler slog.Handler) *Registry {
	loggers := make(map[Service]*slog.Logger)
	for _, service := range []Service{
		ServiceWebsite,
		ServicePickupDrop,
		ServiceFoodDelivery,
		ServiceCakeDelivery,
	} {
		loggers[service] = slog.New(handler).With(serviceAttrKey, service.String())
	}

	return &Registry{
		loggers:  loggers,
		fallback: slog.New(handler),
	}
}

// For returns the logger for the service. Unknown services get the
// fallback logger without a service attribute.
func (r *Registry) For(service Service) *slog.Logger {
	if logger, ok := r.loggers[service]; ok {
		return logger
	}
	return r.fallback
}
