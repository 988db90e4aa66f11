// Package logging wires slog to the platform's per-service loggers and
// the persisted log store. Each business vertical logs under its own
// service name so operators can filter one stream.
package logging

import (
	"turtu/internal/pkg/errs"
)

// Service identifies the business vertical a log line belongs to.
type Service int

const (
	ServiceUnknown Service = iota
	ServiceWebsite
	ServicePickupDrop
	ServiceFoodDelivery
	ServiceCakeDelivery
)

func serviceNames() map[Service]string {
	return map[Service]string{
		ServiceUnknown:      "unknown",
		ServiceWebsite:      "website-service",
		ServicePickupDrop:   "pickup-drop-service",
		ServiceFoodDelivery: "food-delivery-service",
		ServiceCakeDelivery: "cake-delivery-service",
	}
}

// ServiceFromString parses a service name into a Service.
func ServiceFromString(name string) (Service, error) {
	for service, serviceName := range serviceNames() {
		if serviceName == name && service != ServiceUnknown {
			return service, nil
		}
	}
	return ServiceUnknown, errs.NewValueIsInvalidError("service")
}

// String returns the service's wire name.
func (s Service) String() string {
	name, ok := serviceNames()[s]
	if !ok {
		return serviceNames()[ServiceUnknown]
	}
	return name
}

// Validate reports whether the Service holds a known value.
func (s Service) Validate() error {
	if s <= ServiceUnknown || s > ServiceCakeDelivery {
		return errs.NewValueIsInvalidError("service")
	}
	return nil
}
