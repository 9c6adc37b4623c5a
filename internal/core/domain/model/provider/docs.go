// Package provider models the transport provider catalogue entries used by
// the matching and fee computation pipeline. DeliveryProvider is an aggregate
// root holding capability limits, cost structure, and quality signals; the
// VehicleType value object encodes transport class behavior such as planning
// speeds and express capability.
package provider
