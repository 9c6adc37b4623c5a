// Package fulfillment models one checkout order's per-seller fulfillment data:
// seller groups with their items, weights and pickup locations, the buyer's
// delivery destination, and the selected payment method.
//
// All types here are transient and request-scoped. They are built fresh from
// the checkout collaborator's input, validated at the boundary, and never
// persisted or shared between invocations.
package fulfillment
