// Package services provides the domain services of the delivery core: the
// pooling analyzer, the provider matcher, the fee calculator, the two
// time-slot policies, and the delivery time estimator.
//
// Every service here is pure, synchronous, and stateless: entry points take
// immutable inputs and return values with no shared state, I/O, or blocking
// calls, so concurrent checkout requests are safe by construction. Failure
// states are represented as data (empty opportunity lists, a nil provider,
// an invalid-slot verdict); errors are reserved for boundary validation of
// improperly constructed inputs.
package services
