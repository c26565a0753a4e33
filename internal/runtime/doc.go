// Package runtime provides the narrow query interface over a container
// engine, plus its Docker Engine API implementation.
//
// The interface is deliberately small: the health report only ever reads.
//
//	Ping(ctx)           — pre-flight reachability check
//	ListRunning(ctx)    — discover targets when none were given
//	Inspect(ctx, id)    — fetch one container descriptor
//	Stats(ctx, id)      — best-effort resource sample
//
// # Descriptors
//
// Inspect returns a Container carrying the closed LifecycleState and
// HealthState enumerations. Engine status strings are parsed permissively:
// anything unrecognized maps to StateUnknown / HealthNone so the classifier
// can match exhaustively.
//
// # Mock Runtime
//
// For testing, use NewMockRuntime() to create a mock implementation that can
// be loaded with descriptors, samples, and injected errors, and used to
// verify which queries were issued.
package runtime
