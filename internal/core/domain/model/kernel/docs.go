// Package kernel provides the shared domain primitives of the progress tracker.
//
// UUID is the identity value object used by every aggregate (orders, processes,
// progress log entries and workers). The zero value is invalid, so identifiers
// must come from NewUUID or one of the parsing constructors.
package kernel
