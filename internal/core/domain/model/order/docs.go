// Package order provides the Order aggregate of the progress tracker.
//
// An Order is a unit of production work that moves through the global
// process sequence. Its current process pointer and status are a cached
// projection of the progress log: they are only changed by the transition
// engine, in the same transaction as the log write they follow from.
//
// Key business rules:
//   - order_no is required and unique (uniqueness is enforced by storage)
//   - quantity is never negative
//   - a new order points at the first registered process and is NotStarted
//   - status follows NotStarted -> InProgress -> Completed, and Completed is a
//     projection rather than a lock: starting a process again is allowed
package order
