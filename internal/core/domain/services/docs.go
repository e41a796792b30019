// Package services provides domain services that orchestrate business operations
// across several domain entities of the progress tracker.
//
// The package includes:
//   - TransitionEngine: the process progression state machine that decides
//     whether a process may be started or completed for an order, and keeps
//     the order's current process and status in step with the progress log
//
// The engine is pure: it works on entities already loaded inside a unit of
// work and never touches storage. Persisting its results atomically is the
// job of the calling command handler.
package services
