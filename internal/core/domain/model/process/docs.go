// Package process models the global registry of manufacturing process steps.
//
// A Process is one named step with an integer position. Sequence is the
// ordered, read-only view of the registry that every transition is checked
// against: processes are sorted by position ascending and ties are broken by
// identifier so the order is deterministic. A Sequence is rebuilt from storage
// for each business transaction and never cached.
package process
