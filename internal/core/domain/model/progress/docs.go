// Package progress holds the progress log entry: one record per attempt of a
// process on an order.
//
// An entry is open while its end time is unset. It is created by StartProcess
// and closed exactly once by CompleteProcess. At most one entry per
// (order, process) pair may be open at any time; storage backs this with a
// partial unique index.
package progress
