// Package worker provides the Worker entity: the actor recorded on progress
// log entries. Only a bcrypt hash of the credential is ever held.
package worker
