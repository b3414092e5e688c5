// Package services provides the shared error classification and context
// annotation helpers used across pipeline stages.
//
// Stage code wraps failures with one of the exported sentinel markers so the
// workflow driver can distinguish retryable per-item trouble from conditions
// that must halt the stage. Context helpers carry the active project, stage,
// and batch through call chains so logging can tag every line consistently.
package services
