// Package checkpoint persists pipeline progress so interrupted runs resume
// exactly where they stopped.
//
// Each project owns one checkpoint document: the run parameters frozen at
// configuration time (mode, data kind, CRS, offsets, batch size), the
// current stage tag with its cursor, the frozen elevation floor, and a
// last-write timestamp. Documents live in a SQLite database under the
// projects root; schema changes go through embedded, versioned migrations.
//
// Presence of a document means the project is resumable; absence means it
// was never started or finished cleanly. The store has no merge semantics:
// Save overwrites the whole document with a fresh timestamp.
package checkpoint
