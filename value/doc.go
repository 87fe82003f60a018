// Package value defines the tagged value union exchanged with the SQLite
// engine: exactly one of integer, real, text, blob, or NULL. It is
// produced by column materialization in the stmt package and consumed by
// the typed value binder there.
package value
