// Package db provides connection and prepared-statement handles over the
// SQLite C interface. It includes:
//   - Conn: open/close, one-shot Exec, change counters
//   - Stmt: prepare/step/reset/finalize and the typed value binder
//   - column materialization into tagged value sequences
//   - per-statement status counters
//
// Every operation is a single synchronous forwarding call into the native
// engine; there is no queuing, cancellation, or timeout at this layer. A
// Conn and its statements must not be used concurrently.
package db
