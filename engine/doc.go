// Package engine is the engine-info facade over the SQLite library's
// global entry points. It includes:
//   - Initialize/Shutdown library lifecycle
//   - Version, VersionNumber, and SourceID identification
//   - once-cached keyword and compile-option sets with membership tests
//   - memory usage counters and the pseudo-random source
//
// The keyword and compile-option caches are populated exactly once per
// process and are immutable thereafter.
package engine
