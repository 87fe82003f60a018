// Package result defines SQLite result codes and the structured error
// type used throughout this module. It includes:
//   - Code: primary and extended result codes with success predicates
//   - Error: an engine failure carrying the native code and message
//   - ErrCode: code extraction from wrapped errors
package result
