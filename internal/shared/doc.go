// Package shared holds small helpers used across packages.
//
// The testutil subpackage provides a log-capturing slog handler for
// asserting on what a component logged. Nothing in here may depend on
// the domain packages.
package shared
