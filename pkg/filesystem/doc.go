// Package filesystem provides filesystem implementations for imprint.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem for production use and an afero-backed
// one so tests can run against an in-memory tree.
package filesystem
