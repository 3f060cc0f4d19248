// Package testutil provides helpers for tests that operate on an
// injected types.FS, plus a fixture builder for the template tree.
package testutil
