// Package setup drives the one-shot template configuration flow:
// collect variable values, substitute placeholders, rename the source
// and test directories, and run the optional git, hook, and
// self-removal steps. Everything after value collection is
// best-effort; failures become console warnings and the flow carries
// on to its summary.
package setup
