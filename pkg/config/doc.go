// Package config handles run configuration for imprint.
// It layers embedded defaults, the project manifest, an optional
// answers file, IMPRINT_* environment variables, and flag overrides.
package config
