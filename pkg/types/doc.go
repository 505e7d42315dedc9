// Package types holds the small set of interfaces shared across scfldr
// packages, most notably the FS abstraction that lets the materializer
// run against the real filesystem in production and an in-memory one in
// tests.
package types
