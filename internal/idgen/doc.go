// Package idgen issues queue-scoped task identifiers. It lives under
// `internal` because callers should not rely on its exact behaviour or
// API – they should treat identifiers as opaque strings.
package idgen
