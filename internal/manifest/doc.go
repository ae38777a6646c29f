// Package manifest reads, patches, and atomically rewrites npm package.json
// files, and validates the result against an embedded JSON Schema. Only the
// scripts mapping is ever modified; everything else round-trips untouched.
package manifest
