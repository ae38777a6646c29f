// Package cli wires the cobra command tree: add-spa (the generator), list,
// doctor, config, and version.
package cli
