// Package workspace resolves bench workspace layout conventions: the root
// directory holding apps/ and sites/, and the per-app paths (frontend
// project dir, hooks.py, www/, package manifests) derived from it.
package workspace
