// Package scaffold generates a Vue + Vite single-page application inside a
// bench app from embedded templates. It powers the "doppio add-spa" command:
// Vite project creation, router and proxy wiring, build script patching,
// and routing rule registration in the app's hooks.py, executed as a strict
// sequence of filesystem-dependent steps.
package scaffold
