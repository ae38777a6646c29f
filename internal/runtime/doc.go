// Package runtime wraps the JavaScript toolchain the generator shells out
// to: yarn or npm for project creation and dependency installation, npx for
// one-shot binaries, and node itself for the minimum-version gate.
package runtime
