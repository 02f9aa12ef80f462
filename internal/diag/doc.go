// Package diag defines the diagnostic model produced by the scanner.
//
// A Diagnostic marks a single-line range whose text can be converted, lists
// every distinct conversion, and carries the configured classification Code
// so quick-fixes can find it again. Producers emit through a Reporter; Bag
// collects, sorts and deduplicates; Store keeps the current set per open
// document.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt and applying fixes in internal/fix.
package diag
