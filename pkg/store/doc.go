// Package store holds the editor's network: the ordered node and edge
// collections, the current selection and the id counter.
//
// State is published as immutable snapshots. Every action builds a new
// snapshot and swaps it in whole, so a reader holding an older snapshot never
// sees it change and observers can detect updates by comparing versions or
// slice identity. Actions never fail: unknown ids make them no-ops.
package store
