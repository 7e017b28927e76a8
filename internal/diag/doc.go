// Package diag defines the diagnostic model shared by the lexer, the parser,
// and the lint checks.
//
// Diagnostic is the central record: severity, a compact numeric Code with a
// stable string form, a human-oriented message, and the primary source.Span.
// Producers emit through the Reporter interface so that emission stays
// decoupled from storage; BagReporter aggregates diagnostics into a Bag,
// which supports sorting and deduplication for deterministic output.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt; orchestration lives in internal/driver. The Bag itself is
// not safe for concurrent writers — the driver gives every in-flight file its
// own Bag and merges afterwards.
package diag
