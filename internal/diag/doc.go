// Package diag defines the diagnostic model shared by the lexer, parser and
// driver.
//
// Diagnostic is the central record: Severity, a compact numeric Code with a
// stable string form (LEX1001, SYN2001, ...), a short Message, the Primary
// span and optional Notes pointing at related source.
//
// Phases never format or print diagnostics. They emit through a Reporter,
// usually a BagReporter feeding a Bag owned by the driver. Rendering lives in
// internal/diagfmt.
//
// Keep the model deterministic: Bag.Sort and Bag.Dedup give the CLI and the
// disk cache a stable order independent of emission timing.
package diag
