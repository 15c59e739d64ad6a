// Package domain defines the core entities for notedex.
//
// This package is the innermost layer of the hexagonal architecture.
// It has NO external dependencies and defines the fundamental types
// and the pure parts of the pipeline:
//
//   - RawRecord: An untyped element of the index document
//   - Item: A normalised, searchable note
//   - Entry: The display projection of an Item
//   - State: The lifecycle of a browsing session
//
// Normalize, Filter and Project are pure functions over these types.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
