// Package domain defines the core business entities for the admissions
// assistant.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A parsed source document (PDF or web page)
//   - Chunk: A bounded, offset-tracked span of document text used for retrieval
//   - QueryHit: A scored nearest-neighbour match from the vector store
//   - Answer: The grounded-or-refused outcome of a question
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
