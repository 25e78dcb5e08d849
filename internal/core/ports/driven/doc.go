// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the pipeline stages to function:
//
//   - DocumentStore: persisted corpus files (documents, chunks, gold set)
//   - EmbeddingService: text to unit-normalised vector
//   - VectorStore: nearest-neighbour index keyed by chunk id
//
// # Stage-specific Interfaces
//
//   - LLMService: answer generation; only the chat path needs it
//   - PDFExtractor / PageFetcher: ingestion-side document acquisition
//   - CommandRunner: subprocess execution for external extraction tools
//   - TranscriptStore: chat session persistence (optional, may be nil)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
