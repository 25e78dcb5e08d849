// Package services implements the pipeline stages and the question
// answering logic on top of the driven ports. Each service corresponds to
// one CLI command: ingest, chunk, index, ask and eval.
package services
