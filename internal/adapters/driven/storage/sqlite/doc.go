// Package sqlite stores chat transcripts in a local SQLite database so
// past sessions can be reviewed after the fact.
package sqlite
