// Package normalisers provides text extraction for the corpus document
// formats. Each subpackage knows how to reduce one format (PDF, HTML) to
// plain text; this package holds the whitespace normalisation they share.
package normalisers
