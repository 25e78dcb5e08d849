// Package html converts fetched HTML pages into plain text suitable for
// segmenting and chunking.
package html
