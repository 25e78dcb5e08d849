// Package web fetches admissions pages over HTTP and converts them to
// plain text documents. Requests are rate limited so crawling a
// university site stays polite.
package web
