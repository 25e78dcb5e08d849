// Package pdf extracts plain text from PDF files using the pdftotext
// tool from poppler-utils, and removes per-page boilerplate such as
// repeating headers and footers.
package pdf
