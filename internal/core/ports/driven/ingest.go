package driven

import "context"

// PDFExtractor turns a local PDF file into normalised plain text.
// Implementations run an external extraction tool and strip repeating
// page headers and footers before returning the joined text.
type PDFExtractor interface {
	// Extract returns the full text of the PDF at path.
	Extract(ctx context.Context, path string) (string, error)
}

// PageFetcher retrieves a web page and reduces it to a title and its
// normalised text content.
type PageFetcher interface {
	// Fetch downloads the page at url. A failed fetch is fatal for the
	// ingest run; there is no retry or partial-document fallback.
	Fetch(ctx context.Context, url string) (title, text string, err error)
}

// CommandRunner executes external commands.
// This abstraction allows tests to mock subprocess execution.
type CommandRunner interface {
	// Run executes the named command with arguments and returns stdout.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
