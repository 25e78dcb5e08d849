package domain

// DocumentType identifies how a document entered the corpus.
type DocumentType string

const (
	// DocumentTypePDF marks a document parsed from a local PDF file.
	DocumentTypePDF DocumentType = "pdf"

	// DocumentTypeHTML marks a document fetched from a web page.
	DocumentTypeHTML DocumentType = "html"

	// DocumentTypeUnknown marks a document of unrecognised origin.
	DocumentTypeUnknown DocumentType = "unknown"
)

// ParseDocumentType maps a stored type string back to a DocumentType.
// Unrecognised values become DocumentTypeUnknown rather than an error,
// matching the lenient read side of the persisted corpus files.
func ParseDocumentType(s string) DocumentType {
	switch s {
	case string(DocumentTypePDF):
		return DocumentTypePDF
	case string(DocumentTypeHTML):
		return DocumentTypeHTML
	default:
		return DocumentTypeUnknown
	}
}

// Document represents one parsed source in the admissions corpus.
// It is produced once by ingestion and immutable thereafter.
type Document struct {
	// ID is unique across the corpus (e.g. "pdf_0", "url_3").
	ID string `json:"id"`

	// Source is the original location: a file path or URL.
	Source string `json:"source"`

	// Title is the human-readable title (filename or page title).
	Title string `json:"title"`

	// Type records the document origin.
	Type DocumentType `json:"type"`

	// Text is the full normalised text content.
	Text string `json:"text"`
}

// Chunk is the unit of retrieval: a bounded span of a document's text
// plus the overlap carried from the previous chunk.
//
// StartChar and EndChar are rune offsets into the document text where the
// chunk buffer notionally begins and ends. Once overlap text has been
// prepended, EndChar drifts from the true source offset because it is
// derived from the running buffer length, not re-scanned from the source.
// That approximation is deliberate and kept stable across runs.
type Chunk struct {
	// ChunkID is strictly increasing from 0, global across all documents
	// in a run. A re-run replaces the whole set and restarts numbering.
	ChunkID int `json:"chunk_id"`

	// DocID references Document.ID.
	DocID string `json:"doc_id"`

	// Source, Title and Type are copied from the parent document so a
	// retrieved chunk is self-describing.
	Source string       `json:"source"`
	Title  string       `json:"title"`
	Type   DocumentType `json:"type"`

	// Text is the chunk content, segments joined by newlines.
	Text string `json:"text"`

	// StartChar and EndChar are the offsets described above.
	StartChar int `json:"start_char"`
	EndChar   int `json:"end_char"`
}

// Payload returns the metadata stored alongside the chunk's vector in the
// index. It mirrors the chunk record field for field.
func (c Chunk) Payload() Payload {
	return Payload{
		DocID:     c.DocID,
		Source:    c.Source,
		Title:     c.Title,
		Type:      c.Type,
		ChunkID:   c.ChunkID,
		StartChar: c.StartChar,
		EndChar:   c.EndChar,
		Text:      c.Text,
	}
}
