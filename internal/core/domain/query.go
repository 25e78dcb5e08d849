package domain

// Payload is the non-vector metadata stored with each indexed point and
// returned on query. Field names match the persisted chunk schema.
type Payload struct {
	DocID     string       `json:"doc_id"`
	Source    string       `json:"source"`
	Title     string       `json:"title"`
	Type      DocumentType `json:"type"`
	ChunkID   int          `json:"chunk_id"`
	StartChar int          `json:"start_char"`
	EndChar   int          `json:"end_char"`
	Text      string       `json:"text"`
}

// QueryHit is one ranked nearest-neighbour result. Hits are ordered by
// descending score; a higher score means a closer match.
type QueryHit struct {
	// Score is the cosine similarity of the hit (vectors are
	// unit-normalised, so dot product equals cosine).
	Score float32 `json:"score"`

	// Payload is the stored chunk metadata.
	Payload Payload `json:"payload"`
}

// Answer is the outcome of asking a question. A refusal is a defined
// control-flow result, not an error: when the retrieved evidence does not
// clear the confidence gate, Grounded is false and Text carries the fixed
// refusal message.
type Answer struct {
	// Text is the generated answer or the refusal message.
	Text string

	// Grounded reports whether the answer was produced from retrieved
	// context. When false, the generator was never invoked.
	Grounded bool

	// Hits are the ranked hits the gate decided on. Present even on
	// refusal so callers can inspect what was retrieved.
	Hits []QueryHit
}
