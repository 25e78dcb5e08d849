package driven

import (
	"context"
	"time"
)

// Exchange is one question/answer pair recorded from a chat session.
type Exchange struct {
	SessionID string
	AskedAt   time.Time
	Question  string
	Answer    string
	Grounded  bool
}

// TranscriptStore persists chat exchanges. It is optional: when nil, the
// chat loop simply does not record history.
type TranscriptStore interface {
	// Append records one exchange.
	Append(ctx context.Context, ex Exchange) error

	// Recent returns up to limit exchanges, newest first.
	Recent(ctx context.Context, limit int) ([]Exchange, error)

	// Close releases the underlying database handle.
	Close() error
}
