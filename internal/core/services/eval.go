package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/admitlab/admit-cli/internal/core/domain"
	"github.com/admitlab/admit-cli/internal/core/ports/driven"
	"github.com/admitlab/admit-cli/internal/core/ports/driving"
	"github.com/admitlab/admit-cli/internal/logger"
)

// Ensure EvalService implements the interface.
var _ driving.EvalService = (*EvalService)(nil)

// EvalService measures retrieval quality against the gold question set.
type EvalService struct {
	store     driven.DocumentStore
	retriever driving.AskService
	topK      int
}

// NewEvalService creates the evaluation stage.
func NewEvalService(store driven.DocumentStore, retriever driving.AskService, topK int) *EvalService {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &EvalService{
		store:     store,
		retriever: retriever,
		topK:      topK,
	}
}

// Evaluate retrieves each gold question and scores hit@1 and hit@K.
// A hit is an expected document name appearing, case-insensitively, as a
// substring of "title source" of a retrieved chunk. An empty gold set is
// invalid input rather than a division by zero.
func (s *EvalService) Evaluate(ctx context.Context) (domain.EvalReport, error) {
	logger.Section("Eval")

	gold, err := s.store.LoadGold(ctx)
	if err != nil {
		return domain.EvalReport{}, fmt.Errorf("load gold set: %w", err)
	}
	if len(gold) == 0 {
		return domain.EvalReport{}, fmt.Errorf("%w: gold set is empty", domain.ErrInvalidInput)
	}

	var hit1, hitK int
	for _, ex := range gold {
		hits, err := s.retriever.Retrieve(ctx, ex.Question)
		if err != nil {
			return domain.EvalReport{}, fmt.Errorf("retrieve %q: %w", ex.Question, err)
		}

		expected := strings.ToLower(ex.ExpectedDoc)
		names := make([]string, len(hits))
		for i, hit := range hits {
			names[i] = strings.ToLower(hit.Payload.Title + " " + hit.Payload.Source)
		}

		if len(names) > 0 && strings.Contains(names[0], expected) {
			hit1++
		}
		for _, name := range names {
			if strings.Contains(name, expected) {
				hitK++
				break
			}
		}
		logger.Debug("Question %q: %d hits", ex.Question, len(hits))
	}

	return domain.EvalReport{
		Total:  len(gold),
		K:      s.topK,
		HitAt1: float64(hit1) / float64(len(gold)),
		HitAtK: float64(hitK) / float64(len(gold)),
	}, nil
}
