package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admitlab/admit-cli/internal/core/domain"
)

// stubRetriever serves canned hits per question.
type stubRetriever struct {
	hits map[string][]domain.QueryHit
	err  error
}

func (s *stubRetriever) Retrieve(_ context.Context, question string) ([]domain.QueryHit, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.hits[question], nil
}

func (s *stubRetriever) Ask(_ context.Context, _ string) (domain.Answer, error) {
	panic("eval must not ask the generator")
}

func TestEvaluate_HitAt1AndHitAtK(t *testing.T) {
	store := &mockDocStore{gold: []domain.GoldExample{
		{Question: "сроки подачи документов", ExpectedDoc: "deadlines"},
		{Question: "стоимость обучения", ExpectedDoc: "fees"},
		{Question: "общежитие", ExpectedDoc: "dorm"},
	}}

	retriever := &stubRetriever{hits: map[string][]domain.QueryHit{
		// Expected doc in the top hit: counts for both metrics.
		"сроки подачи документов": {
			hit(0.9, "Сроки приёма", "https://ba.hse.ru/deadlines", ""),
			hit(0.5, "Другое", "other.pdf", ""),
		},
		// Expected doc only at rank 2: counts for hit@K only.
		"стоимость обучения": {
			hit(0.8, "Другое", "other.pdf", ""),
			hit(0.7, "Стоимость", "fees.pdf", ""),
		},
		// Expected doc nowhere: counts for neither.
		"общежитие": {
			hit(0.6, "Другое", "other.pdf", ""),
		},
	}}

	svc := NewEvalService(store, retriever, 5)
	report, err := svc.Evaluate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 5, report.K)
	assert.InDelta(t, 1.0/3.0, report.HitAt1, 1e-9)
	assert.InDelta(t, 2.0/3.0, report.HitAtK, 1e-9)
}

func TestEvaluate_MatchIsCaseInsensitive(t *testing.T) {
	store := &mockDocStore{gold: []domain.GoldExample{
		{Question: "q", ExpectedDoc: "DEADLINES"},
	}}
	retriever := &stubRetriever{hits: map[string][]domain.QueryHit{
		"q": {hit(0.9, "Сроки", "https://ba.hse.ru/Deadlines", "")},
	}}

	svc := NewEvalService(store, retriever, 5)
	report, err := svc.Evaluate(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 1.0, report.HitAt1, 1e-9)
}

func TestEvaluate_MatchesTitleOrSource(t *testing.T) {
	store := &mockDocStore{gold: []domain.GoldExample{
		{Question: "q", ExpectedDoc: "правила"},
	}}
	// Expected name appears in the title, not the source.
	retriever := &stubRetriever{hits: map[string][]domain.QueryHit{
		"q": {hit(0.9, "Правила приёма 2025", "rules.pdf", "")},
	}}

	svc := NewEvalService(store, retriever, 5)
	report, err := svc.Evaluate(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 1.0, report.HitAt1, 1e-9)
}

func TestEvaluate_EmptyGoldSet(t *testing.T) {
	svc := NewEvalService(&mockDocStore{}, &stubRetriever{}, 5)

	_, err := svc.Evaluate(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEvaluate_RetrieverFailureAborts(t *testing.T) {
	store := &mockDocStore{gold: []domain.GoldExample{{Question: "q", ExpectedDoc: "x"}}}
	retriever := &stubRetriever{err: assert.AnError}

	svc := NewEvalService(store, retriever, 5)
	_, err := svc.Evaluate(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestEvaluate_NoHitsForQuestion(t *testing.T) {
	store := &mockDocStore{gold: []domain.GoldExample{{Question: "q", ExpectedDoc: "x"}}}
	retriever := &stubRetriever{hits: map[string][]domain.QueryHit{}}

	svc := NewEvalService(store, retriever, 5)
	report, err := svc.Evaluate(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 0.0, report.HitAt1, 1e-9)
	assert.InDelta(t, 0.0, report.HitAtK, 1e-9)
}
