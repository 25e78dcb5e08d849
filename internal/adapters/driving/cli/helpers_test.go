package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/admitlab/admit-cli/internal/core/domain"
	"github.com/admitlab/admit-cli/internal/core/ports/driven"
)

type stubIngest struct {
	n   int
	err error
}

func (s *stubIngest) Ingest(context.Context) (int, error) { return s.n, s.err }

type stubChunk struct {
	n   int
	err error
}

func (s *stubChunk) Chunk(context.Context) (int, error) { return s.n, s.err }

type stubIndex struct {
	n   int
	err error
}

func (s *stubIndex) Index(context.Context) (int, error) { return s.n, s.err }

type stubAsk struct {
	hits      []domain.QueryHit
	answer    domain.Answer
	err       error
	questions []string
}

func (s *stubAsk) Retrieve(_ context.Context, question string) ([]domain.QueryHit, error) {
	s.questions = append(s.questions, question)
	return s.hits, s.err
}

func (s *stubAsk) Ask(_ context.Context, question string) (domain.Answer, error) {
	s.questions = append(s.questions, question)
	return s.answer, s.err
}

type stubLLM struct {
	pingErr error
}

func (s *stubLLM) Chat(context.Context, []driven.ChatMessage, driven.ChatOptions) (string, error) {
	return "", nil
}

func (s *stubLLM) ModelName() string          { return "stub" }
func (s *stubLLM) Ping(context.Context) error { return s.pingErr }
func (s *stubLLM) Close() error               { return nil }

type stubEval struct {
	report domain.EvalReport
	err    error
}

func (s *stubEval) Evaluate(context.Context) (domain.EvalReport, error) { return s.report, s.err }

type stubTranscripts struct {
	recent   []driven.Exchange
	appended []driven.Exchange
	err      error
}

func (s *stubTranscripts) Append(_ context.Context, ex driven.Exchange) error {
	s.appended = append(s.appended, ex)
	return s.err
}

func (s *stubTranscripts) Recent(context.Context, int) ([]driven.Exchange, error) {
	return s.recent, s.err
}

func (s *stubTranscripts) Close() error { return nil }

// setupTestServices swaps the package services for stubs and marks the
// graph wired so ensureServices never touches real configuration.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	oldIngest := ingestService
	oldChunk := chunkService
	oldIndex := indexService
	oldAsk := askService
	oldEval := evalService
	oldTranscripts := transcriptStore
	oldLLM := llmService
	oldReady := servicesReady
	oldPreflight := pdfPreflight

	ingestService = &stubIngest{n: 3}
	chunkService = &stubChunk{n: 12}
	indexService = &stubIndex{n: 12}
	askService = &stubAsk{}
	evalService = &stubEval{}
	transcriptStore = &stubTranscripts{}
	llmService = nil
	servicesReady = true
	pdfPreflight = func() error { return nil }

	return func() {
		ingestService = oldIngest
		chunkService = oldChunk
		indexService = oldIndex
		askService = oldAsk
		evalService = oldEval
		transcriptStore = oldTranscripts
		llmService = oldLLM
		servicesReady = oldReady
		pdfPreflight = oldPreflight
	}
}

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
