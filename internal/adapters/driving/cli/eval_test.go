package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admitlab/admit-cli/internal/core/domain"
)

func TestEvalCmd_PrintsReport(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	evalService = &stubEval{report: domain.EvalReport{
		Total:  30,
		K:      5,
		HitAt1: 0.7,
		HitAtK: 0.9,
	}}

	out, err := executeCommand(t, "eval")

	require.NoError(t, err)
	assert.Contains(t, out, "Questions: 30")
	assert.Contains(t, out, "hit@1: 0.700")
	assert.Contains(t, out, "hit@5: 0.900")
}

func TestEvalCmd_EmptyGoldSet(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	evalService = &stubEval{err: domain.ErrInvalidInput}

	_, err := executeCommand(t, "eval")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
