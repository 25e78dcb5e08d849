package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admitlab/admit-cli/internal/core/ports/driven"
)

func TestTranscriptCmd_ListsExchanges(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	transcriptStore = &stubTranscripts{recent: []driven.Exchange{
		{
			SessionID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			AskedAt:   time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC),
			Question:  "когда дедлайн",
			Answer:    "Дедлайн 25 июля.",
			Grounded:  true,
		},
		{
			SessionID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			AskedAt:   time.Date(2026, 8, 30, 14, 4, 0, 0, time.UTC),
			Question:  "про погоду",
			Answer:    "В источниках нет точного ответа.",
			Grounded:  false,
		},
	}}

	out, err := executeCommand(t, "transcript")

	require.NoError(t, err)
	assert.Contains(t, out, "[6ba7b810]")
	assert.Contains(t, out, "Q: когда дедлайн")
	assert.Contains(t, out, "A: Дедлайн 25 июля.")
	assert.Contains(t, out, "× [6ba7b810]")
}

func TestTranscriptCmd_Empty(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	transcriptStore = &stubTranscripts{}

	out, err := executeCommand(t, "transcript")

	require.NoError(t, err)
	assert.Contains(t, out, "No exchanges recorded.")
}

func TestTranscriptCmd_NotConfigured(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	transcriptStore = nil

	_, err := executeCommand(t, "transcript")

	require.Error(t, err)
	assert.ErrorIs(t, err, errNotConfigured)
}

func TestTranscriptCmd_HasLimitFlag(t *testing.T) {
	flag := transcriptCmd.Flags().Lookup("limit")
	require.NotNil(t, flag)
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "20", flag.DefValue)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "6ba7b810", shortID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.Equal(t, "abc", shortID("abc"))
}
