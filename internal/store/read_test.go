package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRun_OrderedBySeq(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	third := createTestRecord("run-1", 3, "int8", "127", "1", "-128")
	first := createTestRecord("run-1", 1, "int", "20", "30", "50")
	second := createTestRecord("run-1", 2, "float32", "20.2", "30.3", "50.5")
	require.NoError(t, s.WriteEvaluation(ctx, third))
	require.NoError(t, s.WriteEvaluation(ctx, first))
	require.NoError(t, s.WriteEvaluation(ctx, second))
	require.NoError(t, s.WriteEvaluation(ctx, createTestRecord("run-2", 1, "int", "1", "1", "2")))

	records, err := s.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, first, records[0])
	assert.Equal(t, second, records[1])
	assert.Equal(t, third, records[2])
	for _, rec := range records {
		assert.True(t, rec.Verify(), "record %d should verify", rec.Seq)
	}
}

func TestReadRun_UnknownRunIsEmpty(t *testing.T) {
	s := createTestStore(t)
	records, err := s.ReadRun(context.Background(), "nope")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestListRuns(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteEvaluation(ctx, createTestRecord("run-b", 1, "int", "1", "1", "2")))
	require.NoError(t, s.WriteEvaluation(ctx, createTestRecord("run-a", 1, "int", "1", "2", "3")))
	require.NoError(t, s.WriteEvaluation(ctx, createTestRecord("run-a", 2, "int", "2", "2", "4")))

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	assert.Equal(t, []RunSummary{
		{RunToken: "run-a", Count: 2, LastSeq: 2},
		{RunToken: "run-b", Count: 1, LastSeq: 1},
	}, runs)
}

func TestListRuns_Empty(t *testing.T) {
	s := createTestStore(t)
	runs, err := s.ListRuns(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)
}
