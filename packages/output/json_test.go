package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restspec/rest/packages/core/chain"
	"github.com/restspec/rest/packages/core/sentence"
)

func TestWriteJSONSummary(t *testing.T) {
	failing := record("answer",
		chain.Step{Sentence: sentence.New("be", "positive"), Passed: true, Op: chain.OpAnd},
		chain.Step{Sentence: sentence.New("be", "even").WithActual(41), Passed: false},
	)

	var buf bytes.Buffer
	require.NoError(t, WriteJSONSummary(&buf, Summary{
		SessionID: "s-1",
		Passed:    2,
		Failed:    1,
		Failures:  []*chain.Record{failing},
	}))

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "s-1", got.Session)
	assert.Equal(t, 2, got.Passed)
	assert.Equal(t, 1, got.Failed)
	require.Len(t, got.Failures, 1)
	assert.Equal(t, "answer", got.Failures[0].Expr)
	assert.Equal(t, "answer is positive AND is even", got.Failures[0].Message)
	require.Len(t, got.Failures[0].Steps, 2)
	assert.Equal(t, "AND", got.Failures[0].Steps[0].Op)
	assert.True(t, got.Failures[0].Steps[0].Passed)
	assert.Equal(t, "41", got.Failures[0].Steps[1].Actual)
}

func TestWriteJSONSummaryNoFailures(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONSummary(&buf, Summary{SessionID: "s-2", Passed: 5}))
	assert.NotContains(t, buf.String(), `"failures"`)
}
