package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/restspec/rest/packages/core/sentence"
)

func step(passed bool, op LogicalOp) Step {
	return Step{Sentence: sentence.New("be", "something"), Passed: passed, Op: op}
}

func TestLogicalOpString(t *testing.T) {
	assert.Equal(t, "AND", OpAnd.String())
	assert.Equal(t, "OR", OpOr.String())
	assert.Equal(t, "", OpNone.String())
}

func TestResult(t *testing.T) {
	tests := []struct {
		name  string
		steps []Step
		want  bool
	}{
		{
			name:  "empty record passes",
			steps: nil,
			want:  true,
		},
		{
			name:  "single passing step",
			steps: []Step{step(true, OpNone)},
			want:  true,
		},
		{
			name:  "single failing step",
			steps: []Step{step(false, OpNone)},
			want:  false,
		},
		{
			name:  "and requires both",
			steps: []Step{step(true, OpAnd), step(false, OpNone)},
			want:  false,
		},
		{
			name:  "and with both passing",
			steps: []Step{step(true, OpAnd), step(true, OpNone)},
			want:  true,
		},
		{
			name:  "or passes on second segment",
			steps: []Step{step(false, OpOr), step(true, OpNone)},
			want:  true,
		},
		{
			name:  "or fails when all segments fail",
			steps: []Step{step(false, OpOr), step(false, OpNone)},
			want:  false,
		},
		{
			name: "failing and-run rescued by or",
			steps: []Step{
				step(true, OpAnd),
				step(false, OpOr),
				step(true, OpAnd),
				step(true, OpNone),
			},
			want: true,
		},
		{
			name: "every segment has a failure",
			steps: []Step{
				step(true, OpAnd),
				step(false, OpOr),
				step(false, OpNone),
			},
			want: false,
		},
		{
			name:  "missing operator means and",
			steps: []Step{step(true, OpNone), step(false, OpNone)},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Record{Steps: tt.steps}
			assert.Equal(t, tt.want, r.Result())
		})
	}
}

func TestSegments(t *testing.T) {
	r := &Record{Steps: []Step{
		step(true, OpAnd),
		step(true, OpOr),
		step(false, OpNone),
	}}
	assert.Equal(t, [][]int{{0, 1}, {2}}, r.Segments())

	single := &Record{Steps: []Step{step(true, OpNone)}}
	assert.Equal(t, [][]int{{0}}, single.Segments())
}

func TestSetLastOp(t *testing.T) {
	r := &Record{}
	r.SetLastOp(OpOr) // no-op when empty

	r.Steps = append(r.Steps, step(true, OpNone))
	r.SetLastOp(OpOr)
	assert.Equal(t, OpOr, r.Steps[0].Op)
}

func TestClone(t *testing.T) {
	r := &Record{Expr: "value", Location: "file.go:12", Steps: []Step{step(true, OpNone)}}
	c := r.Clone()

	r.Steps[0].Passed = false
	r.Steps = append(r.Steps, step(false, OpNone))

	assert.Equal(t, "value", c.Expr)
	assert.Equal(t, "file.go:12", c.Location)
	assert.Len(t, c.Steps, 1)
	assert.True(t, c.Steps[0].Passed)
}
