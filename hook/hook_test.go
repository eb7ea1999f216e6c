package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunsInStage(t *testing.T) {
	h := &Hook{ID: "lint"}
	assert.True(t, h.RunsInStage(StagePreCommit), "no stages means pre-commit")
	assert.False(t, h.RunsInStage(StagePrePush))

	h.Stages = []string{StagePrePush, StageManual}
	assert.False(t, h.RunsInStage(StagePreCommit))
	assert.True(t, h.RunsInStage(StagePrePush))
	assert.True(t, h.RunsInStage(StageManual))
}

func TestSummary(t *testing.T) {
	s := &Summary{Results: []Result{
		{ID: "a", Name: "A", Status: StatusPassed},
		{ID: "b", Name: "B", Status: StatusSkipped},
	}}
	assert.True(t, s.Ok())
	assert.Empty(t, s.Failed())

	s.Results = append(s.Results,
		Result{ID: "c", Name: "C", Status: StatusFailed},
		Result{ID: "d", Name: "D", Status: StatusFixed},
	)
	assert.False(t, s.Ok())
	assert.Equal(t, []string{"c", "d"}, s.Failed())

	out := s.String()
	assert.Contains(t, out, "C: failed")
	assert.Contains(t, out, "D: fixed")
}

func TestResultOk(t *testing.T) {
	for status, ok := range map[Status]bool{
		StatusPassed:  true,
		StatusSkipped: true,
		StatusFailed:  false,
		StatusFixed:   false,
		StatusErrored: false,
	} {
		r := Result{Status: status}
		assert.Equal(t, ok, r.Ok(), "status %s", status)
	}
}
