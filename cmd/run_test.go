package cmd

import (
	"testing"

	"github.com/gatetools/gate/errors"
	"github.com/gatetools/gate/hook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryErrorSingleFailure(t *testing.T) {
	summary := &hook.Summary{Results: []hook.Result{
		{ID: "check-json", Status: hook.StatusPassed},
		{ID: "go-fmt", Status: hook.StatusFailed, ExitCode: 2},
	}}

	err := summaryError(summary)
	require.Error(t, err)

	gateErr, ok := err.(*errors.GateError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeHookFailed, gateErr.Code)
	assert.Equal(t, "go-fmt", gateErr.Details["hook"])
	assert.Equal(t, 2, gateErr.Details["exitCode"])
}

func TestSummaryErrorMultipleFailures(t *testing.T) {
	summary := &hook.Summary{Results: []hook.Result{
		{ID: "trailing-whitespace", Status: hook.StatusFixed, ExitCode: 1},
		{ID: "check-yaml", Status: hook.StatusFailed, ExitCode: 1},
	}}

	err := summaryError(summary)
	require.Error(t, err)

	gateErr, ok := err.(*errors.GateError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeHookFailed, gateErr.Code)
	assert.Equal(t, []string{"trailing-whitespace", "check-yaml"}, gateErr.Details["failed"])
}
