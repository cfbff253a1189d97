package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunIdContext(t *testing.T) {
	_, ok := GetRunIdFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetRunIdFromContext(WithRunId(context.Background(), ""))
	assert.False(t, ok)

	runId, ok := GetRunIdFromContext(WithRunId(context.Background(), "batch-42"))
	assert.True(t, ok)
	assert.Equal(t, "batch-42", runId)
}

func TestCommandContext(t *testing.T) {
	command, ok := GetCommandFromContext(WithCommand(context.Background(), "validate"))
	assert.True(t, ok)
	assert.Equal(t, "validate", command)
}
