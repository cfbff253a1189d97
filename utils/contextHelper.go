package utils

import (
	"context"

	"github.com/mmdatafocus/kitchen_totals/appctx"
)

var (
	ContextKeyRunId   = appctx.ContextKeyRunId
	ContextKeyCommand = appctx.ContextKeyCommand
)

func GetRunIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyRunId)
}

func WithRunId(ctx context.Context, runId string) context.Context {
	return appctx.Set(ctx, ContextKeyRunId, runId)
}

func GetCommandFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyCommand)
}

func WithCommand(ctx context.Context, command string) context.Context {
	return appctx.Set(ctx, ContextKeyCommand, command)
}
