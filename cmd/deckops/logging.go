package main

import (
	"context"
	"time"

	"github.com/deckops/deckops/internal/logging"
)

// withCmdRunLogger implements the span pattern for CLI command logging: a
// start line when the operation begins and a success or failure line when
// it completes.
//
// Usage:
//
//	ctx, cleanup := withCmdRunLogger(ctx, "layout.save", name)
//	defer func() { cleanup(err) }()
//
// Log message format:
// - Start:   CMD:<operation>/S
// - Success: CMD:<operation>/EOK
// - Failure: CMD:<operation>/EFAIL
//
// All lines use INFO level; the runId comes from the context logger set in
// PersistentPreRunE.
func withCmdRunLogger(ctx context.Context, operation, resourceID string) (context.Context, func(err error)) {
	startAt := time.Now()

	logger := logging.FromContext(ctx).With("resourceId", resourceID)
	ctx = logging.WithLogger(ctx, logger)

	logger.Info(ctx, "CMD:"+operation+"/S")

	cleanup := func(err error) {
		elapsed := time.Since(startAt).Seconds()
		if err == nil {
			logger.Info(ctx, "CMD:"+operation+"/EOK", "elapsed", elapsed)
			return
		}
		errStr := err.Error()
		if len(errStr) > 64 {
			errStr = errStr[:64] + "..."
		}
		logger.Info(ctx, "CMD:"+operation+"/EFAIL", "err", errStr, "elapsed", elapsed)
	}

	return ctx, cleanup
}
