package bootstrap

import (
	"context"

	"github.com/osse101/scribble/internal/logger"
	"github.com/osse101/scribble/internal/server"
)

// GracefulShutdown stops the HTTP server, letting in-flight requests finish
// until ctx expires. Errors are logged, not returned.
func GracefulShutdown(ctx context.Context, srv *server.Server) {
	logger.Info(LogMsgShuttingDownServer)

	if err := srv.Stop(ctx); err != nil {
		logger.Error(LogMsgServerForcedShutdown, "error", err)
	}

	logger.Info(LogMsgServerStopped)
}
