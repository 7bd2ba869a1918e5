package app

import (
	"context"

	"go.uber.org/zap"

	"iou-platform.io/iou/internal/pkg/logger"
)

// Start begins background processing. The HTTP server is started by the
// caller; this only brings up the job queue.
func (a *Application) Start(ctx context.Context) error {
	if a.DB.RiverClient != nil {
		if err := a.DB.RiverClient.Start(ctx); err != nil {
			return err
		}
		logger.Info("river job client started")
	}
	return nil
}

// Shutdown stops background processing and releases resources in
// reverse dependency order. Safe to call after a partial Start.
func (a *Application) Shutdown(ctx context.Context) {
	if a.DB.RiverClient != nil {
		if err := a.DB.RiverClient.Stop(ctx); err != nil {
			logger.Warn("river client stop incomplete", zap.Error(err))
		}
	}
	if a.Pools != nil {
		a.Pools.Shutdown()
	}
	a.DB.Close()
	logger.Info("application shut down")
}
