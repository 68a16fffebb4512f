package app

import (
	"context"
	"time"
)

// startRefreshMonitor reloads the sheet in the background so page views hit a warm cache
func (a *App) startRefreshMonitor(interval time.Duration) {
	a.wg.Add(1)
	go a.refreshMonitorLoop(interval)
}

func (a *App) refreshMonitorLoop(interval time.Duration) {
	defer a.wg.Done()
	a.logger.Info("Starting refresh monitor, interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.refresh(interval)
		case <-a.stopChan:
			a.logger.Info("Stopping refresh monitor")
			return
		}
	}
}

// refresh keeps the previous cache contents when the sheet cannot be fetched
func (a *App) refresh(timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	n, err := a.repo.Refresh(ctx)
	if err != nil {
		a.logger.Error("Failed to refresh links:", err)
		return
	}
	a.logger.Debug("Refreshed", n, "links from sheet")
}
