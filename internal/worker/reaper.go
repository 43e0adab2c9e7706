package worker

import (
	"context"
	"sync"
	"time"

	"spinx-engine/internal/service"

	"github.com/rs/zerolog"
)

// ReaperWorker periodically sweeps finished mines sessions out of storage.
type ReaperWorker struct {
	reaper   service.SessionReaper
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	wg       *sync.WaitGroup
}

func NewReaperWorker(reaper service.SessionReaper, interval time.Duration, logger zerolog.Logger) *ReaperWorker {
	return &ReaperWorker{
		reaper:   reaper,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *ReaperWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Session reaper started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Running session sweep")
				if _, err := w.reaper.SweepTerminalSessions(ctx); err != nil {
					w.logger.Error().Err(err).Msg("Failed to sweep sessions")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Session reaper stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Session reaper stopping (context done)")
				return
			}
		}
	}()
}

func (w *ReaperWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}
