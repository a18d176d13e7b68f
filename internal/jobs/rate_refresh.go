package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
	portssvc "github.com/tradetrack/tradetrack_backend/internal/core/ports/services"
)

// refreshedPairs are the currency pairs kept warm by the background job,
// matching the denominations accounts can hold.
var refreshedPairs = [][2]string{
	{domain.CurrencyUSD, domain.CurrencyINR},
	{domain.CurrencyINR, domain.CurrencyUSD},
}

// RateRefreshJob periodically forces provider fetches so interactive requests
// rarely hit a stale cache. Failures are logged and retried on the next tick;
// request-path fallbacks cover the gap.
type RateRefreshJob struct {
	currencyService portssvc.CurrencyConverterSvc
	logger          *slog.Logger
	cron            *cron.Cron
}

// NewRateRefreshJob creates the hourly refresh job.
func NewRateRefreshJob(currencyService portssvc.CurrencyConverterSvc, logger *slog.Logger) *RateRefreshJob {
	return &RateRefreshJob{
		currencyService: currencyService,
		logger:          logger,
		cron:            cron.New(),
	}
}

// Start schedules the hourly refresh and runs one refresh immediately so the
// cache is warm before the first request.
func (j *RateRefreshJob) Start(ctx context.Context) error {
	if _, err := j.cron.AddFunc("@hourly", func() {
		j.refreshAll(ctx)
	}); err != nil {
		return err
	}
	j.cron.Start()
	go j.refreshAll(ctx)
	return nil
}

// Stop halts the schedule and waits for an in-flight refresh to finish.
func (j *RateRefreshJob) Stop() {
	stopCtx := j.cron.Stop()
	<-stopCtx.Done()
}

func (j *RateRefreshJob) refreshAll(ctx context.Context) {
	for _, pair := range refreshedPairs {
		if err := j.currencyService.RefreshRate(ctx, pair[0], pair[1]); err != nil {
			j.logger.Warn("Rate refresh failed",
				slog.String("from", pair[0]),
				slog.String("to", pair[1]),
				slog.String("error", err.Error()))
			continue
		}
		j.logger.Debug("Rate refreshed",
			slog.String("from", pair[0]),
			slog.String("to", pair[1]))
	}
}
