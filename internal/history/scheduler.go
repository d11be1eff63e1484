package history

import (
	"time"

	"github.com/robfig/cron/v3"

	"balanco/internal/logger"
	"balanco/internal/metrics"
)

// StartScheduler records the engine's current snapshot on the given cron
// schedule. The returned cron must be stopped on shutdown.
func StartScheduler(spec string, engine *metrics.Engine, svc Servicer) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		snapshot, err := svc.Record(engine.Current(), time.Now())
		if err != nil {
			logger.Get().Errorw("failed to record wealth snapshot", "error", err)
			return
		}
		logger.Get().Infow("recorded wealth snapshot",
			"day", snapshot.Day, "netWorth", snapshot.NetWorth)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
