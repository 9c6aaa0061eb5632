package sim

import (
	"context"
	"time"

	"github.com/padbot/padbot/internal/core/observability/log"
)

// Loop drives a World at the configured tick rate with wall-clock delta
// times. On a device the render callback takes this role; the loop exists
// for headless runs and the demo server.
type Loop struct {
	world *World
	rate  time.Duration
	log   log.Log
}

// NewLoop creates a loop ticking the world at cfg.TickRate.
func NewLoop(world *World, cfg Config, logger log.Log) *Loop {
	return &Loop{
		world: world,
		rate:  time.Second / time.Duration(cfg.TickRate),
		log:   logger,
	}
}

// Run ticks the world until the context is cancelled. It always returns
// ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.rate)
	defer ticker.Stop()

	if l.log != nil {
		l.log.Info("simulation loop started", log.Duration("tick", l.rate))
	}

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			if l.log != nil {
				l.log.Info("simulation loop stopped")
			}
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			l.world.Tick(dt)
		}
	}
}
