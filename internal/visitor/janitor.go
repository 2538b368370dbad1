package visitor

import (
	"context"
	"time"

	"github.com/balanceu/balanceu/internal/utils"
	log "github.com/sirupsen/logrus"
)

// Janitor periodically sweeps registries of visitors idle for longer than ttl.
type Janitor struct {
	sweepers []Sweeper
	ttl      time.Duration
	interval time.Duration
	clock    utils.Clock
}

func NewJanitor(ttl, interval time.Duration, clock utils.Clock, sweepers ...Sweeper) *Janitor {
	return &Janitor{sweepers: sweepers, ttl: ttl, interval: interval, clock: clock}
}

// SweepOnce runs a single pass and returns the number of removed entries.
func (j *Janitor) SweepOnce() int {
	cutoff := j.clock.Now().Add(-j.ttl)
	removed := 0
	for _, s := range j.sweepers {
		removed += s.Sweep(cutoff)
	}
	return removed
}

// Run blocks until ctx is done.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("visitor janitor stopped")
			return
		case <-ticker.C:
			if removed := j.SweepOnce(); removed > 0 {
				log.Infof("removed %d idle visitor state entries", removed)
			}
		}
	}
}
