package CronJobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"MissionControl/Ledger"
)

// LedgerRefresher periodically pulls the remote ledger so concurrent
// operators converge without a push channel. Refreshes run silent; the
// syncing indicator is reserved for user-triggered reloads.
type LedgerRefresher struct {
	cronScheduler  *cron.Cron
	sync           *Ledger.Synchronizer
	interval       time.Duration
	runImmediately bool
	jobID          cron.EntryID
}

// NewLedgerRefresher creates a refresher with the given poll interval. The
// interval is the staleness window between independent sessions.
func NewLedgerRefresher(sync *Ledger.Synchronizer, interval time.Duration, runImmediately bool) *LedgerRefresher {
	return &LedgerRefresher{
		cronScheduler:  cron.New(),
		sync:           sync,
		interval:       interval,
		runImmediately: runImmediately,
	}
}

// Start schedules the periodic refresh.
func (r *LedgerRefresher) Start() error {
	var err error
	r.jobID, err = r.cronScheduler.AddFunc(fmt.Sprintf("@every %s", r.interval), func() {
		r.runRefresh()
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	r.cronScheduler.Start()
	log.Printf("Ledger refresh scheduler started - polling every %s", r.interval)

	if r.runImmediately {
		r.runRefresh()
	}
	return nil
}

// Stop terminates the refresher.
func (r *LedgerRefresher) Stop() {
	if r.cronScheduler != nil {
		r.cronScheduler.Stop()
		log.Println("Ledger refresh scheduler stopped")
	}
}

func (r *LedgerRefresher) runRefresh() {
	r.sync.Refresh(context.Background(), true)
}
