package worker

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/xavierca1/safe-leads/internal/content"
	"github.com/xavierca1/safe-leads/internal/usecase"
)

const DefaultDripInterval = time.Hour

type Sweeper interface {
	Execute(ctx context.Context, courseType content.CourseType) (usecase.SweepReport, error)
}

// DripWorker runs the drip sweep for every course on a fixed interval.
type DripWorker struct {
	sweeper      Sweeper
	courses      []content.CourseType
	tickInterval time.Duration

	running sync.Mutex
}

func NewDripWorker(sweeper Sweeper, courses []content.CourseType, interval time.Duration) *DripWorker {
	if interval <= 0 {
		interval = DefaultDripInterval
	}
	return &DripWorker{
		sweeper:      sweeper,
		courses:      courses,
		tickInterval: interval,
	}
}

// Start blocks until ctx is cancelled. The first sweep runs immediately.
func (w *DripWorker) Start(ctx context.Context) {
	log.Printf("🕒 [DRIP] worker started (every %s, courses=%v)", w.tickInterval, w.courses)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ [DRIP] worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce sweeps every course. It returns false without sweeping when a
// previous run is still in progress.
func (w *DripWorker) RunOnce(ctx context.Context) bool {
	if !w.running.TryLock() {
		log.Println("[DRIP] previous sweep still running, skipping tick")
		return false
	}
	defer w.running.Unlock()

	for _, course := range w.courses {
		if ctx.Err() != nil {
			return true
		}
		if _, err := w.sweeper.Execute(ctx, course); err != nil {
			log.Printf("❌ [DRIP] %s sweep failed: %v", course, err)
		}
	}
	return true
}
