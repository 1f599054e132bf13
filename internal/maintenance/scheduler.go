package maintenance

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	keepApproved     = 50 // newest approved testimonials retained
	stalePendingDays = 90 // unapproved submissions older than this are dropped
)

// Pruner is the subset of the testimonial repository the nightly job needs.
type Pruner interface {
	PruneApprovedBeyond(ctx context.Context, keep int) (int64, error)
	PruneStalePending(ctx context.Context, days int) (int64, error)
}

type Scheduler struct {
	cron   *cron.Cron
	pruner Pruner
}

func NewScheduler(pruner Pruner) *Scheduler {
	return &Scheduler{cron: cron.New(), pruner: pruner}
}

// Start registers the nightly prune at midnight and launches the cron loop.
func (s *Scheduler) Start() {
	if _, err := s.cron.AddFunc("0 0 * * *", s.runNightly); err != nil {
		log.Printf("[maintenance] register nightly prune: %v", err)
		return
	}
	s.cron.Start()
	log.Println("Maintenance scheduler started (nightly testimonial prune)")
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runNightly() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dropped, err := s.pruner.PruneApprovedBeyond(ctx, keepApproved)
	if err != nil {
		log.Printf("[maintenance] prune approved failed: %v", err)
	} else if dropped > 0 {
		log.Printf("[maintenance] pruned %d approved testimonials beyond newest %d", dropped, keepApproved)
	}

	dropped, err = s.pruner.PruneStalePending(ctx, stalePendingDays)
	if err != nil {
		log.Printf("[maintenance] prune pending failed: %v", err)
	} else if dropped > 0 {
		log.Printf("[maintenance] pruned %d stale pending testimonials", dropped)
	}
}
