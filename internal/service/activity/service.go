package activity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/workforce-app/workforce-backend-go/internal/domain/activity"
)

// Config holds activity sink configuration
type Config struct {
	BatchSize     int           // default: 100
	FlushInterval time.Duration // default: 5 seconds
	WorkerCount   int           // default: 2
	QueueSize     int           // default: 1000
}

type service struct {
	repo   activity.Repository
	config Config

	queue  chan activity.Entry
	wg     sync.WaitGroup
	stopCh chan struct{}
}

// NewActivityService creates a fire-and-forget activity sink with
// background workers. Entries are batched and flushed on size or
// interval; an overflowing queue drops entries rather than blocking
// the operation that produced them.
func NewActivityService(repo activity.Repository, cfg Config) activity.Service {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}

	s := &service{
		repo:   repo,
		config: cfg,
		queue:  make(chan activity.Entry, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker()
	}

	slog.Info("Activity sink started",
		"workers", cfg.WorkerCount, "batch_size", cfg.BatchSize, "flush_interval", cfg.FlushInterval)

	return s
}

func (s *service) Record(entry activity.Entry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	select {
	case s.queue <- entry:
	default:
		// Queue full: drop rather than block the caller.
		slog.Warn("Activity entry dropped, queue full", "action", entry.Action)
	}
}

func (s *service) List(ctx context.Context, companyID string, limit int) ([]activity.Entry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.repo.ListByCompanyID(ctx, companyID, limit)
}

func (s *service) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

// worker drains the queue into batched writes.
func (s *service) worker() {
	defer s.wg.Done()

	batch := make([]activity.Entry, 0, s.config.BatchSize)
	ticker := time.NewTicker(s.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s.repo.CreateBatch(ctx, batch); err != nil {
			// Write failures are swallowed: the audit trail must never
			// fail the operation it describes.
			slog.Error("Activity batch write failed", "count", len(batch), "error", err)
		}
		cancel()
		batch = batch[:0]
	}

	for {
		select {
		case entry := <-s.queue:
			batch = append(batch, entry)
			if len(batch) >= s.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stopCh:
			// Drain what is left before exiting.
			for {
				select {
				case entry := <-s.queue:
					batch = append(batch, entry)
				default:
					flush()
					return
				}
			}
		}
	}
}
