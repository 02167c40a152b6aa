package cron

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunOnceRunsEveryJob(t *testing.T) {
	s := NewScheduler()

	var first, second int
	s.Register("first", time.Hour, func(ctx context.Context) error {
		first++
		return nil
	})
	s.Register("second", time.Hour, func(ctx context.Context) error {
		second++
		return nil
	})

	if err := s.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce returned error: %v", err)
	}
	if first != 1 || second != 1 {
		t.Errorf("expected each job to run once, got first=%d second=%d", first, second)
	}

	if err := s.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce returned error: %v", err)
	}
	if first != 2 || second != 2 {
		t.Errorf("expected each job to run twice, got first=%d second=%d", first, second)
	}
}

func TestRunOnceJoinsFailures(t *testing.T) {
	s := NewScheduler()

	broken := errors.New("store unavailable")
	s.Register("broken", time.Hour, func(ctx context.Context) error {
		return broken
	})
	ran := false
	s.Register("healthy", time.Hour, func(ctx context.Context) error {
		ran = true
		return nil
	})

	err := s.RunOnce(context.Background())
	if !errors.Is(err, broken) {
		t.Fatalf("expected wrapped job error, got %v", err)
	}
	if !ran {
		t.Error("a failing job must not stop the jobs after it")
	}
}

func TestStartRunsImmediatelyAndStopWaits(t *testing.T) {
	s := NewScheduler()

	ran := make(chan struct{}, 1)
	s.Register("sweep", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()
}
