package engine

import (
	"context"
	"sync"
	"time"
)

// Scheduler decides the cadence of Engine.Tick. Start must not call tick
// synchronously; the engine invokes Start and Stop while holding its lock.
type Scheduler interface {
	// Start begins calling tick every interval, replacing any earlier schedule
	Start(interval time.Duration, tick func())
	// Stop cancels future ticks. A tick already running is not interrupted,
	// and a tick racing with Stop may still be delivered; the engine drops
	// ticks that belong to an earlier run.
	Stop()
}

// TickerScheduler drives ticks from a single goroutine backed by a
// time.Ticker, so two ticks never run at once
type TickerScheduler struct {
	parent context.Context

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewTickerScheduler returns a scheduler whose goroutines end when ctx is
// cancelled or Stop is called
func NewTickerScheduler(ctx context.Context) *TickerScheduler {
	if ctx == nil {
		ctx = context.Background()
	}
	return &TickerScheduler{parent: ctx}
}

func (s *TickerScheduler) Start(interval time.Duration, tick func()) {
	if interval <= 0 {
		interval = DefaultSpeed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(s.parent)
	s.cancel = cancel

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// select picks at random when both are ready
				if ctx.Err() != nil {
					return
				}
				tick()
			}
		}
	}()
}

func (s *TickerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// ManualScheduler fires ticks only when Fire is called
type ManualScheduler struct {
	mu       sync.Mutex
	tick     func()
	interval time.Duration
	starts   int
}

func (s *ManualScheduler) Start(interval time.Duration, tick func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tick = tick
	s.interval = interval
	s.starts++
}

func (s *ManualScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tick = nil
}

// Fire runs the scheduled tick n times and reports how many actually ran
// (zero once stopped)
func (s *ManualScheduler) Fire(n int) int {
	fired := 0
	for range n {
		s.mu.Lock()
		tick := s.tick
		s.mu.Unlock()
		if tick == nil {
			break
		}
		tick()
		fired++
	}
	return fired
}

// Active reports whether a schedule is in place
func (s *ManualScheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick != nil
}

// Interval returns the interval passed to the most recent Start
func (s *ManualScheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// Starts returns how many times Start has been called
func (s *ManualScheduler) Starts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.starts
}
