package tracker

import (
	"bytes"
	"context"
	"runtime"
	"sync"
	"time"

	"fruitstock-telegram-bot/internal/stock"
	log "github.com/sirupsen/logrus"
)

// Observer receives the result of every tick.
type Observer interface {
	Observe(Result)
}

// ObserverFunc is a function adapter for Observer.
type ObserverFunc func(Result)

func (f ObserverFunc) Observe(r Result) {
	f(r)
}

// Config holds scheduling intervals.
type Config struct {
	PollInterval      time.Duration // stock fetch interval (default: 10s)
	CountdownInterval time.Duration // countdown re-render interval, 0 disables (default: 1m)
}

func DefaultConfig() Config {
	return Config{
		PollInterval:      10 * time.Second,
		CountdownInterval: time.Minute,
	}
}

// Service drives a Tracker on a fixed interval. Only the Run goroutine touches
// the tracker state, so ticks never overlap.
type Service struct {
	tracker   *Tracker
	cfg       Config
	observers []Observer

	mu        sync.RWMutex
	last      Result
	lastAt    time.Time
	cooldowns stock.Cooldowns
}

func NewService(t *Tracker, cfg Config, observers ...Observer) *Service {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}
	return &Service{
		tracker:   t,
		cfg:       cfg,
		observers: observers,
	}
}

// Run ticks immediately, then on every interval until ctx is cancelled.
func (s *Service) Run(ctx context.Context) {
	log.Infof("🚀 Stock tracker started, polling every %s", s.cfg.PollInterval)

	var state State
	state = s.step(ctx, state, s.tracker.Tick)

	poll := time.NewTicker(s.cfg.PollInterval)
	defer poll.Stop()

	var countdown <-chan time.Time
	if s.cfg.CountdownInterval > 0 && s.tracker.profile().TrackCooldown {
		ticker := time.NewTicker(s.cfg.CountdownInterval)
		defer ticker.Stop()
		countdown = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("Stock tracker stopped")
			return
		case <-poll.C:
			state = s.step(ctx, state, s.tracker.Tick)
		case <-countdown:
			state = s.step(ctx, state, s.tracker.Refresh)
		}
	}
}

func (s *Service) step(ctx context.Context, state State, fn func(context.Context, State) (State, Result)) (next State) {
	defer func() {
		if r := recover(); r != nil {
			stackBuf := make([]byte, 1024)
			stackSize := runtime.Stack(stackBuf, false)
			stackTrace := bytes.TrimRight(stackBuf[:stackSize], "\x00")
			log.Errorf("Recovered from panic in stock tracker: %v\nStack trace: %s", r, stackTrace)
			next = state
		}
	}()

	next, res := fn(ctx, state)
	s.setCooldowns(next.Cooldowns)
	s.record(res)
	return next
}

func (s *Service) setCooldowns(c stock.Cooldowns) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cooldowns = copyCooldowns(c)
}

// Cooldowns returns a copy of the restock countdowns held by the Run goroutine.
func (s *Service) Cooldowns() stock.Cooldowns {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCooldowns(s.cooldowns)
}

func copyCooldowns(c stock.Cooldowns) stock.Cooldowns {
	out := make(stock.Cooldowns, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

func (s *Service) record(res Result) {
	if res.Trigger == TriggerPoll || res.Status != Unchanged {
		s.mu.Lock()
		s.last = res
		s.lastAt = time.Now()
		s.mu.Unlock()
	}

	for _, o := range s.observers {
		o.Observe(res)
	}
}

// LastResult returns the most recent tick result and when it happened.
// The zero time means no tick has completed yet.
func (s *Service) LastResult() (Result, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.lastAt
}
