package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sweeper is the slice of the engine the poller needs.
type Sweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

const defaultPollInterval = 30 * time.Second

// Poller drives the periodic cycle: every interval it sweeps expired
// reservations and fires the refresh hook so consumers re-resolve their view.
// It owns no correctness logic beyond scheduling; errors are logged and the
// next tick retries naturally.
type Poller struct {
	engine   Sweeper
	logger   *zap.Logger
	interval time.Duration
	onSweep  func()

	ticker *time.Ticker
	stop   chan struct{}
	wg     sync.WaitGroup
	mu     sync.Mutex
}

type PollerOption func(*Poller)

// WithPollInterval overrides the default 30s cycle (tests).
func WithPollInterval(d time.Duration) PollerOption {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithSweepHook registers a callback to run after each completed cycle.
func WithSweepHook(fn func()) PollerOption {
	return func(p *Poller) {
		p.onSweep = fn
	}
}

func NewPoller(engine Sweeper, logger *zap.Logger, opts ...PollerOption) *Poller {
	p := &Poller{
		engine:   engine,
		logger:   logger,
		interval: defaultPollInterval,
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start launches the background loop. The first cycle runs immediately.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ticker != nil {
		return
	}
	p.ticker = time.NewTicker(p.interval)
	p.wg.Add(1)
	go p.run()

	p.logger.Info("poller started", zap.Duration("interval", p.interval))
}

// Stop halts the loop and waits for the in-flight cycle to finish.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ticker == nil {
		return
	}
	p.ticker.Stop()
	close(p.stop)
	p.wg.Wait()
	p.ticker = nil
	p.logger.Info("poller stopped")
}

func (p *Poller) run() {
	defer p.wg.Done()

	p.cycle()
	for {
		select {
		case <-p.ticker.C:
			p.cycle()
		case <-p.stop:
			return
		}
	}
}

func (p *Poller) cycle() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	swept, err := p.engine.SweepExpired(ctx)
	if err != nil {
		p.logger.Warn("sweep failed", zap.Error(err))
	} else if swept > 0 {
		p.logger.Info("swept expired reservations", zap.Int("count", swept))
	}

	if p.onSweep != nil {
		p.onSweep()
	}
}
