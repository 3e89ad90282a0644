// Package outbox delivers outgoing messages on a pool of goroutines with linear backoff between attempts.
package outbox

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrNotRunning is returned by Submit before Start or after Stop.
	ErrNotRunning = errors.New("outbox not running")
	// ErrBacklogFull is returned when every backlog slot is taken.
	ErrBacklogFull = errors.New("outbox backlog full")
)

// Envelope wraps a message with its delivery bookkeeping.
type Envelope[M any] struct {
	ID       string
	Message  M
	Attempt  int
	QueuedAt time.Time
}

// SendFunc delivers one envelope. A returned error schedules a retry.
type SendFunc[M any] func(context.Context, Envelope[M]) error

// GiveUpFunc is told about envelopes that will not be retried again.
type GiveUpFunc[M any] func(context.Context, Envelope[M], error)

// Config sizes the dispatcher.
type Config[M any] struct {
	Workers    int
	Backlog    int
	MaxRetries int
	// Backoff is multiplied by the attempt number before each retry.
	Backoff time.Duration
	GiveUp  GiveUpFunc[M]
	Logger  *zap.Logger
}

// Dispatcher fans envelopes out to workers that call send.
type Dispatcher[M any] struct {
	name   string
	send   SendFunc[M]
	giveUp GiveUpFunc[M]

	workers    int
	maxRetries int
	backoff    time.Duration
	logger     *zap.Logger

	backlog chan Envelope[M]
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// New builds a stopped dispatcher.
func New[M any](name string, send SendFunc[M], cfg Config[M]) *Dispatcher[M] {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Backlog <= 0 {
		cfg.Backlog = cfg.Workers * 16
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Dispatcher[M]{
		name:       name,
		send:       send,
		giveUp:     cfg.GiveUp,
		workers:    cfg.Workers,
		maxRetries: max(cfg.MaxRetries, 0),
		backoff:    cfg.Backoff,
		logger:     cfg.Logger.With(zap.String("outbox", name)),
		backlog:    make(chan Envelope[M], cfg.Backlog),
	}
}

// Start launches the workers. Later calls are no-ops until Stop.
func (d *Dispatcher[M]) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return
	}
	d.ctx, d.cancel = context.WithCancel(ctx)
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
	d.running = true
	d.logger.Info("outbox started", zap.Int("workers", d.workers))
}

// Stop cancels pending retries and waits for in-flight sends.
func (d *Dispatcher[M]) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.cancel()
	d.running = false
	d.mu.Unlock()
	d.wg.Wait()
	d.logger.Info("outbox stopped")
}

// Submit queues msg under id. It never blocks.
func (d *Dispatcher[M]) Submit(id string, msg M) error {
	return d.push(Envelope[M]{ID: id, Message: msg, QueuedAt: time.Now().UTC()})
}

func (d *Dispatcher[M]) push(env Envelope[M]) error {
	d.mu.Lock()
	ctx, running := d.ctx, d.running
	d.mu.Unlock()
	if !running {
		return fmt.Errorf("%s: %w", d.name, ErrNotRunning)
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", d.name, ErrNotRunning)
	case d.backlog <- env:
		return nil
	default:
		return fmt.Errorf("%s: %w", d.name, ErrBacklogFull)
	}
}

func (d *Dispatcher[M]) work() {
	defer d.wg.Done()
	for {
		select {
		case <-d.ctx.Done():
			return
		case env := <-d.backlog:
			if err := d.send(d.ctx, env); err != nil {
				d.retry(env, err)
			}
		}
	}
}

func (d *Dispatcher[M]) retry(env Envelope[M], cause error) {
	env.Attempt++
	if env.Attempt > d.maxRetries {
		d.logger.Error("delivery abandoned", zap.String("id", env.ID), zap.Int("attempts", env.Attempt), zap.Error(cause))
		d.abandon(env, cause)
		return
	}
	wait := d.backoff * time.Duration(env.Attempt)
	d.logger.Warn("delivery failed, retrying", zap.String("id", env.ID), zap.Int("attempt", env.Attempt), zap.Duration("wait", wait), zap.Error(cause))

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-d.ctx.Done():
		case <-timer.C:
			if err := d.push(env); err != nil {
				d.abandon(env, err)
			}
		}
	}()
}

func (d *Dispatcher[M]) abandon(env Envelope[M], cause error) {
	if d.giveUp != nil {
		d.giveUp(d.ctx, env, cause)
	}
}
