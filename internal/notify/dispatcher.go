package notify

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vidafit-backend/internal/config"
	"github.com/heartmarshall/vidafit-backend/internal/domain"
)

// Dispatcher is an asynchronous Sink backed by a bounded queue and a fixed
// pool of workers. Publish never blocks: when the queue is full the event is
// dropped and a warning is logged.
type Dispatcher struct {
	log      *slog.Logger
	queue    chan domain.Event
	workers  int
	handlers []Handler
	dropped  atomic.Int64
}

// NewDispatcher creates a Dispatcher delivering to handlers in order.
func NewDispatcher(log *slog.Logger, cfg config.NotifyConfig, handlers ...Handler) *Dispatcher {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	size := cfg.QueueSize
	if size <= 0 {
		size = 1
	}
	return &Dispatcher{
		log:      log.With("component", "notify"),
		queue:    make(chan domain.Event, size),
		workers:  workers,
		handlers: handlers,
	}
}

// Publish enqueues ev for delivery.
func (d *Dispatcher) Publish(ctx context.Context, ev domain.Event) {
	select {
	case d.queue <- ev:
	default:
		d.dropped.Add(1)
		d.log.WarnContext(ctx, "event dropped, queue full",
			slog.String("type", ev.Type.String()),
			slog.String("entity_id", ev.EntityID.String()),
		)
	}
}

// Dropped returns how many events were discarded because the queue was full.
func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

// Run starts the workers and blocks until ctx is cancelled. Events still
// queued at that point are delivered before Run returns.
func (d *Dispatcher) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for i := 0; i < d.workers; i++ {
		g.Go(func() error {
			for {
				select {
				case ev := <-d.queue:
					d.deliver(gctx, ev)
				case <-gctx.Done():
					d.drain()
					return nil
				}
			}
		})
	}

	return g.Wait()
}

func (d *Dispatcher) drain() {
	// Handlers get a fresh context: the run context is already cancelled.
	ctx := context.Background()
	for {
		select {
		case ev := <-d.queue:
			d.deliver(ctx, ev)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, ev domain.Event) {
	for _, h := range d.handlers {
		if err := d.safeHandle(ctx, h, ev); err != nil {
			d.log.WarnContext(ctx, "event delivery failed",
				slog.String("type", ev.Type.String()),
				slog.String("entity_id", ev.EntityID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (d *Dispatcher) safeHandle(ctx context.Context, h Handler, ev domain.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			d.log.ErrorContext(ctx, "event handler panicked",
				slog.String("type", ev.Type.String()),
				slog.Any("panic", r),
			)
			err = nil
		}
	}()
	return h.Handle(ctx, ev)
}
