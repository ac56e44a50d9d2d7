// Package event delivers domain events to in-process subscribers after the
// producing transaction has committed. Delivery is at-most-once: a full
// queue drops the event and failed handlers are not retried.
package event

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"socialapi/internal/config"
	"socialapi/internal/model"
)

const (
	DefaultWorkers        = 4
	DefaultQueueSize      = 1000
	DefaultHandlerTimeout = 30 * time.Second
)

// Handler consumes one event. The context is detached from the request that
// produced the event and carries the handler timeout.
type Handler func(ctx context.Context, ev model.Event) error

type Dispatcher struct {
	logger  *slog.Logger
	workers int
	timeout time.Duration

	mu       sync.RWMutex
	handlers map[string][]Handler
	queue    chan model.Event
	closed   bool

	startOnce sync.Once
	wg        sync.WaitGroup

	published *prometheus.CounterVec
	dropped   *prometheus.CounterVec
	failed    *prometheus.CounterVec
}

// NewDispatcher builds a stopped dispatcher and registers its counters on reg.
func NewDispatcher(cfg config.EventsConfig, logger *slog.Logger, reg prometheus.Registerer) (*Dispatcher, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	size := cfg.QueueSize
	if size <= 0 {
		size = DefaultQueueSize
	}

	d := &Dispatcher{
		logger:   logger.With("component", "event_dispatcher"),
		workers:  workers,
		timeout:  DefaultHandlerTimeout,
		handlers: make(map[string][]Handler),
		queue:    make(chan model.Event, size),
		published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "domain_events_published_total",
			Help: "Domain events accepted by the dispatcher.",
		}, []string{"event"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "domain_events_dropped_total",
			Help: "Domain events dropped because the queue was full or closed.",
		}, []string{"event"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "domain_events_failed_total",
			Help: "Domain event handler invocations that returned an error or panicked.",
		}, []string{"event"}),
	}

	for _, c := range []prometheus.Collector{d.published, d.dropped, d.failed} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register dispatcher metrics: %w", err)
		}
	}
	return d, nil
}

// Subscribe adds h for events named name. Subscribe before Start.
func (d *Dispatcher) Subscribe(name string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = append(d.handlers[name], h)
}

// Start launches the worker goroutines. Later calls are no-ops.
func (d *Dispatcher) Start() {
	d.startOnce.Do(func() {
		for i := 0; i < d.workers; i++ {
			d.wg.Add(1)
			go d.run()
		}
		d.logger.Info("event_dispatcher_started", "workers", d.workers, "queue_size", cap(d.queue))
	})
}

// Publish enqueues events without blocking. Call it only after the
// transaction that produced the events has committed.
func (d *Dispatcher) Publish(_ context.Context, evs ...model.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, ev := range evs {
		name := ev.EventName()
		if d.closed {
			d.dropped.WithLabelValues(name).Inc()
			d.logger.Warn("event_dropped", "event", name, "reason", "dispatcher closed")
			continue
		}
		select {
		case d.queue <- ev:
			d.published.WithLabelValues(name).Inc()
		default:
			d.dropped.WithLabelValues(name).Inc()
			d.logger.Error("event_dropped", "event", name, "reason", "queue full")
		}
	}
}

// Close stops accepting events and waits for queued ones to be handled,
// or for ctx to expire.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("event_dispatcher_stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("event dispatcher close: %w", ctx.Err())
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev model.Event) {
	name := ev.EventName()

	d.mu.RLock()
	handlers := d.handlers[name]
	d.mu.RUnlock()

	for _, h := range handlers {
		start := time.Now()
		if err := d.invoke(h, ev); err != nil {
			d.failed.WithLabelValues(name).Inc()
			d.logger.Error("event_handler_failed", "event", name, "error", err, "latency_ms", time.Since(start).Milliseconds())
			continue
		}
		d.logger.Debug("event_handled", "event", name, "latency_ms", time.Since(start).Milliseconds())
	}
}

func (d *Dispatcher) invoke(h Handler, ev model.Event) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(ctx, ev)
}
