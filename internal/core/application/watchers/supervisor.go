package watchers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const watcherBuffer = 64

// Supervisor feeds committed changes to the watchers and reports the
// violations they find.
//
// Each watcher runs on its own goroutine with a buffered queue, so a slow
// watcher or alert sink never blocks the feed of the others for long and
// never blocks writers. Alerts go to the log, to every AlertPublisher and to
// in-process subscribers. A subscriber that is not keeping up misses alerts
// rather than stalling the supervisor.
type Supervisor struct {
	watchers   []Watcher
	publishers []ports.AlertPublisher
	logger     *slog.Logger
	clock      func() time.Time

	mu          sync.RWMutex
	subscribers map[int]chan ports.Alert
	nextSubID   int
}

func NewSupervisor(
	watchers []Watcher,
	publishers []ports.AlertPublisher,
	logger *slog.Logger,
	clock func() time.Time,
) (*Supervisor, error) {
	if len(watchers) == 0 {
		return nil, errs.NewValueIsRequiredError("watchers")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	if clock == nil {
		clock = time.Now
	}
	return &Supervisor{
		watchers:    watchers,
		publishers:  publishers,
		logger:      logger.With("component", "watcher_supervisor"),
		clock:       clock,
		subscribers: make(map[int]chan ports.Alert),
	}, nil
}

// Subscribe returns a channel receiving every alert raised after the call
// and a function that unsubscribes and closes the channel.
func (s *Supervisor) Subscribe(buffer int) (<-chan ports.Alert, func()) {
	ch := make(chan ports.Alert, buffer)

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
			close(ch)
		})
	}
}

// Run consumes feed until ctx is cancelled or the feed fails. It returns nil
// on cancellation.
func (s *Supervisor) Run(ctx context.Context, feed ports.ChangeFeed) error {
	g, gctx := errgroup.WithContext(ctx)

	changes := make(chan ports.Change, watcherBuffer)
	queues := make([]chan ports.Change, len(s.watchers))
	for i, w := range s.watchers {
		queue := make(chan ports.Change, watcherBuffer)
		queues[i] = queue
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				case change := <-queue:
					s.inspect(gctx, w, change)
				}
			}
		})
	}

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case change := <-changes:
				for i, w := range s.watchers {
					if !w.Accepts(change) {
						continue
					}
					select {
					case queues[i] <- change:
					case <-gctx.Done():
						return nil
					}
				}
			}
		}
	})

	g.Go(func() error {
		return feed.Run(gctx, changes)
	})

	s.logger.InfoContext(ctx, "Watchers started", "watchers", len(s.watchers))
	err := g.Wait()
	s.logger.InfoContext(context.Background(), "Watchers stopped")
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// Evaluate runs every accepting watcher on change synchronously, reports
// the violations and returns them.
func (s *Supervisor) Evaluate(ctx context.Context, change ports.Change) []ports.Alert {
	var alerts []ports.Alert
	for _, w := range s.watchers {
		if !w.Accepts(change) {
			continue
		}
		if alert, ok := s.inspect(ctx, w, change); ok {
			alerts = append(alerts, alert)
		}
	}
	return alerts
}

func (s *Supervisor) inspect(ctx context.Context, w Watcher, change ports.Change) (ports.Alert, bool) {
	err := w.Inspect(ctx, change)
	if err == nil {
		return ports.Alert{}, false
	}

	kind, ok := alertKind(err)
	if !ok {
		s.logger.ErrorContext(ctx, "Watcher failed",
			"watcher", w.Name(),
			"collection", change.Collection,
			"key", change.Key,
			"error", err,
		)
		return ports.Alert{}, false
	}

	alert := ports.Alert{
		ID:         uuid.New(),
		Kind:       kind,
		Source:     w.Name(),
		Collection: change.Collection,
		Key:        change.Key,
		Err:        err,
		DetectedAt: s.clock().UTC(),
	}
	s.report(ctx, alert)
	return alert, true
}

func (s *Supervisor) report(ctx context.Context, alert ports.Alert) {
	s.logger.WarnContext(ctx, "Invariant violation",
		"alert_id", alert.ID,
		"kind", alert.Kind,
		"watcher", alert.Source,
		"collection", alert.Collection,
		"key", alert.Key,
		"error", alert.Err,
	)

	for _, p := range s.publishers {
		if err := p.Publish(ctx, alert); err != nil {
			s.logger.ErrorContext(ctx, "Failed to publish alert", "alert_id", alert.ID, "error", err)
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subscribers {
		select {
		case ch <- alert:
		default:
			s.logger.WarnContext(ctx, "Alert subscriber is full, alert dropped", "alert_id", alert.ID)
		}
	}
}
