// Package memory keeps the session state: stock items and delivery orders held
// in process memory for as long as the service runs. Writes go through a unit
// of work that works on a private copy and publishes it on Commit. Committed
// changes are handed to a ports.ChangeNotifier.
package memory

import (
	"context"
	"log/slog"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/kernel"
	"sitta/internal/core/domain/model/stock"
	"sitta/internal/core/ports"
	"sitta/internal/pkg/errs"
)

type tables struct {
	stock  table[*stock.Item]
	orders table[*delivery.DeliveryOrder]
}

func newTables() *tables {
	return &tables{
		stock:  newTable[*stock.Item](),
		orders: newTable[*delivery.DeliveryOrder](),
	}
}

func (t *tables) clone() *tables {
	return &tables{stock: t.stock.clone(), orders: t.orders.clone()}
}

// Store holds the committed state. One unit of work at a time owns it between
// Begin and Commit/Rollback; reads outside a unit of work wait for it too.
type Store struct {
	lock     chan struct{}
	data     *tables
	notifier ports.ChangeNotifier
	clock    kernel.Clock
	logger   *slog.Logger
}

type Option func(*Store)

// WithNotifier sets the notifier that receives committed changes.
func WithNotifier(n ports.ChangeNotifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithClock sets the clock used to stamp changes.
func WithClock(c kernel.Clock) Option {
	return func(s *Store) { s.clock = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		lock:   make(chan struct{}, 1),
		data:   newTables(),
		clock:  kernel.SystemClock{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "memory_store")
	return s
}

// Seed loads the initial collections without notifying. It fails with
// errs.ErrObjectAlreadyExists on a repeated key and leaves the store unchanged.
func (s *Store) Seed(ctx context.Context, items []*stock.Item, orders []*delivery.DeliveryOrder) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	next := s.data.clone()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if !next.stock.insert(item.Code(), item.Clone()) {
			return errs.NewObjectAlreadyExistsError("stockItem", item.Code())
		}
	}
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		key := o.Number().String()
		if !next.orders.insert(key, o.Clone()) {
			return errs.NewObjectAlreadyExistsError("deliveryOrder", key)
		}
	}
	s.data = next
	return nil
}

// StockRepository returns a repository over the committed state. Each write
// is committed and notified on its own.
func (s *Store) StockRepository() *StockRepository {
	return newStockRepository(s.autoCommit())
}

// DeliveryOrderRepository returns a repository over the committed state. Each
// write is committed and notified on its own.
func (s *Store) DeliveryOrderRepository() *DeliveryOrderRepository {
	return newDeliveryOrderRepository(s.autoCommit())
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.lock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.lock
}

func (s *Store) stamp(c ports.Change) ports.Change {
	if c.At.IsZero() {
		c.At = s.clock.Now()
	}
	return c
}

// notify runs after the state is published, so a failing notifier is logged
// and never undoes the change.
func (s *Store) notify(ctx context.Context, changes []ports.Change) {
	if s.notifier == nil || len(changes) == 0 {
		return
	}
	if err := s.notifier.Notify(ctx, changes); err != nil {
		s.logger.ErrorContext(ctx, "failed to notify committed changes",
			"changes", len(changes),
			"error", err,
		)
	}
}

// session is the state a repository works on.
type session interface {
	read(ctx context.Context, fn func(t *tables) error) error
	write(ctx context.Context, fn func(t *tables) (ports.Change, error)) error
}

type autoCommitSession struct {
	store *Store
}

func (s *Store) autoCommit() autoCommitSession {
	return autoCommitSession{store: s}
}

func (a autoCommitSession) read(ctx context.Context, fn func(t *tables) error) error {
	if err := a.store.acquire(ctx); err != nil {
		return err
	}
	defer a.store.release()
	return fn(a.store.data)
}

func (a autoCommitSession) write(ctx context.Context, fn func(t *tables) (ports.Change, error)) error {
	if err := a.store.acquire(ctx); err != nil {
		return err
	}
	next := a.store.data.clone()
	c, err := fn(next)
	if err != nil {
		a.store.release()
		return err
	}
	a.store.data = next
	a.store.release()

	a.store.notify(ctx, []ports.Change{a.store.stamp(c)})
	return nil
}
