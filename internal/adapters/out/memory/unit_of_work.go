package memory

import (
	"context"
	"errors"

	"sitta/internal/core/ports"
)

var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork works on a copy of the committed state taken at Begin. Commit
// publishes the copy and notifies the changes recorded by its repositories;
// Rollback drops both.
//
// Repositories obtained before Begin, or after the transaction has ended,
// behave like the Store's own repositories and commit every write at once.
type UnitOfWork struct {
	store   *Store
	working *tables
	changes []ports.Change
}

// Begin takes ownership of the store, waiting for any other unit of work.
// Calling it again while active does nothing.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.working != nil {
		return nil
	}
	if err := uow.store.acquire(ctx); err != nil {
		return err
	}
	uow.working = uow.store.data.clone()
	uow.changes = nil
	return nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.working == nil {
		return ErrNoActiveTransaction
	}

	uow.store.data = uow.working
	changes := uow.changes
	uow.working, uow.changes = nil, nil
	uow.store.release()

	uow.store.notify(ctx, changes)
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.working == nil {
		return ErrNoActiveTransaction
	}

	uow.working, uow.changes = nil, nil
	uow.store.release()
	return nil
}

func (uow *UnitOfWork) StockRepository() ports.StockRepository {
	return newStockRepository(uow.session())
}

func (uow *UnitOfWork) DeliveryOrderRepository() ports.DeliveryOrderRepository {
	return newDeliveryOrderRepository(uow.session())
}

func (uow *UnitOfWork) session() session {
	return transactionSession{uow: uow}
}

// transactionSession reads the working copy while the unit of work is active
// and falls back to auto-commit otherwise.
type transactionSession struct {
	uow *UnitOfWork
}

func (s transactionSession) read(ctx context.Context, fn func(t *tables) error) error {
	if s.uow.working == nil {
		return s.uow.store.autoCommit().read(ctx, fn)
	}
	return fn(s.uow.working)
}

func (s transactionSession) write(ctx context.Context, fn func(t *tables) (ports.Change, error)) error {
	if s.uow.working == nil {
		return s.uow.store.autoCommit().write(ctx, fn)
	}
	c, err := fn(s.uow.working)
	if err != nil {
		return err
	}
	s.uow.changes = append(s.uow.changes, s.uow.store.stamp(c))
	return nil
}
