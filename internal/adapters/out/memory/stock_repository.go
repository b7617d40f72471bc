package memory

import (
	"context"

	"sitta/internal/core/domain/model/stock"
	"sitta/internal/core/ports"
	"sitta/internal/pkg/errs"
)

var _ ports.StockRepository = (*StockRepository)(nil)

// StockRepository stores clones, so callers never share items with the store.
type StockRepository struct {
	session session
}

func newStockRepository(s session) *StockRepository {
	return &StockRepository{session: s}
}

func (r *StockRepository) Add(ctx context.Context, item *stock.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	return r.session.write(ctx, func(t *tables) (ports.Change, error) {
		if !t.stock.insert(item.Code(), item.Clone()) {
			return ports.Change{}, errs.NewObjectAlreadyExistsError("stockItem", item.Code())
		}
		return stockChange(ports.ActionCreated, item.Code(), item), nil
	})
}

func (r *StockRepository) Update(ctx context.Context, item *stock.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	return r.session.write(ctx, func(t *tables) (ports.Change, error) {
		if !t.stock.replace(item.Code(), item.Clone()) {
			return ports.Change{}, errs.NewObjectNotFoundError("stockItem", item.Code())
		}
		return stockChange(ports.ActionUpdated, item.Code(), item), nil
	})
}

func (r *StockRepository) Delete(ctx context.Context, code string) error {
	return r.session.write(ctx, func(t *tables) (ports.Change, error) {
		if !t.stock.remove(code) {
			return ports.Change{}, errs.NewObjectNotFoundError("stockItem", code)
		}
		return stockChange(ports.ActionDeleted, code, nil), nil
	})
}

func (r *StockRepository) Get(ctx context.Context, code string) (*stock.Item, error) {
	var found *stock.Item
	err := r.session.read(ctx, func(t *tables) error {
		item, ok := t.stock.get(code)
		if !ok {
			return errs.NewObjectNotFoundError("stockItem", code)
		}
		found = item.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *StockRepository) GetAll(ctx context.Context) ([]*stock.Item, error) {
	var items []*stock.Item
	err := r.session.read(ctx, func(t *tables) error {
		rows := t.stock.all()
		items = make([]*stock.Item, 0, len(rows))
		for _, item := range rows {
			items = append(items, item.Clone())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func stockChange(action ports.Action, code string, item *stock.Item) ports.Change {
	c := ports.Change{Entity: ports.EntityStock, Action: action, Key: code}
	if item != nil {
		c.StockItem = item.Clone()
	}
	return c
}
