package queries

import (
	"context"
	"errors"
	"strings"

	"sitta/internal/core/domain/model/kernel"
	"sitta/internal/core/domain/model/reference"
	"sitta/internal/core/ports"
	"sitta/internal/pkg/errs"
	"sitta/internal/pkg/guard"
)

var ErrGetBundleDetailQueryIsNotConstructed = errors.New(
	"GetBundleDetailQuery must be created via NewGetBundleDetailQuery constructor",
)

// GetBundleDetailQuery resolves a bundle and the titles of the stock it contains.
type GetBundleDetailQuery struct {
	code string

	guard guard.ConstructorGuard
}

func NewGetBundleDetailQuery(code string) GetBundleDetailQuery {
	return GetBundleDetailQuery{code: strings.TrimSpace(code), guard: guard.NewConstructorGuard()}
}

func (q GetBundleDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetBundleDetailQueryIsNotConstructed)
}

type GetBundleDetailQueryResponse struct {
	Code  string
	Name  string
	Price kernel.Money
	Items []reference.BundleItem
}

type GetBundleDetailQueryHandler struct {
	repo    ports.StockRepository
	catalog *reference.Catalog
}

func NewGetBundleDetailQueryHandler(repo ports.StockRepository, catalog *reference.Catalog) GetBundleDetailQueryHandler {
	return GetBundleDetailQueryHandler{repo: repo, catalog: catalog}
}

// Handle fails with errs.ErrObjectNotFound for an unknown bundle. Content codes
// missing from stock are listed with the code as title.
func (h GetBundleDetailQueryHandler) Handle(
	ctx context.Context,
	query GetBundleDetailQuery,
) (GetBundleDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBundleDetailQueryResponse{}, err
	}

	bundle, ok := h.catalog.Bundle(query.code)
	if !ok {
		return GetBundleDetailQueryResponse{}, errs.NewObjectNotFoundError("bundle", query.code)
	}

	items, err := h.repo.GetAll(ctx)
	if err != nil {
		return GetBundleDetailQueryResponse{}, err
	}

	titles := make(map[string]string, len(items))
	for _, item := range items {
		titles[item.Code()] = item.Title()
	}

	return GetBundleDetailQueryResponse{
		Code:  bundle.Code,
		Name:  bundle.Name,
		Price: bundle.Price,
		Items: reference.BundleContents(bundle, titles),
	}, nil
}
