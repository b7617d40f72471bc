package queries

import (
	"errors"

	"sitta/internal/core/domain/model/reference"
	"sitta/internal/pkg/guard"
)

var ErrGetReferencesQueryIsNotConstructed = errors.New(
	"GetReferencesQuery must be created via NewGetReferencesQuery constructor",
)

// GetReferencesQuery returns every reference list, in load order.
type GetReferencesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetReferencesQuery() GetReferencesQuery {
	return GetReferencesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetReferencesQuery) Validate() error {
	return q.guard.Validate(ErrGetReferencesQueryIsNotConstructed)
}

type GetReferencesQueryResponse struct {
	Regions    []reference.Region
	Categories []reference.Category
	Couriers   []reference.Courier
	Bundles    []reference.Bundle
}

type GetReferencesQueryHandler struct {
	catalog *reference.Catalog
}

func NewGetReferencesQueryHandler(catalog *reference.Catalog) GetReferencesQueryHandler {
	return GetReferencesQueryHandler{catalog: catalog}
}

func (h GetReferencesQueryHandler) Handle(query GetReferencesQuery) (GetReferencesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetReferencesQueryResponse{}, err
	}
	return GetReferencesQueryResponse{
		Regions:    h.catalog.Regions(),
		Categories: h.catalog.Categories(),
		Couriers:   h.catalog.Couriers(),
		Bundles:    h.catalog.Bundles(),
	}, nil
}
