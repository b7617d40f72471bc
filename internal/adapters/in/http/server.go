package http

import (
	"net/http"
	"strings"

	"sitta/internal/core/application/usecases/commands"
	"sitta/internal/core/application/usecases/queries"
	"sitta/internal/core/domain/model/reference"
	"sitta/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases the API exposes.
type Handlers struct {
	// Command handlers
	AddStockItem         commands.AddStockItemCommandHandler
	UpdateStockItem      commands.UpdateStockItemCommandHandler
	DeleteStockItem      commands.DeleteStockItemCommandHandler
	CreateDeliveryOrder  commands.CreateDeliveryOrderCommandHandler
	AppendProgress       commands.AppendProgressCommandHandler
	UpdateDeliveryStatus commands.UpdateDeliveryStatusCommandHandler
	SubmitOrder          commands.SubmitOrderCommandHandler

	// Query handlers
	ListStock              queries.ListStockQueryHandler
	GetAvailableCategories queries.GetAvailableCategoriesQueryHandler
	GetBundleDetail        queries.GetBundleDetailQueryHandler
	SearchDeliveryOrders   queries.SearchDeliveryOrdersQueryHandler
	GetDeliveryOrder       queries.GetDeliveryOrderQueryHandler
	GetNextOrderNumber     queries.GetNextOrderNumberQueryHandler
	GetSummary             queries.GetSummaryQueryHandler
	GetReferences          queries.GetReferencesQueryHandler
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	h       Handlers
	catalog *reference.Catalog
}

// NewServer needs the catalog to render command results with resolved names.
func NewServer(h Handlers, catalog *reference.Catalog) *Server {
	return &Server{h: h, catalog: catalog}
}

// GetReferences handles GET /api/v1/references.
func (s *Server) GetReferences(ctx echo.Context) error {
	resp, err := s.h.GetReferences.Handle(queries.NewGetReferencesQuery())
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toReferences(resp))
}

// GetSummary handles GET /api/v1/summary.
func (s *Server) GetSummary(ctx echo.Context) error {
	resp, err := s.h.GetSummary.Handle(ctx.Request().Context(), queries.NewGetSummaryQuery())
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Summary{
		StockItems:      resp.StockItems,
		LowStockItems:   resp.LowStockItems,
		EmptyStockItems: resp.EmptyStockItems,
		DeliveryOrders:  resp.DeliveryOrders,
		PendingOrders:   resp.PendingOrders,
		InTransitOrders: resp.InTransitOrders,
	})
}

// ListStock handles GET /api/v1/stock.
func (s *Server) ListStock(ctx echo.Context, params servers.ListStockParams) error {
	descending := params.Order != nil && *params.Order == servers.Desc
	query, err := queries.NewListStockQuery(
		deref(params.Region),
		deref(params.Category),
		deref(params.Status),
		deref(params.Sort),
		descending,
	)
	if err != nil {
		return fail(ctx, err)
	}

	resp, err := s.h.ListStock.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	items := make([]servers.StockItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, toStockItem(item))
	}
	return ctx.JSON(http.StatusOK, servers.StockList{
		Items:           items,
		Total:           resp.Total,
		HasActiveFilter: resp.HasActiveFilter,
	})
}

// CreateStockItem handles POST /api/v1/stock.
func (s *Server) CreateStockItem(ctx echo.Context) error {
	var body servers.CreateStockItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewAddStockItemCommand(commands.StockItemInput{
		Code:          body.Code,
		Title:         body.Title,
		CategoryCode:  body.CategoryCode,
		RegionCode:    body.RegionCode,
		ShelfLocation: body.ShelfLocation,
		Price:         body.Price,
		Quantity:      body.Quantity,
		Safety:        body.Safety,
		Note:          deref(body.Note),
	})
	if err != nil {
		return fail(ctx, err)
	}

	item, err := s.h.AddStockItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toStockItem(queries.NewStockItemResponse(item, s.catalog)))
}

// UpdateStockItem handles PUT /api/v1/stock/{code}.
func (s *Server) UpdateStockItem(ctx echo.Context, code string) error {
	var body servers.UpdateStockItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewUpdateStockItemCommand(commands.StockItemInput{
		Code:          code,
		Title:         body.Title,
		CategoryCode:  body.CategoryCode,
		RegionCode:    body.RegionCode,
		ShelfLocation: body.ShelfLocation,
		Price:         body.Price,
		Quantity:      body.Quantity,
		Safety:        body.Safety,
		Note:          deref(body.Note),
	})
	if err != nil {
		return fail(ctx, err)
	}

	item, err := s.h.UpdateStockItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toStockItem(queries.NewStockItemResponse(item, s.catalog)))
}

// DeleteStockItem handles DELETE /api/v1/stock/{code}.
func (s *Server) DeleteStockItem(ctx echo.Context, code string) error {
	cmd, err := commands.NewDeleteStockItemCommand(code)
	if err != nil {
		return fail(ctx, err)
	}
	if err := s.h.DeleteStockItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetStockCategories handles GET /api/v1/stock/categories.
func (s *Server) GetStockCategories(ctx echo.Context, params servers.GetStockCategoriesParams) error {
	categories, err := s.h.GetAvailableCategories.Handle(
		ctx.Request().Context(),
		queries.NewGetAvailableCategoriesQuery(deref(params.Region)),
	)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, categories)
}

// GetBundle handles GET /api/v1/bundles/{code}.
func (s *Server) GetBundle(ctx echo.Context, code string) error {
	resp, err := s.h.GetBundleDetail.Handle(ctx.Request().Context(), queries.NewGetBundleDetailQuery(code))
	if err != nil {
		return fail(ctx, err)
	}

	items := make([]servers.BundleItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, servers.BundleItem{Code: item.Code, Title: item.Title})
	}
	return ctx.JSON(http.StatusOK, servers.BundleDetail{
		Code:  resp.Code,
		Name:  resp.Name,
		Price: resp.Price.Float64(),
		Items: items,
	})
}

// SearchDeliveryOrders handles GET /api/v1/delivery-orders.
func (s *Server) SearchDeliveryOrders(ctx echo.Context, params servers.SearchDeliveryOrdersParams) error {
	var by string
	if params.By != nil {
		by = string(*params.By)
	}
	query, err := queries.NewSearchDeliveryOrdersQuery(deref(params.Q), by)
	if err != nil {
		return fail(ctx, err)
	}

	orders, err := s.h.SearchDeliveryOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	resp := make([]servers.DeliveryOrder, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toDeliveryOrder(o))
	}
	return ctx.JSON(http.StatusOK, resp)
}

// CreateDeliveryOrder handles POST /api/v1/delivery-orders.
func (s *Server) CreateDeliveryOrder(ctx echo.Context) error {
	var body servers.CreateDeliveryOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCreateDeliveryOrderCommand(
		body.StudentId,
		body.RecipientName,
		body.CourierCode,
		body.BundleCode,
		body.ShipDate.Time,
	)
	if err != nil {
		return fail(ctx, err)
	}

	order, err := s.h.CreateDeliveryOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toDeliveryOrder(queries.NewDeliveryOrderResponse(order, s.catalog)))
}

// GetNextDeliveryOrderNumber handles GET /api/v1/delivery-orders/next-number.
func (s *Server) GetNextDeliveryOrderNumber(ctx echo.Context) error {
	number, err := s.h.GetNextOrderNumber.Handle(ctx.Request().Context(), queries.NewGetNextOrderNumberQuery())
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.NextNumber{Number: number.String()})
}

// GetDeliveryOrder handles GET /api/v1/delivery-orders/{number}.
func (s *Server) GetDeliveryOrder(ctx echo.Context, number string) error {
	query, err := queries.NewGetDeliveryOrderQuery(number)
	if err != nil {
		return fail(ctx, err)
	}

	order, err := s.h.GetDeliveryOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDeliveryOrder(order))
}

// AppendDeliveryOrderProgress handles POST /api/v1/delivery-orders/{number}/progress.
func (s *Server) AppendDeliveryOrderProgress(ctx echo.Context, number string) error {
	var body servers.AppendDeliveryOrderProgressJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewAppendProgressCommand(number, body.Description)
	if err != nil {
		return fail(ctx, err)
	}

	order, err := s.h.AppendProgress.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDeliveryOrder(queries.NewDeliveryOrderResponse(order, s.catalog)))
}

// UpdateDeliveryOrderStatus handles PUT /api/v1/delivery-orders/{number}/status.
func (s *Server) UpdateDeliveryOrderStatus(ctx echo.Context, number string) error {
	var body servers.UpdateDeliveryOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(number, body.Status)
	if err != nil {
		return fail(ctx, err)
	}

	order, err := s.h.UpdateDeliveryStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDeliveryOrder(queries.NewDeliveryOrderResponse(order, s.catalog)))
}

// SubmitOrder handles POST /api/v1/orders.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var body servers.SubmitOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewSubmitOrderCommand(commands.OrderForm{
		StudentID:   body.StudentId,
		Name:        body.Name,
		Address:     body.Address,
		Phone:       body.Phone,
		Email:       deref(body.Email),
		BundleCode:  body.BundleCode,
		CourierCode: body.CourierCode,
		Note:        deref(body.Note),
	})
	if err != nil {
		return fail(ctx, err)
	}

	order, err := s.h.SubmitOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toDeliveryOrder(queries.NewDeliveryOrderResponse(order, s.catalog)))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
