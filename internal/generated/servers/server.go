// Package servers holds the HTTP contract of the service: the OpenAPI
// document, its wire types and the echo wrapper that binds path and query
// parameters before calling a ServerInterface implementation.
package servers

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Reference lists
	// (GET /api/v1/references)
	GetReferences(ctx echo.Context) error
	// Dashboard counters
	// (GET /api/v1/summary)
	GetSummary(ctx echo.Context) error
	// Filtered and sorted stock view
	// (GET /api/v1/stock)
	ListStock(ctx echo.Context, params ListStockParams) error
	// Add a stock item
	// (POST /api/v1/stock)
	CreateStockItem(ctx echo.Context) error
	// Categories present in a region
	// (GET /api/v1/stock/categories)
	GetStockCategories(ctx echo.Context, params GetStockCategoriesParams) error
	// Update a stock item
	// (PUT /api/v1/stock/{code})
	UpdateStockItem(ctx echo.Context, code string) error
	// Delete a stock item
	// (DELETE /api/v1/stock/{code})
	DeleteStockItem(ctx echo.Context, code string) error
	// Bundle with resolved contents
	// (GET /api/v1/bundles/{code})
	GetBundle(ctx echo.Context, code string) error
	// Search delivery orders
	// (GET /api/v1/delivery-orders)
	SearchDeliveryOrders(ctx echo.Context, params SearchDeliveryOrdersParams) error
	// Create a delivery order
	// (POST /api/v1/delivery-orders)
	CreateDeliveryOrder(ctx echo.Context) error
	// Preview the next order number
	// (GET /api/v1/delivery-orders/next-number)
	GetNextDeliveryOrderNumber(ctx echo.Context) error
	// Delivery order detail
	// (GET /api/v1/delivery-orders/{number})
	GetDeliveryOrder(ctx echo.Context, number string) error
	// Append a progress event
	// (POST /api/v1/delivery-orders/{number}/progress)
	AppendDeliveryOrderProgress(ctx echo.Context, number string) error
	// Change the order status
	// (PUT /api/v1/delivery-orders/{number}/status)
	UpdateDeliveryOrderStatus(ctx echo.Context, number string) error
	// Submit the student order form
	// (POST /api/v1/orders)
	SubmitOrder(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetReferences converts echo context to params.
func (w *ServerInterfaceWrapper) GetReferences(ctx echo.Context) error {
	return w.Handler.GetReferences(ctx)
}

// GetSummary converts echo context to params.
func (w *ServerInterfaceWrapper) GetSummary(ctx echo.Context) error {
	return w.Handler.GetSummary(ctx)
}

// ListStock converts echo context to params.
func (w *ServerInterfaceWrapper) ListStock(ctx echo.Context) error {
	var err error

	var params ListStockParams

	err = runtime.BindQueryParameter("form", true, false, "region", ctx.QueryParams(), &params.Region)
	if err != nil {
		return invalidParameter("region", err)
	}

	err = runtime.BindQueryParameter("form", true, false, "category", ctx.QueryParams(), &params.Category)
	if err != nil {
		return invalidParameter("category", err)
	}

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return invalidParameter("status", err)
	}

	err = runtime.BindQueryParameter("form", true, false, "sort", ctx.QueryParams(), &params.Sort)
	if err != nil {
		return invalidParameter("sort", err)
	}

	err = runtime.BindQueryParameter("form", true, false, "order", ctx.QueryParams(), &params.Order)
	if err != nil {
		return invalidParameter("order", err)
	}

	return w.Handler.ListStock(ctx, params)
}

// CreateStockItem converts echo context to params.
func (w *ServerInterfaceWrapper) CreateStockItem(ctx echo.Context) error {
	return w.Handler.CreateStockItem(ctx)
}

// GetStockCategories converts echo context to params.
func (w *ServerInterfaceWrapper) GetStockCategories(ctx echo.Context) error {
	var params GetStockCategoriesParams

	err := runtime.BindQueryParameter("form", true, false, "region", ctx.QueryParams(), &params.Region)
	if err != nil {
		return invalidParameter("region", err)
	}

	return w.Handler.GetStockCategories(ctx, params)
}

// UpdateStockItem converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateStockItem(ctx echo.Context) error {
	code, err := bindPathParameter(ctx, "code")
	if err != nil {
		return err
	}
	return w.Handler.UpdateStockItem(ctx, code)
}

// DeleteStockItem converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteStockItem(ctx echo.Context) error {
	code, err := bindPathParameter(ctx, "code")
	if err != nil {
		return err
	}
	return w.Handler.DeleteStockItem(ctx, code)
}

// GetBundle converts echo context to params.
func (w *ServerInterfaceWrapper) GetBundle(ctx echo.Context) error {
	code, err := bindPathParameter(ctx, "code")
	if err != nil {
		return err
	}
	return w.Handler.GetBundle(ctx, code)
}

// SearchDeliveryOrders converts echo context to params.
func (w *ServerInterfaceWrapper) SearchDeliveryOrders(ctx echo.Context) error {
	var err error

	var params SearchDeliveryOrdersParams

	err = runtime.BindQueryParameter("form", true, false, "q", ctx.QueryParams(), &params.Q)
	if err != nil {
		return invalidParameter("q", err)
	}

	err = runtime.BindQueryParameter("form", true, false, "by", ctx.QueryParams(), &params.By)
	if err != nil {
		return invalidParameter("by", err)
	}

	return w.Handler.SearchDeliveryOrders(ctx, params)
}

// CreateDeliveryOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDeliveryOrder(ctx echo.Context) error {
	return w.Handler.CreateDeliveryOrder(ctx)
}

// GetNextDeliveryOrderNumber converts echo context to params.
func (w *ServerInterfaceWrapper) GetNextDeliveryOrderNumber(ctx echo.Context) error {
	return w.Handler.GetNextDeliveryOrderNumber(ctx)
}

// GetDeliveryOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetDeliveryOrder(ctx echo.Context) error {
	number, err := bindPathParameter(ctx, "number")
	if err != nil {
		return err
	}
	return w.Handler.GetDeliveryOrder(ctx, number)
}

// AppendDeliveryOrderProgress converts echo context to params.
func (w *ServerInterfaceWrapper) AppendDeliveryOrderProgress(ctx echo.Context) error {
	number, err := bindPathParameter(ctx, "number")
	if err != nil {
		return err
	}
	return w.Handler.AppendDeliveryOrderProgress(ctx, number)
}

// UpdateDeliveryOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateDeliveryOrderStatus(ctx echo.Context) error {
	number, err := bindPathParameter(ctx, "number")
	if err != nil {
		return err
	}
	return w.Handler.UpdateDeliveryOrderStatus(ctx, number)
}

// SubmitOrder converts echo context to params.
func (w *ServerInterfaceWrapper) SubmitOrder(ctx echo.Context) error {
	return w.Handler.SubmitOrder(ctx)
}

func bindPathParameter(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", invalidParameter(name, err)
	}
	return value, nil
}

func invalidParameter(name string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/references", wrapper.GetReferences)
	router.GET(baseURL+"/api/v1/summary", wrapper.GetSummary)
	router.GET(baseURL+"/api/v1/stock", wrapper.ListStock)
	router.POST(baseURL+"/api/v1/stock", wrapper.CreateStockItem)
	router.GET(baseURL+"/api/v1/stock/categories", wrapper.GetStockCategories)
	router.PUT(baseURL+"/api/v1/stock/:code", wrapper.UpdateStockItem)
	router.DELETE(baseURL+"/api/v1/stock/:code", wrapper.DeleteStockItem)
	router.GET(baseURL+"/api/v1/bundles/:code", wrapper.GetBundle)
	router.GET(baseURL+"/api/v1/delivery-orders", wrapper.SearchDeliveryOrders)
	router.POST(baseURL+"/api/v1/delivery-orders", wrapper.CreateDeliveryOrder)
	router.GET(baseURL+"/api/v1/delivery-orders/next-number", wrapper.GetNextDeliveryOrderNumber)
	router.GET(baseURL+"/api/v1/delivery-orders/:number", wrapper.GetDeliveryOrder)
	router.POST(baseURL+"/api/v1/delivery-orders/:number/progress", wrapper.AppendDeliveryOrderProgress)
	router.PUT(baseURL+"/api/v1/delivery-orders/:number/status", wrapper.UpdateDeliveryOrderStatus)
	router.POST(baseURL+"/api/v1/orders", wrapper.SubmitOrder)
}

// Document returns the raw OpenAPI document.
func Document() []byte {
	return openAPIDocument
}

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return doc, nil
}
