package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for ListStockParamsOrder.
const (
	Asc  ListStockParamsOrder = "asc"
	Desc ListStockParamsOrder = "desc"
)

// Defines values for SearchDeliveryOrdersParamsBy.
const (
	Number  SearchDeliveryOrdersParamsBy = "number"
	Student SearchDeliveryOrdersParamsBy = "student"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CodeName defines model for CodeName.
type CodeName struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Bundle defines model for Bundle.
type Bundle struct {
	Code     string   `json:"code"`
	Contents []string `json:"contents"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
}

// References defines model for References.
type References struct {
	Bundles    []Bundle   `json:"bundles"`
	Categories []CodeName `json:"categories"`
	Couriers   []CodeName `json:"couriers"`
	Regions    []CodeName `json:"regions"`
}

// Summary defines model for Summary.
type Summary struct {
	DeliveryOrders  int `json:"deliveryOrders"`
	EmptyStockItems int `json:"emptyStockItems"`
	InTransitOrders int `json:"inTransitOrders"`
	LowStockItems   int `json:"lowStockItems"`
	PendingOrders   int `json:"pendingOrders"`
	StockItems      int `json:"stockItems"`
}

// StockItem defines model for StockItem.
type StockItem struct {
	CategoryCode  string  `json:"categoryCode"`
	CategoryName  string  `json:"categoryName"`
	Code          string  `json:"code"`
	Note          *string `json:"note,omitempty"`
	Price         float64 `json:"price"`
	PriceLabel    string  `json:"priceLabel"`
	Quantity      int     `json:"quantity"`
	RegionCode    string  `json:"regionCode"`
	RegionName    string  `json:"regionName"`
	Safety        int     `json:"safety"`
	ShelfLocation string  `json:"shelfLocation"`
	Status        string  `json:"status"`
	StatusLabel   string  `json:"statusLabel"`
	Title         string  `json:"title"`
}

// StockList defines model for StockList.
type StockList struct {
	HasActiveFilter bool        `json:"hasActiveFilter"`
	Items           []StockItem `json:"items"`
	Total           int         `json:"total"`
}

// StockItemUpdate defines model for StockItemUpdate.
type StockItemUpdate struct {
	CategoryCode  string  `json:"categoryCode"`
	Note          *string `json:"note,omitempty"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	RegionCode    string  `json:"regionCode"`
	Safety        int     `json:"safety"`
	ShelfLocation string  `json:"shelfLocation"`
	Title         string  `json:"title"`
}

// NewStockItem defines model for NewStockItem.
type NewStockItem struct {
	CategoryCode  string  `json:"categoryCode"`
	Code          string  `json:"code"`
	Note          *string `json:"note,omitempty"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	RegionCode    string  `json:"regionCode"`
	Safety        int     `json:"safety"`
	ShelfLocation string  `json:"shelfLocation"`
	Title         string  `json:"title"`
}

// BundleItem defines model for BundleItem.
type BundleItem struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// BundleDetail defines model for BundleDetail.
type BundleDetail struct {
	Code  string       `json:"code"`
	Items []BundleItem `json:"items"`
	Name  string       `json:"name"`
	Price float64      `json:"price"`
}

// ProgressEvent defines model for ProgressEvent.
type ProgressEvent struct {
	At          time.Time `json:"at"`
	Description string    `json:"description"`
}

// DeliveryOrder defines model for DeliveryOrder.
type DeliveryOrder struct {
	BundleCode    string              `json:"bundleCode"`
	BundleName    string              `json:"bundleName"`
	CourierCode   string              `json:"courierCode"`
	CourierName   string              `json:"courierName"`
	Number        string              `json:"number"`
	Progress      []ProgressEvent     `json:"progress"`
	RecipientName string              `json:"recipientName"`
	ShipDate      *openapi_types.Date `json:"shipDate,omitempty"`
	Status        string              `json:"status"`
	StatusLabel   string              `json:"statusLabel"`
	StudentId     string              `json:"studentId"`
	Total         float64             `json:"total"`
}

// NextNumber defines model for NextNumber.
type NextNumber struct {
	Number string `json:"number"`
}

// NewDeliveryOrder defines model for NewDeliveryOrder.
type NewDeliveryOrder struct {
	BundleCode    string             `json:"bundleCode"`
	CourierCode   string             `json:"courierCode"`
	RecipientName string             `json:"recipientName"`
	ShipDate      openapi_types.Date `json:"shipDate"`
	StudentId     string             `json:"studentId"`
}

// NewProgress defines model for NewProgress.
type NewProgress struct {
	Description string `json:"description"`
}

// StatusUpdate defines model for StatusUpdate.
type StatusUpdate struct {
	Status string `json:"status"`
}

// OrderForm defines model for OrderForm.
type OrderForm struct {
	Address     string  `json:"address"`
	BundleCode  string  `json:"bundleCode"`
	CourierCode string  `json:"courierCode"`
	Email       *string `json:"email,omitempty"`
	Name        string  `json:"name"`
	Note        *string `json:"note,omitempty"`
	Phone       string  `json:"phone"`
	StudentId   string  `json:"studentId"`
}

// ListStockParams defines parameters for ListStock.
type ListStockParams struct {
	Region   *string               `form:"region,omitempty" json:"region,omitempty"`
	Category *string               `form:"category,omitempty" json:"category,omitempty"`
	Status   *string               `form:"status,omitempty" json:"status,omitempty"`
	Sort     *string               `form:"sort,omitempty" json:"sort,omitempty"`
	Order    *ListStockParamsOrder `form:"order,omitempty" json:"order,omitempty"`
}

// ListStockParamsOrder defines parameters for ListStock.
type ListStockParamsOrder string

// GetStockCategoriesParams defines parameters for GetStockCategories.
type GetStockCategoriesParams struct {
	Region *string `form:"region,omitempty" json:"region,omitempty"`
}

// SearchDeliveryOrdersParams defines parameters for SearchDeliveryOrders.
type SearchDeliveryOrdersParams struct {
	Q  *string                       `form:"q,omitempty" json:"q,omitempty"`
	By *SearchDeliveryOrdersParamsBy `form:"by,omitempty" json:"by,omitempty"`
}

// SearchDeliveryOrdersParamsBy defines parameters for SearchDeliveryOrders.
type SearchDeliveryOrdersParamsBy string

// CreateStockItemJSONRequestBody defines body for CreateStockItem for application/json ContentType.
type CreateStockItemJSONRequestBody = NewStockItem

// UpdateStockItemJSONRequestBody defines body for UpdateStockItem for application/json ContentType.
type UpdateStockItemJSONRequestBody = StockItemUpdate

// CreateDeliveryOrderJSONRequestBody defines body for CreateDeliveryOrder for application/json ContentType.
type CreateDeliveryOrderJSONRequestBody = NewDeliveryOrder

// AppendDeliveryOrderProgressJSONRequestBody defines body for AppendDeliveryOrderProgress for application/json ContentType.
type AppendDeliveryOrderProgressJSONRequestBody = NewProgress

// UpdateDeliveryOrderStatusJSONRequestBody defines body for UpdateDeliveryOrderStatus for application/json ContentType.
type UpdateDeliveryOrderStatusJSONRequestBody = StatusUpdate

// SubmitOrderJSONRequestBody defines body for SubmitOrder for application/json ContentType.
type SubmitOrderJSONRequestBody = OrderForm
