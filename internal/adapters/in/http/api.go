package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"
)

// BaseURL is the prefix every API route is registered under.
const BaseURL = "/api/v1"

// Request and response bodies of openapi.yaml.
type (
	Address struct {
		Street   string `json:"street" validate:"required"`
		City     string `json:"city" validate:"required"`
		District string `json:"district" validate:"required"`
	}

	NewUser struct {
		UserID  string  `json:"userid" validate:"required"`
		Name    string  `json:"name" validate:"required"`
		Email   string  `json:"email" validate:"required,email"`
		Contact string  `json:"contact" validate:"required"`
		Address Address `json:"address" validate:"required"`
		Role    string  `json:"role" validate:"required,oneof=customer seller employee"`
	}

	NewRoleBinding struct {
		ID     string `json:"id" validate:"required"`
		UserID string `json:"userid" validate:"required"`
	}

	NewCategory struct {
		CategoryID  string `json:"categoryid" validate:"required"`
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	NewProduct struct {
		ProductID     string          `json:"productid" validate:"required"`
		Name          string          `json:"name" validate:"required"`
		Price         decimal.Decimal `json:"price"`
		CategoryID    string          `json:"categoryid" validate:"required"`
		StockQuantity int             `json:"stock_quantity" validate:"gte=0"`
		Status        string          `json:"status" validate:"required"`
		SellerID      string          `json:"sellerid" validate:"required"`
	}

	NewWarehouse struct {
		WarehouseID string `json:"warehouseid" validate:"required"`
		Location    string `json:"location" validate:"required"`
		Capacity    int    `json:"capacity" validate:"gte=0"`
		EmployeeID  string `json:"employeeid" validate:"required"`
	}

	NewPayment struct {
		PaymentID         string          `json:"paymentid" validate:"required"`
		Amount            decimal.Decimal `json:"amount"`
		TransactionStatus string          `json:"transaction_status" validate:"required,oneof=pending completed failed"`
	}

	NewShipping struct {
		ShippingID     string  `json:"shippingid" validate:"required"`
		TrackingNo     string  `json:"trackingno" validate:"required"`
		DeliveryStatus string  `json:"delivery_status" validate:"required"`
		Address        Address `json:"address" validate:"required"`
	}

	NewOrder struct {
		CustomerID string      `json:"customerid" validate:"required"`
		ProductIDs []string    `json:"productids" validate:"required,min=1,dive,required"`
		Quantities []int       `json:"quantities" validate:"required,min=1,dive,gt=0"`
		Payment    NewPayment  `json:"payment" validate:"required"`
		Shipping   NewShipping `json:"shipping" validate:"required"`
	}

	PlacedOrder struct {
		OrderID string `json:"orderid"`
	}

	OrderStatus struct {
		OrderID string `json:"orderid"`
		Status  string `json:"status"`
	}

	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
)

type (
	GetOrderDetailsParams struct {
		District string `form:"district" json:"district"`
	}

	GetPartyDirectoryParams struct {
		Cities *[]string `form:"cities,omitempty" json:"cities,omitempty"`
	}

	GetCatalogViewParams struct {
		Categories *[]string `form:"categories,omitempty" json:"categories,omitempty"`
	}

	GetPendingPaymentCohortsParams struct {
		Months *int `form:"months,omitempty" json:"months,omitempty"`
	}
)

// ServerInterface lists one method per operation of openapi.yaml.
type ServerInterface interface {
	// (POST /users)
	AddUser(ctx echo.Context) error
	// (POST /customers)
	AddCustomer(ctx echo.Context) error
	// (POST /sellers)
	AddSeller(ctx echo.Context) error
	// (POST /employees)
	AddEmployee(ctx echo.Context) error
	// (POST /categories)
	AddProductCategory(ctx echo.Context) error
	// (POST /products)
	AddProduct(ctx echo.Context) error
	// (POST /warehouses)
	AddWarehouse(ctx echo.Context) error
	// (POST /orders)
	PlaceOrder(ctx echo.Context) error
	// (POST /orders/{orderId}/advance)
	AdvanceOrderStatus(ctx echo.Context, orderID string) error
	// (GET /invoices/{orderIdPrefix})
	GenerateInvoice(ctx echo.Context, orderIDPrefix string) error
	// (GET /reports/order-details)
	GetOrderDetails(ctx echo.Context, params GetOrderDetailsParams) error
	// (GET /reports/parties)
	GetPartyDirectory(ctx echo.Context, params GetPartyDirectoryParams) error
	// (GET /reports/catalog)
	GetCatalogView(ctx echo.Context, params GetCatalogViewParams) error
	// (GET /reports/pending-payment-cohorts)
	GetPendingPaymentCohorts(ctx echo.Context, params GetPendingPaymentCohortsParams) error
	// (GET /reports/sales-rollup)
	GetSalesRollup(ctx echo.Context) error
}

// ServerInterfaceWrapper binds path and query parameters before calling
// the ServerInterface.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) AdvanceOrderStatus(ctx echo.Context) error {
	var orderID string
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return w.Handler.AdvanceOrderStatus(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GenerateInvoice(ctx echo.Context) error {
	var prefix string
	err := runtime.BindStyledParameterWithOptions("simple", "orderIdPrefix", ctx.Param("orderIdPrefix"), &prefix,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderIdPrefix: %s", err))
	}
	return w.Handler.GenerateInvoice(ctx, prefix)
}

func (w *ServerInterfaceWrapper) GetOrderDetails(ctx echo.Context) error {
	var params GetOrderDetailsParams
	if err := runtime.BindQueryParameter("form", true, true, "district", ctx.QueryParams(), &params.District); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter district: %s", err))
	}
	return w.Handler.GetOrderDetails(ctx, params)
}

func (w *ServerInterfaceWrapper) GetPartyDirectory(ctx echo.Context) error {
	var params GetPartyDirectoryParams
	if err := runtime.BindQueryParameter("form", true, false, "cities", ctx.QueryParams(), &params.Cities); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter cities: %s", err))
	}
	return w.Handler.GetPartyDirectory(ctx, params)
}

func (w *ServerInterfaceWrapper) GetCatalogView(ctx echo.Context) error {
	var params GetCatalogViewParams
	if err := runtime.BindQueryParameter("form", true, false, "categories", ctx.QueryParams(), &params.Categories); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter categories: %s", err))
	}
	return w.Handler.GetCatalogView(ctx, params)
}

func (w *ServerInterfaceWrapper) GetPendingPaymentCohorts(ctx echo.Context) error {
	var params GetPendingPaymentCohortsParams
	if err := runtime.BindQueryParameter("form", true, false, "months", ctx.QueryParams(), &params.Months); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter months: %s", err))
	}
	return w.Handler.GetPendingPaymentCohorts(ctx, params)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL adds every operation to router.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/users", si.AddUser)
	router.POST(baseURL+"/customers", si.AddCustomer)
	router.POST(baseURL+"/sellers", si.AddSeller)
	router.POST(baseURL+"/employees", si.AddEmployee)
	router.POST(baseURL+"/categories", si.AddProductCategory)
	router.POST(baseURL+"/products", si.AddProduct)
	router.POST(baseURL+"/warehouses", si.AddWarehouse)
	router.POST(baseURL+"/orders", si.PlaceOrder)
	router.POST(baseURL+"/orders/:orderId/advance", w.AdvanceOrderStatus)
	router.GET(baseURL+"/invoices/:orderIdPrefix", w.GenerateInvoice)
	router.GET(baseURL+"/reports/order-details", w.GetOrderDetails)
	router.GET(baseURL+"/reports/parties", w.GetPartyDirectory)
	router.GET(baseURL+"/reports/catalog", w.GetCatalogView)
	router.GET(baseURL+"/reports/pending-payment-cohorts", w.GetPendingPaymentCohorts)
	router.GET(baseURL+"/reports/sales-rollup", si.GetSalesRollup)
}
