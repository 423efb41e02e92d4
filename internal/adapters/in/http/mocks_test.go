package http_test

import (
	"context"

	api "marketplace/internal/adapters/in/http"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockAddUser struct{ mock.Mock }

func (m *MockAddUser) Handle(ctx context.Context, cmd commands.AddUserCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAddRoleBinding struct{ mock.Mock }

func (m *MockAddRoleBinding) Handle(ctx context.Context, cmd commands.AddRoleBindingCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAddProductCategory struct{ mock.Mock }

func (m *MockAddProductCategory) Handle(ctx context.Context, cmd commands.AddProductCategoryCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAddProduct struct{ mock.Mock }

func (m *MockAddProduct) Handle(ctx context.Context, cmd commands.AddProductCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAddWarehouse struct{ mock.Mock }

func (m *MockAddWarehouse) Handle(ctx context.Context, cmd commands.AddWarehouseCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockPlaceOrder struct{ mock.Mock }

func (m *MockPlaceOrder) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (order.ID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.ID), args.Error(1)
}

type MockAdvanceOrderStatus struct{ mock.Mock }

func (m *MockAdvanceOrderStatus) Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) (order.Status, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.Status), args.Error(1)
}

type MockGenerateInvoice struct{ mock.Mock }

func (m *MockGenerateInvoice) Handle(ctx context.Context, q queries.GenerateInvoiceQuery) string {
	return m.Called(ctx, q).String(0)
}

type MockOrderDetails struct{ mock.Mock }

func (m *MockOrderDetails) Handle(ctx context.Context, q queries.OrderDetailsQuery) ([]queries.OrderDetailsQueryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]queries.OrderDetailsQueryResponse), args.Error(1)
}

type MockPartyDirectory struct{ mock.Mock }

func (m *MockPartyDirectory) Handle(ctx context.Context, q queries.PartyDirectoryQuery) ([]queries.PartyDirectoryQueryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]queries.PartyDirectoryQueryResponse), args.Error(1)
}

type MockCatalogView struct{ mock.Mock }

func (m *MockCatalogView) Handle(ctx context.Context, q queries.CatalogViewQuery) ([]queries.CatalogViewQueryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]queries.CatalogViewQueryResponse), args.Error(1)
}

type MockPendingPaymentCohort struct{ mock.Mock }

func (m *MockPendingPaymentCohort) Handle(
	ctx context.Context,
	q queries.PendingPaymentCohortQuery,
) ([]queries.PendingPaymentCohortQueryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]queries.PendingPaymentCohortQueryResponse), args.Error(1)
}

type MockSalesRollup struct{ mock.Mock }

func (m *MockSalesRollup) Handle(ctx context.Context, q queries.SalesRollupQuery) ([]queries.SalesRollupQueryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]queries.SalesRollupQueryResponse), args.Error(1)
}

type handlerMocks struct {
	addUser            *MockAddUser
	addRoleBinding     *MockAddRoleBinding
	addProductCategory *MockAddProductCategory
	addProduct         *MockAddProduct
	addWarehouse       *MockAddWarehouse
	placeOrder         *MockPlaceOrder
	advance            *MockAdvanceOrderStatus
	invoice            *MockGenerateInvoice
	orderDetails       *MockOrderDetails
	parties            *MockPartyDirectory
	catalog            *MockCatalogView
	cohorts            *MockPendingPaymentCohort
	rollup             *MockSalesRollup
}

func newHandlerMocks() *handlerMocks {
	return &handlerMocks{
		addUser:            &MockAddUser{},
		addRoleBinding:     &MockAddRoleBinding{},
		addProductCategory: &MockAddProductCategory{},
		addProduct:         &MockAddProduct{},
		addWarehouse:       &MockAddWarehouse{},
		placeOrder:         &MockPlaceOrder{},
		advance:            &MockAdvanceOrderStatus{},
		invoice:            &MockGenerateInvoice{},
		orderDetails:       &MockOrderDetails{},
		parties:            &MockPartyDirectory{},
		catalog:            &MockCatalogView{},
		cohorts:            &MockPendingPaymentCohort{},
		rollup:             &MockSalesRollup{},
	}
}

func (m *handlerMocks) handlers() api.Handlers {
	return api.Handlers{
		AddUser:              m.addUser,
		AddRoleBinding:       m.addRoleBinding,
		AddProductCategory:   m.addProductCategory,
		AddProduct:           m.addProduct,
		AddWarehouse:         m.addWarehouse,
		PlaceOrder:           m.placeOrder,
		AdvanceOrderStatus:   m.advance,
		GenerateInvoice:      m.invoice,
		OrderDetails:         m.orderDetails,
		PartyDirectory:       m.parties,
		CatalogView:          m.catalog,
		PendingPaymentCohort: m.cohorts,
		SalesRollup:          m.rollup,
	}
}
