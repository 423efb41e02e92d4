package queries_test

import (
	"context"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shipping"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByPrefix(ctx context.Context, prefix string) ([]*order.Order, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

type MockRoleBindingRepository struct{ mock.Mock }

func (m *MockRoleBindingRepository) Add(ctx context.Context, b *user.Binding) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockRoleBindingRepository) Get(ctx context.Context, role user.Role, id string) (*user.Binding, error) {
	args := m.Called(ctx, role, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Binding), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockShippingRepository struct{ mock.Mock }

func (m *MockShippingRepository) Add(ctx context.Context, s *shipping.Shipping) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShippingRepository) Get(ctx context.Context, id string) (*shipping.Shipping, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.Shipping), args.Error(1)
}

func (m *MockShippingRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *catalog.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id string) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) GetForUpdate(ctx context.Context, id string) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}

type invoiceMocks struct {
	orders    *MockOrderRepository
	bindings  *MockRoleBindingRepository
	users     *MockUserRepository
	shippings *MockShippingRepository
	products  *MockProductRepository
}

func newInvoiceMocks() *invoiceMocks {
	return &invoiceMocks{
		orders:    &MockOrderRepository{},
		bindings:  &MockRoleBindingRepository{},
		users:     &MockUserRepository{},
		shippings: &MockShippingRepository{},
		products:  &MockProductRepository{},
	}
}

func (m *invoiceMocks) Create() queries.InvoiceRepositories { return m }

func (m *invoiceMocks) OrderRepository() ports.OrderRepository             { return m.orders }
func (m *invoiceMocks) RoleBindingRepository() ports.RoleBindingRepository { return m.bindings }
func (m *invoiceMocks) UserRepository() ports.UserRepository               { return m.users }
func (m *invoiceMocks) ShippingRepository() ports.ShippingRepository       { return m.shippings }
func (m *invoiceMocks) ProductRepository() ports.ProductRepository         { return m.products }

func (m *invoiceMocks) assertExpectations(t mock.TestingT) {
	m.orders.AssertExpectations(t)
	m.bindings.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.shippings.AssertExpectations(t)
	m.products.AssertExpectations(t)
}
