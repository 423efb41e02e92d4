package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/domain/model/shipping"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2025, 5, 30, 9, 15, 0, 0, time.UTC)

type placeOrderMocks struct {
	bindings  *MockRoleBindingRepository
	products  *MockProductRepository
	payments  *MockPaymentRepository
	shippings *MockShippingRepository
	orders    *MockOrderRepository
	sequence  *MockSequenceGenerator
	uow       *MockUoW
	factory   *MockUoWFactory[commands.PlacementUoW]
}

func newPlaceOrderMocks() placeOrderMocks {
	m := placeOrderMocks{
		bindings:  new(MockRoleBindingRepository),
		products:  new(MockProductRepository),
		payments:  new(MockPaymentRepository),
		shippings: new(MockShippingRepository),
		orders:    new(MockOrderRepository),
		sequence:  new(MockSequenceGenerator),
		uow:       new(MockUoW),
		factory:   new(MockUoWFactory[commands.PlacementUoW]),
	}
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("RoleBindingRepository").Return(m.bindings)
	m.uow.On("ProductRepository").Return(m.products)
	m.uow.On("PaymentRepository").Return(m.payments)
	m.uow.On("ShippingRepository").Return(m.shippings)
	m.uow.On("OrderRepository").Return(m.orders)
	return m
}

func (m placeOrderMocks) handler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(m.factory, m.sequence, func() time.Time { return placedAt })
}

// assertNothingWritten checks that no write reached any repository and the
// transaction was never committed.
func (m placeOrderMocks) assertNothingWritten(t *testing.T) {
	t.Helper()
	m.shippings.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	m.payments.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	m.products.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
	m.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	m.uow.AssertCalled(t, "Rollback", mock.Anything)
}

func laptop(t *testing.T, stock int) *catalog.Product {
	t.Helper()
	category, err := catalog.NewCategory("CAT001", "Electronics", "")
	require.NoError(t, err)
	price, err := kernel.MoneyFromString("999.99")
	require.NoError(t, err)
	p, err := catalog.NewProduct("P001", "Laptop", price, category, stock, catalog.Available, "S001")
	require.NoError(t, err)
	return p
}

func placeOrderCommand(t *testing.T, amount string, productIDs []string, quantities []int) commands.PlaceOrderCommand {
	t.Helper()
	m, err := kernel.MoneyFromString(amount)
	require.NoError(t, err)
	pay, err := payment.NewPayment("PAY1", m, payment.Pending)
	require.NoError(t, err)
	addr, err := kernel.NewAddress("7 Kgale View", "Gaborone", "SE")
	require.NoError(t, err)
	ship, err := shipping.NewShipping("S1", "TRK0001", shipping.Pending, addr)
	require.NoError(t, err)
	cmd, err := commands.NewPlaceOrderCommand("C001", productIDs, quantities, pay, ship)
	require.NoError(t, err)
	return cmd
}

func customer(t *testing.T) *user.Binding {
	t.Helper()
	b, err := user.NewBinding(user.Customer, "C001", "U001")
	require.NoError(t, err)
	return b
}

func TestNewPlaceOrderCommand_UnequalArraysRejected(t *testing.T) {
	cmd := placeOrderCommand(t, "999.99", []string{"P001"}, []int{1})

	_, err := commands.NewPlaceOrderCommand("C001", []string{"P001", "P002"}, []int{1}, cmd.Payment(), cmd.Shipping())

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "2 product ids but 1 quantities")
}

func TestNewPlaceOrderCommand_Invalid(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand("", nil, nil, payment.Payment{}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "customerid")
	assert.Contains(t, err.Error(), "line items")
	assert.Contains(t, err.Error(), "Payment must be created")
	assert.Contains(t, err.Error(), "Shipping must be created")
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t, "999.99", []string{"P001"}, []int{1})
	m := newPlaceOrderMocks()

	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.bindings.On("Get", ctx, user.Customer, "C001").Return(customer(t), nil).Once(),
		m.shippings.On("Exists", ctx, "S1").Return(false, nil).Once(),
		m.products.On("GetForUpdate", ctx, "P001").Return(laptop(t, 50), nil).Once(),
		m.sequence.On("Next", ctx, order.SequenceName).Return(int64(1), nil).Once(),
		m.shippings.On("Add", ctx, cmd.Shipping()).Return(nil).Once(),
		m.payments.On("Add", ctx, cmd.Payment()).Return(nil).Once(),
		m.products.On("AdjustStock", ctx, "P001", -1).Return(nil).Once(),
		m.orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID() == "ORD-20250530-000001" &&
				o.Status() == order.Pending &&
				o.PlacedAt().Equal(placedAt) &&
				o.CustomerID() == "C001" &&
				o.ShippingID() == "S1" &&
				o.Payment().ID() == "PAY1" &&
				len(o.Lines()) == 1
		})).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	id, err := m.handler().Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.ID("ORD-20250530-000001"), id)
	m.orders.AssertExpectations(t)
	m.products.AssertExpectations(t)
	m.sequence.AssertExpectations(t)
	m.uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_RepeatedProductIsCheckedAgainstSummedQuantity(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t, "4999.95", []string{"P001", "P001"}, []int{2, 3})

	t.Run("enough stock for the sum", func(t *testing.T) {
		m := newPlaceOrderMocks()
		m.uow.On("Begin", ctx).Return(nil).Once()
		m.bindings.On("Get", ctx, user.Customer, "C001").Return(customer(t), nil).Once()
		m.shippings.On("Exists", ctx, "S1").Return(false, nil).Once()
		m.products.On("GetForUpdate", ctx, "P001").Return(laptop(t, 5), nil).Once()
		m.sequence.On("Next", ctx, order.SequenceName).Return(int64(7), nil).Once()
		m.shippings.On("Add", ctx, mock.Anything).Return(nil).Once()
		m.payments.On("Add", ctx, mock.Anything).Return(nil).Once()
		m.products.On("AdjustStock", ctx, "P001", -5).Return(nil).Once()
		m.orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool { return len(o.Lines()) == 2 })).Return(nil).Once()
		m.uow.On("Commit", ctx).Return(nil).Once()
		m.uow.On("Rollback", ctx).Return(nil).Once()

		id, err := m.handler().Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.ID("ORD-20250530-000007"), id)
		m.products.AssertExpectations(t)
	})

	t.Run("each line fits but the sum does not", func(t *testing.T) {
		m := newPlaceOrderMocks()
		m.uow.On("Begin", ctx).Return(nil).Once()
		m.bindings.On("Get", ctx, user.Customer, "C001").Return(customer(t), nil).Once()
		m.shippings.On("Exists", ctx, "S1").Return(false, nil).Once()
		m.products.On("GetForUpdate", ctx, "P001").Return(laptop(t, 4), nil).Once()
		m.uow.On("Rollback", ctx).Return(nil).Once()

		_, err := m.handler().Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		m.sequence.AssertNotCalled(t, "Next", mock.Anything, mock.Anything)
		m.assertNothingWritten(t)
	})
}

func TestPlaceOrderCommandHandler_Handle_ValidationFailuresLeaveNoEffects(t *testing.T) {
	notFound := func(entity, key string) error { return errs.NewObjectNotFoundError(entity, key) }

	tests := []struct {
		name   string
		amount string
		qty    int
		setup  func(ctx context.Context, m placeOrderMocks)
		check  func(t *testing.T, err error)
	}{
		{
			name:   "absent customer",
			amount: "999.99",
			qty:    1,
			setup: func(ctx context.Context, m placeOrderMocks) {
				m.bindings.On("Get", ctx, user.Customer, "C001").Return(nil, notFound("customer", "C001")).Once()
			},
			check: func(t *testing.T, err error) {
				var refErr *errs.ReferenceError
				require.ErrorAs(t, err, &refErr)
				assert.Equal(t, "customer", refErr.Entity)
			},
		},
		{
			name:   "duplicate shipping id",
			amount: "999.99",
			qty:    1,
			setup: func(ctx context.Context, m placeOrderMocks) {
				m.bindings.On("Get", ctx, user.Customer, "C001").Return(customer(t), nil).Once()
				m.shippings.On("Exists", ctx, "S1").Return(true, nil).Once()
			},
			check: func(t *testing.T, err error) {
				var dupErr *errs.DuplicateKeyError
				require.ErrorAs(t, err, &dupErr)
				assert.Equal(t, "shipping", dupErr.Collection)
				assert.Equal(t, "S1", dupErr.Key)
			},
		},
		{
			name:   "absent product",
			amount: "999.99",
			qty:    1,
			setup: func(ctx context.Context, m placeOrderMocks) {
				m.bindings.On("Get", ctx, user.Customer, "C001").Return(customer(t), nil).Once()
				m.shippings.On("Exists", ctx, "S1").Return(false, nil).Once()
				m.products.On("GetForUpdate", ctx, "P001").Return(nil, notFound("product", "P001")).Once()
			},
			check: func(t *testing.T, err error) {
				var refErr *errs.ReferenceError
				require.ErrorAs(t, err, &refErr)
				assert.Equal(t, "product", refErr.Entity)
			},
		},
		{
			name:   "insufficient stock",
			amount: "50999.49",
			qty:    51,
			setup: func(ctx context.Context, m placeOrderMocks) {
				m.bindings.On("Get", ctx, user.Customer, "C001").Return(customer(t), nil).Once()
				m.shippings.On("Exists", ctx, "S1").Return(false, nil).Once()
				m.products.On("GetForUpdate", ctx, "P001").Return(laptop(t, 50), nil).Once()
			},
			check: func(t *testing.T, err error) {
				var stockErr *errs.InsufficientStockError
				require.ErrorAs(t, err, &stockErr)
				assert.Equal(t, 51, stockErr.Requested)
				assert.Equal(t, 50, stockErr.Available)
			},
		},
		{
			name:   "payment does not cover cost",
			amount: "500.00",
			qty:    1,
			setup: func(ctx context.Context, m placeOrderMocks) {
				m.bindings.On("Get", ctx, user.Customer, "C001").Return(customer(t), nil).Once()
				m.shippings.On("Exists", ctx, "S1").Return(false, nil).Once()
				m.products.On("GetForUpdate", ctx, "P001").Return(laptop(t, 50), nil).Once()
			},
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, errs.ErrPaymentMismatch)
			},
		},
		{
			name:   "store failure while checking shipping",
			amount: "999.99",
			qty:    1,
			setup: func(ctx context.Context, m placeOrderMocks) {
				m.bindings.On("Get", ctx, user.Customer, "C001").Return(customer(t), nil).Once()
				m.shippings.On("Exists", ctx, "S1").Return(false, errors.New("read timeout")).Once()
			},
			check: func(t *testing.T, err error) {
				require.EqualError(t, err, "read timeout")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd := placeOrderCommand(t, tt.amount, []string{"P001"}, []int{tt.qty})
			m := newPlaceOrderMocks()
			m.uow.On("Begin", ctx).Return(nil).Once()
			tt.setup(ctx, m)
			m.uow.On("Rollback", ctx).Return(nil).Once()

			id, err := m.handler().Handle(ctx, cmd)

			tt.check(t, err)
			assert.Empty(t, id)
			m.sequence.AssertNotCalled(t, "Next", mock.Anything, mock.Anything)
			m.assertNothingWritten(t)
		})
	}
}

func TestPlaceOrderCommandHandler_Handle_WriteFailureAfterPartialEffects(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t, "999.99", []string{"P001"}, []int{1})
	m := newPlaceOrderMocks()
	writeErr := errors.New("disk full")

	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.bindings.On("Get", ctx, user.Customer, "C001").Return(customer(t), nil).Once(),
		m.shippings.On("Exists", ctx, "S1").Return(false, nil).Once(),
		m.products.On("GetForUpdate", ctx, "P001").Return(laptop(t, 50), nil).Once(),
		m.sequence.On("Next", ctx, order.SequenceName).Return(int64(3), nil).Once(),
		m.shippings.On("Add", ctx, mock.Anything).Return(nil).Once(),
		m.payments.On("Add", ctx, mock.Anything).Return(nil).Once(),
		m.products.On("AdjustStock", ctx, "P001", -1).Return(writeErr).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	id, err := m.handler().Handle(ctx, cmd)

	require.ErrorIs(t, err, writeErr)
	assert.Empty(t, id)
	m.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	m.sequence.AssertExpectations(t)
	m.uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_SequenceFailure(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t, "999.99", []string{"P001"}, []int{1})
	m := newPlaceOrderMocks()

	m.uow.On("Begin", ctx).Return(nil).Once()
	m.bindings.On("Get", ctx, user.Customer, "C001").Return(customer(t), nil).Once()
	m.shippings.On("Exists", ctx, "S1").Return(false, nil).Once()
	m.products.On("GetForUpdate", ctx, "P001").Return(laptop(t, 50), nil).Once()
	m.sequence.On("Next", ctx, order.SequenceName).
		Return(int64(0), errs.NewObjectNotFoundError("sequence", order.SequenceName)).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := m.handler().Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	m.assertNothingWritten(t)
}

func TestPlaceOrderCommandHandler_Handle_CancelledBeforeCommit(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	cmd := placeOrderCommand(t, "999.99", []string{"P001"}, []int{1})
	m := newPlaceOrderMocks()

	m.uow.On("Begin", ctx).Return(nil).Once()
	m.bindings.On("Get", ctx, user.Customer, "C001").Return(customer(t), nil).Once()
	m.shippings.On("Exists", ctx, "S1").Return(false, nil).Once()
	m.products.On("GetForUpdate", ctx, "P001").Return(laptop(t, 50), nil).Once()
	m.sequence.On("Next", ctx, order.SequenceName).Return(int64(1), nil).Once()
	m.shippings.On("Add", ctx, mock.Anything).Return(nil).Once()
	m.payments.On("Add", ctx, mock.Anything).Return(nil).Once()
	m.products.On("AdjustStock", ctx, "P001", -1).Return(nil).Once()
	m.orders.On("Add", ctx, mock.Anything).Run(func(mock.Arguments) { cancel() }).Return(nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	id, err := m.handler().Handle(ctx, cmd)

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, id)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	m.uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_BeginAndCommitErrors(t *testing.T) {
	t.Run("begin", func(t *testing.T) {
		ctx := t.Context()
		m := newPlaceOrderMocks()
		m.uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

		_, err := m.handler().Handle(ctx, placeOrderCommand(t, "999.99", []string{"P001"}, []int{1}))

		require.EqualError(t, err, "begin error")
		m.uow.AssertNotCalled(t, "Rollback", mock.Anything)
	})

	t.Run("zero command", func(t *testing.T) {
		m := newPlaceOrderMocks()

		_, err := m.handler().Handle(t.Context(), commands.PlaceOrderCommand{})

		require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
		m.factory.AssertNotCalled(t, "Create")
	})
}
