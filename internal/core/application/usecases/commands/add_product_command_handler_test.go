package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddProductCategoryCommand(t *testing.T) {
	cmd, err := commands.NewAddProductCategoryCommand("CAT001", "Electronics", "Gadgets")
	require.NoError(t, err)
	assert.Equal(t, "CAT001", cmd.Category().ID())

	_, err = commands.NewAddProductCategoryCommand("", "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAddProductCategoryCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddProductCategoryCommand("CAT001", "Electronics", "Gadgets")
	require.NoError(t, err)

	categories := new(MockCategoryRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory[commands.CategoryUoW])

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CategoryRepository").Return(categories).Once(),
		categories.On("Add", ctx, cmd.Category()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	require.NoError(t, commands.NewAddProductCategoryCommandHandler(factory).Handle(ctx, cmd))
	categories.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func newAddProductCommand(t *testing.T) commands.AddProductCommand {
	t.Helper()
	price, err := kernel.MoneyFromString("999.99")
	require.NoError(t, err)
	cmd, err := commands.NewAddProductCommand("P001", "Laptop", price, "CAT001", 50, catalog.Available, "S001")
	require.NoError(t, err)
	return cmd
}

func TestNewAddProductCommand_Invalid(t *testing.T) {
	_, err := commands.NewAddProductCommand("P001", "Laptop", kernel.Money{}, "", -5, catalog.UnknownStatus, "S001")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "money must be created")
	assert.Contains(t, err.Error(), "categoryid")
	assert.Contains(t, err.Error(), "-5 is negative")
	assert.Contains(t, err.Error(), "status is invalid")
}

type addProductMocks struct {
	categories *MockCategoryRepository
	bindings   *MockRoleBindingRepository
	products   *MockProductRepository
	uow        *MockUoW
	factory    *MockUoWFactory[commands.ProductUoW]
}

func newAddProductMocks() addProductMocks {
	m := addProductMocks{
		categories: new(MockCategoryRepository),
		bindings:   new(MockRoleBindingRepository),
		products:   new(MockProductRepository),
		uow:        new(MockUoW),
		factory:    new(MockUoWFactory[commands.ProductUoW]),
	}
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("CategoryRepository").Return(m.categories)
	m.uow.On("RoleBindingRepository").Return(m.bindings)
	m.uow.On("ProductRepository").Return(m.products)
	return m
}

func TestAddProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newAddProductCommand(t)
	category, _ := catalog.NewCategory("CAT001", "Electronics", "Gadgets")
	seller, _ := user.NewBinding(user.Seller, "S001", "U002")
	m := newAddProductMocks()

	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.categories.On("Get", ctx, "CAT001").Return(category, nil).Once(),
		m.bindings.On("Get", ctx, user.Seller, "S001").Return(seller, nil).Once(),
		m.products.On("Add", ctx, mock.MatchedBy(func(p *catalog.Product) bool {
			return p.ID() == "P001" && p.Category().Name() == "Electronics" && p.StockQuantity() == 50
		})).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	require.NoError(t, commands.NewAddProductCommandHandler(m.factory).Handle(ctx, cmd))
	m.products.AssertExpectations(t)
	m.uow.AssertExpectations(t)
}

func TestAddProductCommandHandler_Handle_MissingCategory(t *testing.T) {
	ctx := t.Context()
	m := newAddProductMocks()

	m.uow.On("Begin", ctx).Return(nil).Once()
	m.categories.On("Get", ctx, "CAT001").
		Return(catalog.Category{}, errs.NewObjectNotFoundError("category", "CAT001")).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	err := commands.NewAddProductCommandHandler(m.factory).Handle(ctx, newAddProductCommand(t))

	var refErr *errs.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "category", refErr.Entity)
	assert.Equal(t, "CAT001", refErr.Key)
	m.products.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAddProductCommandHandler_Handle_MissingSeller(t *testing.T) {
	ctx := t.Context()
	category, _ := catalog.NewCategory("CAT001", "Electronics", "")
	m := newAddProductMocks()

	m.uow.On("Begin", ctx).Return(nil).Once()
	m.categories.On("Get", ctx, "CAT001").Return(category, nil).Once()
	m.bindings.On("Get", ctx, user.Seller, "S001").Return(nil, errs.NewObjectNotFoundError("seller", "S001")).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	err := commands.NewAddProductCommandHandler(m.factory).Handle(ctx, newAddProductCommand(t))

	var refErr *errs.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "seller", refErr.Entity)
	m.products.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAddProductCommandHandler_Handle_StoreErrorIsNotAReferenceError(t *testing.T) {
	ctx := t.Context()
	m := newAddProductMocks()
	boom := errors.New("connection reset")

	m.uow.On("Begin", ctx).Return(nil).Once()
	m.categories.On("Get", ctx, "CAT001").Return(catalog.Category{}, boom).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	err := commands.NewAddProductCommandHandler(m.factory).Handle(ctx, newAddProductCommand(t))

	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, errs.ErrReference)
}
