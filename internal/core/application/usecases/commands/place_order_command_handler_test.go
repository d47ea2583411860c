package commands_test

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllInCreatedStatusOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPlacementUoW struct{ mock.Mock }

func (m *MockPlacementUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlacementUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlacementUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlacementUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockPlacementUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockPlacementUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockPlacementUoWFactory struct{ mock.Mock }

func (m *MockPlacementUoWFactory) Create() commands.PlacementUoW {
	args := m.Called()
	return args.Get(0).(commands.PlacementUoW)
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	teaID := kernel.NewUUID()
	coffeeID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, order.PaymentMethodCard, "maria@example.com",
		[]commands.OrderLine{
			mustNewOrderLine(t, teaID, 2),
			mustNewOrderLine(t, coffeeID, 1),
		})
	require.NoError(t, err)

	existingCustomer := mustNewCustomer(t, customerID)
	tea := mustNewProduct(t, teaID, "Green Tea", "12.50", 10)
	coffee := mustNewProduct(t, coffeeID, "Coffee", "9.75", 5)
	expectedTotal := mustNewMoneyFromString(t, "34.75")

	customerRepo := new(MockCustomerRepository)
	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockPlacementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).Return(existingCustomer, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetForUpdate", mock.Anything, teaID).Return(tea, nil).Once(),
		productRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *product.Product) bool {
			return p.ID() == teaID && p.Stock() == 8
		})).Return(nil).Once(),
		productRepo.On("GetForUpdate", mock.Anything, coffeeID).Return(coffee, nil).Once(),
		productRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *product.Product) bool {
			return p.ID() == coffeeID && p.Stock() == 4
		})).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			if o.ID() != orderID || o.Status() != order.Created || len(o.Items()) != 2 {
				return false
			}
			equal, eqErr := o.Total().IsEqual(expectedTotal)
			return eqErr == nil && equal && o.Items()[0].ProductName() == "Green Tea"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	customerRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{}
	factory := new(MockPlacementUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestPlaceOrderCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customerID, order.PaymentMethodCash, "maria@example.com",
		[]commands.OrderLine{mustNewOrderLine(t, kernel.NewUUID(), 1)})
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockPlacementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).
			Return(nil, errs.NewObjectNotFoundError("customer", customerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	teaID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customerID, order.PaymentMethodCash, "maria@example.com",
		[]commands.OrderLine{mustNewOrderLine(t, teaID, 6)})
	require.NoError(t, err)

	existingCustomer := mustNewCustomer(t, customerID)
	tea := mustNewProduct(t, teaID, "Green Tea", "12.50", 5)

	customerRepo := new(MockCustomerRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockPlacementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).Return(existingCustomer, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetForUpdate", mock.Anything, teaID).Return(tea, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, product.ErrInsufficientStock)
	productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_InactiveProduct(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	teaID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customerID, order.PaymentMethodCash, "maria@example.com",
		[]commands.OrderLine{mustNewOrderLine(t, teaID, 1)})
	require.NoError(t, err)

	existingCustomer := mustNewCustomer(t, customerID)
	tea, err := product.NewProduct(teaID, "Green Tea", "Beverages", mustNewMoneyFromString(t, "12.50"), 5, false)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockPlacementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).Return(existingCustomer, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetForUpdate", mock.Anything, teaID).Return(tea, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrProductNotAvailable)
	require.Equal(t, 5, tea.Stock())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_SecondLineFailureAbortsAll(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	teaID := kernel.NewUUID()
	coffeeID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customerID, order.PaymentMethodCash, "maria@example.com",
		[]commands.OrderLine{
			mustNewOrderLine(t, teaID, 2),
			mustNewOrderLine(t, coffeeID, 3),
		})
	require.NoError(t, err)

	existingCustomer := mustNewCustomer(t, customerID)
	tea := mustNewProduct(t, teaID, "Green Tea", "12.50", 10)
	coffee := mustNewProduct(t, coffeeID, "Coffee", "9.75", 2)

	customerRepo := new(MockCustomerRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockPlacementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).Return(existingCustomer, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetForUpdate", mock.Anything, teaID).Return(tea, nil).Once(),
		productRepo.On("Update", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		productRepo.On("GetForUpdate", mock.Anything, coffeeID).Return(coffee, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, product.ErrInsufficientStock)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
