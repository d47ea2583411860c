package commands_test

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/audit"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Add(ctx context.Context, r *audit.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockOrderStatusUoW struct{ mock.Mock }

func (m *MockOrderStatusUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderStatusUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderStatusUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderStatusUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderStatusUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockOrderStatusUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockOrderStatusUoWFactory struct{ mock.Mock }

func (m *MockOrderStatusUoWFactory) Create() commands.OrderStatusUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderStatusUoW)
}

func mustRestoreOrder(t *testing.T, orderID kernel.UUID, status order.Status, items ...order.LineItem) *order.Order {
	t.Helper()

	if len(items) == 0 {
		item, err := order.NewLineItem(kernel.NewUUID(), "Green Tea", 1, mustNewMoneyFromString(t, "12.50"))
		require.NoError(t, err)
		items = []order.LineItem{item}
	}

	aggregate, err := order.RestoreOrder(
		orderID, kernel.NewUUID(), "maria@example.com", order.PaymentMethodCash,
		status, time.Now().UTC().Add(-time.Hour), items)
	require.NoError(t, err)

	return aggregate
}

func TestChangeOrderStatusCommandHandler_Handle_MarkPaid(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(orderID, order.Paid, "admin@example.com")

	existing := mustRestoreOrder(t, orderID, order.Created)

	orderRepo := new(MockOrderRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockOrderStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(existing, nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID() == orderID && o.Status() == order.Paid
		})).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.MatchedBy(func(r *audit.Record) bool {
			return r.EntityType() == audit.EntityTypeOrder &&
				r.EntityID() == orderID &&
				r.Action() == audit.ActionUpdateOrderStatus &&
				r.Actor() == "admin@example.com"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	uow.AssertNotCalled(t, "ProductRepository")
	orderRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_AuditSnapshotsStatuses(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(orderID, order.Shipped, "admin@example.com")

	existing := mustRestoreOrder(t, orderID, order.Paid)

	orderRepo := new(MockOrderRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockOrderStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(existing, nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.MatchedBy(func(r *audit.Record) bool {
			return r.BeforeJSON() == `{"status":"Paid"}` &&
				r.AfterJSON() == `{"status":"Shipped"}`
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	auditRepo.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CancelRestocksItems(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	teaID := kernel.NewUUID()
	coffeeID := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(orderID, order.Cancelled, "admin@example.com")

	teaItem, err := order.NewLineItem(teaID, "Green Tea", 2, mustNewMoneyFromString(t, "12.50"))
	require.NoError(t, err)
	coffeeItem, err := order.NewLineItem(coffeeID, "Coffee", 3, mustNewMoneyFromString(t, "9.75"))
	require.NoError(t, err)
	existing := mustRestoreOrder(t, orderID, order.Created, teaItem, coffeeItem)

	tea := mustNewProduct(t, teaID, "Green Tea", "12.50", 8)
	coffee := mustNewProduct(t, coffeeID, "Coffee", "9.75", 2)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockOrderStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(existing, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetForUpdate", mock.Anything, teaID).Return(tea, nil).Once(),
		productRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *product.Product) bool {
			return p.ID() == teaID && p.Stock() == 10
		})).Return(nil).Once(),
		productRepo.On("GetForUpdate", mock.Anything, coffeeID).Return(coffee, nil).Once(),
		productRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *product.Product) bool {
			return p.ID() == coffeeID && p.Stock() == 5
		})).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Cancelled
		})).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Record")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CancelSkipsDeletedProducts(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	goneID := kernel.NewUUID()
	teaID := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(orderID, order.Cancelled, "admin@example.com")

	goneItem, err := order.NewLineItem(goneID, "Discontinued", 1, mustNewMoneyFromString(t, "3.00"))
	require.NoError(t, err)
	teaItem, err := order.NewLineItem(teaID, "Green Tea", 2, mustNewMoneyFromString(t, "12.50"))
	require.NoError(t, err)
	existing := mustRestoreOrder(t, orderID, order.Created, goneItem, teaItem)

	tea := mustNewProduct(t, teaID, "Green Tea", "12.50", 8)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockOrderStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(existing, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetForUpdate", mock.Anything, goneID).
			Return(nil, errs.NewObjectNotFoundError("product", goneID)).Once(),
		productRepo.On("GetForUpdate", mock.Anything, teaID).Return(tea, nil).Once(),
		productRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *product.Product) bool {
			return p.ID() == teaID && p.Stock() == 10
		})).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Record")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(orderID, order.Cancelled, "admin@example.com")

	existing := mustRestoreOrder(t, orderID, order.Shipped)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	require.Equal(t, order.Shipped, existing.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "ProductRepository")
	uow.AssertNotCalled(t, "AuditRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(orderID, order.Paid, "admin@example.com")

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderStatusUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
