package order_test

import (
	"fmt"
	"testing"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewLineItem(t *testing.T, name string, quantity int, unitPrice string) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), name, quantity, mustNewMoneyFromString(t, unitPrice))
	require.NoError(t, err)
	return item
}

func mustNewOrder(t *testing.T, items ...order.LineItem) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []order.LineItem{mustNewLineItem(t, "Green Tea", 1, "10.00")}
	}
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "admin@example.com", order.PaymentMethodCash, items)
	require.NoError(t, err)
	return aggregate
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order with valid parameters", func(t *testing.T) {
		orderID := kernel.NewUUID()
		customerID := kernel.NewUUID()
		items := []order.LineItem{mustNewLineItem(t, "Green Tea", 3, "10.00")}

		aggregate, err := order.NewOrder(orderID, customerID, "admin@example.com", order.PaymentMethodCash, items)

		require.NoError(t, err)
		require.NotNil(t, aggregate)
		assert.True(t, aggregate.ID().IsEqual(orderID))
		assert.True(t, aggregate.CustomerID().IsEqual(customerID))
		assert.Equal(t, "admin@example.com", aggregate.PlacedBy())
		assert.Equal(t, order.PaymentMethodCash, aggregate.PaymentMethod())
		assert.Equal(t, order.Created, aggregate.Status())
		assert.Len(t, aggregate.Items(), 1)
		assert.False(t, aggregate.PlacedAt().IsZero())
		require.NoError(t, aggregate.Validate())
	})

	t.Run("should compute total as sum of line subtotals", func(t *testing.T) {
		items := []order.LineItem{
			mustNewLineItem(t, "Green Tea", 3, "10.00"),
			mustNewLineItem(t, "Black Tea", 2, "7.50"),
			mustNewLineItem(t, "Honey", 1, "4.25"),
		}

		aggregate, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "admin@example.com", order.PaymentMethodCard, items)

		require.NoError(t, err)
		assert.Equal(t, "49.25", aggregate.Total().String())
	})

	t.Run("should compute total for single line order", func(t *testing.T) {
		items := []order.LineItem{mustNewLineItem(t, "Green Tea", 3, "10.00")}

		aggregate, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "admin@example.com", order.PaymentMethodCash, items)

		require.NoError(t, err)
		assert.Equal(t, "30.00", aggregate.Total().String())
	})

	t.Run("should return error with unconstructed order ID", func(t *testing.T) {
		var orderID kernel.UUID
		items := []order.LineItem{mustNewLineItem(t, "Green Tea", 1, "10.00")}

		_, err := order.NewOrder(orderID, kernel.NewUUID(), "admin@example.com", order.PaymentMethodCash, items)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should return error with unconstructed customer ID", func(t *testing.T) {
		var customerID kernel.UUID
		items := []order.LineItem{mustNewLineItem(t, "Green Tea", 1, "10.00")}

		_, err := order.NewOrder(kernel.NewUUID(), customerID, "admin@example.com", order.PaymentMethodCash, items)

		require.Error(t, err)
	})

	t.Run("should return error with empty placed by", func(t *testing.T) {
		items := []order.LineItem{mustNewLineItem(t, "Green Tea", 1, "10.00")}

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", order.PaymentMethodCash, items)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "placedBy is required")
	})

	t.Run("should return error with invalid payment method", func(t *testing.T) {
		items := []order.LineItem{mustNewLineItem(t, "Green Tea", 1, "10.00")}

		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "admin@example.com", order.PaymentMethodUnknown, items)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "paymentMethod is invalid")
	})

	t.Run("should return error with no items", func(t *testing.T) {
		testCases := []struct {
			name  string
			items []order.LineItem
		}{
			{"nil items", nil},
			{"empty items", []order.LineItem{}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewOrder(
					kernel.NewUUID(), kernel.NewUUID(), "admin@example.com", order.PaymentMethodCash, tc.items)

				require.Error(t, err)
				assert.Contains(t, err.Error(), "order items are required")
			})
		}
	})

	t.Run("should return error with unconstructed item", func(t *testing.T) {
		items := []order.LineItem{
			mustNewLineItem(t, "Green Tea", 1, "10.00"),
			{},
		}

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "admin@example.com", order.PaymentMethodCash, items)

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with stored state", func(t *testing.T) {
		orderID := kernel.NewUUID()
		customerID := kernel.NewUUID()
		placedAt := time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC)
		items := []order.LineItem{mustNewLineItem(t, "Green Tea", 3, "10.00")}

		aggregate, err := order.RestoreOrder(
			orderID, customerID, "admin@example.com", order.PaymentMethodCard, order.Paid, placedAt, items)

		require.NoError(t, err)
		assert.True(t, aggregate.ID().IsEqual(orderID))
		assert.Equal(t, order.Paid, aggregate.Status())
		assert.Equal(t, placedAt, aggregate.PlacedAt())
		assert.Equal(t, "30.00", aggregate.Total().String())
		require.NoError(t, aggregate.Validate())
	})

	t.Run("should restore order in any valid status", func(t *testing.T) {
		statuses := []order.Status{order.Created, order.Paid, order.Shipped, order.Cancelled}

		for _, status := range statuses {
			t.Run(fmt.Sprintf("should restore %s order", status), func(t *testing.T) {
				items := []order.LineItem{mustNewLineItem(t, "Green Tea", 1, "10.00")}

				aggregate, err := order.RestoreOrder(
					kernel.NewUUID(), kernel.NewUUID(), "admin@example.com",
					order.PaymentMethodCash, status, time.Now().UTC(), items)

				require.NoError(t, err)
				assert.Equal(t, status, aggregate.Status())
			})
		}
	})

	t.Run("should return error with invalid status", func(t *testing.T) {
		items := []order.LineItem{mustNewLineItem(t, "Green Tea", 1, "10.00")}

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "admin@example.com",
			order.PaymentMethodCash, order.Unknown, time.Now().UTC(), items)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should return error with zero placed at", func(t *testing.T) {
		items := []order.LineItem{mustNewLineItem(t, "Green Tea", 1, "10.00")}

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "admin@example.com",
			order.PaymentMethodCash, order.Created, time.Time{}, items)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "placedAt is required")
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should allow valid transitions", func(t *testing.T) {
		validPairs := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Created, order.Paid},
			{order.Created, order.Shipped},
			{order.Created, order.Cancelled},
			{order.Paid, order.Shipped},
			{order.Paid, order.Cancelled},
			{order.Shipped, order.Paid},
		}

		for _, pair := range validPairs {
			t.Run(fmt.Sprintf("%s to %s", pair.from, pair.to), func(t *testing.T) {
				items := []order.LineItem{mustNewLineItem(t, "Green Tea", 1, "10.00")}
				aggregate, err := order.RestoreOrder(
					kernel.NewUUID(), kernel.NewUUID(), "admin@example.com",
					order.PaymentMethodCash, pair.from, time.Now().UTC(), items)
				require.NoError(t, err)

				err = aggregate.ChangeStatus(pair.to)

				require.NoError(t, err)
				assert.Equal(t, pair.to, aggregate.Status())
			})
		}
	})

	t.Run("should reject invalid transitions and keep state unchanged", func(t *testing.T) {
		invalidPairs := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Created, order.Created},
			{order.Paid, order.Created},
			{order.Shipped, order.Created},
			{order.Shipped, order.Shipped},
			{order.Shipped, order.Cancelled},
			{order.Cancelled, order.Created},
			{order.Cancelled, order.Paid},
			{order.Cancelled, order.Shipped},
			{order.Cancelled, order.Cancelled},
		}

		for _, pair := range invalidPairs {
			t.Run(fmt.Sprintf("%s to %s", pair.from, pair.to), func(t *testing.T) {
				items := []order.LineItem{mustNewLineItem(t, "Green Tea", 1, "10.00")}
				aggregate, err := order.RestoreOrder(
					kernel.NewUUID(), kernel.NewUUID(), "admin@example.com",
					order.PaymentMethodCash, pair.from, time.Now().UTC(), items)
				require.NoError(t, err)

				err = aggregate.ChangeStatus(pair.to)

				require.Error(t, err)
				require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
				assert.Equal(t, pair.from, aggregate.Status(), "failed transition must not change state")
			})
		}
	})

	t.Run("should reject status change on nil order", func(t *testing.T) {
		var aggregate *order.Order

		err := aggregate.ChangeStatus(order.Paid)

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel created order", func(t *testing.T) {
		aggregate := mustNewOrder(t)

		err := aggregate.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, aggregate.Status())
	})

	t.Run("should cancel paid order", func(t *testing.T) {
		items := []order.LineItem{mustNewLineItem(t, "Green Tea", 1, "10.00")}
		aggregate, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "admin@example.com",
			order.PaymentMethodCash, order.Paid, time.Now().UTC(), items)
		require.NoError(t, err)

		require.NoError(t, aggregate.Cancel())
		assert.Equal(t, order.Cancelled, aggregate.Status())
	})

	t.Run("should not cancel shipped order", func(t *testing.T) {
		items := []order.LineItem{mustNewLineItem(t, "Green Tea", 1, "10.00")}
		aggregate, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "admin@example.com",
			order.PaymentMethodCash, order.Shipped, time.Now().UTC(), items)
		require.NoError(t, err)

		err = aggregate.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Shipped, aggregate.Status())
	})

	t.Run("should not cancel order twice", func(t *testing.T) {
		aggregate := mustNewOrder(t)

		require.NoError(t, aggregate.Cancel())

		err := aggregate.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Cancelled, aggregate.Status())
	})
}

func TestOrder_Items(t *testing.T) {
	t.Run("should return defensive copy of items", func(t *testing.T) {
		aggregate := mustNewOrder(t,
			mustNewLineItem(t, "Green Tea", 3, "10.00"),
			mustNewLineItem(t, "Black Tea", 2, "7.50"))

		items := aggregate.Items()
		require.Len(t, items, 2)
		items[0] = order.LineItem{}

		fresh := aggregate.Items()
		assert.Equal(t, "Green Tea", fresh[0].ProductName())
		require.NoError(t, fresh[0].Validate())
	})

	t.Run("mutating the input slice should not affect the order", func(t *testing.T) {
		items := []order.LineItem{mustNewLineItem(t, "Green Tea", 3, "10.00")}

		aggregate, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "admin@example.com", order.PaymentMethodCash, items)
		require.NoError(t, err)

		items[0] = order.LineItem{}

		kept := aggregate.Items()
		assert.Equal(t, "Green Tea", kept[0].ProductName())
	})

	t.Run("total stays fixed after construction", func(t *testing.T) {
		aggregate := mustNewOrder(t, mustNewLineItem(t, "Green Tea", 3, "10.00"))

		require.NoError(t, aggregate.ChangeStatus(order.Paid))
		require.NoError(t, aggregate.ChangeStatus(order.Shipped))

		assert.Equal(t, "30.00", aggregate.Total().String())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should validate constructed order", func(t *testing.T) {
		aggregate := mustNewOrder(t)

		require.NoError(t, aggregate.Validate())
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var aggregate *order.Order

		err := aggregate.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should reject zero value order", func(t *testing.T) {
		aggregate := &order.Order{}

		err := aggregate.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should be equal to itself", func(t *testing.T) {
		aggregate := mustNewOrder(t)

		assert.True(t, aggregate.IsEqual(aggregate))
	})

	t.Run("should not be equal to order with different ID", func(t *testing.T) {
		first := mustNewOrder(t)
		second := mustNewOrder(t)

		assert.False(t, first.IsEqual(second))
	})

	t.Run("should be equal to restored order with same ID", func(t *testing.T) {
		first := mustNewOrder(t)

		second, err := order.RestoreOrder(
			first.ID(), first.CustomerID(), first.PlacedBy(),
			first.PaymentMethod(), first.Status(), first.PlacedAt(), first.Items())
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
	})
}
