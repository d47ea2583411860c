package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"backoffice/internal/adapters/out/pdf"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// PlaceOrder creates an order. An administrator may place it for any
// customer by passing customer_id. Other callers always order for their own
// customer profile, whatever the body says.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return respondStatus(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	var request placeOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid request body")
	}

	var customerID kernel.UUID
	if identity.IsAdmin() {
		customerID, err = kernel.UUIDFromString(request.CustomerID)
		if err != nil {
			return respondStatus(ctx, http.StatusBadRequest, "invalid customer id")
		}
	} else {
		if identity.CustomerID == nil {
			return respondStatus(ctx, http.StatusForbidden, "account has no customer profile")
		}
		customerID = *identity.CustomerID
	}

	paymentMethod, err := order.PaymentMethodFromString(request.PaymentMethod)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	lines := make([]commands.OrderLine, 0, len(request.Lines))
	for _, line := range request.Lines {
		productID, err := kernel.UUIDFromString(line.ProductID)
		if err != nil {
			return respondStatus(ctx, http.StatusBadRequest, "invalid product id")
		}

		orderLine, err := commands.NewOrderLine(productID, line.Quantity)
		if err != nil {
			return respondBadRequest(ctx, err)
		}

		lines = append(lines, orderLine)
	}

	orderID := kernel.NewUUID()

	command, err := commands.NewPlaceOrderCommand(orderID, customerID,
		paymentMethod, identity.Email, lines)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.deps.PlaceOrder.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.deps.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(orders))
}

// GetMyOrders lists the orders of the caller's own customer profile. An
// account without one, such as an administrator, simply has no orders.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return respondStatus(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	if identity.CustomerID == nil {
		return ctx.JSON(http.StatusOK, []customerOrderResponse{})
	}

	query, err := queries.NewGetCustomerOrdersQuery(*identity.CustomerID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	orders, err := s.deps.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerOrderResponses(orders))
}

func (s *Server) GetOrderDetails(ctx echo.Context) error {
	details, err := s.loadOrderForCaller(ctx)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrderDetailsResponse(details))
}

// GetOrderInvoice renders the order as a PDF invoice download.
func (s *Server) GetOrderInvoice(ctx echo.Context) error {
	details, err := s.loadOrderForCaller(ctx)
	if err != nil {
		return err
	}

	document, err := s.deps.InvoiceRenderer.Render(toInvoice(details))
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="invoice_%s.pdf"`, details.ID.String()))

	return ctx.Blob(http.StatusOK, "application/pdf", document)
}

// loadOrderForCaller fetches an order and enforces that the caller is an
// administrator or the customer the order belongs to. On failure it writes
// the error response and returns a non-nil error so callers just return it.
func (s *Server) loadOrderForCaller(ctx echo.Context) (queries.GetOrderDetailsQueryResponse, error) {
	identity, err := identityFrom(ctx)
	if err != nil {
		return queries.GetOrderDetailsQueryResponse{},
			respondStatus(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return queries.GetOrderDetailsQueryResponse{},
			respondStatus(ctx, http.StatusBadRequest, "invalid order id")
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID)
	if err != nil {
		return queries.GetOrderDetailsQueryResponse{}, respondBadRequest(ctx, err)
	}

	details, err := s.deps.GetOrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queries.GetOrderDetailsQueryResponse{}, respondError(ctx, err)
	}

	if !identity.IsAdmin() {
		if identity.CustomerID == nil || !identity.CustomerID.IsEqual(details.CustomerID) {
			return queries.GetOrderDetailsQueryResponse{},
				respondStatus(ctx, http.StatusForbidden, "access to this order is denied")
		}
	}

	return details, nil
}

func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return respondStatus(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid order id")
	}

	var request changeOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid request body")
	}

	newStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	command, err := commands.NewChangeOrderStatusCommand(orderID, newStatus, identity.Email)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.deps.ChangeOrderStatus.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) GetOrderAudit(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid order id")
	}

	query, err := queries.NewGetOrderAuditQuery(orderID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	records, err := s.deps.GetOrderAudit.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAuditRecordResponses(records))
}

func toInvoice(details queries.GetOrderDetailsQueryResponse) pdf.Invoice {
	lines := make([]pdf.InvoiceLine, 0, len(details.Items))
	for _, item := range details.Items {
		lines = append(lines, pdf.InvoiceLine{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}

	return pdf.Invoice{
		OrderID:       details.ID,
		Status:        details.Status.String(),
		PaymentMethod: details.PaymentMethod.String(),
		PlacedBy:      details.PlacedBy,
		PlacedAt:      details.PlacedAt,
		CustomerName:  details.CustomerName,
		CustomerEmail: details.CustomerEmail,
		CustomerCity:  details.CustomerCity,
		Lines:         lines,
		Total:         details.Total,
		GeneratedAt:   time.Now().UTC(),
	}
}
