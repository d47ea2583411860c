package http

import (
	"encoding/json"
	"time"

	"backoffice/internal/core/application/usecases/queries"
)

// Request bodies. []byte fields arrive base64 encoded per encoding/json.

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

type updateCustomerRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	City   string `json:"city"`
	Active bool   `json:"active"`
}

type productRequest struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	Price            string `json:"price"`
	Stock            int    `json:"stock"`
	Active           bool   `json:"active"`
	Image            []byte `json:"image,omitempty"`
	ImageContentType string `json:"image_content_type,omitempty"`
}

type placeOrderRequest struct {
	CustomerID    string                  `json:"customer_id,omitempty"`
	PaymentMethod string                  `json:"payment_method"`
	Lines         []placeOrderLineRequest `json:"lines"`
}

type placeOrderLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type changeOrderStatusRequest struct {
	Status string `json:"status"`
}

// Response bodies.

type tokenResponse struct {
	Token      string  `json:"token"`
	Role       string  `json:"role"`
	AccountID  string  `json:"account_id"`
	CustomerID *string `json:"customer_id,omitempty"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type avatarResponse struct {
	AvatarID string `json:"avatar_id"`
}

type customerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	City      string    `json:"city,omitempty"`
	AvatarID  *string   `json:"avatar_id,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type productResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Price    string `json:"price"`
	Stock    int    `json:"stock"`
	Active   bool   `json:"active"`
	HasImage bool   `json:"has_image"`
}

type productDetailsResponse struct {
	productResponse
	CreatedAt time.Time `json:"created_at"`
}

type orderSummaryResponse struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	CustomerName  string    `json:"customer_name,omitempty"`
	PlacedBy      string    `json:"placed_by"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	Total         string    `json:"total"`
	ItemCount     int       `json:"item_count"`
	PlacedAt      time.Time `json:"placed_at"`
}

type customerOrderResponse struct {
	ID            string    `json:"id"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	Total         string    `json:"total"`
	ItemCount     int       `json:"item_count"`
	PlacedAt      time.Time `json:"placed_at"`
}

type orderDetailsResponse struct {
	ID            string              `json:"id"`
	CustomerID    string              `json:"customer_id"`
	CustomerName  string              `json:"customer_name,omitempty"`
	CustomerEmail string              `json:"customer_email,omitempty"`
	CustomerCity  string              `json:"customer_city,omitempty"`
	PlacedBy      string              `json:"placed_by"`
	PaymentMethod string              `json:"payment_method"`
	Status        string              `json:"status"`
	Total         string              `json:"total"`
	PlacedAt      time.Time           `json:"placed_at"`
	Items         []orderItemResponse `json:"items"`
}

type orderItemResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

type auditRecordResponse struct {
	ID         string          `json:"id"`
	Action     string          `json:"action"`
	Before     json.RawMessage `json:"before"`
	After      json.RawMessage `json:"after"`
	Actor      string          `json:"actor"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type salesByDayResponse struct {
	Day     string `json:"day"`
	Orders  int    `json:"orders"`
	Revenue string `json:"revenue"`
}

type topProductResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	Units     int    `json:"units"`
	Revenue   string `json:"revenue"`
}

func toCustomerResponse(customer queries.GetCustomerQueryResponse) customerResponse {
	response := customerResponse{
		ID:        customer.ID.String(),
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		City:      customer.City,
		Active:    customer.Active,
		CreatedAt: customer.CreatedAt,
	}
	if customer.AvatarID != nil {
		avatarID := customer.AvatarID.String()
		response.AvatarID = &avatarID
	}
	return response
}

func toCustomerResponses(customers []queries.GetAllCustomersQueryResponse) []customerResponse {
	responses := make([]customerResponse, 0, len(customers))
	for _, customer := range customers {
		responses = append(responses, toCustomerResponse(queries.GetCustomerQueryResponse(customer)))
	}
	return responses
}

func toProductResponses(products []queries.GetAllProductsQueryResponse) []productResponse {
	responses := make([]productResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, productResponse{
			ID:       product.ID.String(),
			Name:     product.Name,
			Category: product.Category,
			Price:    product.Price.String(),
			Stock:    product.Stock,
			Active:   product.Active,
			HasImage: product.HasImage,
		})
	}
	return responses
}

func toProductDetailsResponse(product queries.GetProductQueryResponse) productDetailsResponse {
	return productDetailsResponse{
		productResponse: productResponse{
			ID:       product.ID.String(),
			Name:     product.Name,
			Category: product.Category,
			Price:    product.Price.String(),
			Stock:    product.Stock,
			Active:   product.Active,
			HasImage: product.HasImage,
		},
		CreatedAt: product.CreatedAt,
	}
}

func toOrderSummaryResponses(orders []queries.GetAllOrdersQueryResponse) []orderSummaryResponse {
	responses := make([]orderSummaryResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, orderSummaryResponse{
			ID:            order.ID.String(),
			CustomerID:    order.CustomerID.String(),
			CustomerName:  order.CustomerName,
			PlacedBy:      order.PlacedBy,
			PaymentMethod: order.PaymentMethod.String(),
			Status:        order.Status.String(),
			Total:         order.Total.String(),
			ItemCount:     order.ItemCount,
			PlacedAt:      order.PlacedAt,
		})
	}
	return responses
}

func toCustomerOrderResponses(orders []queries.GetCustomerOrdersQueryResponse) []customerOrderResponse {
	responses := make([]customerOrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, customerOrderResponse{
			ID:            order.ID.String(),
			PaymentMethod: order.PaymentMethod.String(),
			Status:        order.Status.String(),
			Total:         order.Total.String(),
			ItemCount:     order.ItemCount,
			PlacedAt:      order.PlacedAt,
		})
	}
	return responses
}

func toOrderDetailsResponse(order queries.GetOrderDetailsQueryResponse) orderDetailsResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			Subtotal:    item.Subtotal.String(),
		})
	}
	return orderDetailsResponse{
		ID:            order.ID.String(),
		CustomerID:    order.CustomerID.String(),
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerCity:  order.CustomerCity,
		PlacedBy:      order.PlacedBy,
		PaymentMethod: order.PaymentMethod.String(),
		Status:        order.Status.String(),
		Total:         order.Total.String(),
		PlacedAt:      order.PlacedAt,
		Items:         items,
	}
}

func toAuditRecordResponses(records []queries.GetOrderAuditQueryResponse) []auditRecordResponse {
	responses := make([]auditRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, auditRecordResponse{
			ID:         record.ID.String(),
			Action:     record.Action,
			Before:     auditSnapshot(record.Before),
			After:      auditSnapshot(record.After),
			Actor:      record.Actor,
			OccurredAt: record.OccurredAt,
		})
	}
	return responses
}

// auditSnapshot embeds a stored snapshot into the response as-is. Snapshots
// are written by the audit recorder and are always valid JSON, but an empty
// one must become null rather than break the enclosing document.
func auditSnapshot(stored string) json.RawMessage {
	if stored == "" {
		return json.RawMessage("null")
	}
	return json.RawMessage(stored)
}

func toSalesByDayResponses(rows []queries.GetSalesByDayQueryResponse) []salesByDayResponse {
	responses := make([]salesByDayResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, salesByDayResponse{
			Day:     row.Day.Format("2006-01-02"),
			Orders:  row.Orders,
			Revenue: row.Revenue.String(),
		})
	}
	return responses
}

func toTopProductResponses(rows []queries.GetTopProductsQueryResponse) []topProductResponse {
	responses := make([]topProductResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, topProductResponse{
			ProductID: row.ProductID.String(),
			Name:      row.Name,
			Category:  row.Category,
			Units:     row.Units,
			Revenue:   row.Revenue.String(),
		})
	}
	return responses
}
