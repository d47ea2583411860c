// Package http exposes the application as a JSON API over echo. Handlers
// translate requests into commands and queries, map their errors onto HTTP
// statuses and render the read model as response bodies. Authentication is
// stateless: a signed bearer token carries the account identity and role.
package http

import (
	"github.com/labstack/echo/v4"

	"backoffice/internal/adapters/out/pdf"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
)

// Dependencies carries every handler and renderer the server routes to.
type Dependencies struct {
	RegisterCustomer     commands.RegisterCustomerCommandHandler
	CreateCustomer       commands.CreateCustomerCommandHandler
	UpdateCustomer       commands.UpdateCustomerCommandHandler
	DeleteCustomer       commands.DeleteCustomerCommandHandler
	AttachCustomerAvatar commands.AttachCustomerAvatarCommandHandler
	CreateProduct        commands.CreateProductCommandHandler
	UpdateProduct        commands.UpdateProductCommandHandler
	UpdateProductImage   commands.UpdateProductImageCommandHandler
	DeleteProduct        commands.DeleteProductCommandHandler
	PlaceOrder           commands.PlaceOrderCommandHandler
	ChangeOrderStatus    commands.ChangeOrderStatusCommandHandler

	AuthenticateAccount queries.AuthenticateAccountQueryHandler
	GetAllCustomers     queries.GetAllCustomersQueryHandler
	GetCustomer         queries.GetCustomerQueryHandler
	GetAllProducts      queries.GetAllProductsQueryHandler
	GetProduct          queries.GetProductQueryHandler
	GetProductImage     queries.GetProductImageQueryHandler
	GetAllOrders        queries.GetAllOrdersQueryHandler
	GetCustomerOrders   queries.GetCustomerOrdersQueryHandler
	GetOrderDetails     queries.GetOrderDetailsQueryHandler
	GetOrderAudit       queries.GetOrderAuditQueryHandler
	GetSalesByDay       queries.GetSalesByDayQueryHandler
	GetTopProducts      queries.GetTopProductsQueryHandler
	GetMediaFile        queries.GetMediaFileQueryHandler

	InvoiceRenderer     pdf.InvoiceRenderer
	SalesReportRenderer pdf.SalesReportRenderer
	TokenIssuer         TokenIssuer
}

type Server struct {
	deps Dependencies
}

func NewServer(deps Dependencies) *Server {
	return &Server{deps: deps}
}

// RegisterRoutes mounts the API on e. Media and product images are public
// so that image tags can reference them without a token. Everything under
// /api/v1 except auth requires a bearer token, and management routes
// additionally require the admin role.
func (s *Server) RegisterRoutes(e *echo.Echo, auth AuthMiddleware) {
	e.POST("/api/v1/auth/register", s.Register)
	e.POST("/api/v1/auth/login", s.Login)

	e.GET("/media/:id", s.GetMediaFile)
	e.GET("/api/v1/products/:id/image", s.GetProductImage)

	api := e.Group("/api/v1", auth.Authenticate)

	api.GET("/products", s.GetProducts)
	api.GET("/products/:id", s.GetProduct)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/my", s.GetMyOrders)
	api.GET("/orders/:id", s.GetOrderDetails)
	api.GET("/orders/:id/invoice.pdf", s.GetOrderInvoice)

	admin := api.Group("", auth.RequireAdmin)

	admin.GET("/customers", s.GetCustomers)
	admin.POST("/customers", s.CreateCustomer)
	admin.GET("/customers/:id", s.GetCustomer)
	admin.PUT("/customers/:id", s.UpdateCustomer)
	admin.DELETE("/customers/:id", s.DeleteCustomer)
	admin.POST("/customers/:id/avatar", s.UploadCustomerAvatar)

	admin.POST("/products", s.CreateProduct)
	admin.PUT("/products/:id", s.UpdateProduct)
	admin.DELETE("/products/:id", s.DeleteProduct)
	admin.POST("/products/:id/image", s.UploadProductImage)

	admin.GET("/orders", s.GetOrders)
	admin.POST("/orders/:id/status", s.ChangeOrderStatus)
	admin.GET("/orders/:id/audit", s.GetOrderAudit)

	admin.GET("/reports/sales-by-day", s.GetSalesByDay)
	admin.GET("/reports/sales-by-day.pdf", s.GetSalesByDayPDF)
	admin.GET("/reports/top-products", s.GetTopProducts)
}
