package cmd

import (
	httpadapter "backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/pdf"
	"backoffice/internal/adapters/out/postgres"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.RegistrationUoWFactory = FuncRegistrationUoWFactory(func() commands.RegistrationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateAttachCustomerAvatarCommandHandler() commands.AttachCustomerAvatarCommandHandler {
	var f commands.AvatarUoWFactory = FuncAvatarUoWFactory(func() commands.AvatarUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachCustomerAvatarCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductImageCommandHandler() commands.UpdateProductImageCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductImageCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteProductCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderStatusUoWFactory = FuncOrderStatusUoWFactory(func() commands.OrderStatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateSeedAdminCommandHandler() commands.SeedAdminCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedAdminCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireStaleOrdersCommandHandler() commands.ExpireStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireStaleOrdersCommandHandler(f,
		c.CreateChangeOrderStatusCommandHandler(), c.config.PaymentWindow)
}

func (c *CompositionRoot) CreateAuthenticateAccountQueryHandler() queries.AuthenticateAccountQueryHandler {
	return queries.NewAuthenticateAccountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCustomersQueryHandler() queries.GetAllCustomersQueryHandler {
	return queries.NewGetAllCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductImageQueryHandler() queries.GetProductImageQueryHandler {
	return queries.NewGetProductImageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderAuditQueryHandler() queries.GetOrderAuditQueryHandler {
	return queries.NewGetOrderAuditQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSalesByDayQueryHandler() queries.GetSalesByDayQueryHandler {
	return queries.NewGetSalesByDayQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTopProductsQueryHandler() queries.GetTopProductsQueryHandler {
	return queries.NewGetTopProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMediaFileQueryHandler() queries.GetMediaFileQueryHandler {
	return queries.NewGetMediaFileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTokenIssuer() httpadapter.TokenIssuer {
	return httpadapter.NewTokenIssuer(c.config.JWTSecret, c.config.JWTTTL)
}

func (c *CompositionRoot) CreateAuthMiddleware() httpadapter.AuthMiddleware {
	return httpadapter.NewAuthMiddleware(c.config.JWTSecret)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Dependencies{
		RegisterCustomer:     c.CreateRegisterCustomerCommandHandler(),
		CreateCustomer:       c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer:       c.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer:       c.CreateDeleteCustomerCommandHandler(),
		AttachCustomerAvatar: c.CreateAttachCustomerAvatarCommandHandler(),
		CreateProduct:        c.CreateCreateProductCommandHandler(),
		UpdateProduct:        c.CreateUpdateProductCommandHandler(),
		UpdateProductImage:   c.CreateUpdateProductImageCommandHandler(),
		DeleteProduct:        c.CreateDeleteProductCommandHandler(),
		PlaceOrder:           c.CreatePlaceOrderCommandHandler(),
		ChangeOrderStatus:    c.CreateChangeOrderStatusCommandHandler(),

		AuthenticateAccount: c.CreateAuthenticateAccountQueryHandler(),
		GetAllCustomers:     c.CreateGetAllCustomersQueryHandler(),
		GetCustomer:         c.CreateGetCustomerQueryHandler(),
		GetAllProducts:      c.CreateGetAllProductsQueryHandler(),
		GetProduct:          c.CreateGetProductQueryHandler(),
		GetProductImage:     c.CreateGetProductImageQueryHandler(),
		GetAllOrders:        c.CreateGetAllOrdersQueryHandler(),
		GetCustomerOrders:   c.CreateGetCustomerOrdersQueryHandler(),
		GetOrderDetails:     c.CreateGetOrderDetailsQueryHandler(),
		GetOrderAudit:       c.CreateGetOrderAuditQueryHandler(),
		GetSalesByDay:       c.CreateGetSalesByDayQueryHandler(),
		GetTopProducts:      c.CreateGetTopProductsQueryHandler(),
		GetMediaFile:        c.CreateGetMediaFileQueryHandler(),

		InvoiceRenderer:     pdf.NewInvoiceRenderer(),
		SalesReportRenderer: pdf.NewSalesReportRenderer(),
		TokenIssuer:         c.CreateTokenIssuer(),
	})
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncRegistrationUoWFactory func() commands.RegistrationUoW

func (f FuncRegistrationUoWFactory) Create() commands.RegistrationUoW {
	return f()
}

type FuncAvatarUoWFactory func() commands.AvatarUoW

func (f FuncAvatarUoWFactory) Create() commands.AvatarUoW {
	return f()
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncOrderStatusUoWFactory func() commands.OrderStatusUoW

func (f FuncOrderStatusUoWFactory) Create() commands.OrderStatusUoW {
	return f()
}
