package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
)

// GetProducts lists the catalog. Administrators see every product, other
// callers only the active ones.
func (s *Server) GetProducts(ctx echo.Context) error {
	identity, err := identityFrom(ctx)
	if err != nil {
		return respondStatus(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	query := queries.NewGetAllProductsQuery(!identity.IsAdmin())

	products, err := s.deps.GetAllProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponses(products))
}

func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid product id")
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	product, err := s.deps.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductDetailsResponse(product))
}

// GetProductImage serves the embedded product image. The route is public so
// catalog pages can use plain image tags.
func (s *Server) GetProductImage(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid product id")
	}

	query, err := queries.NewGetProductImageQuery(productID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	image, err := s.deps.GetProductImage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Blob(http.StatusOK, image.ContentType, image.Data)
}

func (s *Server) CreateProduct(ctx echo.Context) error {
	var request productRequest
	if err := ctx.Bind(&request); err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid request body")
	}

	price, err := kernel.NewMoneyFromString(request.Price)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	productID := kernel.NewUUID()

	command, err := commands.NewCreateProductCommand(productID, request.Name, request.Category,
		price, request.Stock, request.Active, request.Image, request.ImageContentType)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.deps.CreateProduct.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: productID.String()})
}

func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid product id")
	}

	var request productRequest
	if err := ctx.Bind(&request); err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid request body")
	}

	price, err := kernel.NewMoneyFromString(request.Price)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	command, err := commands.NewUpdateProductCommand(productID, request.Name, request.Category,
		price, request.Stock, request.Active, request.Image, request.ImageContentType)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.deps.UpdateProduct.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid product id")
	}

	command, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.deps.DeleteProduct.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UploadProductImage replaces the product image with an uploaded file, for
// clients that prefer multipart uploads over the base64 field.
func (s *Server) UploadProductImage(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid product id")
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "failed to read image file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "failed to read image file")
	}

	command, err := commands.NewUpdateProductImageCommand(productID, data,
		fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.deps.UpdateProductImage.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
