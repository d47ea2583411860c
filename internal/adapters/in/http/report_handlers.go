package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"backoffice/internal/adapters/out/pdf"
	"backoffice/internal/core/application/usecases/queries"
)

func (s *Server) GetSalesByDay(ctx echo.Context) error {
	rows, err := s.deps.GetSalesByDay.Handle(ctx.Request().Context(), queries.NewGetSalesByDayQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSalesByDayResponses(rows))
}

// GetSalesByDayPDF renders the sales report as a PDF download.
func (s *Server) GetSalesByDayPDF(ctx echo.Context) error {
	rows, err := s.deps.GetSalesByDay.Handle(ctx.Request().Context(), queries.NewGetSalesByDayQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	report := pdf.SalesReport{GeneratedAt: time.Now().UTC()}
	for _, row := range rows {
		report.Rows = append(report.Rows, pdf.SalesReportRow{
			Day:     row.Day,
			Orders:  row.Orders,
			Revenue: row.Revenue,
		})
	}

	document, err := s.deps.SalesReportRenderer.Render(report)
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="sales_by_day.pdf"`)

	return ctx.Blob(http.StatusOK, "application/pdf", document)
}

func (s *Server) GetTopProducts(ctx echo.Context) error {
	rows, err := s.deps.GetTopProducts.Handle(ctx.Request().Context(), queries.NewGetTopProductsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTopProductResponses(rows))
}
