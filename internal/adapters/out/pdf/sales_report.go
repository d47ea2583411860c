package pdf

import (
	"fmt"
	"strconv"
	"time"

	"backoffice/internal/core/domain/model/kernel"

	"github.com/go-pdf/fpdf"
)

// SalesReport is the document model for the daily sales report.
// Rows arrive already aggregated and ordered by day, cancelled orders
// excluded, exactly as the read model serves them.
type SalesReport struct {
	GeneratedAt time.Time
	Rows        []SalesReportRow
}

// SalesReportRow is one day's aggregate in the report.
type SalesReportRow struct {
	Day     time.Time
	Orders  int
	Revenue kernel.Money
}

// SalesReportRenderer produces the PDF version of the sales by day report.
type SalesReportRenderer struct{}

// NewSalesReportRenderer creates a sales report renderer.
func NewSalesReportRenderer() SalesReportRenderer {
	return SalesReportRenderer{}
}

// Render lays out the report table and a grand total row, returning the PDF
// bytes. An empty report renders the headline and a note instead of a table.
func (r SalesReportRenderer) Render(report SalesReport) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")

	doc.SetTitle("Sales by day", false)
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, "Sales by day", "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(110, 110, 110)
	doc.CellFormat(0, 5,
		"Generated "+report.GeneratedAt.Format("2006-01-02 15:04 UTC"), "", 1, "L", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(6)

	if len(report.Rows) == 0 {
		doc.SetFont("Helvetica", "I", 10)
		doc.CellFormat(0, 6, "No sales recorded.", "", 1, "L", false, 0, "")
		return output(doc)
	}

	doc.SetFillColor(235, 235, 235)
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(60, 8, "Day", "1", 0, "L", true, 0, "")
	doc.CellFormat(60, 8, "Orders", "1", 0, "R", true, 0, "")
	doc.CellFormat(70, 8, "Revenue", "1", 1, "R", true, 0, "")

	totalOrders := 0
	totalRevenue := kernel.NewZeroMoney()

	doc.SetFont("Helvetica", "", 10)
	for _, row := range report.Rows {
		doc.CellFormat(60, 8, row.Day.Format("2006-01-02"), "1", 0, "L", false, 0, "")
		doc.CellFormat(60, 8, strconv.Itoa(row.Orders), "1", 0, "R", false, 0, "")
		doc.CellFormat(70, 8, row.Revenue.String(), "1", 1, "R", false, 0, "")

		totalOrders += row.Orders

		sum, err := totalRevenue.Add(row.Revenue)
		if err != nil {
			return nil, fmt.Errorf("failed to total report revenue: %w", err)
		}
		totalRevenue = sum
	}

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(60, 8, "Total", "1", 0, "L", false, 0, "")
	doc.CellFormat(60, 8, strconv.Itoa(totalOrders), "1", 0, "R", false, 0, "")
	doc.CellFormat(70, 8, totalRevenue.String(), "1", 1, "R", false, 0, "")

	return output(doc)
}
