// Package pdf renders printable documents from read model data.
// The renderers are pure: they take a fully assembled document model and
// return the finished PDF bytes, so HTTP handlers stay free of layout code.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"

	"github.com/go-pdf/fpdf"
)

// Invoice is the document model for a single order invoice.
// Customer fields may be empty when the customer was deleted after the
// order was placed; the renderer prints a placeholder then.
type Invoice struct {
	OrderID       kernel.UUID
	Status        string
	PaymentMethod string
	PlacedBy      string
	PlacedAt      time.Time
	CustomerName  string
	CustomerEmail string
	CustomerCity  string
	Lines         []InvoiceLine
	Total         kernel.Money
	GeneratedAt   time.Time
}

// InvoiceLine is one line item snapshot on the invoice.
type InvoiceLine struct {
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
	Subtotal    kernel.Money
}

// InvoiceRenderer produces the PDF invoice for an order.
type InvoiceRenderer struct{}

// NewInvoiceRenderer creates an invoice renderer.
func NewInvoiceRenderer() InvoiceRenderer {
	return InvoiceRenderer{}
}

// Render lays out the invoice on a single A4 page and returns the PDF bytes.
// Long orders flow onto additional pages through the auto page break.
func (r InvoiceRenderer) Render(invoice Invoice) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetTitle("Invoice "+invoice.OrderID.String(), false)
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, "Invoice", "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(110, 110, 110)
	doc.CellFormat(0, 5, "Order "+invoice.OrderID.String(), "", 1, "L", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(4)

	r.metaRow(doc, "Placed at", invoice.PlacedAt.Format("2006-01-02 15:04 UTC"))
	r.metaRow(doc, "Placed by", tr(orDash(invoice.PlacedBy)))
	r.metaRow(doc, "Status", invoice.Status)
	r.metaRow(doc, "Payment method", invoice.PaymentMethod)
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(0, 6, "Bill to", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 5, tr(orDash(invoice.CustomerName)), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 5, tr(orDash(invoice.CustomerEmail)), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 5, tr(orDash(invoice.CustomerCity)), "", 1, "L", false, 0, "")
	doc.Ln(6)

	doc.SetFillColor(235, 235, 235)
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(95, 8, "Product", "1", 0, "L", true, 0, "")
	doc.CellFormat(20, 8, "Qty", "1", 0, "R", true, 0, "")
	doc.CellFormat(35, 8, "Unit price", "1", 0, "R", true, 0, "")
	doc.CellFormat(40, 8, "Subtotal", "1", 1, "R", true, 0, "")

	doc.SetFont("Helvetica", "", 10)
	for _, line := range invoice.Lines {
		doc.CellFormat(95, 8, tr(line.ProductName), "1", 0, "L", false, 0, "")
		doc.CellFormat(20, 8, fmt.Sprintf("%d", line.Quantity), "1", 0, "R", false, 0, "")
		doc.CellFormat(35, 8, line.UnitPrice.String(), "1", 0, "R", false, 0, "")
		doc.CellFormat(40, 8, line.Subtotal.String(), "1", 1, "R", false, 0, "")
	}

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(150, 8, "Total", "1", 0, "R", false, 0, "")
	doc.CellFormat(40, 8, invoice.Total.String(), "1", 1, "R", false, 0, "")

	doc.Ln(8)
	doc.SetFont("Helvetica", "I", 8)
	doc.SetTextColor(110, 110, 110)
	doc.CellFormat(0, 5,
		"Generated "+invoice.GeneratedAt.Format("2006-01-02 15:04 UTC"), "", 1, "L", false, 0, "")

	return output(doc)
}

// output finalizes a document and hands back its bytes.
func output(doc *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to output pdf document: %w", err)
	}
	return buf.Bytes(), nil
}

// metaRow writes one label/value pair of the invoice header block.
func (r InvoiceRenderer) metaRow(doc *fpdf.Fpdf, label string, value string) {
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(40, 6, label, "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

// orDash substitutes a dash for fields the read model left empty, such as
// customer data of a deleted customer.
func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
