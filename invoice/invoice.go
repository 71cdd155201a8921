package invoice

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"saaj/models"
	"saaj/orders"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// Build renders one order as an A4 invoice PDF.
func Build(order *models.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "Saaj Trading Company")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, "Wholesale Toys - www.saajtradingcompany.in")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Invoice "+order.OrderID)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Date: "+order.CreatedAt.Format("02 Jan 2006"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Status: "+order.Status)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Bill To")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, order.Customer.Name)
	pdf.Ln(5)
	if order.Customer.Email != "" {
		pdf.Cell(0, 6, order.Customer.Email)
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, order.Customer.Phone)
	pdf.Ln(5)
	pdf.MultiCell(120, 5, order.Customer.Address, "", "L", false)
	pdf.Ln(8)

	// items table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(90, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range order.Items {
		pdf.CellFormat(90, 8, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("Rs %.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("Rs %.2f", item.Price*float64(item.Quantity)), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(150, 8, "Subtotal", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("Rs %.2f", order.Subtotal), "1", 1, "R", false, 0, "")
	if order.Type == models.OrderTypeManual && order.Discount > 0 {
		pdf.CellFormat(150, 8, "Discount", "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("- Rs %.2f", order.Discount), "1", 1, "R", false, 0, "")
	}
	pdf.CellFormat(150, 8, "Total", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("Rs %.2f", order.Total), "1", 1, "R", true, 0, "")

	qrPNG, err := qrcode.Encode(order.OrderID, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("generate qr: %w", err)
	}
	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("order-qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("order-qr", 160, 250, 35, 35, false, imageOpts, 0, "")

	pdf.SetY(252)
	pdf.SetFont("Helvetica", "", 8)
	pdf.Cell(0, 5, "Scan to look up this order.")
	pdf.Ln(5)
	pdf.Cell(0, 5, "Thank you for your business.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// GetInvoice serves the invoice PDF for one order.
func GetInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	orderID := ps.ByName("orderid")

	order, err := orders.Store{}.ByID(r.Context(), orderID)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	pdfBytes, err := Build(order)
	if err != nil {
		log.Println("GetInvoice render error:", err)
		http.Error(w, "Failed to generate invoice", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", orderID))
	w.Write(pdfBytes)
}
