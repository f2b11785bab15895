package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"marketplace/internal/domain/models"
	"marketplace/internal/listing"
	"marketplace/internal/utils"
)

// ExportService renders listing pages as printable PDF reports.
type ExportService struct {
	RequestID string
	Now       func() time.Time
}

func (s ExportService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

var orderColumns = []struct {
	title string
	width float64
	align string
}{
	{"Order", 22, "L"},
	{"Customer", 50, "L"},
	{"Status", 30, "L"},
	{"Items", 16, "R"},
	{"Total", 28, "R"},
	{"Placed", 44, "L"},
}

// SellerOrdersPDF renders the visible rows of a seller order listing.
func (s ExportService) SellerOrdersPDF(sellerID int64, res Result[models.SellerOrder]) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Seller orders", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Orders")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Seller #%d - generated %s", sellerID, s.now().UTC().Format("2006-01-02 15:04 MST")))
	pdf.Ln(6)
	pdf.Cell(0, 6, describeState(res.State, res.Total))
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range orderColumns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, c.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	var sum float64
	for _, o := range res.Items {
		cells := []string{
			fmt.Sprintf("#%d", o.ID),
			clip(safe(o.CustomerName, "-"), 28),
			safe(o.Status, "-"),
			fmt.Sprintf("%d", o.ItemCount),
			formatAmount(o.Total),
			dateTime(o.CreatedAt),
		}
		for i, c := range orderColumns {
			pdf.CellFormat(c.width, 6, cells[i], "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
		sum += o.Total
	}
	if len(res.Items) == 0 {
		pdf.CellFormat(190, 6, "No orders on this page", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, "Page total: "+formatAmount(sum))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render orders pdf: %w", err)
	}

	page := res.State.Page.Index + 1
	utils.LogEvent(s.RequestID, "export", "seller_orders_pdf", "orders exported")
	return buf.Bytes(), fmt.Sprintf("ORDERS_%d_P%d.pdf", sellerID, page), nil
}

func describeState(st listing.State, total int) string {
	parts := []string{fmt.Sprintf("%d matching orders", total)}
	if st.Page.All() {
		parts = append(parts, "all rows")
	} else {
		parts = append(parts, fmt.Sprintf("page %d of %d", st.Page.Index+1, max(listing.PageCount(total, st.Page.Size), 1)))
	}
	if st.Sort != "" {
		parts = append(parts, "sorted by "+string(st.Sort))
	}
	if len(st.Criteria.Categories) > 0 {
		parts = append(parts, "status "+strings.Join(st.Criteria.Categories, "/"))
	}
	if st.Criteria.SearchTerm != "" {
		parts = append(parts, fmt.Sprintf("search %q", st.Criteria.SearchTerm))
	}
	return strings.Join(parts, ", ")
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}

// dateTime turns an ISO-8601 string into "2006-01-02 15:04".
func dateTime(v string) string {
	v = strings.TrimSpace(v)
	if len(v) < 16 {
		return safe(v, "-")
	}
	return v[:10] + " " + v[11:16]
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
