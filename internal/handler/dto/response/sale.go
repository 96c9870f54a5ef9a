package response

import (
	"time"

	"emy-orders/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type SaleLineResponse struct {
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

type SaleResponse struct {
	ID            string             `json:"id"`
	CustomerID    *string            `json:"customerId,omitempty"`
	Lines         []SaleLineResponse `json:"lines"`
	Total         string             `json:"total"`
	PaymentMethod string             `json:"paymentMethod"`
	Date          time.Time          `json:"date"`
}

type ReportSaleResponse struct {
	SaleResponse
	Customer *UserResponse `json:"customer,omitempty"`
}

type ReportResponse struct {
	Sales []ReportSaleResponse `json:"sales"`
	Total string               `json:"total"`
	Count int                  `json:"count"`
}

func FromSaleView(v *queries.SaleView) *SaleResponse {
	lines := make([]SaleLineResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, SaleLineResponse{
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice.StringFixed(2),
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal().StringFixed(2),
		})
	}
	return &SaleResponse{
		ID:            v.ID,
		CustomerID:    v.CustomerID,
		Lines:         lines,
		Total:         v.Total.StringFixed(2),
		PaymentMethod: v.PaymentMethod,
		Date:          v.Date,
	}
}

func FromReportView(v *queries.ReportView) *ReportResponse {
	sales := make([]ReportSaleResponse, 0, len(v.Sales))
	for i := range v.Sales {
		item := ReportSaleResponse{SaleResponse: *FromSaleView(&v.Sales[i].SaleView)}
		if c := v.Sales[i].Customer; c != nil {
			item.Customer = &UserResponse{
				ID:        c.ID,
				FirstName: c.FirstName,
				LastName:  c.LastName,
				FullName:  fullName(c.FirstName, c.LastName),
				Phone:     c.Phone,
			}
		}
		sales = append(sales, item)
	}
	return &ReportResponse{
		Sales: sales,
		Total: v.Total.StringFixed(2),
		Count: len(sales),
	}
}

func fullName(first, last string) string {
	if last == "" {
		return first
	}
	return first + " " + last
}

func intToDecimal(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
