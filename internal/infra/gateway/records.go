package gateway

import (
	"encoding/json"
	"strings"
	"time"

	"emy-orders/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

// Wire records mirror what the sheet-backed collaborator actually
// stores, Spanish field names included. Decoding is deliberately
// tolerant: IDs arrive as numbers or strings, totals as numbers or
// strings, and sale lines either inline or as an items_json string.

// flexString accepts JSON strings, numbers and booleans verbatim.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(b)
	return nil
}

type menuItemRecord struct {
	ID          flexString      `json:"id"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	Available   string          `json:"disponible"`
	ImageURL    string          `json:"imageUrl"`
}

func (r menuItemRecord) toItem() catalog.Item {
	return catalog.Item{
		ID:        string(r.ID),
		Name:      r.Name,
		UnitPrice: r.Price.Round(2),
		Available: strings.EqualFold(r.Available, "Si"),
	}
}

type saleLineRecord struct {
	Item     menuItemRecord `json:"item"`
	Quantity int            `json:"quantity"`
}

// saleLines decodes either an inline array or a JSON string holding one
// (the sheet stores lines in an items_json text column).
type saleLines []saleLineRecord

func (l *saleLines) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*l = nil
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var encoded string
		if err := json.Unmarshal(b, &encoded); err != nil {
			return err
		}
		if strings.TrimSpace(encoded) == "" {
			*l = nil
			return nil
		}
		b = []byte(encoded)
	}
	var lines []saleLineRecord
	if err := json.Unmarshal(b, &lines); err != nil {
		return err
	}
	*l = lines
	return nil
}

type saleRecord struct {
	ID            flexString      `json:"id"`
	UserID        flexString      `json:"userId"`
	Items         saleLines       `json:"items"`
	ItemsJSON     saleLines       `json:"items_json"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	Date          time.Time       `json:"date"`
}

func (r saleRecord) lines() saleLines {
	if len(r.Items) > 0 {
		return r.Items
	}
	return r.ItemsJSON
}

// customerID distinguishes the guest sentinel (-1 in the sheet) and
// staff-initiated sales (empty) from real customer IDs.
func (r saleRecord) customerID() *string {
	id := string(r.UserID)
	if id == "" {
		return nil
	}
	if id == "-1" {
		id = "guest"
	}
	return &id
}

type userRecord struct {
	ID        flexString `json:"id"`
	FirstName string     `json:"nombres"`
	LastName  string     `json:"apellidos"`
	Phone     flexString `json:"celular"`
}

type notificationRecord struct {
	ID      flexString `json:"id"`
	UserID  flexString `json:"userId"`
	Message string     `json:"message"`
	Date    time.Time  `json:"date"`
	Read    bool       `json:"read"`
}

// saleLinePayload is what we send on addSale/addPendingSale: the frozen
// item snapshot plus quantity, shaped the way the sheet expects it.
type saleLinePayload struct {
	Item     itemSnapshotPayload `json:"item"`
	Quantity int                 `json:"quantity"`
}

type itemSnapshotPayload struct {
	ID    string          `json:"id"`
	Name  string          `json:"nombre"`
	Price decimal.Decimal `json:"precio"`
}

type saleDataPayload struct {
	Items         []saleLinePayload `json:"items"`
	Total         string            `json:"total"`
	PaymentMethod string            `json:"paymentMethod"`
	// UserID is a customer ID string, the number -1 for guests, or null
	// for staff sales. The collaborator checks the -1 sentinel numerically.
	UserID any `json:"userId"`
}

// submitSalePayload nests the sale under saleData, which is where the
// collaborator reads it on addSale and addPendingSale.
type submitSalePayload struct {
	SaleData saleDataPayload `json:"saleData"`
}
