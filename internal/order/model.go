package order

import "github.com/shopspring/decimal"

// Status labels used by the dashboard. The store does not restrict the set;
// any string overwrites any previous one.
const (
	StatusPending    = "Pendiente"
	StatusInProgress = "En Proceso"
	StatusDone       = "Completada"
)

type Customer struct {
	CompanyName  string `json:"companyName"`
	Contact      string `json:"contact"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	DeliveryDate string `json:"deliveryDate"`
}

// Order is one customer submission. ID is opaque for storage purposes (the
// browser client sends a numeric timestamp, but nothing here depends on that).
type Order struct {
	ID       string   `json:"id"`
	Customer Customer `json:"customer"`
	Status   string   `json:"status"`
}

// NewItem is a product line as submitted, before it is encoded into a row.
type NewItem struct {
	ProductName  string
	Color        string
	Size         string
	Quantity     int
	BasePrice    decimal.Decimal
	Subtotal     decimal.Decimal
	PreviewImage string
}

// Item is a product line as persisted: one sheet row, customer fields
// repeated on every row.
// Money is decimal to avoid rounding errors (serialized as strings in JSON).
type Item struct {
	ID           string          `json:"id"`
	CompanyName  string          `json:"companyName"`
	Contact      string          `json:"contact"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email"`
	DeliveryDate string          `json:"deliveryDate"`
	ProductName  string          `json:"productName"`
	LinkImg      string          `json:"linkImg"`
	Color        string          `json:"color"`
	Size         string          `json:"size"`
	Quantity     int             `json:"quantity"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Status       string          `json:"status"`
}
