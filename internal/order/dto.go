package order

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// FlexID accepts a JSON string or number; the client sends Date.now() as a
// raw number but the id is an opaque string everywhere else.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// ProductRef is the catalog product embedded in an item payload.
// swagger:model ProductRef
type ProductRef struct {
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"basePrice"`
}

// SaveOrderItem payload de ítem.
// swagger:model SaveOrderItem
type SaveOrderItem struct {
	ProductName  string          `json:"productName"`
	Product      *ProductRef     `json:"product,omitempty"`
	Color        string          `json:"color"`
	Size         string          `json:"size"`
	Quantity     int             `json:"quantity"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	PreviewImage string          `json:"previewImage,omitempty"`
}

type SaveOrderPayload struct {
	ID       FlexID   `json:"id"`
	Customer Customer `json:"customer"`
	Status   string   `json:"status"`
}

// SaveOrderRequest payload de creación de orden.
// swagger:model SaveOrderRequest
type SaveOrderRequest struct {
	Order SaveOrderPayload `json:"order"`
	Items []SaveOrderItem  `json:"items"`
}

// UpdateStatusRequest payload de cambio de estatus.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	OrderID FlexID `json:"orderId"`
	Status  string `json:"status"`
}

// Validate rejects the request before any persistence side effect happens.
func (r *SaveOrderRequest) Validate() error {
	if r.Order.ID == "" {
		return errors.New("order id requerido")
	}
	if len(r.Items) == 0 {
		return errors.New("orden sin items")
	}
	if r.Order.Customer.CompanyName == "" || r.Order.Customer.Contact == "" {
		return errors.New("datos de cliente incompletos")
	}
	return nil
}

// Model converts the validated payload into domain values, resolving the
// productName/basePrice fallbacks from the embedded product.
func (r *SaveOrderRequest) Model() (*Order, []NewItem) {
	o := &Order{
		ID:       string(r.Order.ID),
		Customer: r.Order.Customer,
		Status:   r.Order.Status,
	}
	items := make([]NewItem, 0, len(r.Items))
	for _, it := range r.Items {
		name := it.ProductName
		base := it.BasePrice
		if it.Product != nil {
			if name == "" {
				name = it.Product.Name
			}
			if base.IsZero() {
				base = it.Product.BasePrice
			}
		}
		items = append(items, NewItem{
			ProductName:  name,
			Color:        it.Color,
			Size:         it.Size,
			Quantity:     it.Quantity,
			BasePrice:    base,
			Subtotal:     it.Subtotal,
			PreviewImage: it.PreviewImage,
		})
	}
	return o, items
}
