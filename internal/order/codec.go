package order

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const sheetName = "Orders"

// Fixed column schema of an order workbook. Files written with the older
// 16-column layout (extra direction/logo columns) do not round-trip and have
// to be migrated out of band.
var sheetColumns = []struct {
	Title string
	Width float64
}{
	{"ID", 15},
	{"companyName", 20},
	{"contact", 20},
	{"phone", 15},
	{"email", 25},
	{"deliveryDate", 15},
	{"productName", 20},
	{"linkImg", 60},
	{"color", 10},
	{"size", 10},
	{"quantity", 10},
	{"basePrice", 10},
	{"subtotal", 10},
	{"status", 15},
}

// 0-based column indexes; the 1-based status column for cell updates is
// colStatus+1.
const (
	colID = iota
	colCompanyName
	colContact
	colPhone
	colEmail
	colDeliveryDate
	colProductName
	colLinkImg
	colColor
	colSize
	colQuantity
	colBasePrice
	colSubtotal
	colStatus
)

func headerRow() []any {
	out := make([]any, len(sheetColumns))
	for i, c := range sheetColumns {
		out[i] = c.Title
	}
	return out
}

// encodeRow maps one item to its row values. pos is 1-based. Missing text
// stays empty, negative quantities clamp to 0 and a missing subtotal is
// computed from quantity and basePrice. Never fails.
func encodeRow(o *Order, it NewItem, pos int, linkImg string) []any {
	qty := it.Quantity
	if qty < 0 {
		qty = 0
	}
	sub := it.Subtotal
	if sub.IsZero() {
		sub = it.BasePrice.Mul(decimal.NewFromInt(int64(qty)))
	}
	status := o.Status
	if status == "" {
		status = StatusPending
	}
	// numeric cells stay numeric in the generated sheet
	base, _ := it.BasePrice.Float64()
	subtotal, _ := sub.Float64()
	return []any{
		fmt.Sprintf("%s-%d", o.ID, pos),
		o.Customer.CompanyName,
		o.Customer.Contact,
		o.Customer.Phone,
		o.Customer.Email,
		o.Customer.DeliveryDate,
		it.ProductName,
		linkImg,
		it.Color,
		it.Size,
		qty,
		base,
		subtotal,
		status,
	}
}

// decodeRow is the inverse mapping by fixed index. Short rows read as empty
// cells and unparsable numerics read as 0; decoding never fails.
func decodeRow(vals []string) Item {
	get := func(i int) string {
		if i < len(vals) {
			return strings.TrimSpace(vals[i])
		}
		return ""
	}
	qty, _ := strconv.Atoi(get(colQuantity))
	if qty < 0 {
		qty = 0
	}
	return Item{
		ID:           get(colID),
		CompanyName:  get(colCompanyName),
		Contact:      get(colContact),
		Phone:        get(colPhone),
		Email:        get(colEmail),
		DeliveryDate: get(colDeliveryDate),
		ProductName:  get(colProductName),
		LinkImg:      get(colLinkImg),
		Color:        get(colColor),
		Size:         get(colSize),
		Quantity:     qty,
		BasePrice:    parseDecimal(get(colBasePrice)),
		Subtotal:     parseDecimal(get(colSubtotal)),
		Status:       get(colStatus),
	}
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
