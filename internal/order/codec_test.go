package order

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestEncodeRow_Defaults(t *testing.T) {
	t.Parallel()

	o := &Order{
		ID: "1001",
		Customer: Customer{
			CompanyName:  "Acme",
			Contact:      "Jane",
			Phone:        "555",
			Email:        "j@acme.com",
			DeliveryDate: "2024-01-01",
		},
		// sin status => Pendiente
	}
	it := NewItem{
		ProductName: "Tee",
		Quantity:    3,
		BasePrice:   decimal.NewFromInt(10),
		// sin subtotal => quantity * basePrice
	}

	row := encodeRow(o, it, 1, "")
	if len(row) != len(sheetColumns) {
		t.Fatalf("row len=%d, esperaba %d", len(row), len(sheetColumns))
	}
	if row[colID] != "1001-1" {
		t.Fatalf("id=%v", row[colID])
	}
	if row[colStatus] != StatusPending {
		t.Fatalf("status=%v, esperaba %q", row[colStatus], StatusPending)
	}
	if got := row[colSubtotal].(float64); got != 30 {
		t.Fatalf("subtotal=%v, esperaba 30", got)
	}
	if row[colCompanyName] != "Acme" || row[colDeliveryDate] != "2024-01-01" {
		t.Fatalf("customer mal mapeado: %v", row)
	}
}

func TestEncodeRow_ClampsAndOverrides(t *testing.T) {
	t.Parallel()

	o := &Order{ID: "7", Status: "En Proceso"}
	it := NewItem{
		ProductName: "Hoodie",
		Quantity:    -4, // clamped to 0
		BasePrice:   decimal.NewFromInt(25),
		Subtotal:    decimal.NewFromInt(99), // explicit override wins
	}
	row := encodeRow(o, it, 2, "/orders/imgs/order-preview-7-2.png")
	if row[colQuantity].(int) != 0 {
		t.Fatalf("quantity=%v, esperaba 0", row[colQuantity])
	}
	if row[colSubtotal].(float64) != 99 {
		t.Fatalf("subtotal=%v, esperaba 99 (override)", row[colSubtotal])
	}
	if row[colStatus] != "En Proceso" {
		t.Fatalf("status=%v", row[colStatus])
	}
	if row[colLinkImg] != "/orders/imgs/order-preview-7-2.png" {
		t.Fatalf("linkImg=%v", row[colLinkImg])
	}
}

func TestDecodeRow_ShortAndInvalid(t *testing.T) {
	t.Parallel()

	// fila corta: solo id y companyName presentes
	it := decodeRow([]string{"1001-1", "Acme"})
	if it.ID != "1001-1" || it.CompanyName != "Acme" {
		t.Fatalf("item=%+v", it)
	}
	if it.Quantity != 0 || !it.BasePrice.IsZero() || !it.Subtotal.IsZero() {
		t.Fatalf("numéricos faltantes deben ser 0: %+v", it)
	}

	// numéricos ilegibles => 0, nunca error
	it = decodeRow([]string{"x", "", "", "", "", "", "", "", "", "", "tres", "abc", "?", "Pendiente"})
	if it.Quantity != 0 || !it.BasePrice.IsZero() || !it.Subtotal.IsZero() {
		t.Fatalf("coerción fallida: %+v", it)
	}
	if it.Status != "Pendiente" {
		t.Fatalf("status=%q", it.Status)
	}
}

func TestRowRoundTrip(t *testing.T) {
	t.Parallel()

	o := &Order{
		ID:       "555",
		Customer: Customer{CompanyName: "Acme", Contact: "Jane"},
		Status:   "Pendiente",
	}
	in := NewItem{
		ProductName: "Tee",
		Color:       "Rojo",
		Size:        "M",
		Quantity:    3,
		BasePrice:   decimal.NewFromFloat(10.50),
	}

	row := encodeRow(o, in, 1, "")
	// GetRows devuelve celdas como strings; %v reproduce esa forma
	vals := make([]string, len(row))
	for i, v := range row {
		vals[i] = fmt.Sprintf("%v", v)
	}
	out := decodeRow(vals)

	if out.ID != "555-1" || out.ProductName != "Tee" || out.Color != "Rojo" || out.Size != "M" {
		t.Fatalf("round-trip: %+v", out)
	}
	if out.Quantity != 3 {
		t.Fatalf("quantity=%d", out.Quantity)
	}
	if !out.BasePrice.Equal(decimal.NewFromFloat(10.50)) {
		t.Fatalf("basePrice=%s", out.BasePrice)
	}
	if !out.Subtotal.Equal(decimal.NewFromFloat(31.50)) {
		t.Fatalf("subtotal=%s, esperaba 31.5", out.Subtotal)
	}
	if out.Status != "Pendiente" {
		t.Fatalf("status=%q", out.Status)
	}
}
