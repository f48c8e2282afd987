package orders_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/linemk/shop-orders/internal/domain/models"
	"github.com/linemk/shop-orders/internal/domain/orders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeItems(t *testing.T, body string) []orders.RawLineItem {
	t.Helper()
	var raw []orders.RawLineItem
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func TestPrice_StringNumbers(t *testing.T) {
	priced := orders.Price(decodeItems(t, `[{"price":"10","qty":"2"}]`))

	require.Len(t, priced.Items, 1)
	assert.Equal(t, 10.0, priced.Items[0].Price)
	assert.Equal(t, 2.0, priced.Items[0].Qty)
	assert.Equal(t, 20.0, priced.Items[0].LineTotal)
	assert.Equal(t, 20.0, priced.TotalAmount)
}

func TestPrice_ZeroQtyBecomesOne(t *testing.T) {
	priced := orders.Price(decodeItems(t, `[{"price":5},{"mrp":9,"price":3,"qty":0}]`))

	require.Len(t, priced.Items, 2)
	assert.Equal(t, 1.0, priced.Items[0].Qty)
	assert.Equal(t, 5.0, priced.Items[0].LineTotal)
	assert.Equal(t, 1.0, priced.Items[1].Qty)
	assert.Equal(t, 9.0, priced.Items[1].MRP)
	assert.Equal(t, 3.0, priced.Items[1].LineTotal)
	assert.Equal(t, 8.0, priced.TotalAmount)
}

func TestNormalizeItem_QtyDefaults(t *testing.T) {
	tests := []struct {
		name string
		qty  any
		want float64
	}{
		{name: "absent", qty: nil, want: 1},
		{name: "zero", qty: 0.0, want: 1},
		{name: "zero string", qty: "0", want: 1},
		{name: "empty string", qty: "", want: 1},
		{name: "garbage", qty: "abc", want: 1},
		{name: "object", qty: map[string]any{"n": 2.0}, want: 1},
		{name: "false", qty: false, want: 1},
		{name: "true", qty: true, want: 1},
		{name: "numeric string", qty: " 3 ", want: 3},
		{name: "fraction", qty: 1.5, want: 1.5},
		{name: "negative", qty: -2.0, want: -2},
		{name: "nan string", qty: "NaN", want: 1},
		{name: "infinity string", qty: "Infinity", want: 1},
		{name: "hex", qty: "0x2", want: 2},
		{name: "binary", qty: "0b11", want: 3},
		{name: "octal", qty: "0o7", want: 7},
		{name: "exponent", qty: "1e1", want: 10},
		{name: "hex float", qty: "0x1p4", want: 1},
		{name: "signed hex", qty: "-0x2", want: 1},
		{name: "underscores", qty: "1_000", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := orders.NormalizeItem(orders.RawLineItem{Qty: tt.qty, Price: 2.0})
			assert.Equal(t, tt.want, item.Qty)
			assert.Equal(t, 2.0*tt.want, item.LineTotal)
		})
	}
}

func TestNormalizeItem_PriceAndMRPDefaults(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
	}{
		{name: "absent", value: nil, want: 0},
		{name: "garbage", value: "ten", want: 0},
		{name: "list", value: []any{1.0}, want: 0},
		{name: "number", value: 12.5, want: 12.5},
		{name: "string", value: "7.25", want: 7.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := orders.NormalizeItem(orders.RawLineItem{Price: tt.value, MRP: tt.value, Qty: 2.0})
			assert.Equal(t, tt.want, item.Price)
			assert.Equal(t, tt.want, item.MRP)
			assert.Equal(t, tt.want*2, item.LineTotal)
		})
	}
}

func TestNormalizeItem_LineTotalIsPlainMultiplication(t *testing.T) {
	item := orders.NormalizeItem(orders.RawLineItem{Price: 0.1, Qty: 3.0})

	// без округления до копеек
	assert.Equal(t, 0.1*3.0, item.LineTotal)
	assert.NotEqual(t, 0.3, item.LineTotal)
}

func TestNormalizeItem_PassThroughFields(t *testing.T) {
	item := orders.NormalizeItem(orders.RawLineItem{
		ProductID:   "p-1",
		ProductName: "Soap",
		Note:        "fragile",
	})

	require.NotNil(t, item.ProductID)
	assert.Equal(t, "p-1", *item.ProductID)
	require.NotNil(t, item.ProductName)
	assert.Equal(t, "Soap", *item.ProductName)
	assert.Equal(t, "fragile", item.Note)

	structured := orders.NormalizeItem(orders.RawLineItem{
		ProductID:   true,
		ProductName: map[string]any{"en": "Soap", "hi": "sabun"},
		Note:        []any{"a", "b"},
	})
	require.NotNil(t, structured.ProductID)
	assert.Equal(t, "true", *structured.ProductID)
	require.NotNil(t, structured.ProductName)
	assert.JSONEq(t, `{"en":"Soap","hi":"sabun"}`, *structured.ProductName)
	assert.JSONEq(t, `["a","b"]`, structured.Note)

	numeric := orders.NormalizeItem(orders.RawLineItem{ProductID: 42.0})
	assert.Equal(t, "42", *numeric.ProductID)

	empty := orders.NormalizeItem(orders.RawLineItem{})
	assert.Nil(t, empty.ProductID)
	assert.Nil(t, empty.ProductName)
	assert.Equal(t, "", empty.Note)
	assert.Equal(t, 1.0, empty.Qty)
	assert.Equal(t, 0.0, empty.LineTotal)
}

func TestNormalize_PreservesOrderAndTolerance(t *testing.T) {
	raw := decodeItems(t, `[{"productId":"a","price":1}, 42, null, {"productId":"b","price":2,"qty":"3"}]`)

	items := orders.Normalize(raw)

	require.Len(t, items, 4)
	assert.Equal(t, "a", *items[0].ProductID)
	assert.Nil(t, items[1].ProductID)
	assert.Equal(t, 1.0, items[1].Qty)
	assert.Nil(t, items[2].ProductID)
	assert.Equal(t, "b", *items[3].ProductID)
	assert.Equal(t, 6.0, items[3].LineTotal)
}

func TestNormalize_Empty(t *testing.T) {
	items := orders.Normalize(nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Equal(t, 0.0, orders.Total(items))
}

func TestTotal_SumsLineTotals(t *testing.T) {
	items := models.LineItems{
		{LineTotal: 2.5},
		{LineTotal: 0},
		{LineTotal: 7.5},
	}
	assert.Equal(t, 10.0, orders.Total(items))
}

func TestParseStatus(t *testing.T) {
	for _, st := range []string{"Pending", "Delivered", "Cancelled"} {
		got, err := orders.ParseStatus(st)
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatus(st), got)
	}

	for _, st := range []string{"Shipped", "pending", "", " Pending"} {
		_, err := orders.ParseStatus(st)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, orders.ErrInvalidStatus))
	}
}
