package orders

import "encoding/json"

// RawLineItem - позиция заказа в том виде, в каком её прислал клиент.
// Любое поле может отсутствовать или иметь неожиданный тип.
type RawLineItem struct {
	ProductID   any `json:"productId"`
	ProductName any `json:"productName"`
	MRP         any `json:"mrp"`
	Price       any `json:"price"`
	Qty         any `json:"qty"`
	Note        any `json:"note"`
}

// UnmarshalJSON не падает на элементах, которые не являются объектом:
// такая позиция просто получает значения по умолчанию при нормализации.
func (r *RawLineItem) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		*r = RawLineItem{}
		return nil
	}

	*r = RawLineItem{
		ProductID:   fields["productId"],
		ProductName: fields["productName"],
		MRP:         fields["mrp"],
		Price:       fields["price"],
		Qty:         fields["qty"],
		Note:        fields["note"],
	}
	return nil
}
