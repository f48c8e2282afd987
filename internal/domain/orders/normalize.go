// Package orders содержит бизнес-логику заказа: нормализацию позиций,
// подсчёт суммы и контроль статуса. Пакет не ходит в БД.
package orders

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/linemk/shop-orders/internal/domain/models"
)

const defaultQty = 1

// Normalize приводит сырые позиции к каноническому виду, сохраняя порядок.
// Никогда не возвращает ошибку: некорректные числа заменяются значениями по умолчанию.
func Normalize(raw []RawLineItem) models.LineItems {
	items := make(models.LineItems, 0, len(raw))
	for _, r := range raw {
		items = append(items, NormalizeItem(r))
	}
	return items
}

// NormalizeItem нормализует одну позицию
func NormalizeItem(r RawLineItem) models.LineItem {
	// ноль и мусор неразличимы - в обоих случаях одна единица товара
	qty, ok := parseNumber(r.Qty)
	if !ok || qty == 0 {
		qty = defaultQty
	}

	price, ok := parseNumber(r.Price)
	if !ok {
		price = 0
	}

	mrp, ok := parseNumber(r.MRP)
	if !ok {
		mrp = 0
	}

	note := ""
	if r.Note != nil {
		note = stringify(r.Note)
	}

	return models.LineItem{
		ProductID:   optionalString(r.ProductID),
		ProductName: optionalString(r.ProductName),
		MRP:         mrp,
		Price:       price,
		Qty:         qty,
		LineTotal:   price * qty,
		Note:        note,
	}
}

// parseNumber разбирает число из json-значения.
// Пустая строка, как и false, даёт 0; отсутствующее значение - ошибка разбора.
func parseNumber(v any) (float64, bool) {
	var n float64
	switch val := v.(type) {
	case float64:
		n = val
	case int:
		n = float64(val)
	case int64:
		n = float64(val)
	case bool:
		if val {
			n = 1
		}
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, true
		}
		parsed, ok := parseNumberString(s)
		if !ok {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}

	// NaN и бесконечность не сериализуются в json
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// parseNumberString понимает десятичную запись и целые с префиксами 0x, 0o, 0b.
// Знак перед префиксом, шестнадцатеричные дроби и подчёркивания не принимаются.
func parseNumberString(s string) (float64, bool) {
	lower := strings.ToLower(s)
	if len(lower) > 2 && lower[0] == '0' {
		base := 0
		switch lower[1] {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 0 {
			u, err := strconv.ParseUint(lower[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(u), true
		}
	}

	if strings.ContainsAny(lower, "x_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func optionalString(v any) *string {
	if v == nil {
		return nil
	}
	s := stringify(v)
	return &s
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		// объекты, массивы и bool сохраняются в виде json
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
