package validator

import (
	"encoding/json"
	"errors"
)

var (
	// nameが無い・文字列でない・空
	ErrInvalidName = errors.New("field name is required and must be a non-empty string")

	// priceが無い・数値でない
	ErrInvalidPrice = errors.New("field price is required and must be a number")
)

// 検証済みの作成入力
type CreateProductInput struct {
	Name    string
	Price   float64
	InStock bool
}

// 商品作成の入力を検証
// name → price の順に見て、最初に失敗した項目で返す。
// in_stock は型エラーにせず真偽値に変換する（省略時は true）。
func ValidateCreateProduct(raw map[string]any) (CreateProductInput, error) {
	name, ok := raw["name"].(string)
	if !ok || name == "" {
		return CreateProductInput{}, ErrInvalidName
	}

	price, ok := number(raw["price"])
	if !ok {
		return CreateProductInput{}, ErrInvalidPrice
	}

	inStock := true
	if v, present := raw["in_stock"]; present {
		inStock = truthy(v)
	}

	return CreateProductInput{
		Name:    name,
		Price:   price,
		InStock: inStock,
	}, nil
}

// JSONの数値だけを受け付ける（bool・文字列は不可）
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// null / false / 0 / "" / [] / {} が false、それ以外は true
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		if f, ok := number(x); ok {
			return f != 0
		}
		return true
	}
}
