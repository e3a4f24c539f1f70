package validator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) map[string]any {
	t.Helper()
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func TestValidateCreateProduct_OK_DefaultInStock(t *testing.T) {
	in, err := ValidateCreateProduct(decode(t, `{"name":"Widget","price":9.99}`))
	require.NoError(t, err)
	assert.Equal(t, CreateProductInput{Name: "Widget", Price: 9.99, InStock: true}, in)
}

func TestValidateCreateProduct_IntegerPrice(t *testing.T) {
	in, err := ValidateCreateProduct(decode(t, `{"name":"A","price":5}`))
	require.NoError(t, err)
	assert.Equal(t, 5.0, in.Price)
}

func TestValidateCreateProduct_NameErrors(t *testing.T) {
	cases := map[string]string{
		"missing":    `{"price":5}`,
		"empty":      `{"name":"","price":5}`,
		"not string": `{"name":42,"price":5}`,
		"null":       `{"name":null,"price":5}`,
	}
	for label, body := range cases {
		t.Run(label, func(t *testing.T) {
			_, err := ValidateCreateProduct(decode(t, body))
			assert.ErrorIs(t, err, ErrInvalidName)
		})
	}
}

// name の検証が先。両方不正でも name のエラーになる
func TestValidateCreateProduct_NameCheckedBeforePrice(t *testing.T) {
	_, err := ValidateCreateProduct(decode(t, `{"price":"free"}`))
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestValidateCreateProduct_PriceErrors(t *testing.T) {
	cases := map[string]string{
		"missing": `{"name":"A"}`,
		"text":    `{"name":"A","price":"free"}`,
		"bool":    `{"name":"A","price":true}`,
		"null":    `{"name":"A","price":null}`,
		"array":   `{"name":"A","price":[1]}`,
	}
	for label, body := range cases {
		t.Run(label, func(t *testing.T) {
			_, err := ValidateCreateProduct(decode(t, body))
			assert.ErrorIs(t, err, ErrInvalidPrice)
		})
	}
}

func TestValidateCreateProduct_InStockTruthiness(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`null`, false},
		{`0`, false},
		{`0.0`, false},
		{`1`, true},
		{`-2.5`, true},
		{`""`, false},
		{`"no"`, true},
		{`[]`, false},
		{`[0]`, true},
		{`{}`, false},
		{`{"a":1}`, true},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			in, err := ValidateCreateProduct(decode(t, `{"name":"A","price":1,"in_stock":`+tc.raw+`}`))
			require.NoError(t, err)
			assert.Equal(t, tc.want, in.InStock)
		})
	}
}

func TestValidateCreateProduct_JSONNumber(t *testing.T) {
	in, err := ValidateCreateProduct(map[string]any{"name": "A", "price": json.Number("3.25"), "in_stock": json.Number("0")})
	require.NoError(t, err)
	assert.Equal(t, 3.25, in.Price)
	assert.False(t, in.InStock)
}

// price は float64 で持つ。2^53 を超える整数は丸められる
func TestValidateCreateProduct_LargeIntegerPriceRounded(t *testing.T) {
	in, err := ValidateCreateProduct(decode(t, `{"name":"A","price":9007199254740993}`))
	require.NoError(t, err)
	assert.Equal(t, float64(9007199254740992), in.Price)
}
