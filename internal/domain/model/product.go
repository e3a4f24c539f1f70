package model

// Product は products テーブルの1行。id はストアが採番する
type Product struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	InStock bool    `json:"in_stock"`
}
