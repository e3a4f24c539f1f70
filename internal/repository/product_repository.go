package repository

import (
	"context"
	"errors"

	"webapi/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得・削除）だけを約束。
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	CountByID(ctx context.Context, id int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}
