package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"webapi/internal/domain/model"
	repo "webapi/internal/repository"
)

// products テーブルの行。in_stock は INTEGER(1/0) で持つ
// DEFAULT 1 はDDL側のみ。defaultタグを付けると0が1に置き換わる
type productRow struct {
	ID      int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name    string  `gorm:"column:name;not null"`
	Price   float64 `gorm:"column:price;not null"`
	InStock int     `gorm:"column:in_stock;not null"`
}

func (productRow) TableName() string { return "products" }

func (r productRow) toModel() model.Product {
	return model.Product{
		ID:      r.ID,
		Name:    r.Name,
		Price:   r.Price,
		InStock: r.InStock != 0,
	}
}

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

var _ repo.ProductRepository = (*ProductGormRepository)(nil)

// 全件をストアの並び順のまま返す
func (r *ProductGormRepository) List(ctx context.Context) ([]model.Product, error) {
	var rows []productRow
	if err := r.db.WithContext(ctx).Select("id", "name", "price", "in_stock").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	products := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toModel())
	}
	return products, nil
}

// 商品の作成。idはストアが採番
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	row := productRow{
		Name:    p.Name,
		Price:   p.Price,
		InStock: boolToInt(p.InStock),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.Product{}, errors.Wrap(err, "create product")
	}
	return row.toModel(), nil
}

// idに一致する行数
func (r *ProductGormRepository) CountByID(ctx context.Context, id int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&productRow{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count product")
	}
	return count, nil
}

// 商品削除（物理削除）
func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&productRow{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete product")
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
