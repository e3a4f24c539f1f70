package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"webapi/internal/domain/model"
	repo "webapi/internal/repository"
	"webapi/internal/validator"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
	log         logrus.FieldLogger
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, log logrus.FieldLogger) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		log:         log,
	}
}

// GET /products
func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	items, err := u.productRepo.List(ctx)
	if err != nil {
		u.log.WithError(err).Error("list products failed")
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// POST /products
// raw はデコード済みのJSONオブジェクト。型チェックは validator に任せる
func (u *ProductUsecase) CreateProduct(ctx context.Context, raw map[string]any) (model.Product, error) {
	in, err := validator.ValidateCreateProduct(raw)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:    in.Name,
		Price:   in.Price,
		InStock: in.InStock,
	})
	if err != nil {
		u.log.WithError(err).Error("create product failed")
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// DELETE /products/:id
// 件数で存在確認し、0件なら削除しないで404
func (u *ProductUsecase) DeleteProduct(ctx context.Context, productID int64) (int64, error) {
	count, err := u.productRepo.CountByID(ctx, productID)
	if err != nil {
		u.log.WithError(err).Error("count product failed")
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if count == 0 {
		return 0, NewHTTPError(http.StatusNotFound, "product not found")
	}

	err = u.productRepo.Delete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		// countとdeleteの間に別リクエストが消した
		return 0, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		u.log.WithError(err).Error("delete product failed")
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return productID, nil
}
