package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"webapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// エラーは常に {"detail": "..."} で返す
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// DELETE /products/:id のレスポンス
type DeleteResponse struct {
	ID int64 `json:"id"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Detail: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal error"})
}

// /products
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 商品のルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.POST("/products", h.create)
	e.DELETE("/products/:id", h.delete)
}

func (h *ProductHandler) list(c echo.Context) error {
	items, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) create(c echo.Context) error {
	// 型の検証をするので構造体ではなく生のオブジェクトで受ける
	var raw map[string]any
	if err := decodeObject(c.Request().Body, &raw); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid body"})
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), raw)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "id must be an integer"})
	}

	deleted, err := h.uc.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, DeleteResponse{ID: deleted})
}

var errInvalidBody = errors.New("invalid body")

// ボディはJSONオブジェクト1つだけ。後ろに余計なデータがあれば不正
func decodeObject(r io.Reader, raw *map[string]any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(raw); err != nil {
		return err
	}
	if *raw == nil {
		return errInvalidBody
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errInvalidBody
	}
	return nil
}
