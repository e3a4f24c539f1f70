package server

import (
	"webapi/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, productH *handler.ProductHandler) {
	productH.RegisterRoutes(e)
}
