package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

// ブラウザのページから叩くので全オリジン許可。メソッドは GET/POST/DELETE のみ
func CORS() echo.MiddlewareFunc {
	return echoMw.CORSWithConfig(echoMw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		// 空にすると Access-Control-Request-Headers をそのまま返す（全ヘッダ許可）
		AllowHeaders: nil,
	})
}
