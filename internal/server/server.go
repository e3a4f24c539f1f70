package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"webapi/internal/handler"
	"webapi/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// New は middleware とルートを登録した echo を返す
func New(log logrus.FieldLogger, productH *handler.ProductHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(log)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.CORS())

	RegisterRoutes(e, productH)
	return e
}

// Start は ctx がキャンセルされるまで待ち受け、その後 graceful shutdown する
func Start(ctx context.Context, addr string, e *echo.Echo, log logrus.FieldLogger) error {
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("server started")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("server shutting down")
	return e.Shutdown(shutdownCtx)
}

// echo 自身のエラー（404/405/400 など）も {"detail": "..."} にそろえる
func errorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		detail := "internal error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if msg, ok := he.Message.(string); ok {
				detail = msg
			} else {
				detail = http.StatusText(he.Code)
			}
		} else {
			log.WithError(err).Error("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, handler.ErrorResponse{Detail: detail})
		}
		if err != nil {
			log.WithError(err).Error("write error response")
		}
	}
}
