package middleware

import (
	"log/slog"
	"net/http"

	"mealmarket/config"
	"mealmarket/internal/delivery/api/response"
	deliverycontext "mealmarket/internal/delivery/context"
	"mealmarket/internal/domain/constants"
	domainerrors "mealmarket/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the central echo error handler.
type ErrorMiddleware struct {
	logger *slog.Logger
	// verbose exposes internal details of 5xx errors, for development only
	verbose bool
}

func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:  logger,
		verbose: cfg.Env.Env == constants.EnvDevelop,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
			)
			m.renderInternal(c, appErr.ErrorCode(), appErr.Message(), err)

			return
		}
		_ = response.AppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, httpErrorCode(httpErr.Code), message, nil)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	m.renderInternal(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), err)
}

func (m *ErrorMiddleware) renderInternal(c echo.Context, code, message string, err error) {
	if !m.verbose {
		_ = response.Error(c, http.StatusInternalServerError, code, message, nil)

		return
	}

	_ = c.JSON(http.StatusInternalServerError, response.Envelope{
		Message:   message,
		Error:     &response.ErrorInfo{Code: code, Details: err.Error()},
		RequestID: deliverycontext.GetRequestID(c),
	})
}

func httpErrorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return domainerrors.ErrValidationFailed.ErrorCode()
	case http.StatusUnauthorized:
		return domainerrors.ErrUnauthenticated.ErrorCode()
	case http.StatusNotFound:
		return "ROUTE_NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	default:
		return "HTTP_ERROR"
	}
}
