package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"orders/internal/core/application/result"
	"orders/internal/generated/servers"
	"orders/internal/telemetry"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// respond writes res using the three-way mapping: success with status,
// logical failure as 400 and internal failure as 500. An empty success
// marker is written as 204.
func respond[T any](ctx echo.Context, logger *zap.Logger, status int, res result.Result[T]) error {
	switch res.Kind() {
	case result.KindSuccess:
		if _, empty := any(res.Data()).(result.Empty); empty || status == http.StatusNoContent {
			return ctx.NoContent(http.StatusNoContent)
		}
		return ctx.JSON(status, res.Data())
	case result.KindLogicalFailure:
		return badRequest(ctx, res.Message())
	default:
		return internalError(ctx, logger, res.Fault())
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Message: message})
}

func internalError(ctx echo.Context, logger *zap.Logger, fault error) error {
	logger.Error("internal failure",
		zap.String("method", ctx.Request().Method),
		zap.String("path", ctx.Path()),
		zap.String("trace_id", telemetry.TraceID(ctx.Request().Context())),
		zap.Error(fault))

	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Message:   fault.Error(),
		Exception: &servers.Exception{Type: faultType(fault)},
	})
}

// faultType names the innermost typed error of fault.
func faultType(fault error) string {
	for {
		next := errors.Unwrap(fault)
		if next == nil || strings.HasPrefix(fmt.Sprintf("%T", next), "*errors.errorString") {
			break
		}
		fault = next
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", fault), "*")
}

// errorHandler renders echo's own errors (unknown routes, binding problems)
// in the API error shape.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			message := fmt.Sprint(he.Message)
			if he.Code >= http.StatusInternalServerError {
				logger.Error("request failed", zap.String("path", ctx.Path()), zap.Error(err))
			}
			_ = ctx.JSON(he.Code, servers.Error{Message: message})
			return
		}

		_ = internalError(ctx, logger, err)
	}
}
