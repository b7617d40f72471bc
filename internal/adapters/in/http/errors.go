package http

import (
	"errors"
	"net/http"

	"sitta/internal/generated/servers"
	"sitta/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusCode maps an application error to its HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(ctx echo.Context, err error) error {
	code := StatusCode(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// ErrorHandler renders errors that reach echo, such as unknown routes and
// parameter binding failures, in the API error format.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		err = ctx.NoContent(code)
	} else {
		err = ctx.JSON(code, servers.Error{Code: code, Message: message})
	}
	if err != nil {
		ctx.Logger().Error(err)
	}
}
