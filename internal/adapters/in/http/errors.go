package http

import (
	"errors"
	"net/http"

	"kitchenpos/internal/generated/servers"
	"kitchenpos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// problem maps an error returned by a command or query to its HTTP status and
// error kind. Reference errors are checked before validation errors because a
// missing row is reported with errs.ErrObjectNotFound only.
func problem(err error) (int, servers.ErrorKind) {
	switch {
	case errors.Is(err, errs.ErrRuleIsViolated):
		return http.StatusConflict, servers.CONFLICT
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, servers.NOTFOUND
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, servers.VALIDATION
	default:
		return http.StatusInternalServerError, servers.INTERNAL
	}
}

// respondError writes err as a servers.Error. Internal errors are logged and
// their message is not exposed.
func (s *Server) respondError(ctx echo.Context, err error) error {
	code, kind := problem(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Kind:    kind,
		Message: message,
	})
}

// ErrorHandler renders errors that escape the handlers, such as binding
// failures and unknown routes, in the same shape as handler errors.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	kind := servers.INTERNAL
	switch {
	case code == http.StatusNotFound:
		kind = servers.NOTFOUND
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		kind = servers.VALIDATION
	}

	var writeErr error
	if ctx.Request().Method == http.MethodHead {
		writeErr = ctx.NoContent(code)
	} else {
		writeErr = ctx.JSON(code, servers.Error{Code: code, Kind: kind, Message: message})
	}
	if writeErr != nil {
		ctx.Logger().Error(writeErr)
	}
}
