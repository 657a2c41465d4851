package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/browserd/browserd/pkg/models"
)

// ErrorHandler renders every error as the wire level body
// {"type": ..., "message": ...} keeping client behavior uniform across
// handler errors, echo routing errors and middleware failures.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	apiErr := &models.APIError{}
	if errors.As(err, &apiErr) {
		_ = c.JSON(apiErr.Code(), apiErr)
		return
	}

	httpErr := &echo.HTTPError{}
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, toAPIError(httpErr))
		return
	}

	code := http.StatusInternalServerError
	if e, ok := unwrapErrorWithCode(err); ok {
		code = e.Code()
	}
	_ = c.JSON(code, models.NewAPIError(code, models.ErrTypeInternal, err))
}

func toAPIError(httpErr *echo.HTTPError) *models.APIError {
	msg := fmt.Sprintf("%v", httpErr.Message)
	switch httpErr.Code {
	case http.StatusUnauthorized:
		return models.NewUnauthorizedError(errors.New(msg))
	case http.StatusForbidden:
		return models.NewForbiddenError(errors.New(msg))
	case http.StatusInternalServerError:
		return models.NewInternalServerError(errors.New(msg))
	default:
		return models.NewAPIError(httpErr.Code, models.ErrTypeBadRequest, errors.New(msg))
	}
}

func unwrapErrorWithCode(err error) (models.ErrorWithCode, bool) {
	var e models.ErrorWithCode
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
