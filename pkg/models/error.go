package models

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

const (
	ErrTypeAuth               = "auth_error"
	ErrTypeBadRequest         = "bad_request"
	ErrTypeURLNotAllowed      = "url_not_allowed"
	ErrTypeBrowserUnavailable = "browser_unavailable"
	ErrTypeTimeout            = "timeout"
	ErrTypeBrowser            = "playwright_error"
	ErrTypeQuotaExceeded      = "quota_exceeded"
	ErrTypeInternal           = "internal_error"
)

type ErrorWithCode interface {
	error
	Code() int
}

// APIError is the wire level error body: {"type": ..., "message": ...}
type APIError struct {
	code    int
	err     error
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewAPIError(code int, errType string, err error) *APIError {
	return &APIError{
		code:    code,
		err:     err,
		Type:    errType,
		Message: err.Error(),
	}
}

func (e *APIError) Code() int {
	return e.code
}

func (e *APIError) Error() string {
	return e.err.Error()
}

func (e *APIError) Unwrap() error {
	return e.err
}

func NewBadRequestError(err error) *APIError {
	return NewAPIError(http.StatusBadRequest, ErrTypeBadRequest, err)
}

func NewUnauthorizedError(err error) *APIError {
	return NewAPIError(http.StatusUnauthorized, ErrTypeAuth, err)
}

func NewForbiddenError(err error) *APIError {
	return NewAPIError(http.StatusForbidden, ErrTypeAuth, err)
}

func NewURLNotAllowedError(err error) *APIError {
	return NewAPIError(http.StatusForbidden, ErrTypeURLNotAllowed, err)
}

func NewBrowserUnavailableError(err error) *APIError {
	return NewAPIError(http.StatusServiceUnavailable, ErrTypeBrowserUnavailable, err)
}

func NewQuotaExceededError(err error) *APIError {
	return NewAPIError(http.StatusTooManyRequests, ErrTypeQuotaExceeded, err)
}

func NewTimeoutError(err error) *APIError {
	return NewAPIError(http.StatusGatewayTimeout, ErrTypeTimeout, err)
}

func NewBrowserError(err error) *APIError {
	return NewAPIError(http.StatusBadGateway, ErrTypeBrowser, err)
}

func NewInternalServerError(err error) *APIError {
	return NewAPIError(http.StatusInternalServerError, ErrTypeInternal, err)
}

func WrapTimeoutErr(err error, msg string) error {
	var e ErrorWithCode
	if errors.Is(err, context.DeadlineExceeded) && !errors.As(err, &e) {
		err = NewTimeoutError(err)
	}
	return errors.Wrap(err, msg)
}
