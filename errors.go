package githubv2

import (
	"net/http"

	"github.com/nixon/githubv2/errors"
)

// newStatusError maps an HTTP status code from the API to a coded error.
func newStatusError(statusCode int, url string) error {
	var code errors.ErrorCode
	switch statusCode {
	case http.StatusNotFound:
		code = errors.CodeNotFound
	case http.StatusUnauthorized:
		code = errors.CodeUnauthorized
	case http.StatusForbidden:
		code = errors.CodeForbidden
	case http.StatusConflict:
		code = errors.CodeConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		code = errors.CodeInvalidInput
	case http.StatusTooManyRequests:
		code = errors.CodeRateLimit
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		code = errors.CodeNetwork
	default:
		if statusCode >= 500 {
			code = errors.CodeNetwork
		} else {
			code = errors.CodeInternal
		}
	}

	err := errors.Newf(code, "unexpected status %d %s", statusCode, http.StatusText(statusCode))
	return errors.WithContext(err, "url", url)
}

// wrapFetch rewraps a fetch failure with the resource path while keeping
// the original error's code.
func wrapFetch(err error, path string) error {
	if err == nil {
		return nil
	}
	code := errors.GetCode(err)
	if code == errors.CodeUnknown {
		code = errors.CodeNetwork
	}
	return errors.Wrapf(err, code, "failed to fetch %s", path)
}
