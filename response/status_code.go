package response

import "net/http"

// StatusCode defines HTTP status codes as enums
type StatusCode int

const (
	StatusOK        StatusCode = 200
	StatusCreated   StatusCode = 201
	StatusAccepted  StatusCode = 202
	StatusNoContent StatusCode = 204

	StatusMovedPermanently StatusCode = 301
	StatusFound            StatusCode = 302
	StatusNotModified      StatusCode = 304

	StatusBadRequest       StatusCode = 400
	StatusUnauthorized     StatusCode = 401
	StatusForbidden        StatusCode = 403
	StatusNotFound         StatusCode = 404
	StatusMethodNotAllowed StatusCode = 405
	StatusNotAcceptable    StatusCode = 406
	StatusConflict         StatusCode = 409

	StatusInternalServerError StatusCode = 500
	StatusNotImplemented      StatusCode = 501
	StatusServiceUnavailable  StatusCode = 503
)

// GetStatusReason returns the reason phrase for the given status code.
func GetStatusReason(s StatusCode) string {
	return http.StatusText(int(s))
}
