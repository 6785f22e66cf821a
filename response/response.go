package response

import (
	"io"
	"net/http"
)

// Response is what handlers return. Implementations carry a status code,
// headers, and an optional body, and know how to write themselves to an
// http.ResponseWriter.
type Response interface {
	GetStatusCode() StatusCode
	GetHeaders() http.Header
	GetBody() io.Reader

	WithStatusCode(StatusCode) Response
	WithHeader(key, value string) Response
	WithHeaders(headers map[string]string) Response
	WithBody(body io.Reader) Response

	Write(w http.ResponseWriter) error
}
