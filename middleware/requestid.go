package middleware

import (
	"github.com/google/uuid"

	"github.com/whilp/neat/request"
	"github.com/whilp/neat/resource"
	"github.com/whilp/neat/response"
)

// RequestIDHeader carries the request id on requests and responses.
const RequestIDHeader = "X-Request-Id"

// RequestID tags each request and its response with an id, generating a
// uuid when the client did not send one.
func RequestID(next resource.Handler) resource.Handler {
	return func(r *request.Request) response.Response {
		id := r.HTTP.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.HTTP.Header.Set(RequestIDHeader, id)
		}

		resp := next(r)
		if resp != nil && resp.GetHeaders().Get(RequestIDHeader) == "" {
			resp.WithHeader(RequestIDHeader, id)
		}
		return resp
	}
}
