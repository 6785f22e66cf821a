package response

import "strings"

// TextResponse is a response that sends plain text.
type TextResponse struct {
	Response
}

// NewTextResponse creates a new text response.
func NewTextResponse(body string) Response {
	br := NewBaseResponse().
		WithHeader("Content-Type", "text/plain").
		WithBody(strings.NewReader(body))

	return &TextResponse{
		Response: br,
	}
}

// NewErrorResponse creates a plain text response carrying the reason phrase
// for the given status code.
func NewErrorResponse(code StatusCode) Response {
	return NewTextResponse(GetStatusReason(code)).WithStatusCode(code)
}
