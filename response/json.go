package response

import (
	"bytes"
	"encoding/json"
)

// JSONResponse is a response that sends JSON.
type JSONResponse struct {
	Response
}

// NewJSONResponse creates a new JSON response.
func NewJSONResponse(data any) (Response, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	br := NewBaseResponse().
		WithHeader("Content-Type", "application/json").
		WithBody(bytes.NewReader(body))

	return &JSONResponse{
		Response: br,
	}, nil
}
