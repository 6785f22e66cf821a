package request

import (
	"net/http"
	"strings"
)

// Request wraps an *http.Request with the state dispatch needs: the HTTP
// method, the not-yet-consumed path segments, and the Accept header.
type Request struct {
	HTTP *http.Request

	path     string
	segments []string
}

// New wraps an incoming http.Request. The request path is split into
// segments once; dispatch and resources consume them from the front.
func New(r *http.Request) *Request {
	path := r.URL.Path
	var segments []string
	for _, segment := range strings.Split(strings.Trim(path, "/"), "/") {
		if segment == "" {
			continue
		}
		segments = append(segments, segment)
	}

	return &Request{HTTP: r, path: path, segments: segments}
}

// Method returns the HTTP method.
func (r *Request) Method() string {
	return r.HTTP.Method
}

// Path returns the full request path, including consumed segments.
func (r *Request) Path() string {
	return r.path
}

// PopSegment consumes and returns the leading unconsumed path segment. It
// returns "" once all segments are consumed.
func (r *Request) PopSegment() string {
	if len(r.segments) == 0 {
		return ""
	}
	segment := r.segments[0]
	r.segments = r.segments[1:]
	return segment
}

// Segments returns the unconsumed path segments.
func (r *Request) Segments() []string {
	return r.segments
}

// Accept returns the Accept header, or "*/*" when the client sent none.
func (r *Request) Accept() string {
	accept := r.HTTP.Header.Get("Accept")
	if accept == "" {
		return "*/*"
	}
	return accept
}
