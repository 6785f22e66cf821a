// Package dispatch aggregates resources and routes incoming HTTP requests
// to them by leading path segment.
package dispatch

import (
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/whilp/neat/request"
	"github.com/whilp/neat/resource"
	"github.com/whilp/neat/response"
)

var defaultNotFoundHandler resource.Handler = func(r *request.Request) response.Response {
	return response.NewErrorResponse(response.StatusNotFound)
}

// Middleware wraps a handler with cross-cutting behavior.
type Middleware func(resource.Handler) resource.Handler

// Dispatch routes requests to registered resources by their leading path
// segment. It implements http.Handler, so it runs under any Go HTTP
// server. Construction happens once at startup; a Dispatch is read-only
// afterwards and safe for concurrent use.
type Dispatch struct {
	resources   map[string]resource.Matcher
	notFound    resource.Handler
	middlewares []Middleware
}

// New creates a Dispatch over the given resources. Collection identifiers
// must be unique; a duplicate is a configuration error.
func New(resources ...resource.Matcher) (*Dispatch, error) {
	d := &Dispatch{
		resources: make(map[string]resource.Matcher, len(resources)),
		notFound:  defaultNotFoundHandler,
	}
	if err := d.Register(resources...); err != nil {
		return nil, err
	}
	return d, nil
}

// Register adds resources to the dispatch table.
func (d *Dispatch) Register(resources ...resource.Matcher) error {
	for _, m := range resources {
		collection := m.Collection()
		if _, ok := d.resources[collection]; ok {
			return fmt.Errorf("collection %q: %w", collection, ErrDuplicateCollection)
		}
		d.resources[collection] = m
	}
	log.Debugf("registered %d resources", len(resources))
	return nil
}

// NotFound sets the handler invoked when no resource matches the leading
// path segment.
func (d *Dispatch) NotFound(h resource.Handler) {
	d.notFound = h
}

// Use adds middleware applied around every handler, including the
// not-found handler, outermost first.
func (d *Dispatch) Use(m ...Middleware) {
	d.middlewares = append(d.middlewares, m...)
}

func (d *Dispatch) chain(h resource.Handler) resource.Handler {
	for i := len(d.middlewares) - 1; i >= 0; i-- {
		h = d.middlewares[i](h)
	}
	return h
}

// ServeHTTP pops the leading path segment, delegates to the resource
// registered under it, and writes the handler's response. Handler panics
// are not recovered here; install the Recovery middleware or let the
// hosting server convert them.
func (d *Dispatch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := request.New(r)
	resp := d.dispatch(req)
	if resp == nil {
		resp = response.NewBaseResponse()
	}
	if err := resp.Write(w); err != nil {
		log.Errorf("failed to write response for %s %s: %v", req.Method(), req.Path(), err)
	}
}

func (d *Dispatch) dispatch(req *request.Request) response.Response {
	collection := req.PopSegment()
	m, ok := d.resources[collection]
	if !ok {
		log.WithField("collection", collection).Debug("no resource for path segment")
		return d.chain(d.notFound)(req)
	}

	h, err := m.Match(req)
	if err != nil {
		log.WithField("collection", collection).Debugf("match failed: %v", err)
		return d.chain(matchErrorHandler(err))(req)
	}

	return d.chain(h)(req)
}

// matchErrorHandler converts a match error into a handler so that error
// responses still pass through the middleware chain.
func matchErrorHandler(err error) resource.Handler {
	return func(*request.Request) response.Response {
		if errors.Is(err, resource.ErrMethodNotAllowed) {
			return response.NewErrorResponse(response.StatusMethodNotAllowed)
		}
		return response.NewErrorResponse(response.StatusNotFound)
	}
}
