// Package resource routes requests for one collection to handlers selected
// by HTTP verb and negotiated media type.
package resource

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/whilp/neat/request"
	"github.com/whilp/neat/response"
)

// Handler handles a matched request and returns a response. A nil response
// is written as an empty 200.
type Handler func(*request.Request) response.Response

// Matcher selects a handler for a request. *Resource is the default
// implementation; anything with its own routing or negotiation rules can
// implement Matcher directly and register with a Dispatch.
type Matcher interface {
	// Collection returns the path segment the matcher is registered under.
	Collection() string

	// Match returns the handler for the request, or an error describing
	// why no handler applies.
	Match(req *request.Request) (Handler, error)
}

// Verb tables mapping HTTP methods to base handler names. Requests
// addressing the collection itself use collectionMethods; requests
// addressing a member use memberMethods.
var (
	collectionMethods = map[string]string{
		"GET":  "list",
		"POST": "create",
	}
	memberMethods = map[string]string{
		"GET":    "retrieve",
		"POST":   "replace",
		"PUT":    "update",
		"DELETE": "delete",
	}
)

// Resource holds the handlers for one collection. Handlers are registered
// under composed names: a verb base name ("retrieve") plus an optional
// media type suffix ("retrieve_json"). Construction happens once at
// startup; a Resource is read-only afterwards and safe for concurrent use.
type Resource struct {
	collection string
	mimetypes  map[string]string
	supported  []string
	handlers   map[string]Handler
}

// Option configures a Resource.
type Option func(*Resource)

// WithMimetypes adds media type to suffix mappings. Handlers registered
// under a suffixed name serve requests whose Accept header negotiates to
// the corresponding media type. The default mapping routes */* to the
// base names.
func WithMimetypes(mimetypes map[string]string) Option {
	return func(r *Resource) {
		for mediatype, suffix := range mimetypes {
			r.mimetypes[mediatype] = suffix
		}
	}
}

// New creates a Resource for collection.
func New(collection string, opts ...Option) *Resource {
	r := &Resource{
		collection: collection,
		mimetypes:  map[string]string{"*/*": ""},
		handlers:   map[string]Handler{},
	}
	for _, opt := range opts {
		opt(r)
	}

	// a stable offer order keeps negotiation ties deterministic
	r.supported = make([]string, 0, len(r.mimetypes))
	for mediatype := range r.mimetypes {
		r.supported = append(r.supported, mediatype)
	}
	sort.Strings(r.supported)

	return r
}

// Handle registers h under a composed method name. Returns the Resource
// for chaining.
func (r *Resource) Handle(name string, h Handler) *Resource {
	r.handlers[name] = h
	return r
}

// Collection returns the path segment this resource is addressed by.
func (r *Resource) Collection() string {
	return r.collection
}

// Match selects a handler by combining the verb base name for the
// request's scope with the suffix negotiated from its Accept header. The
// returned handler applies the negotiated media type as Content-Type when
// the handler's own response does not set one.
func (r *Resource) Match(req *request.Request) (Handler, error) {
	methods := collectionMethods
	if len(req.Segments()) > 0 {
		methods = memberMethods
	}

	base, ok := methods[req.Method()]
	if !ok {
		return nil, fmt.Errorf("%s on %q: %w", req.Method(), r.collection, ErrMethodNotAllowed)
	}

	mediatype := request.BestMatch(r.supported, req.Accept())
	suffix := r.mimetypes[mediatype]

	name := base
	if suffix != "" {
		name = base + "_" + suffix
	}

	h, ok := r.handlers[name]
	if !ok {
		log.WithFields(log.Fields{
			"collection": r.collection,
			"method":     name,
		}).Debug("no handler registered for method name")
		return nil, fmt.Errorf("%s on %q: %w", name, r.collection, ErrNoHandler)
	}

	log.WithFields(log.Fields{
		"collection": r.collection,
		"method":     name,
		"mediatype":  mediatype,
	}).Debug("matched handler")

	if mediatype == "" || mediatype == "*/*" {
		return h, nil
	}
	return withContentType(h, mediatype), nil
}

// withContentType applies mediatype as the response Content-Type unless
// the handler set its own.
func withContentType(h Handler, mediatype string) Handler {
	return func(req *request.Request) response.Response {
		resp := h(req)
		if resp == nil {
			return nil
		}
		if resp.GetHeaders().Get("Content-Type") == "" {
			resp.WithHeader("Content-Type", mediatype)
		}
		return resp
	}
}
