package dispatch

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whilp/neat/request"
	"github.com/whilp/neat/resource"
	"github.com/whilp/neat/response"
)

func hello() *resource.Resource {
	return resource.New("hello").
		Handle("retrieve", func(req *request.Request) response.Response {
			return response.NewTextResponse("Hello, " + req.PopSegment())
		})
}

func jsonHello() *resource.Resource {
	return resource.New("hello", resource.WithMimetypes(map[string]string{
		"application/javascript": "json",
	})).
		Handle("retrieve", func(req *request.Request) response.Response {
			return response.NewTextResponse("Hello, " + req.PopSegment())
		}).
		Handle("retrieve_json", func(req *request.Request) response.Response {
			body, err := json.Marshal(map[string]string{"message": "Hello, " + req.PopSegment()})
			if err != nil {
				return response.NewErrorResponse(response.StatusInternalServerError)
			}
			return response.NewBaseResponse().WithBody(bytes.NewReader(body))
		})
}

func serve(t *testing.T, d *Dispatch, method, target, accept string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	w := httptest.NewRecorder()
	d.ServeHTTP(w, req)
	return w
}

func TestDispatchHello(t *testing.T) {
	d, err := New(hello())
	require.NoError(t, err)

	w := serve(t, d, "GET", "/hello/you", "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "Hello, you", w.Body.String())
}

func TestDispatchJSONHello(t *testing.T) {
	d, err := New(jsonHello())
	require.NoError(t, err)

	w := serve(t, d, "GET", "/hello/you", "application/javascript")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/javascript", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Hello, you"}`, w.Body.String())

	// without the Accept header the base handler answers
	w = serve(t, d, "GET", "/hello/you", "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "Hello, you", w.Body.String())
}

func TestDispatchRoutesByCollection(t *testing.T) {
	first := resource.New("first").Handle("list", func(*request.Request) response.Response {
		return response.NewTextResponse("first")
	})
	second := resource.New("second").Handle("list", func(*request.Request) response.Response {
		return response.NewTextResponse("second")
	})

	d, err := New(first, second)
	require.NoError(t, err)

	assert.Equal(t, "first", serve(t, d, "GET", "/first", "").Body.String())
	assert.Equal(t, "second", serve(t, d, "GET", "/second", "").Body.String())
}

func TestDispatchNotFound(t *testing.T) {
	d, err := New(hello())
	require.NoError(t, err)

	w := serve(t, d, "GET", "/doesnotexist", "")
	assert.Equal(t, 404, w.Code)
}

func TestDispatchNoHandler(t *testing.T) {
	d, err := New(resource.New("empty"))
	require.NoError(t, err)

	w := serve(t, d, "GET", "/empty", "")
	assert.Equal(t, 404, w.Code)
}

func TestDispatchMethodNotAllowed(t *testing.T) {
	d, err := New(hello())
	require.NoError(t, err)

	w := serve(t, d, "PATCH", "/hello/you", "")
	assert.Equal(t, 405, w.Code)
}

func TestDispatchIdempotent(t *testing.T) {
	d, err := New(hello())
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		w := serve(t, d, "GET", "/hello/you", "")
		assert.Equal(t, 200, w.Code)
		assert.Equal(t, "Hello, you", w.Body.String())
	}
}

func TestDuplicateCollection(t *testing.T) {
	_, err := New(hello(), jsonHello())
	assert.ErrorIs(t, err, ErrDuplicateCollection)

	d, err := New(hello())
	require.NoError(t, err)
	assert.ErrorIs(t, d.Register(jsonHello()), ErrDuplicateCollection)
}

func TestNotFoundOverride(t *testing.T) {
	d, err := New(hello())
	require.NoError(t, err)

	d.NotFound(func(*request.Request) response.Response {
		return response.NewTextResponse("nothing here").
			WithStatusCode(response.StatusNotFound)
	})

	w := serve(t, d, "GET", "/doesnotexist", "")
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "nothing here", w.Body.String())
}

// fixedMatcher implements resource.Matcher with its own routing rules.
type fixedMatcher struct{}

func (fixedMatcher) Collection() string { return "fixed" }

func (fixedMatcher) Match(*request.Request) (resource.Handler, error) {
	return func(*request.Request) response.Response {
		return response.NewTextResponse("fixed")
	}, nil
}

func TestCustomMatcher(t *testing.T) {
	d, err := New(fixedMatcher{})
	require.NoError(t, err)

	// the custom matcher answers regardless of verb or Accept
	assert.Equal(t, "fixed", serve(t, d, "PATCH", "/fixed/anything", "").Body.String())
}

func TestNilResponseWrittenAsEmptyOK(t *testing.T) {
	quiet := resource.New("quiet").Handle("list", func(*request.Request) response.Response {
		return nil
	})

	d, err := New(quiet)
	require.NoError(t, err)

	w := serve(t, d, "GET", "/quiet", "")
	assert.Equal(t, 200, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestMiddlewareChainOrder(t *testing.T) {
	d, err := New(hello())
	require.NoError(t, err)

	var order []string
	mark := func(name string) Middleware {
		return func(next resource.Handler) resource.Handler {
			return func(r *request.Request) response.Response {
				order = append(order, name)
				return next(r)
			}
		}
	}
	d.Use(mark("outer"), mark("inner"))

	serve(t, d, "GET", "/hello/you", "")
	assert.Equal(t, []string{"outer", "inner"}, order)

	// middleware also observes not-found responses
	order = nil
	serve(t, d, "GET", "/doesnotexist", "")
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestURL(t *testing.T) {
	d, err := New(hello())
	require.NoError(t, err)

	u, err := d.URL("hello", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "/hello", u)

	u, err = d.URL("hello", "you", nil)
	require.NoError(t, err)
	assert.Equal(t, "/hello/you", u)

	u, err = d.URL("hello", "you", url.Values{"greeting": []string{"hi"}})
	require.NoError(t, err)
	assert.Equal(t, "/hello/you?greeting=hi", u)

	_, err = d.URL("doesnotexist", "", nil)
	assert.ErrorIs(t, err, ErrUnknownCollection)
}
