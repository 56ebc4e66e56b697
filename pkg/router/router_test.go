package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestVerbRouting(t *testing.T) {
	r := New()
	api := r.Group("/api/v1")
	api.Get("/things", "things.index", ok)
	api.Post("/things", "things.store", ok)
	api.Put("/things/{id}", "things.update", ok)
	api.Patch("/things/{id}", "things.patch", ok)
	api.Delete("/things/{id}", "things.destroy", ok)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	for _, tc := range []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/api/v1/things", http.StatusOK},
		{http.MethodPost, "/api/v1/things", http.StatusOK},
		{http.MethodPut, "/api/v1/things/7", http.StatusOK},
		{http.MethodPatch, "/api/v1/things/7", http.StatusOK},
		{http.MethodDelete, "/api/v1/things/7", http.StatusOK},
		{http.MethodDelete, "/api/v1/things", http.StatusMethodNotAllowed},
	} {
		req, err := http.NewRequest(tc.method, srv.URL+tc.path, nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, tc.want, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}

func TestGroupMiddlewareApplies(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, req)
			})
		}
	}

	r := New()
	g := r.Group("/g", tag("group"))
	g.Get("/x", "", ok, tag("route"))

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/g/x")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, []string{"group", "route"}, order)
}

func TestRoutesAndURL(t *testing.T) {
	r := New()
	r.Get("/users/{id}", "users.show", ok)

	url, err := r.URL("users.show", map[string]string{"id": "9"})
	require.NoError(t, err)
	assert.Equal(t, "/users/9", url)

	_, err = r.URL("users.show", nil)
	assert.Error(t, err)

	infos := r.Routes()
	require.Len(t, infos, 1)
	assert.Equal(t, RouteInfo{Method: http.MethodGet, Path: "/users/{id}", Name: "users.show"}, infos[0])
}
