package router_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andyagdw/word-wizards/internal/pkg/router"
	"github.com/stretchr/testify/assert"
)

func TestHandleFunc(t *testing.T) {
	tbl := []struct {
		method       string
		path         string
		responseBody string
		status       int
	}{
		{"GET", "/hello", "ok", http.StatusOK},
		{"GET", "/", "root hit", http.StatusOK},
		{"POST", "/hello", "created", http.StatusCreated},
		{"DELETE", "/hello", "", http.StatusNoContent},
		{"GET", "/long/path", "long", http.StatusOK},
	}

	for i, c := range tbl {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			r := router.New()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(c.method, c.path, nil)

			r.HandleFunc(c.path, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
				fmt.Fprint(w, c.responseBody)
			})

			r.ServeHTTP(rec, req)

			assert.Equal(t, c.status, rec.Code)
			assert.Equal(t, c.responseBody, rec.Body.String())
		})
	}
}

func TestHandleFunc_NotFound(t *testing.T) {
	r := router.New()
	r.HandleFunc("/hello", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/missing", nil)

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubRouter(t *testing.T) {
	tbl := []struct {
		mountPoint   string
		relativePath string
		path         string
		responseBody string
		status       int
	}{
		{"/api", "/hello", "/api/hello", "hello from subrouter", http.StatusOK},
		{"v1", "/hello/", "/v1/hello/world", "hello from subrouter", http.StatusForbidden},
		{"/long/prefix", "hello", "/long/prefix/hello", "", http.StatusConflict},
	}

	for i, c := range tbl {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			r := router.New()
			sub := r.SubRouter(c.mountPoint)

			sub.HandleFunc(c.relativePath, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
				fmt.Fprint(w, c.responseBody)
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", c.path, nil)

			r.ServeHTTP(rec, req)

			assert.Equal(t, c.status, rec.Code)
			assert.Equal(t, c.responseBody, rec.Body.String())
		})
	}
}

func TestUse_MiddlewareOrder(t *testing.T) {
	r := router.New()

	var order []string
	mw := func(name string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, req)
			})
		}
	}

	r.Use(mw("first"), mw("second"))
	r.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ok", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, []string{"first", "second"}, order)
}
