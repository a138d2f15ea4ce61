package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	var order []string
	middleware := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:   "/api/dashboard/basic",
		Method: http.MethodPost,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
		}),
		Middlewares: []func(http.Handler) http.Handler{middleware("primeiro"), middleware("segundo")},
	}))

	t.Run("aplica os middlewares da rota na ordem declarada", func(t *testing.T) {
		order = nil
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/dashboard/basic", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"primeiro", "segundo", "handler"}, order)
	})

	t.Run("rota desconhecida", func(t *testing.T) {
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/desconhecida", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_001")
	})

	t.Run("método não permitido", func(t *testing.T) {
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/basic", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
