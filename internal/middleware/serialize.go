package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/web-project/backend/internal/store"
)

// Serialize holds the store mutex for the duration of every request. Each
// handler runs a validate-mutate-persist sequence that assumes no
// interleaving, so requests execute one at a time even though Echo
// dispatches them concurrently.
func Serialize(st *store.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			st.Lock()
			defer st.Unlock()
			return next(c)
		}
	}
}
