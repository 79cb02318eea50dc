package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireToken rejects a request with 403 unless it carries a bearer
// token, via either the Authorization header or a ?token= query
// parameter, per SPEC_FULL.md §8.
func RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if tokenFrom(c) == "" {
			return echo.NewHTTPError(http.StatusForbidden, "missing token")
		}
		return next(c)
	}
}

// RequireGET rejects any non-GET request with 400, per SPEC_FULL.md §8's
// "non-GET -> 400" rule for this otherwise read-verb-only surface.
func RequireGET(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Method != http.MethodGet {
			return echo.NewHTTPError(http.StatusBadRequest, "only GET is supported")
		}
		return next(c)
	}
}
