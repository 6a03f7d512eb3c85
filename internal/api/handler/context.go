package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fcamara/user-address-api/internal/api/middleware"
	"github.com/fcamara/user-address-api/internal/core/domain"
	"github.com/fcamara/user-address-api/internal/core/ports"
)

// ctxPrincipal extracts the Principal injected by the Auth middleware. A
// missing principal means the middleware did not run on this route; treat it
// as an unauthenticated request.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok || p.ID == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}

// ctxPageQuery reads the pagination query parameters shared by all list
// endpoints. Defaults: page=0, size=10, sortDir=asc; the per-endpoint sort
// field default is supplied by the caller.
func ctxPageQuery(c echo.Context, defaultSort string) ports.PageQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	sortBy := c.QueryParam("sortBy")
	if sortBy == "" {
		sortBy = defaultSort
	}
	sortDir := c.QueryParam("sortDir")
	if sortDir == "" {
		sortDir = "asc"
	}

	return ports.PageQuery{Page: page, Size: size, SortBy: sortBy, SortDir: sortDir}
}
