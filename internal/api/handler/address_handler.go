package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fcamara/user-address-api/internal/api/metrics"
	"github.com/fcamara/user-address-api/internal/core/ports"
)

// AddressHandler handles HTTP requests for address operations.
type AddressHandler struct {
	service ports.AddressService
}

func NewAddressHandler(service ports.AddressService) *AddressHandler {
	return &AddressHandler{service: service}
}

func bindAddressRequest(c echo.Context) (ports.AddressInput, error) {
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return ports.AddressInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.AddressInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ports.AddressInput{
		ZipCode:    req.ZipCode,
		Number:     req.Number,
		Complement: req.Complement,
	}, nil
}

// Create handles POST /api/v1/address, attaching a new address to the caller.
//
// @Summary      Create an address for the current user
// @Tags         address
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addressRequest  true  "Address details"
// @Success      201   {object}  addressResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/v1/address [post]
func (h *AddressHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	input, err := bindAddressRequest(c)
	if err != nil {
		return err
	}

	result, err := h.service.Create(c.Request().Context(), p, input)
	if err != nil {
		return err
	}

	metrics.AddressesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toAddressResponse(result))
}

// CreateForUser handles POST /api/v1/address/user/:userId, admin only.
//
// @Summary      Create an address for another user
// @Tags         address
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string          true  "Target user id"
// @Param        body    body      addressRequest  true  "Address details"
// @Success      201     {object}  addressResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/v1/address/user/{userId} [post]
func (h *AddressHandler) CreateForUser(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	input, err := bindAddressRequest(c)
	if err != nil {
		return err
	}

	result, err := h.service.CreateForUser(c.Request().Context(), p, c.Param("userId"), input)
	if err != nil {
		return err
	}

	metrics.AddressesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toAddressResponse(result))
}

// ListOwn handles GET /api/v1/address, the caller's own addresses.
//
// @Summary      List the current user's addresses
// @Tags         address
// @Produce      json
// @Security     BearerAuth
// @Param        page     query     int     false  "Page (0-based)"
// @Param        size     query     int     false  "Page size"
// @Param        sortBy   query     string  false  "Sort field"
// @Param        sortDir  query     string  false  "asc or desc"
// @Success      200      {object}  listAddressesResponse
// @Failure      401      {object}  errorResponse
// @Router       /api/v1/address [get]
func (h *AddressHandler) ListOwn(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	result, err := h.service.ListOwn(c.Request().Context(), p, ctxPageQuery(c, "state"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListAddressesResponse(result))
}

// ListByUser handles GET /api/v1/address/user/:userId, admin only.
//
// @Summary      List another user's addresses
// @Tags         address
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "Target user id"
// @Success      200     {object}  listAddressesResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/v1/address/user/{userId} [get]
func (h *AddressHandler) ListByUser(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	result, err := h.service.ListByUser(c.Request().Context(), p, c.Param("userId"), ctxPageQuery(c, "state"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListAddressesResponse(result))
}

// ListOthers handles GET /api/v1/address/all, admin only: every address
// except the caller's own.
//
// @Summary      List all addresses of other users
// @Tags         address
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listAddressesResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/address/all [get]
func (h *AddressHandler) ListOthers(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	result, err := h.service.ListOthers(c.Request().Context(), p, ctxPageQuery(c, "state"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListAddressesResponse(result))
}

// Count handles GET /api/v1/address/count. Admins get the global count,
// everyone else their own.
//
// @Summary      Count addresses
// @Tags         address
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  countResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/address/count [get]
func (h *AddressHandler) Count(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	count, err := h.service.Count(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: count})
}

// Get handles GET /api/v1/address/:id.
//
// @Summary      Get an address by id
// @Tags         address
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Address id"
// @Success      200  {object}  addressResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/address/{id} [get]
func (h *AddressHandler) Get(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	result, err := h.service.GetByID(c.Request().Context(), p, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAddressResponse(result))
}

// Update handles PUT /api/v1/address/:id. Street, district, city and state
// are refreshed from the postal lookup on every update.
//
// @Summary      Update an address
// @Tags         address
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Address id"
// @Param        body  body      addressRequest  true  "Updated fields"
// @Success      200   {object}  addressResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/address/{id} [put]
func (h *AddressHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	input, err := bindAddressRequest(c)
	if err != nil {
		return err
	}

	result, err := h.service.Update(c.Request().Context(), p, c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAddressResponse(result))
}

// Delete handles DELETE /api/v1/address/:id.
//
// @Summary      Delete an address
// @Tags         address
// @Security     BearerAuth
// @Param        id  path  string  true  "Address id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/address/{id} [delete]
func (h *AddressHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
