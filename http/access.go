package http

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/healthsecure/medichain-service/model"
	httpmiddleware "github.com/healthsecure/medichain-service/pkg/http/middleware"
	"github.com/healthsecure/medichain-service/pkg/logger"
	"github.com/healthsecure/medichain-service/service"
	"github.com/labstack/echo/v4"
)

type AccessHandler struct {
	accessService service.Access
	validate      *validator.Validate
}

func NewAccessHandler(e *echo.Echo, validate *validator.Validate, accessService service.Access) {
	handler := &AccessHandler{
		accessService: accessService,
		validate:      validate,
	}

	route := e.Group("/auth/access")
	route.GET("", handler.listAccessRequests)
	route.POST("", handler.grantAccess, httpmiddleware.PatientProfile)
	route.POST("/:accessID/revoke", handler.revokeAccess, httpmiddleware.PatientProfile)
}

func (h *AccessHandler) listAccessRequests(c echo.Context) error {
	ctx := c.Request().Context()

	requests, err := h.accessService.ListAccessRequests(ctx)
	if err != nil {
		logger.Context(ctx).Error(err)
		return respondError(c, err)
	}

	if requests == nil {
		requests = []model.AccessRequest{}
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *AccessHandler) grantAccess(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.CreateAccessRequest
	if err := c.Bind(&req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.validate.Struct(req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, validationFieldErrors(err))
	}

	grant, err := h.accessService.GrantAccess(ctx, req)
	if err != nil {
		logger.Context(ctx).Error(err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, grant)
}

func (h *AccessHandler) revokeAccess(c echo.Context) error {
	ctx := c.Request().Context()

	accessID, err := strconv.ParseInt(c.Param("accessID"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid access id"})
	}

	res, err := h.accessService.RevokeAccess(ctx, accessID)
	if err != nil {
		logger.Context(ctx).Error(err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, res)
}
