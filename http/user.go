package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/healthsecure/medichain-service/model"
	httpmiddleware "github.com/healthsecure/medichain-service/pkg/http/middleware"
	"github.com/healthsecure/medichain-service/pkg/logger"
	"github.com/healthsecure/medichain-service/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userService service.User
	validate    *validator.Validate
}

func NewUserHandler(e *echo.Echo, validate *validator.Validate, userService service.User) {
	handler := &UserHandler{
		userService: userService,
		validate:    validate,
	}

	route := e.Group("/auth")
	route.GET("/profile", handler.getProfile)
	route.PUT("/profile", handler.updateProfile)
	route.GET("/stats", handler.getDashboardStats)
	route.GET("/patients/:healthID", handler.searchPatient, httpmiddleware.DoctorProfile)
}

func (h *UserHandler) getProfile(c echo.Context) error {
	ctx := c.Request().Context()

	res, err := h.userService.GetProfile(ctx)
	if err != nil {
		logger.Context(ctx).Error(err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *UserHandler) updateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if file, err := c.FormFile("profile_picture"); err == nil {
		req.ProfilePicture = file
	}

	res, err := h.userService.UpdateProfile(ctx, req)
	if err != nil {
		logger.Context(ctx).Error(err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *UserHandler) getDashboardStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.userService.GetDashboardStats(ctx)
	if err != nil {
		logger.Context(ctx).Error(err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *UserHandler) searchPatient(c echo.Context) error {
	ctx := c.Request().Context()

	patient, err := h.userService.SearchPatient(ctx, c.Param("healthID"))
	if err != nil {
		if err == model.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Patient not found"})
		}
		logger.Context(ctx).Error(err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, patient)
}
