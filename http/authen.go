package http

import (
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/healthsecure/medichain-service/model"
	"github.com/healthsecure/medichain-service/pkg/logger"
	"github.com/healthsecure/medichain-service/service"
	"github.com/labstack/echo/v4"
)

type AuthenHandler struct {
	authenService service.Authen
	validate      *validator.Validate
}

func NewAuthenHandler(e *echo.Echo, validate *validator.Validate, authenService service.Authen) {
	handler := &AuthenHandler{
		authenService: authenService,
		validate:      validate,
	}

	route := e.Group("/auth")
	route.POST("/login", handler.login)
	route.POST("/register/patient", handler.registerPatient)
	route.POST("/register/doctor", handler.registerDoctor)
	route.POST("/token/refresh", handler.refreshToken)
	route.POST("/token/revoke", handler.revokeToken)
}

func (h *AuthenHandler) login(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.validate.Struct(req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, validationFieldErrors(err))
	}

	res, err := h.authenService.Login(ctx, req)
	if err != nil {
		logger.Context(ctx).Error(err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *AuthenHandler) registerPatient(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.RegisterPatientRequest
	if err := c.Bind(&req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.validate.Struct(req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, validationFieldErrors(err))
	}

	res, err := h.authenService.RegisterPatient(ctx, req)
	if err != nil {
		logger.Context(ctx).Error(err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, res)
}

func (h *AuthenHandler) registerDoctor(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.RegisterDoctorRequest
	if err := c.Bind(&req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.validate.Struct(req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, validationFieldErrors(err))
	}

	res, err := h.authenService.RegisterDoctor(ctx, req)
	if err != nil {
		logger.Context(ctx).Error(err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, res)
}

func (h *AuthenHandler) refreshToken(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := h.validate.Struct(req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, validationFieldErrors(err))
	}

	pair, err := h.authenService.RefreshToken(ctx, req.Refresh)
	if err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Token is invalid or expired"})
	}

	return c.JSON(http.StatusOK, pair)
}

func (h *AuthenHandler) revokeToken(c echo.Context) error {
	ctx := c.Request().Context()

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	jwt := regexp.MustCompile(`^Bearer `).ReplaceAllString(authHeader, "")

	if err := h.authenService.RevokeToken(ctx, jwt); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}
