package httpmiddleware

import (
	"net/http"

	"github.com/healthsecure/medichain-service/pkg/profile"
	"github.com/labstack/echo/v4"
)

func PatientProfile(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if _, err := profile.UsePatientProfile(ctx); err != nil {
			return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
		}
		return next(c)
	}
}

func DoctorProfile(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if _, err := profile.UseDoctorProfile(ctx); err != nil {
			return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
		}
		return next(c)
	}
}
