package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/healthsecure/medichain-service/model"
	httpmiddleware "github.com/healthsecure/medichain-service/pkg/http/middleware"
	"github.com/healthsecure/medichain-service/pkg/logger"
	"github.com/healthsecure/medichain-service/service"
	"github.com/labstack/echo/v4"
)

type RecordHandler struct {
	recordService service.Record
	validate      *validator.Validate
}

func NewRecordHandler(e *echo.Echo, validate *validator.Validate, recordService service.Record) {
	handler := &RecordHandler{
		recordService: recordService,
		validate:      validate,
	}

	route := e.Group("/records")
	route.GET("", handler.listRecords)
	route.POST("", handler.createRecord, httpmiddleware.DoctorProfile)
	route.GET("/export", handler.exportRecords)
	route.GET("/:recordID", handler.getRecord)
	route.PATCH("/:recordID/visibility", handler.toggleVisibility, httpmiddleware.PatientProfile)

	e.GET("/patients/:healthID/records", handler.getPatientRecords, httpmiddleware.DoctorProfile)
}

func (h *RecordHandler) listRecords(c echo.Context) error {
	ctx := c.Request().Context()

	records, err := h.recordService.ListRecords(ctx)
	if err != nil {
		logger.Context(ctx).Error(err)
		return respondError(c, err)
	}

	if records == nil {
		records = []model.MedicalRecord{}
	}
	return c.JSON(http.StatusOK, records)
}

func (h *RecordHandler) getRecord(c echo.Context) error {
	ctx := c.Request().Context()

	recordID, err := strconv.ParseInt(c.Param("recordID"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid record id"})
	}

	record, err := h.recordService.GetRecord(ctx, recordID)
	if err != nil {
		logger.Context(ctx).Error(err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, record)
}

func (h *RecordHandler) createRecord(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.CreateRecordRequest
	if err := c.Bind(&req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if file, err := c.FormFile("document"); err == nil {
		req.Document = file
	}

	if err := h.validate.Struct(req); err != nil {
		logger.Context(ctx).Error(err)
		return c.JSON(http.StatusBadRequest, validationFieldErrors(err))
	}

	record, err := h.recordService.CreateRecord(ctx, req)
	if err != nil {
		logger.Context(ctx).Error(err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, record)
}

func (h *RecordHandler) toggleVisibility(c echo.Context) error {
	ctx := c.Request().Context()

	recordID, err := strconv.ParseInt(c.Param("recordID"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid record id"})
	}

	res, err := h.recordService.ToggleVisibility(ctx, recordID)
	if err != nil {
		logger.Context(ctx).Error(err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *RecordHandler) getPatientRecords(c echo.Context) error {
	ctx := c.Request().Context()

	res, err := h.recordService.GetPatientRecords(ctx, c.Param("healthID"))
	if err != nil {
		if err == model.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Patient not found"})
		}
		logger.Context(ctx).Error(err)
		return respondError(c, err)
	}

	if res.Records == nil {
		res.Records = []model.MedicalRecord{}
	}
	return c.JSON(http.StatusOK, res)
}

func (h *RecordHandler) exportRecords(c echo.Context) error {
	ctx := c.Request().Context()

	data, err := h.recordService.ExportRecords(ctx)
	if err != nil {
		logger.Context(ctx).Error(err)
		return respondError(c, err)
	}

	filename := "medical_records_" + time.Now().Format("2006-01-02") + ".csv"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}
