package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ratechart_app/internal/apperrors"
	portssvc "github.com/SscSPs/ratechart_app/internal/core/ports/services"
	"github.com/SscSPs/ratechart_app/internal/dto"
	"github.com/SscSPs/ratechart_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateSlabHandler handles HTTP requests related to interest rate chart slabs.
type rateSlabHandler struct {
	rateSlabService portssvc.RateSlabReaderSvc
}

// newRateSlabHandler creates a new rateSlabHandler.
func newRateSlabHandler(rs portssvc.RateSlabReaderSvc) *rateSlabHandler {
	return &rateSlabHandler{
		rateSlabService: rs,
	}
}

// RegisterRateSlabRoutes registers routes related to interest rate chart slabs.
func RegisterRateSlabRoutes(rg *gin.RouterGroup, rateSlabService portssvc.RateSlabReaderSvc) {
	h := newRateSlabHandler(rateSlabService)

	slabs := rg.Group("/interestratecharts/:chart_id/chartslabs")
	{
		slabs.GET("", h.listRateSlabs)
		slabs.GET("/template", h.getRateSlabTemplate)
		slabs.GET("/:slab_id", h.getRateSlab)
	}
}

// listRateSlabs godoc
// @Summary List the slabs of an interest rate chart
// @Description Retrieves every slab of the chart together with its incentives
// @Tags interest rate chart slabs
// @Produce  json
// @Param   chart_id path int true "Interest rate chart ID"
// @Success 200 {array} dto.RateSlabResponse
// @Failure 400 {object} map[string]string "Invalid chart ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve slabs"
// @Security BearerAuth
// @Router /interestratecharts/{chart_id}/chartslabs [get]
func (h *rateSlabHandler) listRateSlabs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ChartPathParams
	if err := c.ShouldBindUri(&params); err != nil {
		logger.Warn("Invalid chart ID in URL path", slog.String("chart_id", c.Param("chart_id")), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chart ID"})
		return
	}

	logger = logger.With(slog.Int64("chart_id", params.ChartID))
	logger.Debug("Received request to list rate slabs")

	slabs, err := h.rateSlabService.RetrieveAll(c.Request.Context(), params.ChartID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve slabs")
		return
	}

	c.JSON(http.StatusOK, dto.ToRateSlabResponses(slabs))
}

// getRateSlab godoc
// @Summary Get an interest rate chart slab
// @Description Retrieves one slab of the chart. With template=true the response also carries the option lists needed to edit it.
// @Tags interest rate chart slabs
// @Produce  json
// @Param   chart_id path int true "Interest rate chart ID"
// @Param   slab_id path int true "Slab ID"
// @Param   template query bool false "Include template option lists"
// @Success 200 {object} dto.RateSlabResponse "Slab (template=false)"
// @Success 200 {object} dto.RateSlabTemplateResponse "Slab with template (template=true)"
// @Failure 400 {object} map[string]string "Invalid chart or slab ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Slab not found"
// @Failure 500 {object} map[string]string "Failed to retrieve slab"
// @Security BearerAuth
// @Router /interestratecharts/{chart_id}/chartslabs/{slab_id} [get]
func (h *rateSlabHandler) getRateSlab(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SlabPathParams
	if err := c.ShouldBindUri(&params); err != nil {
		logger.Warn("Invalid chart or slab ID in URL path",
			slog.String("chart_id", c.Param("chart_id")),
			slog.String("slab_id", c.Param("slab_id")),
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chart or slab ID"})
		return
	}
	var query dto.RetrieveSlabQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("chart_id", params.ChartID), slog.Int64("slab_id", params.SlabID))
	logger.Debug("Received request to get rate slab", slog.Bool("template", query.Template))

	slab, err := h.rateSlabService.RetrieveOne(c.Request.Context(), params.ChartID, params.SlabID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve slab")
		return
	}

	if !query.Template {
		c.JSON(http.StatusOK, dto.ToRateSlabResponse(*slab))
		return
	}

	template, err := h.rateSlabService.RetrieveWithTemplate(c.Request.Context(), *slab)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve slab template")
		return
	}
	c.JSON(http.StatusOK, dto.ToRateSlabTemplateResponse(*template))
}

// getRateSlabTemplate godoc
// @Summary Get the template for a new interest rate chart slab
// @Description Retrieves the option lists needed to create a slab
// @Tags interest rate chart slabs
// @Produce  json
// @Param   chart_id path int true "Interest rate chart ID"
// @Success 200 {object} dto.RateSlabTemplateResponse
// @Failure 400 {object} map[string]string "Invalid chart ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve template"
// @Security BearerAuth
// @Router /interestratecharts/{chart_id}/chartslabs/template [get]
func (h *rateSlabHandler) getRateSlabTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ChartPathParams
	if err := c.ShouldBindUri(&params); err != nil {
		logger.Warn("Invalid chart ID in URL path", slog.String("chart_id", c.Param("chart_id")), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chart ID"})
		return
	}

	template, err := h.rateSlabService.RetrieveTemplate(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve template")
		return
	}

	c.JSON(http.StatusOK, dto.ToRateSlabTemplateResponse(*template))
}

// writeServiceError maps service errors to HTTP responses.
func writeServiceError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	var notFound *apperrors.RateSlabNotFoundError
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthenticated request reached the service")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.As(err, &notFound):
		logger.Info("Rate slab not found")
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &appErr) && appErr.Code >= http.StatusBadRequest:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
	}
}
