package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/mapper"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/adapter/http/middleware"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/internal/core/ports"
	"github.com/ZainManzoor2003/Dont-Forget-Tasks/pkg/apierrors"
)

type AnalyticsHandler struct {
	analyticsService ports.AnalyticsService
}

func NewAnalyticsHandler(analyticsService ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	lang := middleware.GetLang(c)

	report, err := h.analyticsService.Report(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to build analytics report", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAnalytics, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToAnalyticsReport(report))
}
