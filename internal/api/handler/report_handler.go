package handler

import (
	"Todak/internal/api/dto"
	"Todak/internal/pkg/response"
	"Todak/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportSvc: reportSvc,
	}
}

func (s *ReportHandler) GetReport(c *gin.Context) {
	var req dto.PeriodQueryDTO
	if !bindPeriodQuery(c, &req, bindQuery) {
		return
	}
	report, err := s.reportSvc.GetReport(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}

func (s *ReportHandler) Emotions(c *gin.Context) {
	response.Success(c, s.reportSvc.Emotions())
}
