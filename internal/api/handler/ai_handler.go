package handler

import (
	"Todak/internal/api/dto"
	"Todak/internal/pkg/response"
	"Todak/internal/service"

	"github.com/gin-gonic/gin"
)

// AIHandler AI 调用失败时 service 已回退到固定文案，这里不会出现 5xx
type AIHandler struct {
	reflectionSvc service.ReflectionService
	reviewSvc     service.ReviewService
}

func NewAIHandler(reflectionSvc service.ReflectionService, reviewSvc service.ReviewService) *AIHandler {
	return &AIHandler{
		reflectionSvc: reflectionSvc,
		reviewSvc:     reviewSvc,
	}
}

func (s *AIHandler) Reflection(c *gin.Context) {
	var req dto.ReflectionDTO
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.reflectionSvc.Reflect(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *AIHandler) Review(c *gin.Context) {
	var req dto.PeriodQueryDTO
	if !bindPeriodQuery(c, &req, bindJSON) {
		return
	}
	result, err := s.reviewSvc.GenerateReview(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
