package handler

import (
	"Todak/internal/api/dto"
	"Todak/internal/api/middleware"
	"Todak/internal/pkg/response"
	"Todak/internal/pkg/util"
	"Todak/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewSvc service.ReviewService
}

func NewReviewHandler(reviewSvc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewSvc: reviewSvc,
	}
}

func (s *ReviewHandler) GetReview(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok || !middleware.RequireSelf(c, userID) {
		return
	}
	review, err := s.reviewSvc.GetReview(c.Request.Context(), userID, c.Query("periodType"), c.Query("periodKey"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, review)
}

func (s *ReviewHandler) PutReview(c *gin.Context) {
	var req dto.PutReviewDTO
	if !bindJSON(c, &req) {
		return
	}
	if req.UserID == 0 {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	if !middleware.RequireSelf(c, req.UserID) {
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	review, err := s.reviewSvc.PutReview(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, review)
}

// ResolveReview 由服务端判断缓存是否过期
func (s *ReviewHandler) ResolveReview(c *gin.Context) {
	var req dto.PeriodQueryDTO
	if !bindPeriodQuery(c, &req, bindJSON) {
		return
	}
	review, err := s.reviewSvc.ResolveReview(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, review)
}

// bindPeriodQuery 解析、鉴权、校验三步，任一失败已写响应
func bindPeriodQuery(c *gin.Context, req *dto.PeriodQueryDTO, bind func(*gin.Context, any) bool) bool {
	if !bind(c, req) {
		return false
	}
	if req.UserID == 0 {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return false
	}
	if !middleware.RequireSelf(c, req.UserID) {
		return false
	}
	if err := util.ValidateDTO(req); err != nil {
		response.Error(c, err)
		return false
	}
	return true
}
