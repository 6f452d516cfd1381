package handler

import (
	"Todak/internal/api/dto"
	"Todak/internal/api/middleware"
	"Todak/internal/pkg/response"
	"Todak/internal/pkg/util"
	"Todak/internal/service"

	"github.com/gin-gonic/gin"
)

type MoodHandler struct {
	moodSvc service.MoodService
}

func NewMoodHandler(moodSvc service.MoodService) *MoodHandler {
	return &MoodHandler{
		moodSvc: moodSvc,
	}
}

func (s *MoodHandler) ListMoods(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok || !middleware.RequireSelf(c, userID) {
		return
	}
	moods, err := s.moodSvc.ListMoods(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, moods)
}

func (s *MoodHandler) SaveMood(c *gin.Context) {
	var req dto.SaveMoodDTO
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
	// 情绪与内容的规则交给 service，返回具体的提示
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	record, err := s.moodSvc.SaveMood(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, record)
}

// DeleteMood 归属以 token 中的用户为准
func (s *MoodHandler) DeleteMood(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, _ := middleware.CurrentUserID(c)
	if err := s.moodSvc.DeleteMood(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
