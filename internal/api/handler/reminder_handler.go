package handler

import (
	"Todak/internal/api/dto"
	"Todak/internal/api/middleware"
	"Todak/internal/pkg/response"
	"Todak/internal/service"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	reminderSvc service.ReminderService
}

func NewReminderHandler(reminderSvc service.ReminderService) *ReminderHandler {
	return &ReminderHandler{
		reminderSvc: reminderSvc,
	}
}

func (s *ReminderHandler) GetReminder(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok || !middleware.RequireSelf(c, userID) {
		return
	}
	reminder, err := s.reminderSvc.GetReminder(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reminder)
}

func (s *ReminderHandler) SetReminder(c *gin.Context) {
	var req dto.SetReminderDTO
	if !bindJSON(c, &req) {
		return
	}
	if req.UserID == 0 || req.ReminderTime == "" {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	if !middleware.RequireSelf(c, req.UserID) {
		return
	}
	reminder, err := s.reminderSvc.SetReminder(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reminder)
}

func (s *ReminderHandler) DeleteReminder(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok || !middleware.RequireSelf(c, userID) {
		return
	}
	if err := s.reminderSvc.DeleteReminder(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
