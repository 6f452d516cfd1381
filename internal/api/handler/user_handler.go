package handler

import (
	"Todak/internal/api/dto"
	"Todak/internal/api/middleware"
	"Todak/internal/pkg/response"
	"Todak/internal/pkg/util"
	"Todak/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupDTO
	if !bindJSON(c, &req) {
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	auth, err := s.userSvc.Signup(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, auth)
}

// Login 字段缺失由 service 返回 ErrMissingCredentials
func (s *UserHandler) Login(c *gin.Context) {
	var req dto.LoginDTO
	if !bindJSON(c, &req) {
		return
	}
	auth, err := s.userSvc.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, auth)
}

func (s *UserHandler) Logout(c *gin.Context) {
	token, claims := middleware.CurrentToken(c)
	if err := s.userSvc.Logout(c.Request.Context(), token, claims); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (s *UserHandler) CheckLoginID(c *gin.Context) {
	loginID := strings.TrimSpace(c.Query("loginId"))
	available, err := s.userSvc.CheckLoginID(c.Request.Context(), loginID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.CheckIDDTO{Available: available})
}

func (s *UserHandler) MarkGuideSeen(c *gin.Context) {
	id, ok := pathID(c)
	if !ok || !middleware.RequireSelf(c, id) {
		return
	}
	user, err := s.userSvc.MarkGuideSeen(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok || !middleware.RequireSelf(c, id) {
		return
	}
	token, claims := middleware.CurrentToken(c)
	if err := s.userSvc.DeleteAccount(c.Request.Context(), id, token, claims); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
