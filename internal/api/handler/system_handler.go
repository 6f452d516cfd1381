package handler

import (
	"Todak/internal/api/dto"
	"Todak/internal/pkg/response"
	"Todak/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger 健康检查依赖，repository.Store 满足
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	db Pinger
}

func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db}
}

func (s *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		log.ErrorContext(ctx, "health check failed", "err", err)
		response.Fail(c, response.InternalServerError, service.UnExpectedError.Error())
		return
	}
	response.Success(c, dto.HealthDTO{Status: "ok"})
}
