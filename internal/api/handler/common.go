package handler

import (
	"Todak/internal/pkg/response"
	"Todak/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// bindJSON 解析失败统一返回 400
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return false
	}
	return true
}

func bindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return false
	}
	return true
}

func parseID(raw string) (uint64, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// queryUserID 读取 ?userId=，缺失或非法时写 400
func queryUserID(c *gin.Context) (uint64, bool) {
	id, ok := parseID(c.Query("userId"))
	if !ok {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return 0, false
	}
	return id, true
}

func pathID(c *gin.Context) (uint64, bool) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return 0, false
	}
	return id, true
}
