package middleware

import (
	"Todak/internal/pkg/logger"
	"Todak/internal/pkg/redis"
	"Todak/internal/pkg/response"
	"Todak/internal/pkg/security"
	"Todak/internal/service"
	"context"
	log "log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// TokenKey 原始 token，登出与注销时吊销用
	TokenKey = "token"
	// ClaimsKey 解析后的 *security.UserClaims
	ClaimsKey = "claims"
)

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware(tokens *security.TokenIssuer, cache *redis.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, service.ErrTokenInvalid.Error())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, service.ErrTokenInvalid.Error())
			c.Abort()
			return
		}

		revoked, err := cache.IsRevoked(c.Request.Context(), signature)
		if err != nil {
			log.ErrorContext(c.Request.Context(), "check token blacklist failed", "err", err)
			response.Fail(c, response.InternalServerError, service.UnExpectedError.Error())
			c.Abort()
			return
		}
		if revoked {
			response.Fail(c, response.Unauthorized, service.ErrTokenInvalid.Error())
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, service.ErrTokenInvalid.Error())
			c.Abort()
			return
		}

		c.Set(logger.UserIDKey, claims.UserID)
		c.Set(TokenKey, tokenString)
		c.Set(ClaimsKey, claims)

		newCtx := context.WithValue(c.Request.Context(), logger.UserIDKey, claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}

// CurrentUserID 未经过 AuthMiddleware 时返回 false
func CurrentUserID(c *gin.Context) (uint64, bool) {
	return getUint64(c, logger.UserIDKey)
}

// CurrentToken 返回原始 token 与 claims
func CurrentToken(c *gin.Context) (string, *security.UserClaims) {
	token := c.GetString(TokenKey)
	claims, _ := c.Get(ClaimsKey)
	userClaims, _ := claims.(*security.UserClaims)
	return token, userClaims
}

// RequireSelf 请求中的 userId 必须是 token 本人，否则直接写 403
func RequireSelf(c *gin.Context, userID uint64) bool {
	current, ok := CurrentUserID(c)
	if !ok || current != userID {
		response.Error(c, service.ErrForbidden)
		return false
	}
	return true
}

func getUint64(c *gin.Context, key string) (uint64, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
