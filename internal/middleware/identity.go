package middleware

import (
	"strings"

	"study_buddy_backend/internal/config"
	"study_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// IdentityMiddleware 解析请求方身份，按优先级：
// Bearer 设备令牌 > X-Device-ID 请求头 > 匿名。
// 没有账号体系，身份只用来划分各自的状态键空间，无效令牌不拒绝请求
func IdentityMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := "anonymous"

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && cfg.JWT.Secret != "" {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret); err == nil && claims.UserID != "" {
				userID = claims.UserID
			}
		}

		if userID == "anonymous" {
			if deviceID := strings.TrimSpace(c.GetHeader("X-Device-ID")); deviceID != "" {
				userID = deviceID
			}
		}

		c.Set("userID", userID)
		c.Next()
	}
}
