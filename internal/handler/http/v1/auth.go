package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/campus_connect/internal/config"
	"github.com/shenikar/campus_connect/internal/service"
	"github.com/sirupsen/logrus"
)

// loginPath - куда представление отправляет пользователя без сессии
const loginPath = "/api/v1/session/login"

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу.
// Пустой список ключей в конфигурации оставляет шлюз открытым.
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(cfg.APIKeys) == 0 {
			c.Next()
			return
		}

		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if key == apiKey {
				isValid = true
				break
			}
		}

		if !isValid {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid API key"})
			return
		}

		c.Next()
	}
}

// SessionRequiredMiddleware пропускает запрос только при открытой сессии,
// иначе отвечает 401 с адресом входа
func SessionRequiredMiddleware(portal service.PortalService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := portal.CurrentSession(c.Request.Context())
		if err != nil {
			log.WithError(err).Error("Failed to load session")
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
			return
		}
		if sess == nil {
			log.WithField("path", c.FullPath()).Debug("Request without session")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error:        "Authentication required",
				AuthRequired: true,
				Login:        loginPath,
			})
			return
		}
		c.Next()
	}
}
