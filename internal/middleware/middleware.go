package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ticketpub/internal/service"
	"ticketpub/internal/store"
)

const (
	// SessionKey is the gin context key the resolved session is stored under.
	SessionKey = "session"
	// RequestIDKey is the gin context key for the request id.
	RequestIDKey = "request_id"

	requestIDHeader = "X-Request-ID"
)

// SessionFromContext returns the session resolved for this request, if any.
func SessionFromContext(c *gin.Context) (*store.Session, bool) {
	v, exists := c.Get(SessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*store.Session)
	return sess, ok
}

// RequestID присваивает каждому запросу идентификатор для трассировки
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

// Logger middleware для структурированного логирования запросов
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		logFields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status_code", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		if requestID := c.GetString(RequestIDKey); requestID != "" {
			logFields = append(logFields, "request_id", requestID)
		}
		if sess, ok := SessionFromContext(c); ok {
			logFields = append(logFields, "session_id", sess.ID)
		}

		if c.Writer.Status() >= 400 {
			if len(c.Errors) > 0 {
				logFields = append(logFields, "error", c.Errors.String())
			}
			slog.Error("Request completed with error", logFields...)
		} else {
			slog.Debug("Request completed", logFields...)
		}
	}
}

// Recovery middleware для восстановления после паники
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Error("PANIC recovered",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"client_ip", c.ClientIP(),
		)

		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
	})
}

// CORS разрешает запросы из браузерного фронтенда
func CORS(allowOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader, "X-Session-Token"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowOrigins) == 1 && allowOrigins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowOrigins
	}
	return cors.New(cfg)
}

// SessionResolver разбирает Bearer токен и кладет живую сессию в контекст.
// Запросы без токена или с протухшим токеном проходят дальше анонимно;
// обработчики сами решают, нужна ли им сессия.
func SessionResolver(profiles *service.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		sess, err := profiles.Resolve(token)
		if err != nil {
			slog.Debug("Dropping unresolvable session token", "error", err)
			c.Next()
			return
		}

		c.Set(SessionKey, sess)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	const prefix = "Bearer "
	header := c.GetHeader("Authorization")
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}
