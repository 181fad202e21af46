package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"smartx-backend/internal/shared/config"
	"smartx-backend/internal/shared/server/middleware"
	"smartx-backend/internal/shared/server/respond"
)

const aiRateLimitGroup = "AI"

// RouteRegistrar attaches a feature's routes to the API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Handlers collects the feature handlers the router mounts.
type Handlers struct {
	Users     RouteRegistrar
	Documents RouteRegistrar
	QA        RouteRegistrar
	Tests     RouteRegistrar
	Progress  RouteRegistrar
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, handlers Handlers) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(),
		middleware.RateLimit(rateLimitConfig()),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	for _, h := range []RouteRegistrar{
		handlers.Users,
		handlers.Documents,
		handlers.QA,
		handlers.Tests,
		handlers.Progress,
	} {
		if h != nil {
			h.RegisterRoutes(api)
		}
	}

	return r
}

// rateLimitConfig throttles AI-backed writes much harder than plain reads:
// each upload, question and test generation costs a model call.
func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":        {Rate: 25, Burst: 50},
			aiRateLimitGroup: {Rate: 0.5, Burst: 5},
		},
		DefaultGroup: "DEFAULT",
		GroupFor:     rateLimitGroupFor,
	}
}

func rateLimitGroupFor(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return ""
	}
	path := c.FullPath()
	switch {
	case path == "/api/v1/documents",
		strings.HasSuffix(path, "/qa"),
		strings.HasSuffix(path, "/tests"):
		return aiRateLimitGroup
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
