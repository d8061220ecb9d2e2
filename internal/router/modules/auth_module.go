package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bloodlink-bd/bloodlink-web/internal/container"
	"github.com/bloodlink-bd/bloodlink-web/internal/interface/middleware"
	web "github.com/bloodlink-bd/bloodlink-web/internal/interface/web"
)

// AuthModule wires login, registration, and logout.
// Public: GET/POST /login, GET/POST /register
// Protected: POST /logout
type AuthModule struct {
	Handler *web.AuthHandler
}

func NewAuthModule(h *web.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints get tight IP-based limits
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/login", m.Handler.ShowLogin)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.GET("/register", m.Handler.ShowRegister)
	rg.POST("/register", registerLimiter, m.Handler.Register)

	auth := rg.Group("/")
	auth.Use(middleware.RequireSession())
	{
		auth.POST("/logout", m.Handler.Logout)
	}
}
