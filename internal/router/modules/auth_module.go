package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/mywallet-api/internal/application"
	"github.com/oksasatya/mywallet-api/internal/container"
	handlers "github.com/oksasatya/mywallet-api/internal/interface/http"
	"github.com/oksasatya/mywallet-api/internal/interface/middleware"
)

// AuthModule wires registration and session routes.
// Public: POST /register, POST /login
// Bearer-shape only: DELETE /logout
// Full gate: GET /home
type AuthModule struct {
	Handler *handlers.AuthHandler
	Svc     *application.Service
}

func NewAuthModule(h *handlers.AuthHandler, svc *application.Service) *AuthModule {
	return &AuthModule{Handler: h, Svc: svc}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	rg.DELETE("/logout", middleware.RequireBearer(), m.Handler.Logout)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Svc))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/home", m.Handler.Home)
	}
}
