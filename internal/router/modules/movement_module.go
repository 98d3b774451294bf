package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/mywallet-api/internal/application"
	"github.com/oksasatya/mywallet-api/internal/container"
	handlers "github.com/oksasatya/mywallet-api/internal/interface/http"
	"github.com/oksasatya/mywallet-api/internal/interface/middleware"
)

// MovementModule wires the ledger routes.
// POST /newmovement keeps the bearer-shape check ahead of payload
// validation; token resolution happens inside the handler.
type MovementModule struct {
	Handler *handlers.MovementHandler
	Svc     *application.Service
}

func NewMovementModule(h *handlers.MovementHandler, svc *application.Service) *MovementModule {
	return &MovementModule{Handler: h, Svc: svc}
}

func (m *MovementModule) Register(rg *gin.RouterGroup) {
	userLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID())

	rg.POST("/newmovement", middleware.RequireBearer(), userLimiter, m.Handler.Create)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Svc))
	{
		auth.GET("/movements", userLimiter, m.Handler.List)
	}
}
