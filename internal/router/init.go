package router

import (
	"github.com/oksasatya/mywallet-api/internal/application"
	"github.com/oksasatya/mywallet-api/internal/container"
	pginfra "github.com/oksasatya/mywallet-api/internal/infrastructure/postgres"
	"github.com/oksasatya/mywallet-api/internal/infrastructure/redisstore"
	handlers "github.com/oksasatya/mywallet-api/internal/interface/http"
	"github.com/oksasatya/mywallet-api/internal/router/modules"
)

type WalletDeps struct {
	Service         *application.Service
	AuthHandler     *handlers.AuthHandler
	MovementHandler *handlers.MovementHandler
}

func buildWalletDeps() WalletDeps {
	users := pginfra.NewUserRepository(container.GetPGPool())
	movements := pginfra.NewMovementRepository(container.GetPGPool())
	sessions := redisstore.NewSessionRepository(container.GetRedis())

	service := application.NewService(users, sessions, movements, container.GetLogger())

	return WalletDeps{
		Service:         service,
		AuthHandler:     handlers.NewAuthHandler(service, container.GetLogger(), container.GetConfig(), container.GetRabbitPub()),
		MovementHandler: handlers.NewMovementHandler(service, container.GetLogger()),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildWalletDeps()
	r.Add(modules.NewAuthModule(deps.AuthHandler, deps.Service))
	r.Add(modules.NewMovementModule(deps.MovementHandler, deps.Service))
}
