package router

import (
	"github.com/bloodlink-bd/bloodlink-web/internal/container"
	web "github.com/bloodlink-bd/bloodlink-web/internal/interface/web"
	"github.com/bloodlink-bd/bloodlink-web/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	base := web.Renderer{
		Cookies: container.GetCookies(),
		Logger:  container.GetLogger(),
	}

	public := web.NewPublicHandler(base, container.GetAPI())
	auth := web.NewAuthHandler(base, container.GetSessions(), container.GetJWT(), container.GetImages())
	requests := web.NewRequestsHandler(base, container.GetAPI())
	admin := web.NewAdminHandler(base, container.GetAPI())
	dashboard := web.NewDashboardHandler(base, container.GetAPI(), container.GetSessions(), container.GetConfig().StripePublishableKey, container.GetImages())

	r.Add(modules.NewPublicModule(public))
	r.Add(modules.NewAuthModule(auth))
	r.Add(modules.NewDashboardModule(dashboard, requests, admin))

	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
