package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bloodlink-bd/bloodlink-web/internal/container"
	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
	"github.com/bloodlink-bd/bloodlink-web/internal/interface/middleware"
	web "github.com/bloodlink-bd/bloodlink-web/internal/interface/web"
)

// DashboardModule wires everything behind the session guard: the overview,
// profile, the request lifecycle screens, funding, and the volunteer and
// admin consoles.
type DashboardModule struct {
	Dashboard *web.DashboardHandler
	Requests  *web.RequestsHandler
	Admin     *web.AdminHandler
}

func NewDashboardModule(d *web.DashboardHandler, r *web.RequestsHandler, a *web.AdminHandler) *DashboardModule {
	return &DashboardModule{Dashboard: d, Requests: r, Admin: a}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	dash := rg.Group("/dashboard")
	dash.Use(middleware.RequireSession())
	// Soft per-user limit across the signed-in surface
	dash.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		dash.GET("", m.Dashboard.Overview)
		dash.GET("/profile", m.Dashboard.ProfileForm)
		dash.POST("/profile", m.Dashboard.ProfileSave)
		dash.GET("/funding", m.Dashboard.Funding)
		dash.POST("/funding", m.Dashboard.FundingIntent)

		dash.GET("/my-requests", m.Requests.MyRequests)
		dash.GET("/requests/new", m.Requests.NewForm)
		dash.POST("/requests/new", m.Requests.Create)
		dash.GET("/requests/:id", m.Requests.Details)
		dash.GET("/requests/:id/edit", m.Requests.EditForm)
		dash.POST("/requests/:id/edit", m.Requests.Update)
		dash.POST("/requests/:id/donate", m.Requests.Donate)
		dash.POST("/requests/:id/status", m.Requests.ChangeStatus)
		dash.POST("/requests/:id/delete", m.Requests.Delete)
	}

	vol := dash.Group("/volunteer")
	vol.Use(middleware.RequireSession(entity.RoleVolunteer, entity.RoleAdmin))
	{
		vol.GET("/requests", m.Requests.VolunteerRequests)
	}

	admin := dash.Group("/admin")
	admin.Use(middleware.RequireSession(entity.RoleAdmin))
	{
		admin.GET("/users", m.Admin.Users)
		admin.POST("/users/:id/:action", m.Admin.UserAction)
		admin.GET("/requests", m.Admin.Requests)
	}
}
