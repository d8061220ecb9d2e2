package web

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
	"github.com/bloodlink-bd/bloodlink-web/internal/upstream"
	"github.com/bloodlink-bd/bloodlink-web/internal/view"
)

// AdminHandler serves the admin console: the user table with moderation
// actions and the all-requests table. Role enforcement happens twice, in the
// route guard and upstream.
type AdminHandler struct {
	Renderer
	API *upstream.Client
}

func NewAdminHandler(r Renderer, api *upstream.Client) *AdminHandler {
	return &AdminHandler{Renderer: r, API: api}
}

// Users GET /dashboard/admin/users
func (h *AdminHandler) Users(c *gin.Context) {
	role := c.Query("role")
	status := c.Query("status")
	p := upstream.ListUsersParams{Role: role, Status: status, Page: queryPage(c), Limit: listLimit}

	pg, err := h.API.ListUsers(c.Request.Context(), token(c), p)
	if err != nil {
		h.HTML(c, http.StatusOK, "admin_users", "Manage Users", gin.H{
			"Error":  ErrText(err),
			"Role":   role,
			"Status": status,
			"Pager":  view.NewPager(1, 1),
		})
		return
	}

	q := url.Values{}
	if role != "" {
		q.Set("role", role)
	}
	if status != "" {
		q.Set("status", status)
	}
	h.HTML(c, http.StatusOK, "admin_users", "Manage Users", gin.H{
		"Items":      pg.Items,
		"StartIndex": startIndex(pg.Page, pg.Limit),
		"Pager":      view.NewPager(pg.Page, pg.TotalPages),
		"PageURL":    pageURL("/dashboard/admin/users", q),
		"Role":       role,
		"Status":     status,
	})
}

// UserAction POST /dashboard/admin/users/:id/:action where action is one of
// block, unblock, make-admin, make-volunteer.
func (h *AdminHandler) UserAction(c *gin.Context) {
	id := c.Param("id")
	back := "/dashboard/admin/users"

	var err error
	var msg string
	switch c.Param("action") {
	case "block":
		err, msg = h.API.BlockUser(c.Request.Context(), token(c), id), "User blocked."
	case "unblock":
		err, msg = h.API.UnblockUser(c.Request.Context(), token(c), id), "User unblocked."
	case "make-admin":
		err, msg = h.API.MakeAdmin(c.Request.Context(), token(c), id), "User promoted to admin."
	case "make-volunteer":
		err, msg = h.API.MakeVolunteer(c.Request.Context(), token(c), id), "User promoted to volunteer."
	default:
		c.Redirect(http.StatusFound, back)
		return
	}

	if err != nil {
		h.FailRedirect(c, err, back)
		return
	}
	h.OKRedirect(c, msg, back)
}

// Requests GET /dashboard/admin/requests
func (h *AdminHandler) Requests(c *gin.Context) {
	status := statusFilter(c)
	p := upstream.ListRequestsParams{Status: status, Page: queryPage(c), Limit: listLimit}

	pg, err := h.API.AllRequests(c.Request.Context(), token(c), p)
	if err != nil {
		h.HTML(c, http.StatusOK, "admin_requests", "All Requests", gin.H{
			"Error":    ErrText(err),
			"Status":   status,
			"Statuses": entity.RequestStatuses,
			"Pager":    view.NewPager(1, 1),
		})
		return
	}

	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	h.HTML(c, http.StatusOK, "admin_requests", "All Requests", gin.H{
		"Items":      pg.Items,
		"StartIndex": startIndex(pg.Page, pg.Limit),
		"Pager":      view.NewPager(pg.Page, pg.TotalPages),
		"PageURL":    pageURL("/dashboard/admin/requests", q),
		"Status":     status,
		"Statuses":   entity.RequestStatuses,
	})
}
