package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
	"github.com/bloodlink-bd/bloodlink-web/internal/interface/middleware"
	"github.com/bloodlink-bd/bloodlink-web/internal/session"
	"github.com/bloodlink-bd/bloodlink-web/internal/upstream"
	"github.com/bloodlink-bd/bloodlink-web/internal/view"
	"github.com/bloodlink-bd/bloodlink-web/pkg/validation"
)

// DashboardHandler serves the signed-in overview, the profile editor, and
// the funding screen.
type DashboardHandler struct {
	Renderer
	API      *upstream.Client
	Store    *session.Store
	StripePK string
	Images   *upstream.ImageHost
}

func NewDashboardHandler(r Renderer, api *upstream.Client, store *session.Store, stripePK string, images *upstream.ImageHost) *DashboardHandler {
	return &DashboardHandler{Renderer: r, API: api, Store: store, StripePK: stripePK, Images: images}
}

// Overview GET /dashboard
func (h *DashboardHandler) Overview(c *gin.Context) {
	ctx := c.Request.Context()
	data := gin.H{}

	if u := viewer(c); u != nil && u.IsAdmin() {
		// Stats endpoints are admin-only upstream; other roles get the
		// plain overview.
		if sum, err := h.API.Summary(ctx, token(c)); err == nil {
			data["Summary"] = sum
		}
		if stats, err := h.API.RequestStats(ctx, token(c)); err == nil {
			data["Stats"] = stats
		}
	}

	pg, err := h.API.MyRequests(ctx, token(c), upstream.ListRequestsParams{Page: 1, Limit: 5})
	if err != nil {
		data["Error"] = ErrText(err)
	} else {
		data["Recent"] = pg.Items
	}
	h.HTML(c, http.StatusOK, "dashboard", "Dashboard", data)
}

type profileForm struct {
	Name       string `form:"name" binding:"required,min=2"`
	BloodGroup string `form:"blood_group" binding:"required"`
	District   string `form:"district"`
	Upazila    string `form:"upazila"`
}

// ProfileForm GET /dashboard/profile
func (h *DashboardHandler) ProfileForm(c *gin.Context) {
	data := gin.H{
		"BloodGroups": entity.BloodGroups,
		"Districts":   view.Districts,
	}
	u, err := h.API.Me(c.Request.Context(), token(c))
	if err != nil {
		// Fall back to the session snapshot so the form still renders.
		data["Error"] = ErrText(err)
		u = viewer(c)
	}
	data["Form"] = u
	h.HTML(c, http.StatusOK, "profile", "Profile", data)
}

// ProfileSave POST /dashboard/profile
func (h *DashboardHandler) ProfileSave(c *gin.Context) {
	var form profileForm
	if err := c.ShouldBind(&form); err != nil {
		h.Cookies.SetFlash(c, validation.Flatten(err))
		c.Redirect(http.StatusFound, "/dashboard/profile")
		return
	}

	// Keep the current avatar unless a new image was attached.
	avatar := ""
	if u := viewer(c); u != nil {
		avatar = u.AvatarURL
	}
	if url, err := avatarFromForm(c, h.Images); err != nil {
		h.FailRedirect(c, err, "/dashboard/profile")
		return
	} else if url != "" {
		avatar = url
	}

	updated, err := h.API.UpdateMe(c.Request.Context(), token(c), upstream.ProfileUpdate{
		Name:       form.Name,
		BloodGroup: form.BloodGroup,
		District:   form.District,
		Upazila:    form.Upazila,
		Avatar:     avatar,
	})
	if err != nil {
		h.FailRedirect(c, err, "/dashboard/profile")
		return
	}

	if sess := middleware.SessionFrom(c); sess != nil && updated != nil {
		if err := h.Store.SetUser(c.Request.Context(), sess.ID, updated); err != nil && h.Logger != nil {
			h.Logger.WithError(err).Warn("session user refresh failed")
		}
	}
	h.OKRedirect(c, "Profile updated.", "/dashboard/profile")
}

// Funding GET /dashboard/funding
func (h *DashboardHandler) Funding(c *gin.Context) {
	h.renderFunding(c, 0, "")
}

// FundingIntent POST /dashboard/funding starts a contribution: the platform
// issues a payment intent and the page re-renders with the provider's
// checkout element bound to its client secret.
func (h *DashboardHandler) FundingIntent(c *gin.Context) {
	amount, err := strconv.ParseInt(c.PostForm("amount"), 10, 64)
	if err != nil || amount < 1 {
		h.Cookies.SetFlash(c, "Enter a valid amount.")
		c.Redirect(http.StatusFound, "/dashboard/funding")
		return
	}

	pi, err := h.API.CreatePaymentIntent(c.Request.Context(), token(c), amount)
	if err != nil {
		h.FailRedirect(c, err, "/dashboard/funding")
		return
	}
	if pi == nil || pi.ClientSecret == "" {
		h.Cookies.SetFlash(c, "Payment could not be started. Please try again.")
		c.Redirect(http.StatusFound, "/dashboard/funding")
		return
	}
	h.renderFunding(c, amount, pi.ClientSecret)
}

func (h *DashboardHandler) renderFunding(c *gin.Context, amount int64, clientSecret string) {
	data := gin.H{
		"StripePK": h.StripePK,
		"Amount":   "",
		"Total":    int64(0),
	}
	if amount > 0 {
		data["Amount"] = amount
	}
	if clientSecret != "" {
		data["ClientSecret"] = clientSecret
	}

	pg, err := h.API.ListFunding(c.Request.Context(), token(c), queryPage(c), listLimit)
	if err != nil {
		data["Error"] = ErrText(err)
		data["Pager"] = view.NewPager(1, 1)
		h.HTML(c, http.StatusOK, "funding", "Funding", data)
		return
	}

	data["Items"] = pg.Items
	data["StartIndex"] = startIndex(pg.Page, pg.Limit)
	data["Pager"] = view.NewPager(pg.Page, pg.TotalPages)
	data["PageURL"] = "/dashboard/funding?page="
	data["Total"] = entity.TotalAmount(pg.Items)
	h.HTML(c, http.StatusOK, "funding", "Funding", data)
}
