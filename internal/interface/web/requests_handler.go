package web

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
	"github.com/bloodlink-bd/bloodlink-web/internal/interface/middleware"
	"github.com/bloodlink-bd/bloodlink-web/internal/upstream"
	"github.com/bloodlink-bd/bloodlink-web/internal/view"
	"github.com/bloodlink-bd/bloodlink-web/pkg/validation"
)

// RequestsHandler serves the donation request screens: the owner's list, the
// create/edit forms, details with its action buttons, and the volunteer
// queue. All routes sit behind the session guard.
type RequestsHandler struct {
	Renderer
	API *upstream.Client
}

func NewRequestsHandler(r Renderer, api *upstream.Client) *RequestsHandler {
	return &RequestsHandler{Renderer: r, API: api}
}

type requestForm struct {
	RecipientName     string `form:"recipient_name" binding:"required,min=2"`
	RecipientDistrict string `form:"recipient_district"`
	RecipientUpazila  string `form:"recipient_upazila"`
	HospitalName      string `form:"hospital_name" binding:"required"`
	FullAddress       string `form:"full_address" binding:"required"`
	BloodGroup        string `form:"blood_group" binding:"required"`
	DonationDate      string `form:"donation_date" binding:"required,datetime=2006-01-02"`
	DonationTime      string `form:"donation_time" binding:"required,datetime=15:04"`
	RequestMessage    string `form:"request_message"`
}

func (f requestForm) input() upstream.RequestInput {
	return upstream.RequestInput{
		Recipient: entity.Recipient{
			Name:     f.RecipientName,
			District: f.RecipientDistrict,
			Upazila:  f.RecipientUpazila,
		},
		HospitalName:   f.HospitalName,
		FullAddress:    f.FullAddress,
		BloodGroup:     f.BloodGroup,
		DonationDate:   f.DonationDate,
		DonationTime:   f.DonationTime,
		RequestMessage: f.RequestMessage,
	}
}

func token(c *gin.Context) string {
	if sess := middleware.SessionFrom(c); sess != nil {
		return sess.Token
	}
	return ""
}

func viewer(c *gin.Context) *entity.User {
	if sess := middleware.SessionFrom(c); sess != nil {
		return sess.User
	}
	return nil
}

// statusFilter reads ?status=, dropping values outside the lifecycle so a
// mistyped filter falls back to "All".
func statusFilter(c *gin.Context) string {
	s := entity.RequestStatus(c.Query("status"))
	if !s.Valid() {
		return ""
	}
	return string(s)
}

// MyRequests GET /dashboard/my-requests
func (h *RequestsHandler) MyRequests(c *gin.Context) {
	h.list(c, "my_requests", "My Requests", "/dashboard/my-requests", h.API.MyRequests)
}

// VolunteerRequests GET /dashboard/volunteer/requests
func (h *RequestsHandler) VolunteerRequests(c *gin.Context) {
	h.list(c, "volunteer_requests", "Assigned Requests", "/dashboard/volunteer/requests", h.API.VolunteerRequests)
}

func (h *RequestsHandler) list(
	c *gin.Context,
	tpl, title, path string,
	fetch func(ctx context.Context, token string, p upstream.ListRequestsParams) (upstream.Page[entity.DonationRequest], error),
) {
	status := statusFilter(c)
	p := upstream.ListRequestsParams{Status: status, Page: queryPage(c), Limit: listLimit}

	pg, err := fetch(c.Request.Context(), token(c), p)
	if err != nil {
		h.HTML(c, http.StatusOK, tpl, title, gin.H{
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
	h.HTML(c, http.StatusOK, tpl, title, gin.H{
		"Items":      pg.Items,
		"StartIndex": startIndex(pg.Page, pg.Limit),
		"Pager":      view.NewPager(pg.Page, pg.TotalPages),
		"PageURL":    pageURL(path, q),
		"Status":     status,
		"Statuses":   entity.RequestStatuses,
	})
}

// NewForm GET /dashboard/requests/new
func (h *RequestsHandler) NewForm(c *gin.Context) {
	h.HTML(c, http.StatusOK, "request_form", "Create Donation Request", gin.H{
		"Heading":     "Create Donation Request",
		"Action":      "/dashboard/requests/new",
		"Form":        upstream.RequestInput{},
		"BloodGroups": entity.BloodGroups,
		"Districts":   view.Districts,
	})
}

// Create POST /dashboard/requests/new
func (h *RequestsHandler) Create(c *gin.Context) {
	var form requestForm
	if err := c.ShouldBind(&form); err != nil {
		h.HTML(c, http.StatusOK, "request_form", "Create Donation Request", gin.H{
			"Heading":     "Create Donation Request",
			"Action":      "/dashboard/requests/new",
			"Error":       validation.Flatten(err),
			"Form":        form.input(),
			"BloodGroups": entity.BloodGroups,
			"Districts":   view.Districts,
		})
		return
	}

	req, err := h.API.CreateRequest(c.Request.Context(), token(c), form.input())
	if err != nil {
		h.FailRedirect(c, err, "/dashboard/requests/new")
		return
	}
	if key := req.Key(); key != "" {
		h.OKRedirect(c, "Donation request created.", "/dashboard/requests/"+url.PathEscape(key))
		return
	}
	h.OKRedirect(c, "Donation request created.", "/dashboard/my-requests")
}

// Details GET /dashboard/requests/:id
func (h *RequestsHandler) Details(c *gin.Context) {
	req, err := h.API.GetRequest(c.Request.Context(), token(c), c.Param("id"))
	if err != nil {
		h.FailRedirect(c, err, "/dashboard/my-requests")
		return
	}
	h.HTML(c, http.StatusOK, "request_details", "Request Details", gin.H{
		"Req":     req,
		"Actions": entity.ActionsFor(req, viewer(c)),
	})
}

// EditForm GET /dashboard/requests/:id/edit
func (h *RequestsHandler) EditForm(c *gin.Context) {
	id := c.Param("id")
	req, err := h.API.GetRequest(c.Request.Context(), token(c), id)
	if err != nil {
		h.FailRedirect(c, err, "/dashboard/my-requests")
		return
	}
	if !entity.ActionsFor(req, viewer(c)).CanEdit {
		h.Cookies.SetFlash(c, "This request can no longer be edited.")
		c.Redirect(http.StatusFound, "/dashboard/requests/"+url.PathEscape(id))
		return
	}
	h.HTML(c, http.StatusOK, "request_form", "Edit Donation Request", gin.H{
		"Heading": "Edit Donation Request",
		"Action":  "/dashboard/requests/" + url.PathEscape(id) + "/edit",
		"Form": upstream.RequestInput{
			Recipient:      req.Recipient,
			HospitalName:   req.HospitalName,
			FullAddress:    req.FullAddress,
			BloodGroup:     req.BloodGroup,
			DonationDate:   req.DonationDate,
			DonationTime:   req.DonationTime,
			RequestMessage: req.RequestMessage,
		},
		"BloodGroups": entity.BloodGroups,
		"Districts":   view.Districts,
	})
}

// Update POST /dashboard/requests/:id/edit
func (h *RequestsHandler) Update(c *gin.Context) {
	id := c.Param("id")
	action := "/dashboard/requests/" + url.PathEscape(id) + "/edit"

	var form requestForm
	if err := c.ShouldBind(&form); err != nil {
		h.HTML(c, http.StatusOK, "request_form", "Edit Donation Request", gin.H{
			"Heading":     "Edit Donation Request",
			"Action":      action,
			"Error":       validation.Flatten(err),
			"Form":        form.input(),
			"BloodGroups": entity.BloodGroups,
			"Districts":   view.Districts,
		})
		return
	}

	if _, err := h.API.UpdateRequest(c.Request.Context(), token(c), id, form.input()); err != nil {
		h.FailRedirect(c, err, action)
		return
	}
	h.OKRedirect(c, "Donation request updated.", "/dashboard/requests/"+url.PathEscape(id))
}

// Donate POST /dashboard/requests/:id/donate
func (h *RequestsHandler) Donate(c *gin.Context) {
	id := c.Param("id")
	back := "/dashboard/requests/" + url.PathEscape(id)
	if err := h.API.Donate(c.Request.Context(), token(c), id); err != nil {
		h.FailRedirect(c, err, back)
		return
	}
	h.OKRedirect(c, "Thank you! You are now the assigned donor.", back)
}

// ChangeStatus POST /dashboard/requests/:id/status
func (h *RequestsHandler) ChangeStatus(c *gin.Context) {
	id := c.Param("id")
	back := "/dashboard/requests/" + url.PathEscape(id)

	status := entity.RequestStatus(c.PostForm("status"))
	req, err := h.API.GetRequest(c.Request.Context(), token(c), id)
	if err != nil {
		h.FailRedirect(c, err, "/dashboard/my-requests")
		return
	}
	// Terminal targets only: pending -> inprogress goes through Donate.
	if !status.Terminal() || !entity.CanTransition(req.Status, status) {
		h.Cookies.SetFlash(c, "Invalid status change.")
		c.Redirect(http.StatusFound, back)
		return
	}
	if err := h.API.ChangeRequestStatus(c.Request.Context(), token(c), id, status); err != nil {
		h.FailRedirect(c, err, back)
		return
	}
	h.OKRedirect(c, "Request marked as "+string(status)+".", back)
}

// Delete POST /dashboard/requests/:id/delete
func (h *RequestsHandler) Delete(c *gin.Context) {
	if err := h.API.DeleteRequest(c.Request.Context(), token(c), c.Param("id")); err != nil {
		h.FailRedirect(c, err, "/dashboard/my-requests")
		return
	}
	h.OKRedirect(c, "Donation request deleted.", "/dashboard/my-requests")
}
