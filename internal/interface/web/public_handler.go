package web

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
	"github.com/bloodlink-bd/bloodlink-web/internal/upstream"
	"github.com/bloodlink-bd/bloodlink-web/internal/view"
)

const listLimit = 10

// PublicHandler serves the screens that need no session.
type PublicHandler struct {
	Renderer
	API *upstream.Client
}

func NewPublicHandler(r Renderer, api *upstream.Client) *PublicHandler {
	return &PublicHandler{Renderer: r, API: api}
}

// Home GET /
func (h *PublicHandler) Home(c *gin.Context) {
	data := gin.H{}
	pg, err := h.API.PendingPublic(c.Request.Context(), upstream.ListRequestsParams{Page: 1, Limit: 5})
	if err != nil {
		data["Error"] = ErrText(err)
	} else {
		data["Recent"] = pg.Items
	}
	h.HTML(c, http.StatusOK, "home", "Home", data)
}

// Pending GET /requests lists the open requests anyone may browse.
func (h *PublicHandler) Pending(c *gin.Context) {
	page := queryPage(c)
	pg, err := h.API.PendingPublic(c.Request.Context(), upstream.ListRequestsParams{Page: page, Limit: listLimit})
	if err != nil {
		h.HTML(c, http.StatusOK, "pending", "Open Requests", gin.H{
			"Error": ErrText(err),
			"Pager": view.NewPager(1, 1),
		})
		return
	}
	h.HTML(c, http.StatusOK, "pending", "Open Requests", gin.H{
		"Items":      pg.Items,
		"StartIndex": startIndex(pg.Page, pg.Limit),
		"Pager":      view.NewPager(pg.Page, pg.TotalPages),
	})
}

// SearchDonors GET /search-donors. The filter form submits with GET and no
// page field, so changing a filter always lands on page 1.
func (h *PublicHandler) SearchDonors(c *gin.Context) {
	filters := upstream.DonorSearchParams{
		BloodGroup: c.Query("bloodGroup"),
		District:   c.Query("district"),
		Upazila:    c.Query("upazila"),
	}
	data := gin.H{
		"Filters":     filters,
		"BloodGroups": entity.BloodGroups,
		"Districts":   view.Districts,
	}
	if c.Request.URL.RawQuery == "" {
		h.HTML(c, http.StatusOK, "donors", "Find Donors", data)
		return
	}

	filters.Page = queryPage(c)
	filters.Limit = listLimit
	pg, err := h.API.SearchDonors(c.Request.Context(), filters)
	if err != nil {
		data["Error"] = ErrText(err)
		h.HTML(c, http.StatusOK, "donors", "Find Donors", data)
		return
	}

	q := url.Values{}
	if filters.BloodGroup != "" {
		q.Set("bloodGroup", filters.BloodGroup)
	}
	if filters.District != "" {
		q.Set("district", filters.District)
	}
	if filters.Upazila != "" {
		q.Set("upazila", filters.Upazila)
	}

	data["Searched"] = true
	data["Items"] = pg.Items
	data["StartIndex"] = startIndex(pg.Page, pg.Limit)
	data["Pager"] = view.NewPager(pg.Page, pg.TotalPages)
	data["PageURL"] = pageURL("/search-donors", q)
	h.HTML(c, http.StatusOK, "donors", "Find Donors", data)
}
