// Package web holds the page handlers. Every handler renders a template or
// answers a POST with a redirect carrying a flash message, so a reload never
// repeats the action.
package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bloodlink-bd/bloodlink-web/internal/interface/middleware"
	"github.com/bloodlink-bd/bloodlink-web/internal/upstream"
	"github.com/bloodlink-bd/bloodlink-web/pkg/helpers"
)

// Renderer is embedded by every handler: it fills the layout data (current
// user, pending flash) before executing a template.
type Renderer struct {
	Cookies *helpers.Manager
	Logger  *logrus.Logger
}

// HTML renders a page template with the layout keys filled in.
func (r *Renderer) HTML(c *gin.Context, status int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	if _, ok := data["User"]; !ok {
		if sess := middleware.SessionFrom(c); sess != nil {
			data["User"] = sess.User
		}
	}
	if _, ok := data["Flash"]; !ok {
		if msg := r.Cookies.PopFlash(c); msg != "" {
			data["Flash"] = msg
		}
	}
	c.HTML(status, name, data)
}

// FailRedirect flashes the error and sends the browser to location. Used by
// POST handlers so the message survives the redirect.
func (r *Renderer) FailRedirect(c *gin.Context, err error, location string) {
	if r.Logger != nil {
		r.Logger.WithError(err).WithField("path", c.Request.URL.Path).Warn("action failed")
	}
	r.Cookies.SetFlash(c, ErrText(err))
	c.Redirect(http.StatusFound, location)
}

// OKRedirect flashes a confirmation and redirects.
func (r *Renderer) OKRedirect(c *gin.Context, msg, location string) {
	r.Cookies.SetFlash(c, msg)
	c.Redirect(http.StatusFound, location)
}

// ErrText is the message shown to the visitor for any failure. Upstream
// rejections are surfaced verbatim; everything else gets a generic line.
func ErrText(err error) string {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Something went wrong. Please try again."
}

// queryPage reads ?page= as a positive int, defaulting to 1.
func queryPage(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// startIndex is the zero-based offset of the first row on the page, used for
// row numbering across pages.
func startIndex(page, limit int) int {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 0
	}
	return (page - 1) * limit
}

// pageURL builds "path?filters&page=" so templates can append the page
// number. The page key itself is stripped from q first.
func pageURL(path string, q url.Values) string {
	q.Del("page")
	if enc := q.Encode(); enc != "" {
		return path + "?" + enc + "&page="
	}
	return path + "?page="
}

// avatarFromForm uploads an attached avatar image and returns its hosted
// URL. No file attached returns "".
func avatarFromForm(c *gin.Context, images *upstream.ImageHost) (string, error) {
	file, header, err := c.Request.FormFile("avatar_file")
	if err != nil {
		return "", nil
	}
	defer func() { _ = file.Close() }()
	return images.Upload(c.Request.Context(), header.Filename, file)
}

// safePath only admits site-local redirect targets, so ?from= cannot send a
// fresh login off-site.
func safePath(p, fallback string) string {
	if p == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return fallback
	}
	return p
}
