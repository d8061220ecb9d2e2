package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
	"github.com/bloodlink-bd/bloodlink-web/internal/session"
	"github.com/bloodlink-bd/bloodlink-web/internal/upstream"
	"github.com/bloodlink-bd/bloodlink-web/internal/view"
	"github.com/bloodlink-bd/bloodlink-web/pkg/helpers"
)

func testRenderer() Renderer {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return Renderer{
		Cookies: helpers.NewCookie("localhost", false),
		Logger:  logger,
	}
}

func testEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(view.Templates())
	return r
}

// withSession fakes the session-loading middleware for a signed-in viewer.
func withSession(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session", sess)
		c.Next()
	}
}

func apiStub(t *testing.T, handler http.HandlerFunc) *upstream.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return upstream.NewClient(srv.URL, nil)
}

func TestPendingPageRendersPager(t *testing.T) {
	api := apiStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/requests/pending-public", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{"items":[
			{"_id":"r1","recipient":{"name":"Karim","district":"Dhaka","upazila":"Mirpur"},
			 "hospitalName":"Dhaka Medical","bloodGroup":"B+","donationDate":"2026-09-10",
			 "donationTime":"14:30","status":"pending"}
		],"page":2,"limit":10,"total":42,"totalPages":5}`))
	})

	h := NewPublicHandler(testRenderer(), api)
	r := testEngine()
	r.GET("/requests", h.Pending)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/requests?page=2", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Karim")
	assert.Contains(t, body, "Mirpur, Dhaka")
	assert.Contains(t, body, "2:30 PM")
	assert.Contains(t, body, "Page 2 of 5")
	assert.Contains(t, body, "/requests?page=1")
	assert.Contains(t, body, "/requests?page=3")
}

func TestDetailsControlsForPendingStranger(t *testing.T) {
	api := apiStub(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"_id":"r1","recipient":{"name":"Karim"},"status":"pending",
			"requester":{"user":"u1","name":"Owner","email":"o@x.bd"},"bloodGroup":"B+"}`))
	})

	h := NewRequestsHandler(testRenderer(), api)
	r := testEngine()
	sess := &session.Session{ID: "s1", Token: "tok", User: &entity.User{ID: "u2", Role: entity.RoleDonor}}
	r.GET("/dashboard/requests/:id", withSession(sess), h.Details)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/requests/r1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, ">Donate<")
	assert.NotContains(t, body, "Mark as Done")
	assert.NotContains(t, body, "Cancel Request")
	assert.NotContains(t, body, ">Edit<")
	assert.NotContains(t, body, ">Delete<")
}

func TestDetailsControlsForInProgressOwner(t *testing.T) {
	api := apiStub(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"_id":"r1","recipient":{"name":"Karim"},"status":"inprogress",
			"requester":{"user":"u1","name":"Owner","email":"o@x.bd"},
			"donor":{"user":"u2","name":"Helper","email":"h@x.bd"},"bloodGroup":"B+"}`))
	})

	h := NewRequestsHandler(testRenderer(), api)
	r := testEngine()
	sess := &session.Session{ID: "s1", Token: "tok", User: &entity.User{ID: "u1", Role: entity.RoleDonor}}
	r.GET("/dashboard/requests/:id", withSession(sess), h.Details)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/requests/r1", nil))

	body := w.Body.String()
	assert.Contains(t, body, "Mark as Done")
	assert.Contains(t, body, "Cancel Request")
	assert.Contains(t, body, "Helper", "assigned donor is shown")
	assert.NotContains(t, body, ">Donate<")
	assert.NotContains(t, body, "/edit\">Edit<")
	assert.Contains(t, body, ">Delete<", "owner can always delete")
}

func TestMyRequestsFilterFormHasNoPageField(t *testing.T) {
	api := apiStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`{"items":[
			{"_id":"r1","recipient":{"name":"Karim"},"status":"pending",
			 "requester":{"user":"u1"},"bloodGroup":"B+"}
		],"page":3,"limit":10,"total":80,"totalPages":8}`))
	})

	h := NewRequestsHandler(testRenderer(), api)
	r := testEngine()
	sess := &session.Session{ID: "s1", Token: "tok", User: &entity.User{ID: "u1", Role: entity.RoleDonor}}
	r.GET("/dashboard/my-requests", withSession(sess), h.MyRequests)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/my-requests?status=pending&page=3", nil))

	body := w.Body.String()
	// Submitting the status filter must land on page 1: the GET form carries
	// no page field, only the pager links do.
	assert.NotContains(t, body, `name="page"`)
	assert.Contains(t, body, "/dashboard/my-requests?status=pending&amp;page=4")
	assert.Contains(t, body, "Page 3 of 8")
}

func TestChangeStatusValidatesTransition(t *testing.T) {
	current := "inprogress"
	patched := 0
	api := apiStub(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`{"_id":"r1","status":"` + current + `","requester":{"user":"u1"}}`))
			return
		}
		patched++
	})

	h := NewRequestsHandler(testRenderer(), api)
	r := testEngine()
	sess := &session.Session{ID: "s1", Token: "tok", User: &entity.User{ID: "u1", Role: entity.RoleDonor}}
	r.POST("/dashboard/requests/:id/status", withSession(sess), h.ChangeStatus)

	post := func(status string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/dashboard/requests/r1/status", strings.NewReader("status="+status))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)
		return w
	}

	for _, bad := range []string{"pending", "inprogress", "bogus", ""} {
		w := post(bad)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Zero(t, patched, "status %q must never reach the API", bad)
	}

	// A finished request admits no further change, terminal target or not.
	current = "done"
	post("canceled")
	assert.Zero(t, patched)

	current = "inprogress"
	post("done")
	assert.Equal(t, 1, patched)
}

func TestShowLoginSanitizesFrom(t *testing.T) {
	h := NewAuthHandler(testRenderer(), nil, nil, nil)
	r := testEngine()
	r.GET("/login", h.ShowLogin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login?from=https://evil.example/x", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "evil.example")
}

func TestRegisterFormUpazilasAndAvatarUpload(t *testing.T) {
	h := NewAuthHandler(testRenderer(), nil, nil, nil)
	r := testEngine()
	r.GET("/register", h.ShowRegister)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/register", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `enctype="multipart/form-data"`)
	assert.Contains(t, body, `name="avatar_file"`)
	// Upazilas come from the district map, grouped per district.
	assert.Contains(t, body, `data-district-field="district"`)
	assert.Contains(t, body, `<optgroup label="Dhaka" data-district="Dhaka">`)
	assert.Contains(t, body, ">Dhanmondi</option>")
}

func TestEditFormPreselectsUpazila(t *testing.T) {
	api := apiStub(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"_id":"r1","status":"pending","requester":{"user":"u1"},
			"recipient":{"name":"Karim","district":"Dhaka","upazila":"Mirpur"},"bloodGroup":"B+"}`))
	})

	h := NewRequestsHandler(testRenderer(), api)
	r := testEngine()
	sess := &session.Session{ID: "s1", Token: "tok", User: &entity.User{ID: "u1", Role: entity.RoleDonor}}
	r.GET("/dashboard/requests/:id/edit", withSession(sess), h.EditForm)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/requests/r1/edit", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<option selected>Mirpur</option>")
}

func TestAdminUsersRenderActions(t *testing.T) {
	api := apiStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users", r.URL.Path)
		assert.Equal(t, "donor", r.URL.Query().Get("role"))
		_, _ = w.Write([]byte(`{"items":[
			{"_id":"u5","name":"Karim","email":"k@x.bd","role":"donor","status":"active","bloodGroup":"A+"},
			{"_id":"u6","name":"Rina","email":"r@x.bd","role":"donor","status":"blocked","bloodGroup":"O-"}
		],"page":1,"limit":10,"total":2,"totalPages":1}`))
	})

	h := NewAdminHandler(testRenderer(), api)
	r := testEngine()
	sess := &session.Session{ID: "s1", Token: "tok", User: &entity.User{ID: "a1", Role: entity.RoleAdmin}}
	r.GET("/dashboard/admin/users", withSession(sess), h.Users)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/admin/users?role=donor", nil))

	body := w.Body.String()
	assert.Contains(t, body, "/dashboard/admin/users/u5/block")
	assert.Contains(t, body, "/dashboard/admin/users/u6/unblock")
	assert.Contains(t, body, "/dashboard/admin/users/u5/make-volunteer")
	assert.NotContains(t, body, "/dashboard/admin/users/u5/unblock")
}
