package upstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
)

func TestDoAttachesBearerToken(t *testing.T) {
	var gotAuth, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.do(context.Background(), http.MethodPost, "/api/x", map[string]string{"a": "b"}, "tok123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.Equal(t, "application/json", gotType)
}

func TestDoOmitsTokenWhenEmpty(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.do(context.Background(), http.MethodGet, "/api/x", nil, "")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestDoSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"You already donated to this request"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.do(context.Background(), http.MethodPatch, "/api/x", nil, "tok")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "You already donated to this request", apiErr.Message)
	assert.Equal(t, apiErr.Message, apiErr.Error())
}

func TestDoGenericMessageWhenBodyUnusable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>nope</html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.do(context.Background(), http.MethodGet, "/api/x", nil, "")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Request failed with status 502", apiErr.Message)
}

func TestDoToleratesEmptySuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	payload, err := c.do(context.Background(), http.MethodDelete, "/api/x", nil, "tok")
	require.NoError(t, err)
	assert.Empty(t, payload)
}

func TestSearchDonorsQueryAndNormalization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/search-donors", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "O+", q.Get("bloodGroup"))
		assert.Equal(t, "Dhaka", q.Get("district"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Empty(t, r.Header.Get("Authorization"), "donor search is public")
		// Bare-array deployment
		_, _ = w.Write([]byte(`[{"_id":"u1","name":"Asha","bloodGroup":"O+"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	pg, err := c.SearchDonors(context.Background(), DonorSearchParams{
		BloodGroup: "O+", District: "Dhaka", Page: 2, Limit: 10,
	})
	require.NoError(t, err)
	require.Len(t, pg.Items, 1)
	assert.Equal(t, "Asha", pg.Items[0].Name)
	assert.Equal(t, "u1", pg.Items[0].Key())
	assert.Equal(t, 1, pg.Page, "bare arrays collapse to a single page")
}

func TestPendingPublicDropsStatusFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/requests/pending-public", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`{"items":[],"page":1,"limit":10,"total":0,"totalPages":1}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.PendingPublic(context.Background(), ListRequestsParams{Status: "done", Page: 1, Limit: 10})
	require.NoError(t, err)
}

func TestChangeRequestStatusBody(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/requests/r1/status", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	err := c.ChangeRequestStatus(context.Background(), "tok", "r1", entity.StatusDone)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"done"}`, gotBody)
}

func TestRequestIDRequired(t *testing.T) {
	c := NewClient("http://example.invalid", nil)
	_, err := c.GetRequest(context.Background(), "tok", "")
	assert.ErrorIs(t, err, ErrMissingID)
	assert.ErrorIs(t, c.Donate(context.Background(), "tok", ""), ErrMissingID)
	assert.ErrorIs(t, c.DeleteRequest(context.Background(), "tok", ""), ErrMissingID)
}
