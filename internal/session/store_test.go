package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
	"github.com/bloodlink-bd/bloodlink-web/internal/upstream"
)

func authServer(t *testing.T, body string, status int) *upstream.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return upstream.NewClient(srv.URL, nil)
}

// The store must not touch redis when login fails or the response is
// incomplete, so the redis client stays nil in these tests: a write attempt
// would panic and fail them.

func TestLoginRejectedUpstream(t *testing.T) {
	api := authServer(t, `{"message":"Invalid credentials"}`, http.StatusUnauthorized)
	s := NewStore(api, nil, nil, 0)

	sess, err := s.Login(context.Background(), "a@b.cd", "pw")
	require.Error(t, err)
	assert.Nil(t, sess)
	assert.Equal(t, "Invalid credentials", err.Error())
}

func TestLoginIncompleteTokenOnly(t *testing.T) {
	api := authServer(t, `{"token":"jwt-but-no-user"}`, http.StatusOK)
	s := NewStore(api, nil, nil, 0)

	sess, err := s.Login(context.Background(), "a@b.cd", "pw")
	assert.ErrorIs(t, err, ErrIncompleteCredentials)
	assert.Nil(t, sess)
}

func TestLoginIncompleteUserOnly(t *testing.T) {
	api := authServer(t, `{"user":{"_id":"u1","name":"Asha"}}`, http.StatusOK)
	s := NewStore(api, nil, nil, 0)

	sess, err := s.Login(context.Background(), "a@b.cd", "pw")
	assert.ErrorIs(t, err, ErrIncompleteCredentials)
	assert.Nil(t, sess)
}

func TestRegisterIncomplete(t *testing.T) {
	api := authServer(t, `{}`, http.StatusCreated)
	s := NewStore(api, nil, nil, 0)

	sess, err := s.Register(context.Background(), upstream.RegisterInput{Email: "a@b.cd"})
	assert.ErrorIs(t, err, ErrIncompleteCredentials)
	assert.Nil(t, sess)
}

func TestHydrateEmptySID(t *testing.T) {
	s := NewStore(nil, nil, nil, 0)
	sess, ok := s.Hydrate(context.Background(), "")
	assert.False(t, ok)
	assert.Nil(t, sess)
}

func TestMergeUserOverlaysNonEmpty(t *testing.T) {
	base := &entity.User{ID: "u1", Name: "Asha", Email: "a@b.cd", Role: entity.RoleDonor, District: "Dhaka"}
	in := &entity.User{Name: "Asha Rahman", BloodGroup: "O+"}

	out := mergeUser(base, in)
	assert.Equal(t, "u1", out.Key())
	assert.Equal(t, "Asha Rahman", out.Name)
	assert.Equal(t, "O+", out.BloodGroup)
	assert.Equal(t, "a@b.cd", out.Email, "untouched fields survive")
	assert.Equal(t, "Dhaka", out.District)
	assert.Equal(t, entity.RoleDonor, out.Role)

	// base itself is not mutated
	assert.Equal(t, "Asha", base.Name)
}

func TestMergeUserNilSides(t *testing.T) {
	u := &entity.User{ID: "u1"}
	assert.Equal(t, u, mergeUser(nil, u))
	assert.Equal(t, u, mergeUser(u, nil))
}
