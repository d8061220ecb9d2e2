// Package session holds the browser session: the upstream bearer token and
// the current user snapshot. Redis is the durable storage; a signed cookie
// carries only the session id. Nothing else in the app mutates this state
// directly.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
	"github.com/bloodlink-bd/bloodlink-web/internal/upstream"
	"github.com/bloodlink-bd/bloodlink-web/pkg/helpers"
)

// ErrIncompleteCredentials means the auth endpoint answered 2xx but without
// a usable token+user pair. The session is left untouched in that case.
var ErrIncompleteCredentials = errors.New("auth response missing token or user")

// Session is one authenticated browser.
type Session struct {
	ID    string       `json:"id"`
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// Store creates, hydrates, and destroys sessions.
type Store struct {
	API    *upstream.Client
	Redis  *redis.Client
	Logger *logrus.Logger
	TTL    time.Duration
}

func NewStore(api *upstream.Client, rdb *redis.Client, logger *logrus.Logger, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{API: api, Redis: rdb, Logger: logger, TTL: ttl}
}

func sessionKey(sid string) string { return "web:session:" + sid }

// Login authenticates against the platform and, only on a complete
// response, atomically persists the new session.
func (s *Store) Login(ctx context.Context, email, password string) (*Session, error) {
	creds, err := s.API.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, creds)
}

// Register creates an account upstream and persists the returned session.
func (s *Store) Register(ctx context.Context, in upstream.RegisterInput) (*Session, error) {
	creds, err := s.API.Register(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, creds)
}

func (s *Store) create(ctx context.Context, creds *upstream.Credentials) (*Session, error) {
	if creds == nil || creds.Token == "" || creds.User == nil {
		return nil, ErrIncompleteCredentials
	}
	sess := &Session{ID: uuid.NewString(), Token: creds.Token, User: creds.User}
	if err := helpers.RedisSetJSON(ctx, s.Redis, sessionKey(sess.ID), sess, s.TTL); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": creds.User.Key(), "role": creds.User.Role}).Info("session created")
	}
	return sess, nil
}

// Hydrate loads the session for a cookie's session id. Missing or corrupt
// stored data is treated as absent, never as an error: the visitor is
// simply anonymous.
func (s *Store) Hydrate(ctx context.Context, sid string) (*Session, bool) {
	if sid == "" {
		return nil, false
	}
	var sess Session
	found, err := helpers.RedisGetJSON(ctx, s.Redis, sessionKey(sid), &sess)
	if err != nil || !found {
		return nil, false
	}
	if sess.Token == "" || sess.User == nil {
		return nil, false
	}
	sess.ID = sid
	return &sess, true
}

// SetUser merges a partial user update into the stored snapshot and
// re-persists it, preserving the token. Used after profile edits; no
// re-authentication happens.
func (s *Store) SetUser(ctx context.Context, sid string, u *entity.User) error {
	sess, ok := s.Hydrate(ctx, sid)
	if !ok {
		return errors.New("no active session")
	}
	merged := mergeUser(sess.User, u)
	sess.User = merged
	return helpers.RedisSetJSON(ctx, s.Redis, sessionKey(sid), sess, s.TTL)
}

// Logout destroys the stored session unconditionally.
func (s *Store) Logout(ctx context.Context, sid string) {
	if sid == "" {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, sessionKey(sid)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("session delete failed")
	}
}

// mergeUser overlays non-empty fields of in onto base, so partial profile
// responses don't wipe fields the form didn't touch.
func mergeUser(base, in *entity.User) *entity.User {
	if base == nil {
		return in
	}
	if in == nil {
		return base
	}
	out := *base
	if in.Key() != "" {
		out.ID = in.ID
		out.AltID = in.AltID
	}
	if in.Name != "" {
		out.Name = in.Name
	}
	if in.Email != "" {
		out.Email = in.Email
	}
	if in.Role != "" {
		out.Role = in.Role
	}
	if in.Status != "" {
		out.Status = in.Status
	}
	if in.BloodGroup != "" {
		out.BloodGroup = in.BloodGroup
	}
	if in.District != "" {
		out.District = in.District
	}
	if in.Upazila != "" {
		out.Upazila = in.Upazila
	}
	if in.AvatarURL != "" {
		out.AvatarURL = in.AvatarURL
	}
	return &out
}
