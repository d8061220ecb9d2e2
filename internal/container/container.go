package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/bloodlink-bd/bloodlink-web/config"
	"github.com/bloodlink-bd/bloodlink-web/internal/session"
	"github.com/bloodlink-bd/bloodlink-web/internal/upstream"
	"github.com/bloodlink-bd/bloodlink-web/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client

	jwtManager *helpers.JWTManager
	cookies    *helpers.Manager

	apiClient    *upstream.Client
	imageHost    *upstream.ImageHost
	sessionStore *session.Store
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetRedis(r *redis.Client)   { redisClient = r }
func GetRedis() *redis.Client    { return redisClient }

func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager {
	if jwtManager != nil {
		return jwtManager
	}
	return helpers.DefaultJWT()
}

func SetCookies(m *helpers.Manager) { cookies = m }
func GetCookies() *helpers.Manager  { return cookies }

func SetAPI(c *upstream.Client)       { apiClient = c }
func GetAPI() *upstream.Client        { return apiClient }
func SetImages(h *upstream.ImageHost) { imageHost = h }
func GetImages() *upstream.ImageHost  { return imageHost }
func SetSessions(s *session.Store)    { sessionStore = s }
func GetSessions() *session.Store     { return sessionStore }
