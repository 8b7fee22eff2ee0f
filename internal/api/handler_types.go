package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rowanvale/tally/internal/db"
	"github.com/rowanvale/tally/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories  *db.Repositories
	logService    *services.LogService
	statsService  *services.StatsService
	exportService *services.ExportService
	limiter       *requestLimiter
}

const (
	authCookieName     = "tally_auth"
	contextUserKey     = "current_user"
	authTokenTTL       = 7 * 24 * time.Hour
	maxTrendWindowDays = 365
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
	}
	return handler.withDependencies(database)
}
