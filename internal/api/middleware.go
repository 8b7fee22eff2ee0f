package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	token := c.Cookies(authCookieName)
	if token == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	claims, err := handler.parseToken(token)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, found, err := handler.repositories.Users.FindByID(claims.UserID)
	if err != nil || !found {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

// ReadLimit and MutationLimit guard the per-user request windows. They run
// after AuthRequired, so a missing user only happens on wiring mistakes.
func (handler *Handler) ReadLimit(c *fiber.Ctx) error {
	return handler.enforceLimit(c, readLimiterKeyFor, readRequestLimit)
}

func (handler *Handler) MutationLimit(c *fiber.Ctx) error {
	return handler.enforceLimit(c, mutationLimiterKeyFor, mutationRequestLimit)
}

func (handler *Handler) enforceLimit(c *fiber.Ctx, keyFor func(c *fiber.Ctx) string, limit int) error {
	if !handler.limiter.allow(keyFor(c), time.Now(), limit, requestLimitWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many requests")
	}
	return c.Next()
}

func readLimiterKeyFor(c *fiber.Ctx) string {
	if user, ok := currentUser(c); ok {
		return readLimiterKey(user.ID)
	}
	return "read:" + c.IP()
}

func mutationLimiterKeyFor(c *fiber.Ctx) string {
	if user, ok := currentUser(c); ok {
		return mutationLimiterKey(user.ID)
	}
	return "mutation:" + c.IP()
}

func (handler *Handler) parseToken(raw string) (*authClaims, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return handler.secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
