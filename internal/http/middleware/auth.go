package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"socialapi/internal/auth"
)

const (
	// PrincipalLocalKey stores the authenticated Principal in Fiber's context locals.
	PrincipalLocalKey = "principal"
	// AccessTokenCookie carries the token for server-rendered fragments.
	AccessTokenCookie = "access_token"
)

// Principal is the member behind an authenticated request.
type Principal struct {
	MemberID int64
	Nickname string
}

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// Auth requires a valid access token from the Authorization header
// ("Bearer <jwt>") or, failing that, the access_token cookie.
func Auth(tokens TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c.Get(fiber.HeaderAuthorization))
		if raw == "" {
			raw = c.Cookies(AccessTokenCookie)
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing access token")
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid access token")
		}

		c.Locals(PrincipalLocalKey, Principal{MemberID: claims.MemberID, Nickname: claims.Nickname})
		return c.Next()
	}
}

// PrincipalFrom returns the principal stored by Auth.
func PrincipalFrom(c *fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals(PrincipalLocalKey).(Principal)
	return p, ok
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
