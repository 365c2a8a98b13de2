package jwt

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/yohanpasi/storefront/pkg/auth"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

// Scope names the role requirement of a route group. Route-to-scope binding
// lives in the router's scope table rather than in path-prefix matching.
type Scope string

const (
	// ScopeAdmin admits the admin role only.
	ScopeAdmin Scope = "admin"
	// ScopeShop admits shopper accounts and rejects admins, mirroring the
	// storefront split between the admin console and the shop.
	ScopeShop Scope = "shop"
)

// Locals keys set by the auth middleware for downstream handlers.
const (
	LocalUserID = "userId"
	LocalRole   = "role"
)

type authFailure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func deny(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(authFailure{Success: false, Message: message})
}

// NewAuthMiddleware returns a Fiber middleware that verifies the session
// cookie. On success it sets the token's subject and role into Locals;
// the embedded role is trusted without a credential store round trip.
func NewAuthMiddleware(g *Generator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(CookieName)
		if tokenStr == "" {
			return deny(c, http.StatusUnauthorized, "Unauthorized access. Please login first.")
		}
		claims, err := g.Verify(tokenStr)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				return deny(c, http.StatusUnauthorized, "Session expired. Please login again.")
			}
			return deny(c, http.StatusUnauthorized, "Invalid or expired token. Please login again.")
		}
		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalRole, auth.Role(claims.Role))
		return c.Next()
	}
}

// RequireScope returns a middleware enforcing the role scope of a route
// group. It must run after NewAuthMiddleware. The switch over the closed
// role set fails closed: a token minted with an unknown role is rejected.
func RequireScope(scope Scope) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalRole).(auth.Role)
		switch role {
		case auth.RoleAdmin:
			if scope != ScopeAdmin {
				return deny(c, http.StatusForbidden, "Access denied. Users only.")
			}
		case auth.RoleShopper:
			if scope == ScopeAdmin {
				return deny(c, http.StatusForbidden, "Access denied. Admins only.")
			}
		default:
			return deny(c, http.StatusForbidden, "Role not recognized.")
		}
		return c.Next()
	}
}
