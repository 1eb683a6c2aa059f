package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/weddingplanner-backend/internal/service"
)

// ContextUserKey is where the resolved user id lives in request locals.
const ContextUserKey = "userID"

// SessionMiddleware resolves the session cookie into an authenticated user
// id in request locals. It never rejects: anonymous requests flow through
// with no user id set, and the route-level gate decides what to do.
func SessionMiddleware(sessions *service.SessionService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token != "" {
			if session, err := sessions.Resolve(token); err == nil {
				c.Locals(ContextUserKey, session.UserID)
			}
		}
		return c.Next()
	}
}

// RequireSession gates protected routes: anonymous callers are redirected
// to the landing page rather than handed an error page.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals(ContextUserKey).(uint); !ok {
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// CurrentUserID reads the authenticated user id set by SessionMiddleware.
func CurrentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals(ContextUserKey).(uint)
	return userID, ok
}
