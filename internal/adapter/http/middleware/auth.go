package middleware

import (
	"log"
	"net/http"
	"net/url"

	"cleangod/internal/domain/entities"
	"cleangod/internal/infrastructure/identity"
	"cleangod/pkg"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// SignInPath is where unauthenticated customers are sent. The original
// request path is passed as the redirect query parameter.
const SignInPath = "/signin"

// TokenParser resolves a bearer token into the user it was issued for.
type TokenParser interface {
	Parse(token string) (entities.User, error)
}

// SignInRedirect builds the sign-in path that returns to returnPath.
func SignInRedirect(returnPath string) string {
	if returnPath == "" {
		return SignInPath
	}
	return SignInPath + "?redirect=" + url.QueryEscape(returnPath)
}

// OptionalAuth attaches the user when a valid token is sent and lets the
// request through either way.
func OptionalAuth(p TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := identity.BearerToken(c.GetHeader("Authorization")); token != "" {
			user, err := p.Parse(token)
			if err != nil {
				log.Printf("[auth][middleware] ignoring invalid token path=%s err=%v", c.FullPath(), err)
			} else {
				c.Set(currentUserKey, user)
			}
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(p TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := p.Parse(identity.BearerToken(c.GetHeader("Authorization")))
		if err != nil {
			log.Printf("[auth][middleware] unauthenticated path=%s err=%v", c.FullPath(), err)
			appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sign in to continue", http.StatusUnauthorized).
				WithRedirect(SignInRedirect(c.Request.URL.RequestURI()))
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin() {
			log.Printf("[auth][middleware] forbidden path=%s user_id=%s", c.FullPath(), user.ID)
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Admin role required", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user attached by OptionalAuth or RequireAuth.
func CurrentUser(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return entities.User{}, false
	}
	user, ok := v.(entities.User)
	return user, ok
}
