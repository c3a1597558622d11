package authentication

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dr-lamia/med-nexus-portal/logger"
	"github.com/dr-lamia/med-nexus-portal/models"
	"github.com/dr-lamia/med-nexus-portal/storage"
)

// ContextUserKey is where the guard middlewares place the session user.
const ContextUserKey = "sessionUser"

// dashboard paths per user type; an unauthorized request is redirected to
// the dashboard of its own role, never an arbitrary path.
var dashboardPaths = map[string]string{
	models.UserTypeDoctor:  "/doctor-dashboard",
	models.UserTypePatient: "/patient-dashboard",
}

// RequireAuth guards a route group behind a valid session. Unauthenticated
// requests get a 401 with the login redirect and the originally requested
// path preserved for post-login navigation.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			abortToLogin(c)
			return
		}

		authHeader := strings.Replace(tokenString, "Bearer ", "", 1)
		claims, err := AuthenticateSessionToken(authHeader)
		if err != nil {
			logger.WithComponent("authentication").WithError(err).Warn("invalid session token")
			abortToLogin(c)
			return
		}

		// The token alone is not enough; logout deletes the stored session
		// and must invalidate the token immediately.
		user, err := storage.Sessions.Get(claims.SessionID)
		if err != nil {
			abortToLogin(c)
			return
		}

		c.Set(ContextUserKey, *user)
		c.Set("sessionID", claims.SessionID)
	}
}

// RequireUserType additionally restricts a route group to the listed user
// types. Other roles are redirected to their own dashboard.
func RequireUserType(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := SessionUser(c)
		if user == nil {
			abortToLogin(c)
			return
		}

		for _, userType := range allowed {
			if user.UserType == userType {
				return
			}
		}

		redirect, ok := dashboardPaths[user.UserType]
		if !ok {
			redirect = dashboardPaths[models.UserTypePatient]
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":    "You don't have permission to access this page",
			"redirect": redirect,
		})
	}
}

// SessionUser returns the authenticated user set by RequireAuth, if any.
func SessionUser(c *gin.Context) *models.SessionUser {
	value, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, ok := value.(models.SessionUser)
	if !ok {
		return nil
	}
	return &user
}

func abortToLogin(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":    "Please log in to access this page",
		"redirect": "/login",
		"from":     c.Request.URL.Path,
	})
}
