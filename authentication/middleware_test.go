package authentication

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dr-lamia/med-nexus-portal/models"
	"github.com/dr-lamia/med-nexus-portal/storage"
)

func setupGuardedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	storage.Init(storage.NewMemorySessionStore())

	r := gin.New()
	user := r.Group("/user", RequireAuth())
	user.GET("/profile", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": SessionUser(c)})
	})

	doctor := r.Group("/doctor", RequireAuth(), RequireUserType(models.UserTypeDoctor))
	doctor.GET("/panel", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func loginAs(t *testing.T, userType string) string {
	t.Helper()
	sessionID := uuid.NewString()
	user := models.SessionUser{
		ID:        "user123",
		Email:     "john.doe@example.com",
		FirstName: "John",
		LastName:  "Doe",
		UserType:  userType,
	}
	require.NoError(t, storage.Sessions.Save(sessionID, user))

	token, err := GenerateSessionToken(sessionID, user)
	require.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingTokenRedirectsToLogin(t *testing.T) {
	r := setupGuardedRouter(t)

	w := doRequest(r, "/user/profile", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/login", body["redirect"])
	assert.Equal(t, "/user/profile", body["from"])
}

func TestRequireAuthGarbageTokenRejected(t *testing.T) {
	r := setupGuardedRouter(t)

	w := doRequest(r, "/user/profile", "not-a-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthValidSessionPasses(t *testing.T) {
	r := setupGuardedRouter(t)
	token := loginAs(t, models.UserTypePatient)

	w := doRequest(r, "/user/profile", token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTokenUselessOnceSessionDeleted(t *testing.T) {
	r := setupGuardedRouter(t)
	token := loginAs(t, models.UserTypePatient)

	claims, err := AuthenticateSessionToken(token)
	require.NoError(t, err)
	require.NoError(t, storage.Sessions.Delete(claims.SessionID))

	w := doRequest(r, "/user/profile", token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireUserTypeAllowsListedRole(t *testing.T) {
	r := setupGuardedRouter(t)
	token := loginAs(t, models.UserTypeDoctor)

	w := doRequest(r, "/doctor/panel", token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireUserTypeRedirectsToOwnDashboard(t *testing.T) {
	r := setupGuardedRouter(t)
	token := loginAs(t, models.UserTypePatient)

	w := doRequest(r, "/doctor/panel", token)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/patient-dashboard", body["redirect"])
}
