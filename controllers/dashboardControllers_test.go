package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dr-lamia/med-nexus-portal/authentication"
	"github.com/dr-lamia/med-nexus-portal/models"
)

func dashboardRouter() *gin.Engine {
	r := gin.New()
	user := r.Group("/user", authentication.RequireAuth())
	user.GET("/dashboard", Dashboard)
	return r
}

func TestPatientDashboardSummary(t *testing.T) {
	setupTest(t)
	r := dashboardRouter()
	token := authTokenFor(t, models.UserTypePatient)

	w := serve(r, jsonRequest(http.MethodGet, "/user/dashboard", token, nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["appointments"].([]interface{}), 3)

	// Two of John Doe's three prescriptions are still active.
	assert.Len(t, body["activePrescriptions"].([]interface{}), 2)
}

func TestDoctorDashboardSummary(t *testing.T) {
	setupTest(t)
	r := dashboardRouter()
	token := authTokenFor(t, models.UserTypeDoctor)

	w := serve(r, jsonRequest(http.MethodGet, "/user/dashboard", token, nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["prescriptions"].([]interface{}), 5)
}
