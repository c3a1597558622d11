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

func pharmacyRouter() *gin.Engine {
	r := gin.New()
	user := r.Group("/user", authentication.RequireAuth())
	user.GET("/pharmacies/nearby", NearbyPharmacies)
	return r
}

func TestNearbyPharmaciesRequiresZip(t *testing.T) {
	setupTest(t)
	r := pharmacyRouter()
	token := authTokenFor(t, models.UserTypePatient)

	w := serve(r, jsonRequest(http.MethodGet, "/user/pharmacies/nearby", token, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNearbyPharmaciesReturnsDirectory(t *testing.T) {
	setupTest(t)
	r := pharmacyRouter()
	token := authTokenFor(t, models.UserTypePatient)

	w := serve(r, jsonRequest(http.MethodGet, "/user/pharmacies/nearby?zip=10001", token, nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(4), body["count"])
	assert.Equal(t, "Found 4 pharmacies near 10001", body["message"])
}
