package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dr-lamia/med-nexus-portal/configuration"
	"github.com/dr-lamia/med-nexus-portal/storage"
)

// NearbyPharmacies returns the pharmacy directory for a ZIP code. The ZIP is
// required but only echoed back; the directory itself is the mock set.
func NearbyPharmacies(c *gin.Context) {
	zipCode := strings.TrimSpace(c.Query("zip"))
	if zipCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a ZIP code"})
		return
	}

	configuration.SimulateLatency(1500 * time.Millisecond)

	pharmacies := storage.Pharmacies.List()
	c.JSON(http.StatusOK, gin.H{
		"message":    fmt.Sprintf("Found %d pharmacies near %s", len(pharmacies), zipCode),
		"count":      len(pharmacies),
		"pharmacies": pharmacies,
	})
}
