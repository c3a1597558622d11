package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dr-lamia/med-nexus-portal/authentication"
	"github.com/dr-lamia/med-nexus-portal/models"
	"github.com/dr-lamia/med-nexus-portal/storage"
)

// Dashboard assembles the role-aware landing summary from the stores.
func Dashboard(c *gin.Context) {
	user := authentication.SessionUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}

	appointments := storage.Appointments.List()

	if user.UserType == models.UserTypeDoctor {
		// Doctors see the whole prescription history they manage.
		prescriptions := storage.Prescriptions.Filter("", "")
		c.JSON(http.StatusOK, gin.H{
			"user":          user,
			"appointments":  appointments,
			"prescriptions": prescriptions,
		})
		return
	}

	active := make([]models.Prescription, 0)
	for _, p := range storage.Prescriptions.Filter(MockCurrentPatientID, "") {
		if p.Status == models.PrescriptionStatusActive {
			active = append(active, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"user":                user,
		"appointments":        appointments,
		"activePrescriptions": active,
	})
}
