package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dr-lamia/med-nexus-portal/authentication"
	"github.com/dr-lamia/med-nexus-portal/configuration"
	"github.com/dr-lamia/med-nexus-portal/logger"
	"github.com/dr-lamia/med-nexus-portal/models"
	"github.com/dr-lamia/med-nexus-portal/storage"
)

// GetAppointments lists the session user's upcoming appointments.
func GetAppointments(c *gin.Context) {
	appointments := storage.Appointments.List()
	c.JSON(http.StatusOK, gin.H{
		"count":        len(appointments),
		"appointments": appointments,
	})
}

// BookAppointment validates a booking request and confirms it. The mock
// backend never persists a new row; the confirmation is the whole outcome.
func BookAppointment(c *gin.Context) {
	var booking models.BookingRequest
	if err := c.BindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select both a date and time for your appointment."})
		return
	}

	date, err := time.Parse("2006-01-02", booking.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}
	if date.Before(time.Now().Truncate(24 * time.Hour)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date cannot be in the past"})
		return
	}
	if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointments are not available on weekends"})
		return
	}

	doctor, ok := storage.Doctors.Get(booking.DoctorID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	configuration.SimulateLatency(1500 * time.Millisecond)

	user := authentication.SessionUser(c)
	if user != nil && user.Email != "" {
		msg := fmt.Sprintf("Your appointment with Dr. %s (%s) on %s at %s has been requested.",
			doctor.Name, doctor.Specialty, booking.Date, booking.Time)
		if err := SendEmail("Appointment Confirmation", msg, user.Email, "", nil); err != nil {
			logger.WithComponent("appointments").WithError(err).Warn("confirmation email not sent")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"message": fmt.Sprintf("Appointment booked with Dr. %s on %s at %s", doctor.Name, booking.Date, booking.Time),
	})
}
