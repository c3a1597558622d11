package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dr-lamia/med-nexus-portal/configuration"
	"github.com/dr-lamia/med-nexus-portal/models"
	"github.com/dr-lamia/med-nexus-portal/storage"
)

// SearchDoctors filters the doctor directory by the optional specialty,
// location and name fields. All filters are case-insensitive substring
// matches ANDed together; an empty query returns the full directory.
func SearchDoctors(c *gin.Context) {
	var query models.DoctorSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	configuration.SimulateLatency(800 * time.Millisecond)

	results := storage.Doctors.Search(query)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%d doctors found", len(results)),
		"count":   len(results),
		"doctors": results,
	})
}

// GetDoctorByID returns a single doctor from the directory.
func GetDoctorByID(c *gin.Context) {
	doctor, ok := storage.Doctors.Get(c.Param("doctor_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}

// GetAvailableTimeSlots lists the bookable 30-minute slots for a doctor on
// the given date. Past dates and weekends are not bookable.
func GetAvailableTimeSlots(c *gin.Context) {
	doctorID := c.Param("doctor_id")
	dateStr := c.Query("date")

	date, err := time.Parse("2006-01-02", dateStr)
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

	if _, ok := storage.Doctors.Get(doctorID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	// Every doctor works the same mock consultation window.
	availableTimeSlots := divideSlots("09:00", "17:00", 30*time.Minute)

	c.JSON(http.StatusOK, gin.H{
		"message":              "Time slots fetched successfully",
		"date":                 dateStr,
		"available_time_slots": availableTimeSlots,
	})
}

// Dividing time between start and end time into time slots with specified interval
func divideSlots(startTime, endTime string, interval time.Duration) []string {
	start, _ := time.Parse("15:04", startTime)
	end, _ := time.Parse("15:04", endTime)

	var slots []string
	for t := start; t.Before(end); t = t.Add(interval) {
		slotEnd := t.Add(interval)
		slots = append(slots, fmt.Sprintf("%s-%s", t.Format("15:04"), slotEnd.Format("15:04")))
	}
	return slots
}
