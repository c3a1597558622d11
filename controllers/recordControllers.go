package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dr-lamia/med-nexus-portal/authentication"
	"github.com/dr-lamia/med-nexus-portal/configuration"
	"github.com/dr-lamia/med-nexus-portal/logger"
	"github.com/dr-lamia/med-nexus-portal/models"
	"github.com/dr-lamia/med-nexus-portal/storage"
)

// QueueRecordFiles accepts a multipart selection and queues the file
// metadata for upload. Contents are never stored.
func QueueRecordFiles(c *gin.Context) {
	user := authentication.SessionUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload"})
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select at least one file to upload."})
		return
	}

	files := make([]models.RecordFile, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		files = append(files, models.RecordFile{
			ID:         uuid.NewString(),
			Name:       header.Filename,
			Size:       header.Size,
			Type:       header.Header.Get("Content-Type"),
			UploadedAt: time.Now(),
		})
	}

	pending := storage.Records.Queue(user.ID, files)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%d file(s) added to upload queue", len(files)),
		"pending": pending,
	})
}

// GetPendingRecords returns the session user's queued files.
func GetPendingRecords(c *gin.Context) {
	user := authentication.SessionUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": storage.Records.Pending(user.ID)})
}

// CompleteRecordUpload "uploads" the queued files: waits the simulated
// transfer delay, clears the queue and confirms. No transfer takes place.
func CompleteRecordUpload(c *gin.Context) {
	user := authentication.SessionUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}

	pending := storage.Records.Pending(user.ID)
	if len(pending) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select at least one file to upload."})
		return
	}

	configuration.SimulateLatency(2 * time.Second)

	cleared := storage.Records.Clear(user.ID)
	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"message": fmt.Sprintf("%d medical record(s) uploaded successfully", cleared),
	})
}

// SubmitQuestionnaire validates the structured health questionnaire. The
// payload is logged and acknowledged; there is nowhere to persist it.
func SubmitQuestionnaire(c *gin.Context) {
	var questionnaire models.HealthQuestionnaire
	if err := c.BindJSON(&questionnaire); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validate.Struct(questionnaire); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"Status":  "Failed",
			"message": "Please fill all the mandatory fields",
			"data":    err.Error(),
		})
		return
	}

	user := authentication.SessionUser(c)
	logger.WithComponent("records").WithFields(map[string]interface{}{
		"user_id":        userID(user),
		"smoking":        questionnaire.Smoking,
		"alcohol":        questionnaire.Alcohol,
		"exercise":       questionnaire.ExerciseFrequency,
		"consentToShare": questionnaire.ConsentToShare,
	}).Info("health questionnaire submitted")

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"message": "Your health questionnaire has been submitted successfully",
	})
}

func userID(user *models.SessionUser) string {
	if user == nil {
		return ""
	}
	return user.ID
}
