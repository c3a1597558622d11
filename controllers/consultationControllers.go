package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dr-lamia/med-nexus-portal/authentication"
	"github.com/dr-lamia/med-nexus-portal/configuration"
	"github.com/dr-lamia/med-nexus-portal/logger"
	"github.com/dr-lamia/med-nexus-portal/models"
	"github.com/dr-lamia/med-nexus-portal/services"
	"github.com/dr-lamia/med-nexus-portal/storage"
)

// Gemini is the shared generative-language client. Tests swap it for one
// pointed at a stub server.
var Gemini = services.NewGeminiClient()

const (
	guidedGreeting = "Hello! I'm your AI health assistant. To help direct you to the right specialist, I'll ask a few questions. What's your main health concern today?"

	// The flow asks this many questions before recommending a specialty:
	// the opening prompt plus four follow-ups.
	totalGuidedQuestions = 5

	generalRecommendation  = "Based on your symptoms, I recommend scheduling an appointment with a general practitioner who can provide a comprehensive evaluation. Would you like me to help you find a doctor?"
	fallbackRecommendation = "I'm having trouble analyzing your symptoms. To be safe, I recommend consulting with a general practitioner who can provide a proper evaluation. Would you like me to help you find a doctor?"
)

// errConsultationComplete marks an answer that raced a finished diagnosis.
var errConsultationComplete = errors.New("consultation already complete")

// fallbackQuestions keep the flow moving when the question call fails.
var fallbackQuestions = []string{
	"Could you describe any pain or discomfort you're experiencing?",
	"Are there any specific times when your symptoms worsen?",
	"Have you noticed any other symptoms alongside your main concern?",
	"How have these symptoms affected your daily activities?",
	"On a scale of 1-10, how would you rate the severity of your symptoms?",
}

// StartGuidedConsultation opens a new wizard session seeded with the
// greeting question.
func StartGuidedConsultation(c *gin.Context) {
	user := authentication.SessionUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}

	consultation := &models.GuidedConsultation{
		ID:     uuid.NewString(),
		UserID: user.ID,
		Messages: []models.Message{
			{Role: models.RoleAssistant, Content: guidedGreeting},
		},
	}
	storage.Consultations.SaveGuided(consultation)

	c.JSON(http.StatusOK, gin.H{"consultation": consultation})
}

// GetGuidedConsultation returns a session snapshot.
func GetGuidedConsultation(c *gin.Context) {
	consultation, ok := storage.Consultations.GetGuided(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consultation not found"})
		return
	}
	if user := authentication.SessionUser(c); user == nil || user.ID != consultation.UserID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consultation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"consultation": consultation})
}

// AnswerGuidedConsultation advances the wizard by exactly one step: the
// answer is recorded and exactly one assistant message follows, either the
// next question or the terminal specialty recommendation after the fifth
// answer. A failed AI call never blocks the flow. The AI call works from a
// snapshot; the transcript mutation happens under the store lock so
// concurrent answers never drop messages.
func AnswerGuidedConsultation(c *gin.Context) {
	var req struct {
		Answer string `json:"answer" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	consultation, ok := storage.Consultations.GetGuided(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consultation not found"})
		return
	}
	if user := authentication.SessionUser(c); user == nil || user.ID != consultation.UserID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consultation not found"})
		return
	}
	if consultation.DiagnosisComplete {
		c.JSON(http.StatusConflict, gin.H{"error": "This consultation is already complete"})
		return
	}

	responses := append(consultation.PatientResponses, req.Answer)

	if consultation.QuestionCount < totalGuidedQuestions-1 {
		nextQuestion, err := Gemini.NextQuestion(c.Request.Context(), responses)
		if err != nil {
			logger.WithComponent("consultation").WithError(err).Warn("error generating next question, using fallback")
			nextQuestion = fallbackQuestions[consultation.QuestionCount%len(fallbackQuestions)]
		}

		// Short delay to simulate thinking
		configuration.SimulateLatency(800 * time.Millisecond)

		updated, err := storage.Consultations.UpdateGuided(consultation.ID, func(stored *models.GuidedConsultation) error {
			if stored.DiagnosisComplete {
				return errConsultationComplete
			}
			stored.Messages = append(stored.Messages,
				models.Message{Role: models.RoleUser, Content: req.Answer},
				models.Message{Role: models.RoleAssistant, Content: nextQuestion},
			)
			stored.PatientResponses = append(stored.PatientResponses, req.Answer)
			stored.QuestionCount++
			return nil
		})
		if err != nil {
			writeGuidedUpdateError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"consultation": updated})
		return
	}

	content, keyword := resolveSpecialty(c.Request.Context(), responses)
	updated, err := storage.Consultations.UpdateGuided(consultation.ID, func(stored *models.GuidedConsultation) error {
		if stored.DiagnosisComplete {
			return errConsultationComplete
		}
		stored.Messages = append(stored.Messages,
			models.Message{Role: models.RoleUser, Content: req.Answer},
			models.Message{Role: models.RoleAssistant, Content: content},
		)
		stored.PatientResponses = append(stored.PatientResponses, req.Answer)
		stored.RecommendedSpecialty = keyword
		stored.DiagnosisComplete = true
		return nil
	})
	if err != nil {
		writeGuidedUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"consultation": updated, "specialty": recommendedSpecialtyInfo(updated)})
}

// resolveSpecialty runs the terminal step: one keyword from the fixed
// enumeration, mapped through the specialty table, defaulting to a general
// practitioner on anything unexpected. Returns the transcript message and
// the recommended keyword.
func resolveSpecialty(ctx context.Context, responses []string) (string, string) {
	keyword, err := Gemini.DetermineSpecialty(ctx, responses)
	if err != nil {
		logger.WithComponent("consultation").WithError(err).Warn("error determining specialty, recommending general practitioner")
		return fallbackRecommendation, "general"
	}
	if specialty, ok := storage.SpecialtyTable[strings.TrimSpace(keyword)]; ok {
		content := fmt.Sprintf("Based on your symptoms, I recommend consulting with a %s specialist. %s. Would you like me to help you find a %s specialist?",
			specialty.Name, specialty.Description, specialty.Name)
		return content, specialty.Keyword
	}
	return generalRecommendation, "general"
}

func writeGuidedUpdateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errConsultationComplete):
		c.JSON(http.StatusConflict, gin.H{"error": "This consultation is already complete"})
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Consultation not found"})
	}
}

// recommendedSpecialtyInfo resolves the recommendation to the routing table
// entry; the general default routes to the unfiltered doctor search.
func recommendedSpecialtyInfo(consultation *models.GuidedConsultation) models.SpecialtyInfo {
	if specialty, ok := storage.SpecialtyTable[consultation.RecommendedSpecialty]; ok {
		return specialty
	}
	return models.SpecialtyInfo{
		Keyword:     "general",
		Name:        "General Practice",
		Description: "Comprehensive primary care evaluation",
		Route:       "/find-doctors",
	}
}

// ListSpecialties serves the public specialty table used by the home page
// and the guided flow routing.
func ListSpecialties(c *gin.Context) {
	specialties := make([]models.SpecialtyInfo, 0, len(storage.SpecialtyTable))
	for _, specialty := range storage.SpecialtyTable {
		specialties = append(specialties, specialty)
	}
	c.JSON(http.StatusOK, gin.H{"specialties": specialties})
}
