package controllers

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dr-lamia/med-nexus-portal/authentication"
	"github.com/dr-lamia/med-nexus-portal/models"
)

func consultationRouter() *gin.Engine {
	r := gin.New()
	user := r.Group("/user", authentication.RequireAuth())
	user.POST("/consultation/guided", StartGuidedConsultation)
	user.GET("/consultation/guided/:id", GetGuidedConsultation)
	user.POST("/consultation/guided/:id/answers", AnswerGuidedConsultation)
	return r
}

func startGuided(t *testing.T, r *gin.Engine, token string) string {
	t.Helper()
	w := serve(r, jsonRequest(http.MethodPost, "/user/consultation/guided", token, nil))
	require.Equal(t, http.StatusOK, w.Code)

	consultation := decodeBody(t, w)["consultation"].(map[string]interface{})
	messages := consultation["messages"].([]interface{})
	require.Len(t, messages, 1)
	first := messages[0].(map[string]interface{})
	assert.Equal(t, models.RoleAssistant, first["role"])
	assert.Contains(t, first["content"], "What's your main health concern today?")
	return consultation["id"].(string)
}

func answer(t *testing.T, r *gin.Engine, token, id, text string) map[string]interface{} {
	t.Helper()
	path := fmt.Sprintf("/user/consultation/guided/%s/answers", id)
	w := serve(r, jsonRequest(http.MethodPost, path, token, gin.H{"answer": text}))
	require.Equal(t, http.StatusOK, w.Code)
	return decodeBody(t, w)
}

func TestGuidedFlowReachesTerminalAfterFiveAnswers(t *testing.T) {
	setupTest(t)
	stubGemini(t, func(w http.ResponseWriter, r *http.Request) {
		if isSpecialtyPrompt(r) {
			w.Write([]byte(geminiText("heart")))
			return
		}
		w.Write([]byte(geminiText("How long have you had these symptoms?")))
	})
	r := consultationRouter()
	token := authTokenFor(t, models.UserTypePatient)
	id := startGuided(t, r, token)

	// Four intermediate answers each produce exactly one follow-up question.
	for i := 1; i <= 4; i++ {
		body := answer(t, r, token, id, fmt.Sprintf("answer %d", i))
		consultation := body["consultation"].(map[string]interface{})
		messages := consultation["messages"].([]interface{})

		// greeting + i*(user answer + assistant question)
		assert.Len(t, messages, 1+2*i)
		assert.Equal(t, float64(i), consultation["question_count"])
		assert.Equal(t, false, consultation["diagnosis_complete"])

		last := messages[len(messages)-1].(map[string]interface{})
		assert.Equal(t, models.RoleAssistant, last["role"])
		assert.Equal(t, "How long have you had these symptoms?", last["content"])
	}

	// The fifth answer is terminal.
	body := answer(t, r, token, id, "answer 5")
	consultation := body["consultation"].(map[string]interface{})
	assert.Equal(t, true, consultation["diagnosis_complete"])
	assert.Equal(t, "heart", consultation["recommended_specialty"])

	specialty := body["specialty"].(map[string]interface{})
	assert.Equal(t, "Cardiology", specialty["name"])
	assert.Equal(t, "/find-doctors?specialty=cardiology", specialty["route"])

	messages := consultation["messages"].([]interface{})
	last := messages[len(messages)-1].(map[string]interface{})
	assert.Contains(t, last["content"], "Cardiology specialist")
}

func TestGuidedFlowKeywordFailureFallsBackToGeneral(t *testing.T) {
	setupTest(t)
	stubGemini(t, func(w http.ResponseWriter, r *http.Request) {
		if isSpecialtyPrompt(r) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(geminiText("Anything else?")))
	})
	r := consultationRouter()
	token := authTokenFor(t, models.UserTypePatient)
	id := startGuided(t, r, token)

	for i := 1; i <= 4; i++ {
		answer(t, r, token, id, "some symptom")
	}
	body := answer(t, r, token, id, "last answer")

	consultation := body["consultation"].(map[string]interface{})
	assert.Equal(t, true, consultation["diagnosis_complete"])
	assert.Equal(t, "general", consultation["recommended_specialty"])

	messages := consultation["messages"].([]interface{})
	last := messages[len(messages)-1].(map[string]interface{})
	assert.Contains(t, last["content"], "I'm having trouble analyzing your symptoms")

	specialty := body["specialty"].(map[string]interface{})
	assert.Equal(t, "/find-doctors", specialty["route"])
}

func TestGuidedFlowUnknownKeywordDefaultsToGeneral(t *testing.T) {
	setupTest(t)
	stubGemini(t, func(w http.ResponseWriter, r *http.Request) {
		if isSpecialtyPrompt(r) {
			w.Write([]byte(geminiText("unicorn")))
			return
		}
		w.Write([]byte(geminiText("Anything else?")))
	})
	r := consultationRouter()
	token := authTokenFor(t, models.UserTypePatient)
	id := startGuided(t, r, token)

	for i := 1; i <= 4; i++ {
		answer(t, r, token, id, "some symptom")
	}
	body := answer(t, r, token, id, "last answer")

	consultation := body["consultation"].(map[string]interface{})
	assert.Equal(t, "general", consultation["recommended_specialty"])

	messages := consultation["messages"].([]interface{})
	last := messages[len(messages)-1].(map[string]interface{})
	assert.Contains(t, last["content"], "general practitioner")
}

func TestGuidedFlowQuestionFailureUsesFixedFallback(t *testing.T) {
	setupTest(t)
	stubGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	r := consultationRouter()
	token := authTokenFor(t, models.UserTypePatient)
	id := startGuided(t, r, token)

	body := answer(t, r, token, id, "my head hurts")

	consultation := body["consultation"].(map[string]interface{})
	messages := consultation["messages"].([]interface{})
	last := messages[len(messages)-1].(map[string]interface{})
	assert.Equal(t, "Could you describe any pain or discomfort you're experiencing?", last["content"])
	assert.Equal(t, false, consultation["diagnosis_complete"])
}

func TestGuidedFlowTerminalStateIsSticky(t *testing.T) {
	setupTest(t)
	stubGemini(t, func(w http.ResponseWriter, r *http.Request) {
		if isSpecialtyPrompt(r) {
			w.Write([]byte(geminiText("skin")))
			return
		}
		w.Write([]byte(geminiText("Anything else?")))
	})
	r := consultationRouter()
	token := authTokenFor(t, models.UserTypePatient)
	id := startGuided(t, r, token)

	for i := 1; i <= 5; i++ {
		answer(t, r, token, id, "rash")
	}

	path := fmt.Sprintf("/user/consultation/guided/%s/answers", id)
	w := serve(r, jsonRequest(http.MethodPost, path, token, gin.H{"answer": "one more"}))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGuidedConcurrentAnswersKeepEveryExchange(t *testing.T) {
	setupTest(t)
	stubGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiText("Anything else?")))
	})
	r := consultationRouter()
	token := authTokenFor(t, models.UserTypePatient)
	id := startGuided(t, r, token)

	const clients = 4
	var wg sync.WaitGroup
	codes := make([]int, clients)
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path := fmt.Sprintf("/user/consultation/guided/%s/answers", id)
			w := serve(r, jsonRequest(http.MethodPost, path, token, gin.H{"answer": fmt.Sprintf("symptom %d", i)}))
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}

	// Every answer lands with exactly one reply, none lost.
	w := serve(r, jsonRequest(http.MethodGet, "/user/consultation/guided/"+id, token, nil))
	require.Equal(t, http.StatusOK, w.Code)
	consultation := decodeBody(t, w)["consultation"].(map[string]interface{})
	messages := consultation["messages"].([]interface{})
	assert.Len(t, messages, 1+2*clients)
	assert.Equal(t, float64(clients), consultation["question_count"])
	for i, raw := range messages {
		msg := raw.(map[string]interface{})
		if i == 0 || i%2 == 0 {
			assert.Equal(t, models.RoleAssistant, msg["role"])
		} else {
			assert.Equal(t, models.RoleUser, msg["role"])
		}
	}
}

func TestGuidedConsultationNotFound(t *testing.T) {
	setupTest(t)
	r := consultationRouter()
	token := authTokenFor(t, models.UserTypePatient)

	w := serve(r, jsonRequest(http.MethodGet, "/user/consultation/guided/nope", token, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
