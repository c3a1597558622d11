package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dr-lamia/med-nexus-portal/authentication"
	"github.com/dr-lamia/med-nexus-portal/configuration"
	"github.com/dr-lamia/med-nexus-portal/models"
	"github.com/dr-lamia/med-nexus-portal/services"
	"github.com/dr-lamia/med-nexus-portal/storage"
)

// setupTest resets the stores and turns off the simulated latency.
func setupTest(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	configuration.LatencyScale = 0
	storage.Init(storage.NewMemorySessionStore())

	previous := Gemini
	t.Cleanup(func() { Gemini = previous })
}

// stubGemini points the shared client at a local stub server.
func stubGemini(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	Gemini = &services.GeminiClient{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// isSpecialtyPrompt distinguishes the terminal keyword call from the
// next-question call by its prompt wording.
func isSpecialtyPrompt(r *http.Request) bool {
	body, _ := io.ReadAll(r.Body)
	return strings.Contains(string(body), "specialty keywords")
}

func geminiText(text string) string {
	payload := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{"parts": []map[string]string{{"text": text}}}},
		},
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

func authTokenFor(t *testing.T, userType string) string {
	t.Helper()
	user := models.SessionUser{
		ID:        "user123",
		Email:     "john.doe@example.com",
		FirstName: "John",
		LastName:  "Doe",
		UserType:  userType,
	}
	sessionID := uuid.NewString()
	require.NoError(t, storage.Sessions.Save(sessionID, user))
	token, err := authentication.GenerateSessionToken(sessionID, user)
	require.NoError(t, err)
	return token
}

func jsonRequest(method, path, token string, payload interface{}) *http.Request {
	var body io.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
