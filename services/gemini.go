package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

// ErrBlocked is returned when the provider refuses to answer for safety
// reasons. Callers substitute the fixed refusal message instead of failing.
var ErrBlocked = errors.New("response blocked by safety settings")

// GeminiClient talks to the generative-language API. The key is injected
// from the environment, never embedded in source.
type GeminiClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewGeminiClient builds a client from the environment. GEMINI_API_URL is
// overridable for local stubs.
func NewGeminiClient() *GeminiClient {
	baseURL := os.Getenv("GEMINI_API_URL")
	if baseURL == "" {
		baseURL = defaultGeminiURL
	}
	return &GeminiClient{
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Wire format for the v1beta generateContent endpoint.

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []geminiContent  `json:"contents"`
	SafetySettings   []safetySetting  `json:"safetySettings,omitempty"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

var chatSafetySettings = []safetySetting{
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_ONLY_HIGH"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}

// ChatReply answers a free-form patient message with the medical-assistant
// prompt template and the chat safety thresholds.
func (g *GeminiClient) ChatReply(ctx context.Context, patientMessage string) (string, error) {
	prompt := fmt.Sprintf(`You are a helpful medical assistant who provides general health information. You always make it clear you're an AI and not a doctor and encourage users to seek professional medical advice for specific health concerns.

Respond to this message from a patient: %s`, patientMessage)

	return g.generate(ctx, prompt, chatSafetySettings, generationConfig{
		Temperature:     0.4,
		TopK:            32,
		TopP:            0.95,
		MaxOutputTokens: 1024,
	})
}

// NextQuestion asks the model for one follow-up question for the guided
// consultation based on the responses so far.
func (g *GeminiClient) NextQuestion(ctx context.Context, responses []string) (string, error) {
	prompt := fmt.Sprintf(`You are a medical professional conducting an initial patient interview.
Based on the patient's previous responses, generate ONE follow-up question that helps narrow down their medical condition.

Patient's responses so far:
%s

Guidelines:
- Ask ONE specific question only
- Focus on symptoms, severity, duration, or factors that trigger/relieve symptoms
- Don't ask about treatment they've tried yet
- Frame the question to help determine what medical specialty would be most appropriate
- Keep the question concise (25 words or less) and compassionate
- Do NOT suggest a diagnosis or recommend a specialist yet

Reply with ONLY the next question, without any other text.`, strings.Join(responses, "\n"))

	reply, err := g.generate(ctx, prompt, nil, generationConfig{
		Temperature:     0.2,
		MaxOutputTokens: 150,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// DetermineSpecialty asks the model for exactly one specialty keyword from
// the fixed enumeration. The caller maps it through the specialty table.
func (g *GeminiClient) DetermineSpecialty(ctx context.Context, responses []string) (string, error) {
	prompt := fmt.Sprintf(`Based on the following patient responses to a medical questionnaire, determine which single medical specialty would be most appropriate for their concerns.
Only respond with ONE of these exact specialty keywords: "dental", "child", "skin", "heart", "bone", "eye", "mental", "nerve", "respiratory", "digestive".
DO NOT include any explanations, just the single keyword.

Patient responses:
%s`, strings.Join(responses, "\n"))

	reply, err := g.generate(ctx, prompt, nil, generationConfig{
		Temperature:     0.2,
		MaxOutputTokens: 20,
	})
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(reply)), nil
}

func (g *GeminiClient) generate(ctx context.Context, prompt string, safety []safetySetting, config generationConfig) (string, error) {
	payload := generateRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		SafetySettings:   safety,
		GenerationConfig: config,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.APIKey)

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API returned status %d", resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if len(result.Candidates) > 0 && len(result.Candidates[0].Content.Parts) > 0 {
		return result.Candidates[0].Content.Parts[0].Text, nil
	}
	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: %s", ErrBlocked, result.PromptFeedback.BlockReason)
	}
	return "", errors.New("unexpected response format")
}
