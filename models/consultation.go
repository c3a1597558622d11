package models

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn in a consultation or chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SpecialtyInfo maps a symptom keyword to a medical specialty and the
// doctor-search route that filters for it.
type SpecialtyInfo struct {
	Keyword     string `json:"keyword"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Route       string `json:"route"`
}

// GuidedConsultation is the server-held state of the question/answer wizard.
// The flow asks five questions in total; after the fifth answer the session
// is terminal and carries the recommended specialty.
type GuidedConsultation struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"user_id"`
	Messages             []Message `json:"messages"`
	PatientResponses     []string  `json:"patient_responses"`
	QuestionCount        int       `json:"question_count"`
	DiagnosisComplete    bool      `json:"diagnosis_complete"`
	RecommendedSpecialty string    `json:"recommended_specialty,omitempty"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ChatSession is the server-held state of the free-form AI health chat.
type ChatSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Messages  []Message `json:"messages"`
	UpdatedAt time.Time `json:"updated_at"`
}
