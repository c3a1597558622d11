package storage

import (
	"errors"
	"sync"
	"time"

	"github.com/dr-lamia/med-nexus-portal/models"
)

// ErrConsultationGone reports that an update targeted a guided consultation
// or chat that was never created or has already been swept.
var ErrConsultationGone = errors.New("consultation not found")

// ConsultationStore holds in-flight guided consultations and chat sessions.
// Both are ephemeral: the sweeper removes anything idle past its TTL. The
// store owns the canonical state; reads hand out copies and every mutation
// goes through UpdateGuided/UpdateChat under the store lock.
type ConsultationStore struct {
	mu     sync.RWMutex
	guided map[string]*models.GuidedConsultation
	chats  map[string]*models.ChatSession
}

func NewConsultationStore() *ConsultationStore {
	return &ConsultationStore{
		guided: make(map[string]*models.GuidedConsultation),
		chats:  make(map[string]*models.ChatSession),
	}
}

func (s *ConsultationStore) SaveGuided(consultation *models.GuidedConsultation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	consultation.UpdatedAt = time.Now()
	s.guided[consultation.ID] = copyGuided(consultation)
}

func (s *ConsultationStore) GetGuided(id string) (*models.GuidedConsultation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	consultation, ok := s.guided[id]
	if !ok {
		return nil, false
	}
	return copyGuided(consultation), true
}

// UpdateGuided applies fn to the stored consultation under the store lock and
// returns a copy of the result. An error from fn aborts the update.
func (s *ConsultationStore) UpdateGuided(id string, fn func(*models.GuidedConsultation) error) (*models.GuidedConsultation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	consultation, ok := s.guided[id]
	if !ok {
		return nil, ErrConsultationGone
	}
	if err := fn(consultation); err != nil {
		return nil, err
	}
	consultation.UpdatedAt = time.Now()
	return copyGuided(consultation), nil
}

func (s *ConsultationStore) SaveChat(chat *models.ChatSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	chat.UpdatedAt = time.Now()
	s.chats[chat.ID] = copyChat(chat)
}

func (s *ConsultationStore) GetChat(id string) (*models.ChatSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chat, ok := s.chats[id]
	if !ok {
		return nil, false
	}
	return copyChat(chat), true
}

// UpdateChat applies fn to the stored chat under the store lock and returns a
// copy of the result.
func (s *ConsultationStore) UpdateChat(id string, fn func(*models.ChatSession) error) (*models.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	chat, ok := s.chats[id]
	if !ok {
		return nil, ErrConsultationGone
	}
	if err := fn(chat); err != nil {
		return nil, err
	}
	chat.UpdatedAt = time.Now()
	return copyChat(chat), nil
}

// SweepIdle removes guided consultations and chats idle for longer than ttl
// and returns how many were removed.
func (s *ConsultationStore) SweepIdle(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	cutoff := time.Now().Add(-ttl)
	for id, consultation := range s.guided {
		if consultation.UpdatedAt.Before(cutoff) {
			delete(s.guided, id)
			removed++
		}
	}
	for id, chat := range s.chats {
		if chat.UpdatedAt.Before(cutoff) {
			delete(s.chats, id)
			removed++
		}
	}
	return removed
}

func copyGuided(consultation *models.GuidedConsultation) *models.GuidedConsultation {
	out := *consultation
	out.Messages = append([]models.Message(nil), consultation.Messages...)
	out.PatientResponses = append([]string(nil), consultation.PatientResponses...)
	return &out
}

func copyChat(chat *models.ChatSession) *models.ChatSession {
	out := *chat
	out.Messages = append([]models.Message(nil), chat.Messages...)
	return &out
}
