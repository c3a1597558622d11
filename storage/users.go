package storage

import (
	"strings"
	"sync"

	"github.com/dr-lamia/med-nexus-portal/models"
)

// UserRegistry holds users created through the registration form. Login never
// verifies credentials against it; it only decides which identity a login
// resolves to.
type UserRegistry struct {
	mu    sync.RWMutex
	users map[string]models.RegisteredUser
}

func NewUserRegistry() *UserRegistry {
	return &UserRegistry{users: make(map[string]models.RegisteredUser)}
}

// Add stores a registered user keyed by lower-cased email.
func (r *UserRegistry) Add(user models.RegisteredUser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[strings.ToLower(user.Email)] = user
}

// FindByEmail returns the registered user for the email, if any.
func (r *UserRegistry) FindByEmail(email string) (*models.RegisteredUser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, false
	}
	return &user, true
}
