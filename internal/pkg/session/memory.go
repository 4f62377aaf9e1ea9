package session

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/taxe/internal/pkg/models"
)

// MemoryStore keeps the session in process memory
type MemoryStore struct {
	mu            sync.Mutex
	token         string
	user          *models.UserProfile
	activeBooking string
	invalidations int
	now           func() time.Time
}

// NewMemoryStore creates an empty session
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// Invalidate clears everything. Only calls that actually removed state count
// towards Invalidations.
func (s *MemoryStore) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" && s.user == nil && s.activeBooking == "" {
		return nil
	}
	s.token = ""
	s.user = nil
	s.activeBooking = ""
	s.invalidations++
	return nil
}

// Invalidations returns how many times a non-empty session was cleared
func (s *MemoryStore) Invalidations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invalidations
}

// IsValid reports whether a token is stored and not known to be expired
func (s *MemoryStore) IsValid(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && !TokenExpired(s.token, s.now())
}

func (s *MemoryStore) PutToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *MemoryStore) PutUser(ctx context.Context, user models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := toStoredUser(user).profile()
	s.user = &u
	return nil
}

func (s *MemoryStore) User(ctx context.Context) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, ErrNoUser
	}
	u := toStoredUser(*s.user).profile()
	return &u, nil
}

func (s *MemoryStore) PutActiveBooking(ctx context.Context, bookingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeBooking = bookingID
	return nil
}

func (s *MemoryStore) ActiveBooking(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeBooking == "" {
		return "", ErrNoActiveBooking
	}
	return s.activeBooking, nil
}

func (s *MemoryStore) DeleteActiveBooking(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeBooking = ""
	return nil
}
