package services

import (
	"context"
	"fmt"
	"sync"

	"heartlink_server/models"
)

// MemoryDirectory is an in-memory UserDirectory. It backs the test suites
// and lets the server run locally without AWS credentials. Records are
// deep-copied on every read and write so callers can only change the store
// through Save/SavePair, the same way a remote store behaves.
type MemoryDirectory struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{users: make(map[string]*models.User)}
}

func (md *MemoryDirectory) FindByID(ctx context.Context, userID string) (*models.User, error) {
	md.mu.RLock()
	defer md.mu.RUnlock()

	user, ok := md.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, userID)
	}
	return user.Clone(), nil
}

func (md *MemoryDirectory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	md.mu.RLock()
	defer md.mu.RUnlock()

	for _, user := range md.users {
		if user.Email == email {
			return user.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (md *MemoryDirectory) FindByPhone(ctx context.Context, phoneNumber string) (*models.User, error) {
	md.mu.RLock()
	defer md.mu.RUnlock()

	for _, user := range md.users {
		if user.PhoneNumber == phoneNumber {
			return user.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (md *MemoryDirectory) Save(ctx context.Context, user *models.User) error {
	md.mu.Lock()
	defer md.mu.Unlock()

	md.users[user.UserID] = user.Clone()
	return nil
}

// SavePair stores both records under one lock acquisition, mirroring the
// transactional dual write of the DynamoDB directory.
func (md *MemoryDirectory) SavePair(ctx context.Context, first, second *models.User) error {
	md.mu.Lock()
	defer md.mu.Unlock()

	md.users[first.UserID] = first.Clone()
	md.users[second.UserID] = second.Clone()
	return nil
}

func (md *MemoryDirectory) FindMany(ctx context.Context, filter models.DiscoveryFilter, excludeIDs map[string]struct{}) ([]models.User, error) {
	md.mu.RLock()
	defer md.mu.RUnlock()

	var results []models.User
	for _, user := range md.users {
		if _, excluded := excludeIDs[user.UserID]; excluded {
			continue
		}
		if filter.Gender != "" && user.Gender != filter.Gender {
			continue
		}
		if filter.DatingIntention != "" && user.DatingIntention != filter.DatingIntention {
			continue
		}
		results = append(results, *user.Clone())
	}
	return results, nil
}
