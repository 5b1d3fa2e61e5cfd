package testutil

import (
	"migrationbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockSessionRepository is a mock for SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(userID int64) (*domain.Session, bool) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Session), args.Bool(1)
}

func (m *MockSessionRepository) Save(session *domain.Session) {
	m.Called(session)
}

func (m *MockSessionRepository) Delete(userID int64) {
	m.Called(userID)
}
