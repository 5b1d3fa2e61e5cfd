package testutil

import (
	"migrationbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestSession creates a session in the given state with collected fields
func NewTestSession(userID int64, state domain.State, fields map[string]string) *domain.Session {
	s := domain.NewSession(userID)
	s.State = state
	for k, v := range fields {
		s.SetField(k, v)
	}
	return s
}
