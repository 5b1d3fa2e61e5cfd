package repository

import (
	"migrationbot/internal/domain"
)

// SessionRepository defines per-user conversation storage
type SessionRepository interface {
	Get(userID int64) (*domain.Session, bool)
	Save(session *domain.Session)
	Delete(userID int64)
}
