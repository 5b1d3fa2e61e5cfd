package memory

import (
	"strconv"

	"migrationbot/internal/domain"

	"github.com/patrickmn/go-cache"
)

// SessionRepo implements repository.SessionRepository in process memory.
// Sessions live until they are deleted or the process exits.
type SessionRepo struct {
	cache *cache.Cache
}

// NewSessionRepo creates a new in-memory session repository
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get returns a copy of the user's session
func (r *SessionRepo) Get(userID int64) (*domain.Session, bool) {
	x, found := r.cache.Get(key(userID))
	if !found {
		return nil, false
	}
	return clone(x.(*domain.Session)), true
}

// Save stores the session, replacing any previous one for the same user
func (r *SessionRepo) Save(session *domain.Session) {
	r.cache.Set(key(session.UserID), clone(session), cache.NoExpiration)
}

// Delete removes the user's session
func (r *SessionRepo) Delete(userID int64) {
	r.cache.Delete(key(userID))
}

// Count returns number of stored sessions
func (r *SessionRepo) Count() int {
	return r.cache.ItemCount()
}

func key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// clone keeps stored sessions isolated from callers mutating their copy
func clone(s *domain.Session) *domain.Session {
	c := *s
	c.Fields = make(map[string]string, len(s.Fields))
	for k, v := range s.Fields {
		c.Fields[k] = v
	}
	return &c
}
