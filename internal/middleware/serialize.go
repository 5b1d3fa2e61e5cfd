package middleware

import (
	"sync"

	tele "gopkg.in/telebot.v3"
)

// SerializeBySender creates middleware that processes at most one update
// per sender at a time. Updates of different senders run independently.
func SerializeBySender() tele.MiddlewareFunc {
	var (
		mux   sync.Mutex
		locks = make(map[int64]*sync.Mutex)
	)

	lockFor := func(userID int64) *sync.Mutex {
		mux.Lock()
		defer mux.Unlock()

		lock, exists := locks[userID]
		if !exists {
			lock = &sync.Mutex{}
			locks[userID] = lock
		}
		return lock
	}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil {
				return next(c)
			}

			lock := lockFor(c.Sender().ID)
			lock.Lock()
			defer lock.Unlock()

			return next(c)
		}
	}
}
