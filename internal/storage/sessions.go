// Package storage holds the in-memory per-chat quiz sessions. Round
// state lives only here for the lifetime of the process; nothing about
// scores is ever persisted.
package storage

import (
	"sync"
	"time"

	"flagquiz/internal/service"
)

// Session is the per-chat quiz state: the game engine instance, the id
// of the message the round is rendered into, and the pending
// auto-advance timer. All access goes through the session mutex, which
// serializes the update loop against fired timers.
type Session struct {
	mu      sync.Mutex
	game    *service.Game
	screen  int // message id of the active quiz screen, 0 when none
	advance *time.Timer
}

// Do runs fn with exclusive access to the session's game. It reports
// false without calling fn when no round has been started yet.
func (s *Session) Do(fn func(g *service.Game)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game == nil {
		return false
	}
	fn(s.game)
	return true
}

// Swap installs the game of a fresh round, dropping whatever round came
// before it together with its pending auto-advance.
func (s *Session) Swap(game *service.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelAdvanceLocked()
	s.game = game
}

// SetScreen remembers the message the round is rendered into.
func (s *Session) SetScreen(messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen = messageID
}

// Screen returns the message id of the active quiz screen, 0 when none.
func (s *Session) Screen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// ScheduleAdvance arms the auto-advance timer, replacing any pending
// one. At most one advance is ever pending per session.
func (s *Session) ScheduleAdvance(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelAdvanceLocked()
	s.advance = time.AfterFunc(d, fn)
}

// CancelAdvance disarms the pending auto-advance, if any. A timer whose
// function already started cannot be stopped; the handler re-checks the
// game state under the session lock instead of relying on Stop.
func (s *Session) CancelAdvance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelAdvanceLocked()
}

func (s *Session) cancelAdvanceLocked() {
	if s.advance != nil {
		s.advance.Stop()
		s.advance = nil
	}
}

// SessionStorage provides in-memory sessions keyed by chat ID.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*Session),
	}
}

// GetOrCreate returns the session for a chat, creating an empty one on
// first use.
func (s *SessionStorage) GetOrCreate(chatID int64) *Session {
	s.mu.RLock()
	sess, ok := s.sessions[chatID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[chatID]; ok {
		return sess
	}
	sess = &Session{}
	s.sessions[chatID] = sess
	return sess
}

// Get retrieves the session for a chat.
func (s *SessionStorage) Get(chatID int64) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[chatID]
	return sess, ok
}

// Delete removes the session for a chat, disarming its pending
// auto-advance.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	sess, ok := s.sessions[chatID]
	delete(s.sessions, chatID)
	s.mu.Unlock()

	if ok {
		sess.CancelAdvance()
	}
}
