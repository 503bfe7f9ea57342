package bot

import "sync"

// Mode says what free-form text from a chat currently means.
type Mode int

const (
	// ModeIdle routes text to the form draft if one exists.
	ModeIdle Mode = iota
	// ModeUserChat relays user text into their open ticket.
	ModeUserChat
	// ModeAdminChat relays admin text into the claimed ticket.
	ModeAdminChat
	// ModeAdminComment treats the next admin text as an application comment.
	ModeAdminComment
)

// Session is per-chat routing state. It is deliberately ephemeral: losing it
// on restart only drops the conversational focus, never persisted data.
type Session struct {
	Mode          Mode
	TicketID      uint
	ApplicationID uint
}

// SessionStore is an in-memory map of chat sessions keyed by user ID. It
// also remembers the last keyboard prompt sent to each chat; prompts are
// tracked apart from sessions because clearing a session must not orphan a
// live prompt message.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]Session
	prompts  map[int64]int64
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]Session),
		prompts:  make(map[int64]int64),
	}
}

func (s *SessionStore) Get(userID int64) Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[userID]
}

func (s *SessionStore) Set(userID int64, session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = session
}

func (s *SessionStore) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// SetPromptID records the chat's current keyboard prompt message.
func (s *SessionStore) SetPromptID(chatID int64, messageID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts[chatID] = messageID
}

// TakePromptID returns and forgets the chat's last prompt message ID, zero
// when no prompt is outstanding.
func (s *SessionStore) TakePromptID(chatID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.prompts[chatID]
	delete(s.prompts, chatID)
	return id
}
