// Package session keeps per-(user, chat) conversational state between
// message turns. It replaces bot-global state maps with an injectable store.
package session

import (
	"sync"

	"github.com/example/cardbot/pkg/models"
)

// State names the conversational step a chat is in
type State int

const (
	// Idle means no quiz or collect flow is pending
	Idle State = iota
	// AwaitingAnswer means a quiz card is out and an option is expected
	AwaitingAnswer
	// AwaitingEnglish means the add-word flow expects the english text
	AwaitingEnglish
	// AwaitingRussian means the add-word flow expects the translation
	AwaitingRussian
	// AwaitingDeleteChoice means the delete flow expects a word pick
	AwaitingDeleteChoice
)

// Key identifies one conversation
type Key struct {
	UserID int64
	ChatID int64
}

// Data is the per-turn payload handed between handlers
type Data struct {
	State State

	// Pending quiz, set while State == AwaitingAnswer
	Target  *models.Word
	Options []models.Word
	StoreID int64 // the user's row ID in the vocabulary store

	// Add-word flow
	PendingEnglish string

	// Delete flow: keyboard label -> word ID
	DeleteChoices map[string]int64
}

// Store holds conversation payloads across turns. Clearing is explicit.
type Store interface {
	Get(key Key) (Data, bool)
	Set(key Key, data Data)
	Clear(key Key)
}

// MemoryStore is the in-process Store used in production and tests
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[Key]Data
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[Key]Data)}
}

// Get returns the payload for the conversation and whether one exists
func (s *MemoryStore) Get(key Key) (Data, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.sessions[key]
	return data, ok
}

// Set stores the payload for the conversation
func (s *MemoryStore) Set(key Key, data Data) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[key] = data
}

// Clear drops the conversation payload
func (s *MemoryStore) Clear(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
}
