package chat

import (
	"sort"
	"sync"
	"time"
)

// Message is one chat message, user- or bot-authored. IDs are sequential
// per process.
type Message struct {
	ID        int       `json:"id"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// BotSender names the responder in stored messages.
const BotSender = "Bot"

// Store is the in-memory message log.
type Store struct {
	mu       sync.Mutex
	messages []Message
	nextID   int
}

// NewStore creates an empty message store.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Append stores a new message and returns it with ID and timestamp set.
func (s *Store) Append(sender, text string) Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := Message{
		ID:        s.nextID,
		Sender:    sender,
		Message:   text,
		Timestamp: time.Now(),
	}
	s.nextID++
	s.messages = append(s.messages, msg)
	return msg
}

// List returns messages newest-first, optionally filtered by sender and
// capped at limit (0 means no cap).
func (s *Store) List(sender string, limit int) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := make([]Message, 0, len(s.messages))
	for _, m := range s.messages {
		if sender != "" && m.Sender != sender {
			continue
		}
		messages = append(messages, m)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		if !messages[i].Timestamp.Equal(messages[j].Timestamp) {
			return messages[i].Timestamp.After(messages[j].Timestamp)
		}
		return messages[i].ID > messages[j].ID
	})

	if limit > 0 && len(messages) > limit {
		messages = messages[:limit]
	}
	return messages
}

// Len reports the number of stored messages.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}
