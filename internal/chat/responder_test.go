package chat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponderReply(t *testing.T) {
	r := NewResponder()

	t.Run("keyword match", func(t *testing.T) {
		assert.Equal(t, "Hi there! How can I help you?", r.Reply("hello bot"))
		assert.Equal(t, "Sure! What do you need assistance with?", r.Reply("I need help"))
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		assert.Equal(t, "Hi there! How can I help you?", r.Reply("HELLO"))
	})

	t.Run("first rule wins", func(t *testing.T) {
		// "hello" is listed before "help".
		assert.Equal(t, "Hi there! How can I help you?", r.Reply("hello, help me"))
	})

	t.Run("generic fallback", func(t *testing.T) {
		reply := r.Reply("completely unrelated text")
		assert.Contains(t, defaultGeneric(), reply)
	})

	t.Run("deterministic pick", func(t *testing.T) {
		fixed := NewResponder()
		fixed.pick = func(int) int { return 2 }
		assert.Equal(t, defaultGeneric()[2], fixed.Reply("xyz"))
	})
}

func TestResponderLoadRules(t *testing.T) {
	t.Run("replaces rules and generics", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "replies.yaml")
		data := `rules:
  - keyword: appointment
    reply: Let me look up your appointment.
generic:
  - Noted.
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		r := NewResponder()
		require.NoError(t, r.LoadRules(path))
		assert.Equal(t, "Let me look up your appointment.", r.Reply("my appointment moved"))
		assert.Equal(t, "Noted.", r.Reply("anything else"))
	})

	t.Run("missing file errors", func(t *testing.T) {
		r := NewResponder()
		assert.Error(t, r.LoadRules(filepath.Join(t.TempDir(), "nope.yaml")))
	})
}
