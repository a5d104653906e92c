package session_test

import (
	"testing"
	"time"

	"task-time-tracker/pkg/session"
)

func TestManager(t *testing.T) {
	m := session.NewManager(100, time.Hour)

	t.Run("Create and Get", func(t *testing.T) {
		token := m.Create(session.Session{UserID: 42, Email: "a@example.com", Role: "user"})
		if token == "" {
			t.Fatal("expected non-empty token")
		}

		got, ok := m.Get(token)
		if !ok {
			t.Fatal("expected session to exist")
		}
		if got.UserID != 42 || got.Email != "a@example.com" {
			t.Errorf("unexpected session: %+v", got)
		}
	})

	t.Run("Tokens are unique", func(t *testing.T) {
		a := m.Create(session.Session{UserID: 1})
		b := m.Create(session.Session{UserID: 1})
		if a == b {
			t.Error("expected distinct tokens for distinct sessions")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		token := m.Create(session.Session{UserID: 7})
		m.Delete(token)
		if _, ok := m.Get(token); ok {
			t.Error("expected session to be gone after delete")
		}
		// Deleting again must not panic.
		m.Delete(token)
	})

	t.Run("Unknown token", func(t *testing.T) {
		if _, ok := m.Get("not-a-token"); ok {
			t.Error("expected lookup miss")
		}
	})

	t.Run("Expiry", func(t *testing.T) {
		short := session.NewManager(10, 10*time.Millisecond)
		token := short.Create(session.Session{UserID: 9})
		time.Sleep(30 * time.Millisecond)
		if _, ok := short.Get(token); ok {
			t.Error("expected session to expire")
		}
	})
}
