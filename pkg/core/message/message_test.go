package message

import (
	"errors"
	"testing"
)

func TestRole_IsValid(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleSystem, true},
		{RoleUser, true},
		{RoleAssistant, true},
		{Role("tool"), false},
		{Role(""), false},
	}

	for _, tt := range tests {
		if got := tt.role.IsValid(); got != tt.want {
			t.Errorf("Role(%q).IsValid() = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name    string
		msg     Message
		wantErr error
	}{
		{"valid user", NewUserMessage("hi"), nil},
		{"valid system", NewSystemMessage("ctx"), nil},
		{"bad role", Message{Role: "robot", Content: "x"}, ErrInvalidRole},
		{"empty content", NewAssistantMessage(""), ErrEmptyContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewMessage_SetsTimestamp(t *testing.T) {
	m := NewUserMessage("hello")
	if m.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
	if m.Role != RoleUser || m.Content != "hello" {
		t.Errorf("unexpected message: %+v", m)
	}
}

func TestConversation(t *testing.T) {
	history := []Message{
		NewSystemMessage("old context"),
		NewUserMessage("q1"),
		NewAssistantMessage("a1"),
		NewUserMessage("q2"),
		NewAssistantMessage("a2"),
	}

	got := Conversation(history, 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Content != "q2" || got[1].Content != "a2" {
		t.Errorf("got %q, %q; want q2, a2", got[0].Content, got[1].Content)
	}

	all := Conversation(history, 10)
	if len(all) != 4 {
		t.Errorf("len = %d, want 4 (system dropped)", len(all))
	}
	for _, m := range all {
		if m.Role == RoleSystem {
			t.Error("system message should be dropped")
		}
	}

	if got := Conversation(history, 0); len(got) != 0 {
		t.Errorf("limit 0: len = %d, want 0", len(got))
	}
}
