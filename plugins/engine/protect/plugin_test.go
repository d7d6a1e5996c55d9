package protect

import (
	"context"
	"errors"
	"testing"

	"github.com/rom8726/chatsweep"
)

func TestProtectPlugin_OnDeleteStart(t *testing.T) {
	plugin := New()
	plugin.AddRule(MessageIDs("pinned-1", "pinned-2"))
	plugin.AddRule(Keywords("#keep", " ", "Important"))

	tests := []struct {
		name      string
		message   chatsweep.Message
		protected bool
	}{
		{name: "plain message", message: chatsweep.Message{ID: "1", Content: "hello"}},
		{name: "protected id", message: chatsweep.Message{ID: "pinned-2", Content: "hello"}, protected: true},
		{name: "keyword", message: chatsweep.Message{ID: "2", Content: "note #keep this"}, protected: true},
		{name: "keyword is case insensitive", message: chatsweep.Message{ID: "3", Content: "IMPORTANT stuff"}, protected: true},
		{name: "blank keyword ignored", message: chatsweep.Message{ID: "4", Content: "two words"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := plugin.OnDeleteStart(context.Background(), &chatsweep.Run{}, &tt.message)

			if tt.protected {
				if !errors.Is(err, ErrProtected) {
					t.Fatalf("OnDeleteStart() error = %v, want ErrProtected", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("OnDeleteStart() error = %v", err)
			}
		})
	}
}

func TestProtectPlugin_NoRules(t *testing.T) {
	plugin := New()

	if plugin.Name() != "protect" {
		t.Errorf("Name() = %q", plugin.Name())
	}

	if err := plugin.OnDeleteStart(context.Background(), &chatsweep.Run{}, &chatsweep.Message{ID: "1"}); err != nil {
		t.Fatalf("OnDeleteStart() error = %v", err)
	}
}
