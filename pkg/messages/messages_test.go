package messages_test

import (
	"testing"

	"github.com/goliatone/go-govbrds/pkg/messages"
)

func TestAlertType(t *testing.T) {
	cases := []struct {
		name  string
		level messages.Level
		want  string
	}{
		{name: "debug maps to warning", level: messages.LevelDebug, want: "warning"},
		{name: "info", level: messages.LevelInfo, want: "info"},
		{name: "success", level: messages.LevelSuccess, want: "success"},
		{name: "warning", level: messages.LevelWarning, want: "warning"},
		{name: "error maps to danger", level: messages.LevelError, want: "danger"},
		{name: "unknown defaults to info", level: messages.Level(99), want: "info"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := messages.AlertType(tc.level); got != tc.want {
				t.Fatalf("level %d: want %q, got %q", tc.level, tc.want, got)
			}
		})
	}
}
