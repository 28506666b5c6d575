package govbr

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-govbrds/pkg/messages"
	"github.com/goliatone/go-govbrds/pkg/render"
)

// MessagesRenderer renders queued flash messages as a list of alerts, one
// per message, with the alert style derived from the message severity.
type MessagesRenderer struct {
	base
	alert *AlertRenderer
}

// NewMessagesRenderer constructs the messages renderer.
func NewMessagesRenderer(opts ...Option) (*MessagesRenderer, error) {
	b, err := newBase(opts...)
	if err != nil {
		return nil, err
	}
	return &MessagesRenderer{base: b, alert: &AlertRenderer{base: b}}, nil
}

// Name reports the renderer identifier.
func (r *MessagesRenderer) Name() string { return "govbr-messages" }

// Render produces the message list markup. The subject is the message slice.
func (r *MessagesRenderer) Render(ctx context.Context, rc render.Context) (string, error) {
	list, err := messagesSubject(rc.Subject)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, message := range list {
		alertRC := render.Context{
			Subject: message.Text,
			Options: map[string]any{
				"alert_type":    messages.AlertType(message.Level),
				"dismissible":   rc.BoolOption("dismissible", true),
				"extra_classes": message.ExtraTags,
			},
		}
		alertHTML, err := r.alert.Render(ctx, alertRC)
		if err != nil {
			return "", fmt.Errorf("govbr: render message %d: %w", i, err)
		}
		b.WriteString(alertHTML)
	}
	return b.String(), nil
}

func messagesSubject(subject any) ([]messages.Message, error) {
	switch v := subject.(type) {
	case []messages.Message:
		return v, nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("govbr: messages renderer needs a []messages.Message subject, got %T", subject)
}
