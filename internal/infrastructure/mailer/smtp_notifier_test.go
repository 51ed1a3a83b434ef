package mailer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"sien_official/internal/config"
	"sien_official/internal/domain/entities"
	"sien_official/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingSender struct {
	sent []*gomail.Message
	err  error
}

func (s *recordingSender) DialAndSend(m ...*gomail.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, m...)
	return nil
}

var enabledCfg = config.MailConfig{
	User: "studio@example.com", Pass: "app-pass", Host: "smtp.example.com", Port: 587, AdminEmail: "owner@example.com",
}

func sampleOrder() entities.Order {
	return entities.Order{
		ID:       "1",
		Status:   entities.OrderStatusNotStarted,
		Deadline: "2025-06-02",
		Fields: map[string]any{
			entities.FieldClientName: "しえん",
			entities.FieldSongTitle:  "King",
			entities.FieldPlan:       "Standard",
			entities.FieldKeyChange:  "なし",
		},
	}
}

func TestRender(t *testing.T) {
	t.Run("new order defaults optional fields", func(t *testing.T) {
		subject, body, err := Render(interfaces.TemplateNewOrder, sampleOrder())
		require.NoError(t, err)
		assert.Equal(t, "【新規依頼】しえん様より", subject)
		assert.Contains(t, body, "曲名：King")
		assert.Contains(t, body, "レコーディング済み音源：なし")
		assert.Contains(t, body, "参考URL(任意)：なし")
		assert.Contains(t, body, "イメージ\nなし")
	})

	t.Run("deadline alert", func(t *testing.T) {
		subject, body, err := Render(interfaces.TemplateDeadlineAlert, sampleOrder())
		require.NoError(t, err)
		assert.Equal(t, "【納期アラート】納期が近づいています", subject)
		assert.Contains(t, body, "納品予定日：2025-06-02")
		assert.Contains(t, body, "プラン：Standard")
	})

	t.Run("unknown template", func(t *testing.T) {
		_, _, err := Render("weekly_digest", sampleOrder())
		assert.Error(t, err)
	})
}

func TestSMTPNotifier_Notify(t *testing.T) {
	t.Run("sends to the admin address", func(t *testing.T) {
		sender := &recordingSender{}
		n := NewSMTPNotifier(enabledCfg, nil).WithSender(sender)

		require.NoError(t, n.Notify(context.Background(), interfaces.TemplateNewOrder, sampleOrder()))
		require.Len(t, sender.sent, 1)
		assert.Equal(t, []string{"owner@example.com"}, sender.sent[0].GetHeader("To"))
		assert.Equal(t, []string{"studio@example.com"}, sender.sent[0].GetHeader("From"))

		var buf bytes.Buffer
		_, err := sender.sent[0].WriteTo(&buf)
		require.NoError(t, err)
		assert.True(t, strings.Contains(buf.String(), "Content-Type: text/plain"))
	})

	t.Run("disabled skips new order mail", func(t *testing.T) {
		sender := &recordingSender{}
		n := NewSMTPNotifier(config.MailConfig{}, nil).WithSender(sender)
		assert.NoError(t, n.Notify(context.Background(), interfaces.TemplateNewOrder, sampleOrder()))
		assert.Empty(t, sender.sent)
	})

	t.Run("disabled reports deadline alerts", func(t *testing.T) {
		n := NewSMTPNotifier(config.MailConfig{}, nil).WithSender(&recordingSender{})
		err := n.Notify(context.Background(), interfaces.TemplateDeadlineAlert, sampleOrder())
		assert.ErrorIs(t, err, ErrMailDisabled)
	})

	t.Run("transport error", func(t *testing.T) {
		boom := errors.New("535 auth failed")
		n := NewSMTPNotifier(enabledCfg, nil).WithSender(&recordingSender{err: boom})
		assert.ErrorIs(t, n.Notify(context.Background(), interfaces.TemplateDeadlineAlert, sampleOrder()), boom)
	})

	t.Run("cancelled context", func(t *testing.T) {
		sender := &recordingSender{}
		n := NewSMTPNotifier(enabledCfg, nil).WithSender(sender)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, n.Notify(ctx, interfaces.TemplateNewOrder, sampleOrder()), context.Canceled)
		assert.Empty(t, sender.sent)
	})
}
